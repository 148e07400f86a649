package handlers

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nsushman/Project-Vealth/internal/middleware"
)

func NewRouter(
	authHandler *AuthHandler,
	summaryHandler *SummaryHandler,
	lessonHandler *LessonHandler,
	limiter *middleware.RateLimiter,
	validator middleware.AccessValidator,
	allowedOrigins string,
) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = strings.Split(allowedOrigins, ",")
	config.AllowCredentials = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signin", limiter.Limit("signin", 5, 1*time.Minute), authHandler.SignIn)
			auth.POST("/refresh", authHandler.Refresh)
			auth.POST("/logout", authHandler.Logout)
		}

		home := api.Group("")
		home.Use(middleware.AuthMiddleware(validator))
		{
			home.GET("/summary", summaryHandler.GetSummary)

			lessons := home.Group("/lessons")
			{
				lessons.POST("/deck", lessonHandler.CreateDeck)
				lessons.GET("/deck/:id", lessonHandler.GetDeck)
				lessons.POST("/deck/:id/slide", lessonHandler.Slide)
				lessons.POST("/deck/:id/swipe", lessonHandler.Swipe)
			}
		}
	}

	return r
}
