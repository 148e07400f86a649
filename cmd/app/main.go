package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nsushman/Project-Vealth/internal/application/usecase"
	"github.com/nsushman/Project-Vealth/internal/config"
	"github.com/nsushman/Project-Vealth/internal/domain"
	"github.com/nsushman/Project-Vealth/internal/infrastructure/cache"
	"github.com/nsushman/Project-Vealth/internal/infrastructure/repository"
	"github.com/nsushman/Project-Vealth/internal/infrastructure/security"
	"github.com/nsushman/Project-Vealth/internal/middleware"
	handlers "github.com/nsushman/Project-Vealth/internal/transport/http"
)

func main() {

	// 1. Конфиг
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Подключение к БД
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	log.Println("Running migrations...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Account{},
		&domain.Transaction{},
		&domain.Lesson{},
		&domain.Card{},
	); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// 3. Инициализация слоев
	userRepo := repository.NewUserRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	txRepo := repository.NewTransactionRepository(db)
	lessonRepo := repository.NewLessonRepository(db)

	sessionCache := cache.NewSessionCache(rdb)
	deckCache := cache.NewDeckCache(rdb)

	verifier := security.NewIdentityVerifier(cfg.IdentitySecret)
	tokenManager := security.NewTokenManager(cfg.AccessSecret, cfg.RefreshSecret)

	provisioner := usecase.NewProvisioner(userRepo, accountRepo, txRepo)
	authUseCase := usecase.NewAuthUseCase(verifier, tokenManager, sessionCache, provisioner)
	summaryUseCase := usecase.NewSummaryUseCase(accountRepo, txRepo)
	lessonUseCase := usecase.NewLessonUseCase(lessonRepo, deckCache)

	rateLimiter := middleware.NewRateLimiter(rdb)

	authHandler := handlers.NewAuthHandler(authUseCase)
	summaryHandler := handlers.NewSummaryHandler(summaryUseCase)
	lessonHandler := handlers.NewLessonHandler(lessonUseCase)

	// 4. Роутер
	router := handlers.NewRouter(authHandler, summaryHandler, lessonHandler, rateLimiter, authUseCase, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:    cfg.Port,
		Handler: router,
	}

	// 5. Запуск HTTP сервера
	go func() {
		log.Printf("Vealth backend running on %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}
}
