package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nsushman/Project-Vealth/internal/application/usecase"
	"github.com/nsushman/Project-Vealth/internal/carousel"
	"github.com/nsushman/Project-Vealth/internal/domain"
)

type LessonHandler struct {
	lessons *usecase.LessonUseCase
}

func NewLessonHandler(lessons *usecase.LessonUseCase) *LessonHandler {
	return &LessonHandler{lessons: lessons}
}

// POST /api/v1/lessons/deck
// Пустой каталог уроков — нормальное состояние, клиент покажет заглушку.
func (h *LessonHandler) CreateDeck(c *gin.Context) {
	deckID, deck, err := h.lessons.NewDeck(c)
	if err != nil {
		if errors.Is(err, domain.ErrNoLessons) {
			c.JSON(http.StatusOK, gin.H{"deck_id": "", "cards": []string{}})
			return
		}
		log.Printf("Error creating lesson deck: %v", err)
		c.JSON(http.StatusOK, gin.H{"deck_id": "", "cards": []string{}})
		return
	}

	c.JSON(http.StatusOK, deckResponse(deckID, deck))
}

func (h *LessonHandler) GetDeck(c *gin.Context) {
	deckID := c.Param("id")

	deck, err := h.lessons.GetDeck(c, deckID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deck not found"})
		return
	}

	c.JSON(http.StatusOK, deckResponse(deckID, deck))
}

type slideReq struct {
	Action string `json:"action"` // "next" или "prev"
	Index  *int   `json:"index"`  // прямой переход с индикатора
}

// POST /api/v1/lessons/deck/:id/slide
func (h *LessonHandler) Slide(c *gin.Context) {
	deckID := c.Param("id")

	var req slideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deck, err := h.lessons.Slide(c, deckID, req.Action, req.Index)
	if err != nil {
		if errors.Is(err, domain.ErrDeckNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Deck not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, deckResponse(deckID, deck))
}

type swipeReq struct {
	// Горизонтальные координаты жеста: touchstart, touchmove..., touchend
	Points []float64 `json:"points" binding:"required"`
}

// POST /api/v1/lessons/deck/:id/swipe
func (h *LessonHandler) Swipe(c *gin.Context) {
	deckID := c.Param("id")

	var req swipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deck, err := h.lessons.Swipe(c, deckID, req.Points)
	if err != nil {
		if errors.Is(err, domain.ErrDeckNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Deck not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, deckResponse(deckID, deck))
}

func deckResponse(deckID string, deck *carousel.Deck) gin.H {
	return gin.H{
		"deck_id":      deckID,
		"lesson_id":    deck.LessonID,
		"youtube_link": deck.YoutubeLink,
		"cards":        deck.Cards,
		"active":       deck.Active,
		"indicators":   deck.Indicators(),
	}
}
