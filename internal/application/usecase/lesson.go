package usecase

import (
	"context"
	"math/rand"

	"github.com/google/uuid"

	"github.com/nsushman/Project-Vealth/internal/carousel"
	"github.com/nsushman/Project-Vealth/internal/domain"
)

type LessonUseCase struct {
	lessons LessonStore
	decks   DeckStore

	// pick — выбор случайного урока; подменяется в тестах
	pick func(n int) int
}

func NewLessonUseCase(lessons LessonStore, decks DeckStore) *LessonUseCase {
	return &LessonUseCase{
		lessons: lessons,
		decks:   decks,
		pick:    rand.Intn,
	}
}

// NewDeck выбирает равновероятно случайный урок и заводит для него колоду.
// Сид не фиксируем: повторяемость выбора тут не нужна.
func (uc *LessonUseCase) NewDeck(ctx context.Context) (string, *carousel.Deck, error) {
	lessons, err := uc.lessons.List(ctx)
	if err != nil {
		return "", nil, err
	}
	if len(lessons) == 0 {
		return "", nil, domain.ErrNoLessons
	}

	chosen := lessons[uc.pick(len(lessons))]

	lesson, err := uc.lessons.GetWithCards(ctx, chosen.ID)
	if err != nil {
		return "", nil, err
	}

	cards := make([]string, 0, len(lesson.Cards))
	for _, c := range lesson.Cards {
		cards = append(cards, c.Content)
	}

	deck := carousel.NewDeck(lesson.ID.String(), lesson.YoutubeLink, cards)
	deckID := uuid.New().String()

	if err := uc.decks.Save(ctx, deckID, deck); err != nil {
		return "", nil, err
	}
	return deckID, deck, nil
}

func (uc *LessonUseCase) GetDeck(ctx context.Context, deckID string) (*carousel.Deck, error) {
	return uc.decks.Get(ctx, deckID)
}

// Slide — программный переход: prev/next или прямой индекс с индикатора.
func (uc *LessonUseCase) Slide(ctx context.Context, deckID, action string, index *int) (*carousel.Deck, error) {
	deck, err := uc.decks.Get(ctx, deckID)
	if err != nil {
		return nil, err
	}

	switch {
	case index != nil:
		if err := deck.GoTo(*index); err != nil {
			return nil, err
		}
	case action == "next":
		deck.Next()
	case action == "prev":
		deck.Prev()
	}

	if err := uc.decks.Save(ctx, deckID, deck); err != nil {
		return nil, err
	}
	return deck, nil
}

// Swipe применяет touch-жест к колоде и возвращает ее новое состояние.
func (uc *LessonUseCase) Swipe(ctx context.Context, deckID string, points []float64) (*carousel.Deck, error) {
	deck, err := uc.decks.Get(ctx, deckID)
	if err != nil {
		return nil, err
	}

	switch carousel.ResolveSwipe(points) {
	case carousel.SwipeNext:
		deck.Next()
	case carousel.SwipePrev:
		deck.Prev()
	}

	if err := uc.decks.Save(ctx, deckID, deck); err != nil {
		return nil, err
	}
	return deck, nil
}
