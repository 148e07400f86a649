package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/nsushman/Project-Vealth/internal/carousel"
	"github.com/nsushman/Project-Vealth/internal/domain"
)

// Хранилища передаются интерфейсами, чтобы агрегацию и посев
// можно было тестировать без живой базы.

type UserStore interface {
	GetByUID(ctx context.Context, uid string) (*domain.User, error)
	CreateIfAbsent(ctx context.Context, user *domain.User) error
}

type AccountStore interface {
	Create(ctx context.Context, account *domain.Account) error
	ListByChild(ctx context.Context, childID string) ([]domain.Account, error)
}

type TransactionStore interface {
	CreateBatch(ctx context.Context, txs []domain.Transaction) error
	ListByAccounts(ctx context.Context, ids []uuid.UUID) ([]domain.Transaction, error)
	CountByAccount(ctx context.Context, id uuid.UUID) (int64, error)
}

type LessonStore interface {
	List(ctx context.Context) ([]domain.Lesson, error)
	GetWithCards(ctx context.Context, id uuid.UUID) (*domain.Lesson, error)
}

type DeckStore interface {
	Save(ctx context.Context, deckID string, deck *carousel.Deck) error
	Get(ctx context.Context, deckID string) (*carousel.Deck, error)
	Delete(ctx context.Context, deckID string) error
}

type SessionStore interface {
	SaveRefresh(ctx context.Context, uid string, refreshToken string) error
	CheckRefresh(ctx context.Context, refreshToken string) (string, error)
	DeleteRefresh(ctx context.Context, refreshToken string) error
}
