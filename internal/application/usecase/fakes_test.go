package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/nsushman/Project-Vealth/internal/carousel"
	"github.com/nsushman/Project-Vealth/internal/domain"
)

var errStoreDown = errors.New("store unavailable")

type fakeUserStore struct {
	users map[string]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*domain.User)}
}

func (s *fakeUserStore) GetByUID(_ context.Context, uid string) (*domain.User, error) {
	u, ok := s.users[uid]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *fakeUserStore) CreateIfAbsent(_ context.Context, user *domain.User) error {
	if existing, ok := s.users[user.UID]; ok {
		*user = *existing
		return nil
	}
	copied := *user
	s.users[user.UID] = &copied
	return nil
}

type fakeAccountStore struct {
	accounts []domain.Account
	fail     bool
}

func (s *fakeAccountStore) Create(_ context.Context, account *domain.Account) error {
	if s.fail {
		return errStoreDown
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	s.accounts = append(s.accounts, *account)
	return nil
}

func (s *fakeAccountStore) ListByChild(_ context.Context, childID string) ([]domain.Account, error) {
	if s.fail {
		return nil, errStoreDown
	}
	var out []domain.Account
	for _, a := range s.accounts {
		if a.ChildID == childID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeTransactionStore struct {
	txs  []domain.Transaction
	fail bool
}

func (s *fakeTransactionStore) CreateBatch(_ context.Context, txs []domain.Transaction) error {
	if s.fail {
		return errStoreDown
	}
	for _, tx := range txs {
		if tx.ID == uuid.Nil {
			tx.ID = uuid.New()
		}
		s.txs = append(s.txs, tx)
	}
	return nil
}

func (s *fakeTransactionStore) ListByAccounts(_ context.Context, ids []uuid.UUID) ([]domain.Transaction, error) {
	if s.fail {
		return nil, errStoreDown
	}
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	var out []domain.Transaction
	for _, tx := range s.txs {
		if (tx.FromAccount != nil && set[*tx.FromAccount]) || (tx.ToAccount != nil && set[*tx.ToAccount]) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (s *fakeTransactionStore) CountByAccount(_ context.Context, id uuid.UUID) (int64, error) {
	if s.fail {
		return 0, errStoreDown
	}
	var count int64
	for _, tx := range s.txs {
		if (tx.FromAccount != nil && *tx.FromAccount == id) || (tx.ToAccount != nil && *tx.ToAccount == id) {
			count++
		}
	}
	return count, nil
}

type fakeLessonStore struct {
	lessons []domain.Lesson
}

func (s *fakeLessonStore) List(_ context.Context) ([]domain.Lesson, error) {
	out := make([]domain.Lesson, len(s.lessons))
	copy(out, s.lessons)
	return out, nil
}

func (s *fakeLessonStore) GetWithCards(_ context.Context, id uuid.UUID) (*domain.Lesson, error) {
	for _, l := range s.lessons {
		if l.ID == id {
			copied := l
			return &copied, nil
		}
	}
	return nil, domain.ErrNoLessons
}

type fakeDeckStore struct {
	decks map[string]*carousel.Deck
}

func newFakeDeckStore() *fakeDeckStore {
	return &fakeDeckStore{decks: make(map[string]*carousel.Deck)}
}

func (s *fakeDeckStore) Save(_ context.Context, deckID string, deck *carousel.Deck) error {
	copied := *deck
	s.decks[deckID] = &copied
	return nil
}

func (s *fakeDeckStore) Get(_ context.Context, deckID string) (*carousel.Deck, error) {
	deck, ok := s.decks[deckID]
	if !ok {
		return nil, domain.ErrDeckNotFound
	}
	copied := *deck
	return &copied, nil
}

func (s *fakeDeckStore) Delete(_ context.Context, deckID string) error {
	delete(s.decks, deckID)
	return nil
}

type fakeSessionStore struct {
	sessions map[string]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]string)}
}

func (s *fakeSessionStore) SaveRefresh(_ context.Context, uid string, refreshToken string) error {
	s.sessions[refreshToken] = uid
	return nil
}

func (s *fakeSessionStore) CheckRefresh(_ context.Context, refreshToken string) (string, error) {
	uid, ok := s.sessions[refreshToken]
	if !ok {
		return "", errors.New("not found")
	}
	return uid, nil
}

func (s *fakeSessionStore) DeleteRefresh(_ context.Context, refreshToken string) error {
	delete(s.sessions, refreshToken)
	return nil
}
