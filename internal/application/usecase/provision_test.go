package usecase

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/nsushman/Project-Vealth/internal/domain"
)

type ProvisionTestSuite struct {
	suite.Suite

	users    *fakeUserStore
	accounts *fakeAccountStore
	txs      *fakeTransactionStore
	p        *Provisioner
	now      time.Time
}

func (s *ProvisionTestSuite) SetupTest() {
	s.users = newFakeUserStore()
	s.accounts = &fakeAccountStore{}
	s.txs = &fakeTransactionStore{}
	s.now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	s.p = NewProvisioner(s.users, s.accounts, s.txs)
	s.p.seedRand = func() *rand.Rand { return rand.New(rand.NewSource(42)) }
	s.p.now = func() time.Time { return s.now }
}

func (s *ProvisionTestSuite) identity() *domain.Identity {
	return &domain.Identity{UID: "uid-1", Name: "Sam", Email: "sam@example.com"}
}

// Подписанная сумма транзакций одного счета
func (s *ProvisionTestSuite) signedSum(accountID uuid.UUID) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range s.txs.txs {
		if tx.ToAccount != nil && *tx.ToAccount == accountID {
			sum = sum.Add(tx.Amount)
		}
		if tx.FromAccount != nil && *tx.FromAccount == accountID {
			sum = sum.Sub(tx.Amount)
		}
	}
	return sum
}

func (s *ProvisionTestSuite) findAccount(name string) *domain.Account {
	for i := range s.accounts.accounts {
		if s.accounts.accounts[i].Name == name {
			return &s.accounts.accounts[i]
		}
	}
	return nil
}

func (s *ProvisionTestSuite) TestFirstLoginCreatesProfile() {
	user, err := s.p.EnsureUser(context.Background(), s.identity())
	require.NoError(s.T(), err)

	s.Equal("uid-1", user.UID)
	s.Equal("child", user.Role)
	s.Equal("", user.ParentLink)
	s.True(user.Balance.IsZero())

	stored, err := s.users.GetByUID(context.Background(), "uid-1")
	require.NoError(s.T(), err)
	s.Equal("sam@example.com", stored.Email)
}

func (s *ProvisionTestSuite) TestFirstLoginSeedsAccounts() {
	_, err := s.p.EnsureUser(context.Background(), s.identity())
	require.NoError(s.T(), err)

	s.Len(s.accounts.accounts, 2)

	piggy := s.findAccount("My Piggy Bank")
	require.NotNil(s.T(), piggy)
	s.True(piggy.Balance.Equal(decimal.RequireFromString("335.10")))
	s.Nil(piggy.GoalAmount)
	s.Nil(piggy.GoalEndDate)

	fund := s.findAccount("New Bike Fund")
	require.NotNil(s.T(), fund)
	s.True(fund.Balance.Equal(decimal.RequireFromString("15.30")))
	require.NotNil(s.T(), fund.GoalAmount)
	s.True(fund.GoalAmount.Equal(decimal.RequireFromString("20.00")))
	require.NotNil(s.T(), fund.GoalEndDate)
	s.Equal(s.now.Add(10*24*time.Hour), *fund.GoalEndDate)
}

func (s *ProvisionTestSuite) TestSeededHistoryShape() {
	_, err := s.p.EnsureUser(context.Background(), s.identity())
	require.NoError(s.T(), err)

	// 25+1 для копилки, 3+1 для цели
	s.Len(s.txs.txs, 29)

	piggy := s.findAccount("My Piggy Bank")
	require.NotNil(s.T(), piggy)

	var purchases, transfers int
	windowStart := s.now.Add(-90 * 24 * time.Hour)
	for _, tx := range s.txs.txs {
		touches := (tx.ToAccount != nil && *tx.ToAccount == piggy.ID) ||
			(tx.FromAccount != nil && *tx.FromAccount == piggy.ID)
		if !touches {
			continue
		}

		s.False(tx.Timestamp.After(s.now))
		s.False(tx.Timestamp.Before(windowStart))

		switch tx.TransactionType {
		case domain.TxTypePurchase:
			purchases++
			s.NotNil(tx.FromAccount)
		case domain.TxTypeTransfer:
			transfers++
			s.NotNil(tx.ToAccount)
		}
	}

	// 80% списаний: 20 покупок, 5 переводов от родителя
	s.Equal(20, purchases)
	s.Equal(5, transfers)
}

func (s *ProvisionTestSuite) TestSeedSumsExactToTheCent() {
	// Точность не должна зависеть от конкретного генератора
	for seed := int64(1); seed <= 10; seed++ {
		s.SetupTest()
		s.p.seedRand = func() *rand.Rand { return rand.New(rand.NewSource(seed)) }

		_, err := s.p.EnsureUser(context.Background(), s.identity())
		require.NoError(s.T(), err)

		piggy := s.findAccount("My Piggy Bank")
		fund := s.findAccount("New Bike Fund")
		require.NotNil(s.T(), piggy)
		require.NotNil(s.T(), fund)

		s.True(s.signedSum(piggy.ID).Equal(decimal.RequireFromString("335.10")),
			"seed %d: piggy sum %s", seed, s.signedSum(piggy.ID))
		s.True(s.signedSum(fund.ID).Equal(decimal.RequireFromString("15.30")),
			"seed %d: fund sum %s", seed, s.signedSum(fund.ID))
	}
}

func (s *ProvisionTestSuite) TestProvisioningIsIdempotent() {
	_, err := s.p.EnsureUser(context.Background(), s.identity())
	require.NoError(s.T(), err)
	_, err = s.p.EnsureUser(context.Background(), s.identity())
	require.NoError(s.T(), err)

	s.Len(s.accounts.accounts, 2, "accounts must not duplicate")
	s.Len(s.txs.txs, 29, "transaction batches must not duplicate")
}

func (s *ProvisionTestSuite) TestExistingAccountSuppressesSeeding() {
	existing := domain.Account{
		ID:      uuid.New(),
		ChildID: "uid-1",
		Name:    "Custom Savings",
		Balance: decimal.RequireFromString("50.00"),
	}
	s.accounts.accounts = append(s.accounts.accounts, existing)

	_, err := s.p.EnsureUser(context.Background(), s.identity())
	require.NoError(s.T(), err)

	// Счета не пересоздаются; история сеется в resolved-копилку,
	// которой становится единственный существующий счет
	s.Len(s.accounts.accounts, 1)
	s.Len(s.txs.txs, 26)
}

func (s *ProvisionTestSuite) TestExistingTransactionsSuppressHistorySeeding() {
	_, err := s.p.EnsureUser(context.Background(), s.identity())
	require.NoError(s.T(), err)

	piggy := s.findAccount("My Piggy Bank")
	require.NotNil(s.T(), piggy)
	before := len(s.txs.txs)

	// Повторный вход: транзакции уже есть, батчи не добавляются
	_, err = s.p.EnsureUser(context.Background(), s.identity())
	require.NoError(s.T(), err)
	s.Len(s.txs.txs, before)
}

func TestProvisionTestSuite(t *testing.T) {
	suite.Run(t, new(ProvisionTestSuite))
}
