package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsushman/Project-Vealth/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
}

func TestOverviewAggregates(t *testing.T) {
	now := fixedNow()
	goalEnd := now.Add(10 * 24 * time.Hour)
	goal := decimal.RequireFromString("20.00")

	piggy := domain.Account{
		ID:      uuid.New(),
		ChildID: "uid-1",
		Name:    "My Piggy Bank",
		Balance: decimal.RequireFromString("335.10"),
	}
	fund := domain.Account{
		ID:          uuid.New(),
		ChildID:     "uid-1",
		Name:        "New Bike Fund",
		Balance:     decimal.RequireFromString("15.30"),
		GoalAmount:  &goal,
		GoalEndDate: &goalEnd,
		CreatedAt:   now.Add(-24 * time.Hour),
	}

	accounts := &fakeAccountStore{accounts: []domain.Account{piggy, fund}}
	txs := &fakeTransactionStore{txs: []domain.Transaction{
		{ToAccount: &piggy.ID, Amount: decimal.RequireFromString("10.00"), Timestamp: now.Add(-24 * time.Hour)},
		{FromAccount: &piggy.ID, Amount: decimal.RequireFromString("4.00"), Timestamp: now.Add(-10 * 24 * time.Hour)},
	}}

	uc := NewSummaryUseCase(accounts, txs)
	uc.now = fixedNow

	overview := uc.Overview(context.Background(), "uid-1")

	assert.True(t, overview.TotalBalance.Equal(decimal.RequireFromString("350.40")),
		"total %s", overview.TotalBalance)
	assert.True(t, overview.WeeklyCashFlow.Equal(decimal.RequireFromString("10.00")),
		"cash flow %s", overview.WeeklyCashFlow)

	// Счет с дедлайном цели показывается первым
	require.Len(t, overview.Accounts, 2)
	assert.Equal(t, "New Bike Fund", overview.Accounts[0].Account.Name)
	assert.True(t, overview.Accounts[0].HasGoal)
	assert.InDelta(t, 76.5, overview.Accounts[0].Progress, 0.001)

	assert.Equal(t, "My Piggy Bank", overview.Accounts[1].Account.Name)
	assert.False(t, overview.Accounts[1].HasGoal)
}

func TestOverviewAccountFetchFailureDegrades(t *testing.T) {
	uc := NewSummaryUseCase(&fakeAccountStore{fail: true}, &fakeTransactionStore{})
	uc.now = fixedNow

	overview := uc.Overview(context.Background(), "uid-1")

	assert.Empty(t, overview.Accounts)
	assert.True(t, overview.TotalBalance.IsZero())
	assert.True(t, overview.WeeklyCashFlow.IsZero())
}

func TestOverviewTransactionFetchFailureKeepsAccounts(t *testing.T) {
	accounts := &fakeAccountStore{accounts: []domain.Account{
		{ID: uuid.New(), ChildID: "uid-1", Name: "My Piggy Bank", Balance: decimal.RequireFromString("335.10")},
	}}

	uc := NewSummaryUseCase(accounts, &fakeTransactionStore{fail: true})
	uc.now = fixedNow

	overview := uc.Overview(context.Background(), "uid-1")

	// Секция счетов живет, кэшфлоу остается пустым
	require.Len(t, overview.Accounts, 1)
	assert.True(t, overview.TotalBalance.Equal(decimal.RequireFromString("335.10")))
	assert.True(t, overview.WeeklyCashFlow.IsZero())
}

func TestOverviewNoAccounts(t *testing.T) {
	uc := NewSummaryUseCase(&fakeAccountStore{}, &fakeTransactionStore{})
	uc.now = fixedNow

	overview := uc.Overview(context.Background(), "uid-unknown")

	assert.Empty(t, overview.Accounts)
	assert.True(t, overview.TotalBalance.IsZero())
	assert.True(t, overview.WeeklyCashFlow.IsZero())
}
