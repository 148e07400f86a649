package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nsushman/Project-Vealth/internal/domain"
)

type AccountSummary struct {
	Account  domain.Account
	Progress float64
	HasGoal  bool
}

type Overview struct {
	Accounts       []AccountSummary
	TotalBalance   decimal.Decimal
	WeeklyCashFlow decimal.Decimal
}

type SummaryUseCase struct {
	accounts AccountStore
	txs      TransactionStore

	now func() time.Time
}

func NewSummaryUseCase(accounts AccountStore, txs TransactionStore) *SummaryUseCase {
	return &SummaryUseCase{accounts: accounts, txs: txs, now: time.Now}
}

// Overview собирает главный экран. Ошибки чтения не фатальны:
// логируем и оставляем секцию пустой, экран не падает целиком.
func (uc *SummaryUseCase) Overview(ctx context.Context, uid string) Overview {
	now := uc.now()
	overview := Overview{
		TotalBalance:   decimal.Zero,
		WeeklyCashFlow: decimal.Zero,
	}

	accounts, err := uc.accounts.ListByChild(ctx, uid)
	if err != nil {
		log.Printf("Error fetching accounts for %s: %v", uid, err)
		return overview
	}

	sorted := domain.SortAccounts(accounts)
	overview.Accounts = make([]AccountSummary, 0, len(sorted))
	for _, a := range sorted {
		progress, hasGoal := a.GoalProgress(now)
		overview.Accounts = append(overview.Accounts, AccountSummary{
			Account:  a,
			Progress: progress,
			HasGoal:  hasGoal,
		})
	}
	overview.TotalBalance = domain.TotalBalance(accounts)

	ids := make([]uuid.UUID, 0, len(accounts))
	idSet := make(map[uuid.UUID]bool, len(accounts))
	for _, a := range accounts {
		ids = append(ids, a.ID)
		idSet[a.ID] = true
	}

	txs, err := uc.txs.ListByAccounts(ctx, ids)
	if err != nil {
		log.Printf("Error fetching transactions for %s: %v", uid, err)
		return overview
	}
	overview.WeeklyCashFlow = domain.WeeklyCashFlow(txs, idSet, now)

	return overview
}
