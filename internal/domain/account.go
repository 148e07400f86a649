package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Account struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChildID     string           `gorm:"index;not null;size:128"`
	Name        string           `gorm:"not null"`
	Balance     decimal.Decimal  `gorm:"type:numeric;default:0"`
	GoalAmount  *decimal.Decimal `gorm:"type:numeric"`
	GoalEndDate *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Account) TableName() string {
	return "accounts"
}

// TotalBalance суммирует балансы без потери точности.
// Баланс хранится как есть и не сверяется с историей транзакций.
func TotalBalance(accounts []Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}
	return total
}

// SortAccounts: счета с дедлайном цели идут первыми (по возрастанию даты),
// остальные сохраняют исходный порядок. Сортировка стабильная.
func SortAccounts(accounts []Account) []Account {
	sorted := make([]Account, len(accounts))
	copy(sorted, accounts)

	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := sorted[i].GoalEndDate, sorted[j].GoalEndDate
		if di != nil && dj != nil {
			return di.Before(*dj)
		}
		return di != nil && dj == nil
	})
	return sorted
}

const hoursPerDay = 24

// GoalProgress возвращает процент выполнения цели (0..100) и флаг,
// есть ли у счета цель вообще.
//
// Цель по сумме: 100 * balance / goalAmount.
// Цель по дате (если суммы нет): отсчет от CreatedAt; если CreatedAt
// не заполнен, прогресс вырождается в 0%.
func (a Account) GoalProgress(now time.Time) (float64, bool) {
	if a.GoalAmount != nil && a.GoalAmount.IsPositive() {
		ratio, _ := a.Balance.Div(*a.GoalAmount).Float64()
		return clampPercent(ratio * 100), true
	}

	if a.GoalEndDate != nil {
		start := a.CreatedAt
		if start.IsZero() {
			start = now
		}
		totalDays := a.GoalEndDate.Sub(start).Hours() / hoursPerDay
		if totalDays < 1 {
			totalDays = 1
		}
		elapsedDays := now.Sub(start).Hours() / hoursPerDay
		if elapsedDays < 0 {
			elapsedDays = 0
		}
		return clampPercent(elapsedDays / totalDays * 100), true
	}

	return 0, false
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
