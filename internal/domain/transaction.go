package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TxTypePurchase   = "Purchase"
	TxTypeTransfer   = "Transfer from Parent"
	TxTypeAdjustment = "Balance Adjustment"

	TxStatusCompleted = "completed"
)

// Transaction неизменяема после создания. Направление определяет
// заполненная сторона: ToAccount — зачисление, FromAccount — списание.
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FromAccount     *uuid.UUID      `gorm:"type:uuid;index"`
	ToAccount       *uuid.UUID      `gorm:"type:uuid;index"`
	Amount          decimal.Decimal `gorm:"type:numeric;not null"`
	TransactionType string
	Status          string
	Timestamp       time.Time `gorm:"index"`
	Description     string
}

func (Transaction) TableName() string {
	return "transactions"
}

const cashFlowWindow = 7 * 24 * time.Hour

// WeeklyCashFlow считает подписанный итог за последние 7 дней:
// зачисления на счета пользователя с плюсом, списания с минусом.
// Транзакции вне окна [now-7d, now] игнорируются.
func WeeklyCashFlow(txs []Transaction, accountIDs map[uuid.UUID]bool, now time.Time) decimal.Decimal {
	windowStart := now.Add(-cashFlowWindow)

	flow := decimal.Zero
	for _, tx := range txs {
		if tx.Timestamp.Before(windowStart) || tx.Timestamp.After(now) {
			continue
		}
		if tx.ToAccount != nil && accountIDs[*tx.ToAccount] {
			flow = flow.Add(tx.Amount)
		}
		if tx.FromAccount != nil && accountIDs[*tx.FromAccount] {
			flow = flow.Sub(tx.Amount)
		}
	}
	return flow
}
