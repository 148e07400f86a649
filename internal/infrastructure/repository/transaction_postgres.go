package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nsushman/Project-Vealth/internal/domain"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *TransactionRepository) CreateBatch(ctx context.Context, txs []domain.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&txs).Error
}

func (r *TransactionRepository) ListByAccounts(ctx context.Context, ids []uuid.UUID) ([]domain.Transaction, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var txs []domain.Transaction
	err := r.db.WithContext(ctx).
		Where("from_account IN ? OR to_account IN ?", ids, ids).
		Order("timestamp desc").
		Find(&txs).Error
	return txs, err
}

// CountByAccount — сторож против повторного посева демо-истории.
func (r *TransactionRepository) CountByAccount(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Transaction{}).
		Where("from_account = ? OR to_account = ?", id, id).
		Count(&count).Error
	return count, err
}
