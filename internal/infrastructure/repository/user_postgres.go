package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nsushman/Project-Vealth/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByUID(ctx context.Context, uid string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("uid = ?", uid).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateIfAbsent: FirstOrCreate, чтобы два одновременных первых входа
// не создали два профиля.
func (r *UserRepository) CreateIfAbsent(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).
		Where(domain.User{UID: user.UID}).
		Attrs(domain.User{
			Name:       user.Name,
			Email:      user.Email,
			Balance:    user.Balance,
			ParentLink: user.ParentLink,
			Role:       user.Role,
		}).
		FirstOrCreate(user).Error
}

func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}
