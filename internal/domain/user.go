package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrAccountNotFound = errors.New("account not found")
	ErrNoLessons       = errors.New("no lessons available")
	ErrDeckNotFound    = errors.New("lesson deck not found")
	ErrInvalidIdentity = errors.New("invalid identity token")
)

// Identity — то, что отдает внешний провайдер после popup-входа.
// Мы его не храним, только проверяем подпись токена.
type Identity struct {
	UID   string
	Name  string
	Email string
}

type User struct {
	UID        string          `gorm:"primaryKey;size:128"`
	Name       string          `gorm:"not null"`
	Email      string          `gorm:"index;not null"`
	Balance    decimal.Decimal `gorm:"type:numeric;default:0"`
	ParentLink string          `gorm:"default:''"`
	Role       string          `gorm:"default:'child'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (User) TableName() string {
	return "users"
}
