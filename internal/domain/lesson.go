package domain

import (
	"time"

	"github.com/google/uuid"
)

type Lesson struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string
	YoutubeLink string

	// Связь один-ко-многим: у урока много карточек
	Cards []Card `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Lesson) TableName() string {
	return "lessons"
}

type Card struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LessonID uuid.UUID `gorm:"type:uuid;index"`
	Content  string
	Position int // Для сортировки (1, 2, 3...)

	CreatedAt time.Time
}

func (Card) TableName() string {
	return "cards"
}
