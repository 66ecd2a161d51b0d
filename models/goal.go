package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Goal struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"goalId"`
	UserID    int64     `gorm:"index;not null" json:"userId"`
	Name      string    `gorm:"not null" json:"goalName"`
	Position  int       `gorm:"not null" json:"position"` // 1-based display order
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// StarterGoals are seeded for every new user on first authentication.
var StarterGoals = []string{"Семья", "Деньги", "Спорт", "Здоровье", "Развлечения"}

// Initialize UUID before creating
func (g *Goal) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return
}
