package models

import (
	"time"
)

// User is a Telegram Mini App user. The primary key is the Telegram
// account ID supplied by the validated launch data.
type User struct {
	TelegramID int64     `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	Username   string    `gorm:"not null" json:"username"`
	IsPremium  bool      `gorm:"default:false" json:"isPremium"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// Goal slot limits per tier.
const (
	FreeGoalLimit    = 5
	PremiumGoalLimit = 10
)

// GoalLimit returns how many goals the user may keep.
func (u *User) GoalLimit() int {
	if u.IsPremium {
		return PremiumGoalLimit
	}
	return FreeGoalLimit
}
