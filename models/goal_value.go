package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GoalValue is one 1-5 rating of a goal for a calendar day.
// Date is the user-local day in YYYY-MM-DD form.
type GoalValue struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"valueId"`
	UserID    int64     `gorm:"index;not null" json:"userId"`
	GoalID    uuid.UUID `gorm:"type:uuid;index;not null" json:"goalId"`
	Value     int       `gorm:"not null" json:"value"`
	Date      string    `gorm:"type:varchar(10);index;not null" json:"date"`
	CreatedAt time.Time `json:"-"`
}

func (v *GoalValue) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return
}
