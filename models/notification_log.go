package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationLog records every reminder dispatch attempt for operator visibility.
type NotificationLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID       int64     `gorm:"index;not null"`
	Message      string    `gorm:"type:text"`
	Status       string    `gorm:"type:varchar(20)"` // sent, failed
	ErrorMessage string    `gorm:"type:text"`
	SentAt       time.Time
	CreatedAt    time.Time
}

func (n *NotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}
