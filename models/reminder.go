package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reminder holds a user's notification settings. At most one row per user;
// submitting new settings overwrites the previous ones wholesale.
// LastNotifiedAt is advanced only by the dispatcher after a confirmed send.
type Reminder struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key" json:"-"`
	UserID         int64      `gorm:"uniqueIndex;not null" json:"userId"`
	FrequencyDays  int        `gorm:"not null" json:"frequency"`            // minimum days between sends, 1-7
	TimeOfDay      string     `gorm:"type:varchar(5);not null" json:"time"` // local civil time, HH:MM
	Timezone       string     `gorm:"not null" json:"timezone"`             // IANA zone name
	LastNotifiedAt *time.Time `json:"lastNotifiedAt"`
	CreatedAt      time.Time  `json:"-"`
	UpdatedAt      time.Time  `json:"-"`
}

func (r *Reminder) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
