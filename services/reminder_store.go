// services/reminder_store.go
package services

import (
	"errors"
	"fmt"
	"time"

	"lifebalance-backend/models"
	"lifebalance-backend/utils"

	"gorm.io/gorm"
)

// ReminderStore is the persistence contract of the reminder subsystem.
// ListAll is consumed only by the scheduler sweep; MarkNotified only by the
// dispatcher after a confirmed send.
type ReminderStore interface {
	Get(userID int64) (*models.Reminder, error)
	Upsert(userID int64, frequencyDays int, timeOfDay, timezone string) (*models.Reminder, error)
	ListAll() ([]models.Reminder, error)
	MarkNotified(userID int64, at time.Time) error
}

// GormReminderStore implements ReminderStore on the application database.
type GormReminderStore struct {
	db *gorm.DB
}

func NewGormReminderStore(db *gorm.DB) *GormReminderStore {
	return &GormReminderStore{db: db}
}

func (s *GormReminderStore) Get(userID int64) (*models.Reminder, error) {
	var reminder models.Reminder
	if err := s.db.Where("user_id = ?", userID).First(&reminder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reminder, nil
}

// Upsert overwrites the user's reminder settings wholesale. LastNotifiedAt is
// carried over so that changing settings cannot re-arm a reminder that
// already fired today.
func (s *GormReminderStore) Upsert(userID int64, frequencyDays int, timeOfDay, timezone string) (*models.Reminder, error) {
	if !utils.ValidateFrequency(frequencyDays) {
		return nil, fmt.Errorf("%w: frequency %d outside [%d,%d]",
			ErrValidation, frequencyDays, utils.MinFrequencyDays, utils.MaxFrequencyDays)
	}
	if _, _, err := utils.ParseTimeOfDay(timeOfDay); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if !utils.ValidateTimezone(timezone) {
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrValidation, timezone)
	}

	var reminder models.Reminder
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ?", userID).First(&reminder).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			reminder = models.Reminder{
				UserID:        userID,
				FrequencyDays: frequencyDays,
				TimeOfDay:     timeOfDay,
				Timezone:      timezone,
			}
			return tx.Create(&reminder).Error
		}
		if err != nil {
			return err
		}
		reminder.FrequencyDays = frequencyDays
		reminder.TimeOfDay = timeOfDay
		reminder.Timezone = timezone
		return tx.Save(&reminder).Error
	})
	if err != nil {
		return nil, err
	}
	return &reminder, nil
}

func (s *GormReminderStore) ListAll() ([]models.Reminder, error) {
	var reminders []models.Reminder
	if err := s.db.Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

// MarkNotified advances last_notified_at. The timestamp never regresses: a
// stale retry against a fresher row is a no-op, and a row that vanished in a
// concurrent overwrite yields ErrNotFound.
func (s *GormReminderStore) MarkNotified(userID int64, at time.Time) error {
	result := s.db.Model(&models.Reminder{}).
		Where("user_id = ? AND (last_notified_at IS NULL OR last_notified_at <= ?)", userID, at).
		Update("last_notified_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := s.db.Model(&models.Reminder{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
	}
	return nil
}
