// services/reminder_service.go
package services

import (
	"errors"
	"math/rand"
	"time"

	"lifebalance-backend/config"
	"lifebalance-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// reminderTexts is the pool of notification messages; one is picked at
// random for every dispatch.
var reminderTexts = []string{
	"⏰ Время подвести итоги дня! Оцените свои сферы жизни в приложении.",
	"🎯 Как прошёл ваш день? Загляните в приложение и отметьте свои цели.",
	"📊 Минутка для себя: оцените баланс жизни за сегодня.",
	"✨ Не забудьте отметить, как сегодня шли дела по вашим целям.",
}

type ReminderService struct {
	store      ReminderStore
	sender     Sender
	db         *gorm.DB
	cronEngine *cron.Cron
}

func NewReminderService(db *gorm.DB, sender Sender) *ReminderService {
	return &ReminderService{
		store:  NewGormReminderStore(db),
		sender: sender,
		db:     db,
	}
}

// StartScheduler begins the minute-cadence sweep over all reminders.
func (s *ReminderService) StartScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("* * * * *", func() {
		s.RunCycle(time.Now().UTC())
	}); err != nil {
		config.Log.WithError(err).Fatal("Could not register reminder sweep")
	}

	c.Start()
	s.cronEngine = c
	config.Log.Info("Reminder scheduler started")
}

// Stop halts the sweep and waits for a running cycle to finish. An in-flight
// dispatch that is abandoned before MarkNotified simply retries next start;
// delivery is at-least-once.
func (s *ReminderService) Stop() {
	if s.cronEngine == nil {
		return
	}
	<-s.cronEngine.Stop().Done()
	config.Log.Info("Reminder scheduler stopped")
}

// CycleSummary counts the outcomes of one sweep.
type CycleSummary struct {
	Evaluated int
	Due       int
	Sent      int
	Failed    int
}

// RunCycle evaluates every reminder against a single captured timestamp and
// dispatches the due ones. A failure on one record never stops the rest;
// an unmarked failure is retried naturally on the next cycle because
// MarkNotified only runs after a confirmed send.
func (s *ReminderService) RunCycle(nowUTC time.Time) CycleSummary {
	var summary CycleSummary

	reminders, err := s.store.ListAll()
	if err != nil {
		config.Log.WithError(err).Error("Failed to list reminders, skipping cycle")
		return summary
	}

	for i := range reminders {
		reminder := &reminders[i]
		summary.Evaluated++

		if !IsDue(reminder, nowUTC) {
			continue
		}
		summary.Due++

		message := reminderTexts[rand.Intn(len(reminderTexts))]
		if err := s.sender.SendMessage(reminder.UserID, message); err != nil {
			summary.Failed++
			config.Log.WithFields(logrus.Fields{
				"userId": reminder.UserID,
			}).WithError(err).Error("Reminder dispatch failed, will retry next cycle")
			s.logDelivery(reminder.UserID, message, "failed", err)
			continue
		}

		if err := s.store.MarkNotified(reminder.UserID, nowUTC); err != nil {
			if errors.Is(err, ErrNotFound) {
				config.Log.WithFields(logrus.Fields{
					"userId": reminder.UserID,
				}).Warn("Reminder disappeared before mark-notified, skipping")
			} else {
				config.Log.WithFields(logrus.Fields{
					"userId": reminder.UserID,
				}).WithError(err).Error("Failed to record notification time")
			}
		}

		summary.Sent++
		s.logDelivery(reminder.UserID, message, "sent", nil)
	}

	if summary.Due > 0 {
		config.Log.WithFields(logrus.Fields{
			"evaluated": summary.Evaluated,
			"due":       summary.Due,
			"sent":      summary.Sent,
			"failed":    summary.Failed,
		}).Info("Reminder cycle completed")
	}
	return summary
}

// logDelivery appends an audit row for a dispatch attempt.
func (s *ReminderService) logDelivery(userID int64, message, status string, sendErr error) {
	if s.db == nil {
		return
	}
	entry := models.NotificationLog{
		UserID:  userID,
		Message: message,
		Status:  status,
		SentAt:  time.Now().UTC(),
	}
	if sendErr != nil {
		entry.ErrorMessage = sendErr.Error()
	}
	if err := s.db.Create(&entry).Error; err != nil {
		config.Log.WithError(err).Error("Failed to write notification log")
	}
}
