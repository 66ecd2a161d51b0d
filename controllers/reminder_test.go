package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lifebalance-backend/models"
	"lifebalance-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReminderStore backs the handler tests without a database.
type fakeReminderStore struct {
	reminders map[int64]*models.Reminder
}

func newFakeReminderStore() *fakeReminderStore {
	return &fakeReminderStore{reminders: make(map[int64]*models.Reminder)}
}

func (s *fakeReminderStore) Get(userID int64) (*models.Reminder, error) {
	r, ok := s.reminders[userID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return r, nil
}

func (s *fakeReminderStore) Upsert(userID int64, frequencyDays int, timeOfDay, timezone string) (*models.Reminder, error) {
	if frequencyDays < 1 || frequencyDays > 7 {
		return nil, fmt.Errorf("%w: frequency out of range", services.ErrValidation)
	}
	r := &models.Reminder{
		UserID:        userID,
		FrequencyDays: frequencyDays,
		TimeOfDay:     timeOfDay,
		Timezone:      timezone,
	}
	if prev, ok := s.reminders[userID]; ok {
		r.LastNotifiedAt = prev.LastNotifiedAt
	}
	s.reminders[userID] = r
	return r, nil
}

func (s *fakeReminderStore) ListAll() ([]models.Reminder, error) { return nil, nil }

func (s *fakeReminderStore) MarkNotified(userID int64, at time.Time) error { return nil }

// reminderTestRouter wires the reminder routes behind a stub auth layer that
// injects authUserID the way AuthMiddleware does.
func reminderTestRouter(store services.ReminderStore, authUserID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	rc := &ReminderController{Store: store}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", authUserID)
		c.Next()
	})
	r.GET("/api/reminder/:userId", rc.GetReminder)
	r.POST("/api/reminder", rc.SetReminder)
	return r
}

func TestGetReminder_NoneConfigured(t *testing.T) {
	router := reminderTestRouter(newFakeReminderStore(), 7)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reminder/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestSetReminder_ThenGet(t *testing.T) {
	store := newFakeReminderStore()
	router := reminderTestRouter(store, 7)

	body, _ := json.Marshal(gin.H{
		"userId":    "7",
		"frequency": 3,
		"time":      "09:00",
		"timezone":  "Europe/Moscow",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reminder", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/reminder/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got models.Reminder
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 3, got.FrequencyDays)
	assert.Equal(t, "09:00", got.TimeOfDay)
	assert.Equal(t, "Europe/Moscow", got.Timezone)
}

func TestSetReminder_ValidationFailure(t *testing.T) {
	router := reminderTestRouter(newFakeReminderStore(), 7)

	body, _ := json.Marshal(gin.H{
		"userId":    "7",
		"frequency": 9,
		"time":      "09:00",
		"timezone":  "Europe/Moscow",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reminder", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReminderEndpoints_ForeignUserForbidden(t *testing.T) {
	router := reminderTestRouter(newFakeReminderStore(), 7)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reminder/8", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	body, _ := json.Marshal(gin.H{
		"userId":    "8",
		"frequency": 1,
		"time":      "09:00",
		"timezone":  "Europe/Moscow",
	})
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/reminder", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
