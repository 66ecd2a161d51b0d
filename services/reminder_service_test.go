package services

import (
	"errors"
	"testing"
	"time"

	"lifebalance-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore is an in-memory ReminderStore for scheduler tests.
type stubStore struct {
	reminders []models.Reminder
	listErr   error
	markErr   error
	marked    map[int64]time.Time
}

func newStubStore(reminders ...models.Reminder) *stubStore {
	return &stubStore{reminders: reminders, marked: make(map[int64]time.Time)}
}

func (s *stubStore) Get(userID int64) (*models.Reminder, error) {
	for i := range s.reminders {
		if s.reminders[i].UserID == userID {
			return &s.reminders[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *stubStore) Upsert(userID int64, frequencyDays int, timeOfDay, timezone string) (*models.Reminder, error) {
	return nil, errors.New("not used")
}

func (s *stubStore) ListAll() ([]models.Reminder, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]models.Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out, nil
}

func (s *stubStore) MarkNotified(userID int64, at time.Time) error {
	if s.markErr != nil {
		return s.markErr
	}
	for i := range s.reminders {
		if s.reminders[i].UserID == userID {
			s.reminders[i].LastNotifiedAt = &at
			s.marked[userID] = at
			return nil
		}
	}
	return ErrNotFound
}

// stubSender records sends and can fail per user.
type stubSender struct {
	sent    map[int64][]string
	failFor map[int64]error
}

func newStubSender() *stubSender {
	return &stubSender{sent: make(map[int64][]string), failFor: make(map[int64]error)}
}

func (s *stubSender) SendMessage(userID int64, text string) error {
	if err := s.failFor[userID]; err != nil {
		return err
	}
	s.sent[userID] = append(s.sent[userID], text)
	return nil
}

func testReminder(userID int64) models.Reminder {
	return models.Reminder{
		UserID:        userID,
		FrequencyDays: 1,
		TimeOfDay:     "09:00",
		Timezone:      "UTC",
	}
}

func TestRunCycle_DispatchesDueAndMarksNotified(t *testing.T) {
	store := newStubStore(testReminder(1), testReminder(2))
	sender := newStubSender()
	svc := &ReminderService{store: store, sender: sender}

	// 10:00 UTC: both windows are open, neither was ever notified.
	now := time.Date(2025, time.June, 10, 10, 0, 0, 0, time.UTC)
	summary := svc.RunCycle(now)

	assert.Equal(t, CycleSummary{Evaluated: 2, Due: 2, Sent: 2, Failed: 0}, summary)
	require.Len(t, sender.sent[1], 1)
	require.Len(t, sender.sent[2], 1)
	assert.Equal(t, now, store.marked[1])
	assert.Equal(t, now, store.marked[2])
}

func TestRunCycle_NotDueBeforeWindow(t *testing.T) {
	store := newStubStore(testReminder(1))
	sender := newStubSender()
	svc := &ReminderService{store: store, sender: sender}

	summary := svc.RunCycle(time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC))

	assert.Equal(t, CycleSummary{Evaluated: 1}, summary)
	assert.Empty(t, sender.sent)
	assert.Empty(t, store.marked)
}

func TestRunCycle_FailedSendIsRetriedNextCycle(t *testing.T) {
	store := newStubStore(testReminder(1))
	sender := newStubSender()
	sender.failFor[1] = ErrDelivery
	svc := &ReminderService{store: store, sender: sender}

	now := time.Date(2025, time.June, 10, 10, 0, 0, 0, time.UTC)
	summary := svc.RunCycle(now)

	assert.Equal(t, CycleSummary{Evaluated: 1, Due: 1, Sent: 0, Failed: 1}, summary)
	assert.Empty(t, store.marked, "a failed send must not advance last_notified_at")

	// Transport recovers one minute later; the same reminder is due again.
	delete(sender.failFor, 1)
	summary = svc.RunCycle(now.Add(time.Minute))

	assert.Equal(t, CycleSummary{Evaluated: 1, Due: 1, Sent: 1, Failed: 0}, summary)
	require.Len(t, sender.sent[1], 1)
	assert.Contains(t, store.marked, int64(1))
}

func TestRunCycle_OneFailureDoesNotStopTheBatch(t *testing.T) {
	store := newStubStore(testReminder(1), testReminder(2), testReminder(3))
	sender := newStubSender()
	sender.failFor[2] = errors.New("chat not found")
	svc := &ReminderService{store: store, sender: sender}

	summary := svc.RunCycle(time.Date(2025, time.June, 10, 10, 0, 0, 0, time.UTC))

	assert.Equal(t, CycleSummary{Evaluated: 3, Due: 3, Sent: 2, Failed: 1}, summary)
	assert.Len(t, sender.sent[1], 1)
	assert.Len(t, sender.sent[3], 1)
	assert.NotContains(t, store.marked, int64(2))
}

func TestRunCycle_ListErrorSkipsCycle(t *testing.T) {
	store := newStubStore(testReminder(1))
	store.listErr = errors.New("connection refused")
	sender := newStubSender()
	svc := &ReminderService{store: store, sender: sender}

	summary := svc.RunCycle(time.Date(2025, time.June, 10, 10, 0, 0, 0, time.UTC))

	assert.Equal(t, CycleSummary{}, summary)
	assert.Empty(t, sender.sent)
}

func TestRunCycle_VanishedReminderIsSkippedAfterSend(t *testing.T) {
	store := newStubStore(testReminder(1))
	store.markErr = ErrNotFound
	sender := newStubSender()
	svc := &ReminderService{store: store, sender: sender}

	summary := svc.RunCycle(time.Date(2025, time.June, 10, 10, 0, 0, 0, time.UTC))

	// The send happened; the missing row is logged, not fatal.
	assert.Equal(t, CycleSummary{Evaluated: 1, Due: 1, Sent: 1, Failed: 0}, summary)
	assert.Len(t, sender.sent[1], 1)
}

func TestRunCycle_SingleTimestampPerCycle(t *testing.T) {
	// One reminder whose window opens at 09:00; evaluated with a captured
	// nowUTC the send is marked with exactly that timestamp.
	store := newStubStore(testReminder(1))
	sender := newStubSender()
	svc := &ReminderService{store: store, sender: sender}

	now := time.Date(2025, time.June, 10, 9, 0, 30, 0, time.UTC)
	svc.RunCycle(now)

	assert.Equal(t, now, store.marked[1])
}
