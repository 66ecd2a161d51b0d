// services/due_check.go
package services

import (
	"time"

	"lifebalance-backend/models"
	"lifebalance-backend/utils"
)

// IsDue reports whether a reminder notification should fire at nowUTC.
//
// The check works in the user's local calendar: the window for a day opens at
// TimeOfDay local time, and the gap since the last send is measured in local
// calendar days rather than elapsed hours. That keeps DST transitions from
// double-firing or skipping a day and caps delivery at one send per local day.
// A reminder with an unloadable timezone or malformed time is never due; the
// sweep logs it and moves on.
func IsDue(r *models.Reminder, nowUTC time.Time) bool {
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return false
	}
	hour, minute, err := utils.ParseTimeOfDay(r.TimeOfDay)
	if err != nil {
		return false
	}

	localNow := nowUTC.In(loc)
	scheduled := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), hour, minute, 0, 0, loc)
	if localNow.Before(scheduled) {
		// Today's window has not opened yet.
		return false
	}

	if r.LastNotifiedAt == nil {
		return true
	}
	return utils.DaysBetweenIn(*r.LastNotifiedAt, nowUTC, loc) >= r.FrequencyDays
}
