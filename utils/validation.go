// utils/validation.go
package utils

import (
	"fmt"
	"time"
)

// Reminder frequency bounds, in days.
const (
	MinFrequencyDays = 1
	MaxFrequencyDays = 7
)

// ValidateFrequency checks that a reminder frequency is within [1,7] days.
func ValidateFrequency(days int) bool {
	return days >= MinFrequencyDays && days <= MaxFrequencyDays
}

// ParseTimeOfDay parses an HH:MM civil time (24-hour clock, no seconds).
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

// ValidateTimezone checks that tz names a loadable IANA time zone.
// The empty string is rejected: it would silently mean UTC.
func ValidateTimezone(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}
