// utils/dates.go
package utils

import "time"

func BeginningOfDayIn(t time.Time, loc *time.Location) time.Time {
	year, month, day := t.In(loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// DaysBetweenIn returns the difference in calendar days between the local
// dates of start and end in loc. The dates are re-anchored in UTC before
// subtracting so that DST transitions (23h or 25h local days) cannot skew
// the count.
func DaysBetweenIn(start, end time.Time, loc *time.Location) int {
	sy, sm, sd := start.In(loc).Date()
	ey, em, ed := end.In(loc).Date()
	s := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	e := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}

// LocalDateString formats the local calendar date of t in loc as YYYY-MM-DD.
func LocalDateString(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}
