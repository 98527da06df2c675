package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween enumerates every calendar day in [from, to] inclusive,
// capped at maxDays entries to bound request fan-out.
func DaysBetween(from, to time.Time, maxDays int) []string {
	if to.Before(from) {
		return nil
	}
	days := make([]string, 0, maxDays)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if maxDays > 0 && len(days) >= maxDays {
			break
		}
		days = append(days, FormatDate(d))
	}
	return days
}

// CalendarDate returns the YYYY-MM-DD prefix of an ISO-8601 timestamp.
func CalendarDate(iso string) string {
	if len(iso) >= len(DateLayout) {
		return iso[:len(DateLayout)]
	}
	return iso
}
