// Package dates holds the calendar helpers shared by budgets, expenses and
// extra money. All values are normalized to UTC.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// MonthLayout is the wire format of a budget month filter, e.g. "2024-03".
const MonthLayout = "2006-01"

// DateLayout is the wire format of a calendar date, e.g. "2024-03-15".
const DateLayout = "2006-01-02"

// layouts accepted for date and timestamp request fields, most specific first.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	DateLayout,
}

// NormalizeToMonthStart returns midnight UTC on the first day of t's month.
func NormalizeToMonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthRange returns the half-open interval [start, end) covering t's month.
func MonthRange(t time.Time) (time.Time, time.Time) {
	start := NormalizeToMonthStart(t)
	return start, start.AddDate(0, 1, 0)
}

// Parse accepts an RFC 3339 timestamp, an HTML datetime-local value or a
// plain YYYY-MM-DD date.
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// ParseMonth accepts "YYYY-MM" or anything Parse accepts and returns the
// normalized month start.
func ParseMonth(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(MonthLayout, value); err == nil {
		return t, nil
	}
	t, err := Parse(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q", value)
	}
	return NormalizeToMonthStart(t), nil
}

// DaysUntil returns the number of whole calendar days from today until due.
// Negative values mean due is in the past.
func DaysUntil(today, due time.Time) int {
	return int(StartOfDay(due).Sub(StartOfDay(today)).Hours() / 24)
}
