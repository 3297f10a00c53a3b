package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeToMonthStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"mid_month", time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"first_day", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"last_instant", time.Date(2024, 12, 31, 23, 59, 59, 999, time.UTC), time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
		{"leap_day", time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC), time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{"offset_zone_crosses_month", time.Date(2024, 4, 1, 2, 0, 0, 0, time.FixedZone("PHT", 8*3600)), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(NormalizeToMonthStart(tt.in)), "got %v", NormalizeToMonthStart(tt.in))
		})
	}
}

func TestNormalizeToMonthStart_Idempotent(t *testing.T) {
	once := NormalizeToMonthStart(time.Date(2023, 7, 19, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, once, NormalizeToMonthStart(once))
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestParse(t *testing.T) {
	valid := map[string]time.Time{
		"2024-03-15":           time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		"2024-03-15T10:30":     time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		"2024-03-15T10:30:05":  time.Date(2024, 3, 15, 10, 30, 5, 0, time.UTC),
		"2024-03-15 10:30:05":  time.Date(2024, 3, 15, 10, 30, 5, 0, time.UTC),
		"2024-03-15T10:30:05Z": time.Date(2024, 3, 15, 10, 30, 5, 0, time.UTC),
		" 2024-03-15 ":         time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range valid {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%q: got %v want %v", in, got, want)
	}

	for _, in := range []string{"", "yesterday", "2024-13-01", "15/03/2024"} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}

func TestParseMonth(t *testing.T) {
	got, err := ParseMonth("2024-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseMonth("2024-03-20")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseMonth("March")
	assert.Error(t, err)
}

func TestDaysUntil(t *testing.T) {
	today := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, DaysUntil(today, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 3, DaysUntil(today, time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, -1, DaysUntil(today, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)))
}
