package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Jun 15, 2025", FormatDate(date(2025, time.June, 15)))
	assert.Equal(t, "Invalid Date", FormatDate(time.Time{}))
}

func TestFormatDateRange(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected string
	}{
		{"same month", date(2025, time.June, 15), date(2025, time.June, 16), "Jun 15-16, 2025"},
		{"same year different month", date(2025, time.April, 20), date(2025, time.May, 21), "Apr 20 - May 21, 2025"},
		{"different years", date(2024, time.December, 30), date(2025, time.January, 2), "Dec 30, 2024 - Jan 2, 2025"},
		{"both invalid", time.Time{}, time.Time{}, "Invalid Date Range"},
		{"invalid start", time.Time{}, date(2025, time.June, 16), "Invalid Date - Jun 16, 2025"},
		{"invalid end", date(2025, time.June, 15), time.Time{}, "Jun 15, 2025 - Invalid Date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDateRange(tt.start, tt.end))
		})
	}
}

func TestFormatDateTime(t *testing.T) {
	assert.Equal(t, "Jun 15, 2025, 9:30 AM",
		FormatDateTime(time.Date(2025, time.June, 15, 9, 30, 0, 0, time.UTC)))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{"just now", now.Add(-30 * time.Second), "just now"},
		{"minutes ago", now.Add(-5 * time.Minute), "5 minutes ago"},
		{"one hour ago", now.Add(-1 * time.Hour), "1 hour ago"},
		{"days ago", now.Add(-72 * time.Hour), "3 days ago"},
		{"months ago", now.Add(-65 * 24 * time.Hour), "2 months ago"},
		{"years ago", now.Add(-2 * 365 * 24 * time.Hour), "2 years ago"},
		{"future seconds", now.Add(30 * time.Second), "in a few seconds"},
		{"future hours", now.Add(2 * time.Hour), "in 2 hours"},
		{"invalid", time.Time{}, "Invalid Date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RelativeTime(tt.date, now))
		})
	}
}
