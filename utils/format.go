package utils

import (
	"fmt"
	"time"
)

// FormatDate renders a date as e.g. "Jun 15, 2025".
func FormatDate(date time.Time) string {
	if date.IsZero() {
		return "Invalid Date"
	}
	return date.Format("Jan 2, 2006")
}

// FormatDateRange collapses a start/end pair into the shortest unambiguous
// form: "Jun 15-16, 2025" within one month, "Apr 20 - May 21, 2025" within
// one year, and two full dates otherwise.
func FormatDateRange(startDate, endDate time.Time) string {
	startValid := !startDate.IsZero()
	endValid := !endDate.IsZero()

	if !startValid && !endValid {
		return "Invalid Date Range"
	}
	if !startValid {
		return fmt.Sprintf("Invalid Date - %s", FormatDate(endDate))
	}
	if !endValid {
		return fmt.Sprintf("%s - Invalid Date", FormatDate(startDate))
	}

	if startDate.Year() == endDate.Year() {
		if startDate.Month() == endDate.Month() {
			return fmt.Sprintf("%s %d-%d, %d",
				startDate.Format("Jan"), startDate.Day(), endDate.Day(), endDate.Year())
		}
		return fmt.Sprintf("%s - %s, %d",
			startDate.Format("Jan 2"), endDate.Format("Jan 2"), endDate.Year())
	}

	return fmt.Sprintf("%s - %s", FormatDate(startDate), FormatDate(endDate))
}

// FormatDateTime renders a timestamp as e.g. "Jun 15, 2025, 9:30 AM".
func FormatDateTime(date time.Time) string {
	if date.IsZero() {
		return "Invalid Date"
	}
	return date.Format("Jan 2, 2006, 3:04 PM")
}

// RelativeTime describes how far a timestamp lies from now ("3 days ago",
// "in 2 hours", "just now").
func RelativeTime(date time.Time, now time.Time) string {
	if date.IsZero() {
		return "Invalid Date"
	}
	diff := now.Sub(date)
	future := diff < 0
	if future {
		diff = -diff
	}

	var phrase string
	switch {
	case diff < time.Minute:
		if future {
			return "in a few seconds"
		}
		return "just now"
	case diff < time.Hour:
		phrase = plural(int(diff.Minutes()), "minute")
	case diff < 24*time.Hour:
		phrase = plural(int(diff.Hours()), "hour")
	case diff < 30*24*time.Hour:
		phrase = plural(int(diff.Hours()/24), "day")
	case diff < 365*24*time.Hour:
		phrase = plural(int(diff.Hours()/24/30), "month")
	default:
		phrase = plural(int(diff.Hours()/24/365), "year")
	}
	if future {
		return fmt.Sprintf("in %s", phrase)
	}
	return fmt.Sprintf("%s ago", phrase)
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
