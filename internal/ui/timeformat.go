package ui

import (
	"fmt"
	"time"
)

var timeNow = time.Now

// createdAtLayout is the absolute format shown on cards, in local time.
const createdAtLayout = "Jan 2, 2006 3:04 PM"

// FormatCreatedAt renders a backend timestamp as local absolute time followed
// by a compact relative age, e.g. "Mar 1, 2025 10:15 AM (3d ago)".
func FormatCreatedAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	abs := t.In(timeNow().Location()).Format(createdAtLayout)
	if rel := FormatRelativeTime(t); rel != "" {
		return abs + " (" + rel + ")"
	}
	return abs
}

// FormatRelativeTime returns a short age such as "now", "5m ago", "3h ago"
// or "12d ago". Future timestamps and ages of 100 days or more yield "".
func FormatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	now := timeNow()
	if t.After(now) {
		return ""
	}

	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff/time.Minute))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff/time.Hour))
	case diff < 100*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff/(24*time.Hour)))
	default:
		return ""
	}
}
