package domain

import "strings"

// Status represents the lifecycle state of a ticket.
type Status string

const (
	StatusUnknown    Status = ""
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

// statusOrder is the canonical display order used by selectors and pickers.
var statusOrder = []Status{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}

// AllStatuses returns the statuses in canonical display order.
func AllStatuses() []Status {
	return append([]Status(nil), statusOrder...)
}

// ParseStatus normalises and validates an incoming status string.
func ParseStatus(raw string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(raw)))
	if status == StatusUnknown {
		return StatusUnknown, invalidStatusError("blank")
	}
	if err := status.Validate(); err != nil {
		return StatusUnknown, err
	}
	return status, nil
}

// Validate ensures the status is part of the supported workflow.
func (s Status) Validate() error {
	if s.Index() < 0 {
		return invalidStatusError(string(s))
	}
	return nil
}

// Index returns the position of the status in canonical order, or -1.
func (s Status) Index() int {
	for i, candidate := range statusOrder {
		if candidate == s {
			return i
		}
	}
	return -1
}

// Label returns the human-readable form, e.g. "in progress".
func (s Status) Label() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

// IsOpen reports whether the ticket still needs attention.
func (s Status) IsOpen() bool {
	return s == StatusOpen
}
