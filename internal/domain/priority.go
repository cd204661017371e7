package domain

import "strings"

// Priority expresses how urgently a ticket needs handling.
type Priority string

const (
	PriorityUnknown  Priority = ""
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// DefaultPriority is used for new tickets until the user or a suggestion changes it.
const DefaultPriority = PriorityMedium

var priorityOrder = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// AllPriorities returns priorities from least to most urgent.
func AllPriorities() []Priority {
	return append([]Priority(nil), priorityOrder...)
}

// ParsePriority normalises and validates a priority string.
func ParsePriority(raw string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	if err := p.Validate(); err != nil {
		return PriorityUnknown, err
	}
	return p, nil
}

// Validate ensures the priority is one of the supported values.
func (p Priority) Validate() error {
	if p.Index() < 0 {
		return invalidPriorityError(string(p))
	}
	return nil
}

// Index returns the urgency rank (0 = low), or -1 for unknown values.
func (p Priority) Index() int {
	for i, candidate := range priorityOrder {
		if candidate == p {
			return i
		}
	}
	return -1
}

// Label returns the display form.
func (p Priority) Label() string {
	return string(p)
}
