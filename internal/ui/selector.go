package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// selector is a single-choice control cycled with ←/→. An empty value stands
// for "no choice" and is labelled allLabel when the selector allows it.
type selector struct {
	label   string
	values  []string
	labels  []string
	index   int
	focused bool
}

const allLabel = "All"

func newSelector(label string, values []string, labelFn func(string) string, withAll bool) selector {
	s := selector{label: label}
	if withAll {
		s.values = append(s.values, "")
		s.labels = append(s.labels, allLabel)
	}
	for _, v := range values {
		s.values = append(s.values, v)
		s.labels = append(s.labels, labelFn(v))
	}
	return s
}

// Value returns the selected value ("" for All).
func (s selector) Value() string {
	if len(s.values) == 0 {
		return ""
	}
	return s.values[s.index]
}

// SetValue selects v. Unknown values leave the selection unchanged and
// return false.
func (s *selector) SetValue(v string) bool {
	for i, candidate := range s.values {
		if candidate == v {
			s.index = i
			return true
		}
	}
	return false
}

// Reset selects the first option.
func (s *selector) Reset() {
	s.index = 0
}

// Next moves to the following option, wrapping at the end.
func (s *selector) Next() {
	if len(s.values) > 0 {
		s.index = (s.index + 1) % len(s.values)
	}
}

// Prev moves to the preceding option, wrapping at the start.
func (s *selector) Prev() {
	if len(s.values) > 0 {
		s.index = (s.index - 1 + len(s.values)) % len(s.values)
	}
}

func (s selector) View() string {
	value := ""
	if len(s.labels) > 0 {
		value = s.labels[s.index]
	}
	arrowL, arrowR := " ", " "
	if s.focused {
		arrowL, arrowR = "‹", "›"
	}
	body := arrowL + " " + styleSelectorValue(s.focused).Render(value) + " " + arrowR
	return lipgloss.JoinHorizontal(lipgloss.Left, styleFieldLabel(s.focused).Render(s.label), body)
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func titleLabel(v string) string {
	if v == "" {
		return v
	}
	words := strings.Fields(strings.ReplaceAll(v, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
