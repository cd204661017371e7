package domain

import "sort"

const (
	// BarUnitsPerCount is the bar width contributed by each ticket.
	BarUnitsPerCount = 10
	// BarMaxUnits caps breakdown bars; reached at a count of 20.
	BarMaxUnits = 200
	// BarUnitsPerCell converts width units into terminal cells.
	BarUnitsPerCell = 10
)

// Stats is an aggregate snapshot returned by the backend. It is replaced
// wholesale on every fetch.
type Stats struct {
	TotalTickets      int            `json:"total_tickets"`
	OpenTickets       int            `json:"open_tickets"`
	AvgTicketsPerDay  float64        `json:"avg_tickets_per_day"`
	PriorityBreakdown map[string]int `json:"priority_breakdown"`
	CategoryBreakdown map[string]int `json:"category_breakdown"`
}

// PriorityKeys lists exactly the keys present in the priority breakdown,
// known priorities first in urgency order.
func (s Stats) PriorityKeys() []string {
	known := make([]string, 0, len(priorityOrder))
	for _, p := range priorityOrder {
		known = append(known, string(p))
	}
	return OrderedKeys(s.PriorityBreakdown, known)
}

// CategoryKeys lists exactly the keys present in the category breakdown.
func (s Stats) CategoryKeys() []string {
	known := make([]string, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		known = append(known, string(c))
	}
	return OrderedKeys(s.CategoryBreakdown, known)
}

// OrderedKeys returns the keys of m, with keys from known first (in that
// order) and any remaining keys sorted alphabetically.
func OrderedKeys(m map[string]int, known []string) []string {
	keys := make([]string, 0, len(m))
	seen := make(map[string]bool, len(m))
	for _, k := range known {
		if _, ok := m[k]; ok {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	var rest []string
	for k := range m {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

// BarWidth returns the breakdown bar width in width units for a count.
func BarWidth(count int) int {
	if count <= 0 {
		return 0
	}
	w := count * BarUnitsPerCount
	if w > BarMaxUnits {
		return BarMaxUnits
	}
	return w
}

// BarCells converts BarWidth to terminal cells.
func BarCells(count int) int {
	return BarWidth(count) / BarUnitsPerCell
}
