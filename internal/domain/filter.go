package domain

import (
	"net/url"
	"strings"
)

// FilterField names one constraint of a Filter. The values double as the
// query parameter names understood by the backend.
type FilterField string

const (
	FilterSearch   FilterField = "search"
	FilterCategory FilterField = "category"
	FilterPriority FilterField = "priority"
	FilterStatus   FilterField = "status"
)

var filterFields = []FilterField{FilterSearch, FilterCategory, FilterPriority, FilterStatus}

// Filter holds the list constraints. An empty field means "no constraint";
// there is no way to express "constrain to the empty string".
type Filter struct {
	Search   string
	Category Category
	Priority Priority
	Status   Status
}

// With returns a copy of f with one field replaced. A blank value removes
// the constraint rather than setting it to the empty string.
func (f Filter) With(field FilterField, value string) Filter {
	trimmed := strings.TrimSpace(value)
	switch field {
	case FilterSearch:
		if trimmed == "" {
			f.Search = ""
		} else {
			f.Search = value
		}
	case FilterCategory:
		f.Category = Category(trimmed)
	case FilterPriority:
		f.Priority = Priority(trimmed)
	case FilterStatus:
		f.Status = Status(trimmed)
	}
	return f
}

// Get returns the raw value of a field, "" when unset.
func (f Filter) Get(field FilterField) string {
	switch field {
	case FilterSearch:
		return f.Search
	case FilterCategory:
		return string(f.Category)
	case FilterPriority:
		return string(f.Priority)
	case FilterStatus:
		return string(f.Status)
	}
	return ""
}

// IsEmpty reports whether no constraint is set.
func (f Filter) IsEmpty() bool {
	return f == Filter{}
}

// Query encodes exactly the set fields as query parameters.
func (f Filter) Query() url.Values {
	values := url.Values{}
	for _, field := range filterFields {
		if v := f.Get(field); v != "" {
			values.Set(string(field), v)
		}
	}
	return values
}

// Describe renders the active constraints as "field:value" pairs for headers.
func (f Filter) Describe() string {
	var parts []string
	for _, field := range filterFields {
		if v := f.Get(field); v != "" {
			parts = append(parts, string(field)+":"+v)
		}
	}
	return strings.Join(parts, " ")
}
