package domain

import "strings"

// Category classifies what a ticket is about.
type Category string

const (
	CategoryUnknown   Category = ""
	CategoryBilling   Category = "billing"
	CategoryTechnical Category = "technical"
	CategoryAccount   Category = "account"
	CategoryGeneral   Category = "general"
)

// DefaultCategory is used for new tickets until the user or a suggestion changes it.
const DefaultCategory = CategoryGeneral

var categoryOrder = []Category{CategoryBilling, CategoryTechnical, CategoryAccount, CategoryGeneral}

// AllCategories returns the categories in display order.
func AllCategories() []Category {
	return append([]Category(nil), categoryOrder...)
}

// ParseCategory normalises and validates a category string.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if err := c.Validate(); err != nil {
		return CategoryUnknown, err
	}
	return c, nil
}

// Validate ensures the category is one of the supported values.
func (c Category) Validate() error {
	if c.Index() < 0 {
		return invalidCategoryError(string(c))
	}
	return nil
}

// Index returns the position of the category in display order, or -1.
func (c Category) Index() int {
	for i, candidate := range categoryOrder {
		if candidate == c {
			return i
		}
	}
	return -1
}

// Label returns the display form.
func (c Category) Label() string {
	return string(c)
}
