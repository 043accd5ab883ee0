package types

import "fmt"

// Category represents the category of a hazard
type Category string

const (
	CategoryFinancial Category = "sho:Financial"
	CategoryPrivacy   Category = "sho:Privacy"
	CategorySafety    Category = "sho:Safety"
)

// AllCategories returns all valid hazard categories
func AllCategories() []Category {
	return []Category{
		CategoryFinancial,
		CategoryPrivacy,
		CategorySafety,
	}
}

// IsValid checks if the category is valid
func (x Category) IsValid() bool {
	switch x {
	case CategoryFinancial,
		CategoryPrivacy,
		CategorySafety:
		return true
	default:
		return false
	}
}

// String returns the string representation of the category
func (x Category) String() string {
	return string(x)
}

// ParseCategory parses a string into a Category
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid hazard category: %s", s)
	}
	return c, nil
}
