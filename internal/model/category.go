// Package model defines the core domain models used throughout the application.
package model

// Category is the top-level taxonomy bucket for a collectible.
type Category string

// Known taxonomy categories. Unknown is a valid terminal state meaning
// "not yet classifiable", not an error.
const (
	CategoryMainline Category = "mainline"
	CategoryPremium  Category = "premium"
	CategoryOthers   Category = "others"
	CategoryHotRods  Category = "hot_rods"
	CategoryUnknown  Category = "unknown"
)

// ParseCategory maps a stored category string to a Category. Unrecognized
// values map to CategoryUnknown rather than failing, since registry records
// are externally owned and may carry values from newer clients.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryMainline, CategoryPremium, CategoryOthers, CategoryHotRods:
		return Category(s)
	default:
		return CategoryUnknown
	}
}

// Valid reports whether c is one of the known category values.
func (c Category) Valid() bool {
	switch c {
	case CategoryMainline, CategoryPremium, CategoryOthers, CategoryHotRods, CategoryUnknown:
		return true
	}
	return false
}
