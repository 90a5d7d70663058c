package model

import "time"

// DiscretionaryCategory is the reserved name of the fallback category.
// The categorizer falls back to it whenever no category clears the
// scoring threshold, so any category set used for live categorization
// should contain it.
const DiscretionaryCategory = "Discretionary"

// Category represents a spending category with its matching keywords.
type Category struct {
	CreatedAt time.Time
	Name      string
	Icon      string
	Color     string
	Keywords  []string
	ID        int
	IsActive  bool
}

// IsDiscretionary reports whether this is the reserved fallback category.
func (c *Category) IsDiscretionary() bool {
	return c.Name == DiscretionaryCategory
}

// FindDiscretionary returns the fallback category from a set, or nil if
// the set does not contain one.
func FindDiscretionary(categories []Category) *Category {
	for i := range categories {
		if categories[i].IsDiscretionary() {
			return &categories[i]
		}
	}
	return nil
}
