package vocab

import "fmt"

// Category groups verbs into practice zones.
type Category string

const (
	CategoryGeneral       Category = "general"
	CategoryCommunication Category = "communication"
	CategoryEmotions      Category = "emotions"
	CategoryMovement      Category = "movement"
	CategoryDailyLife     Category = "daily-life"
	CategoryShopping      Category = "shopping"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryGeneral,
		CategoryCommunication,
		CategoryEmotions,
		CategoryMovement,
		CategoryDailyLife,
		CategoryShopping,
	}
}

// DisplayName returns the label shown on the dashboard.
func (c Category) DisplayName() string {
	switch c {
	case CategoryGeneral:
		return "General Actions"
	case CategoryCommunication:
		return "Communication"
	case CategoryEmotions:
		return "Thoughts & Emotions"
	case CategoryMovement:
		return "Movement"
	case CategoryDailyLife:
		return "Daily Life"
	case CategoryShopping:
		return "Shopping"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory resolves a CLI slug to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}
