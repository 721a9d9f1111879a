package model

import "time"

// Recognized category presets. Category stays free-form text; these are the
// labels offered as quick-select buttons.
const (
	CategoryFormula    = "분유"
	CategoryBreastMilk = "모유"
	CategorySolids     = "이유식"
	CategorySnack      = "간식"
	CategoryWater      = "물"
)

// Presets lists the quick-select categories in keyboard order.
var Presets = []string{
	CategoryFormula,
	CategoryBreastMilk,
	CategorySolids,
	CategorySnack,
	CategoryWater,
}

// CategoryIcon returns the emoji for a category, with a generic fallback for
// unrecognized labels.
func CategoryIcon(category string) string {
	switch category {
	case CategoryFormula:
		return "🍼"
	case CategoryBreastMilk:
		return "🤱"
	case CategorySolids:
		return "🍚"
	case CategorySnack:
		return "🍪"
	case CategoryWater:
		return "💧"
	default:
		return "🍽️"
	}
}

// AmountUnit returns the unit suffix for a category. Solids and snacks are
// weighed in grams, everything else is measured in milliliters.
func AmountUnit(category string) string {
	switch category {
	case CategorySolids, CategorySnack:
		return "g"
	default:
		return "ml"
	}
}

// FeedingRecord is one logged feeding event. Records are created through the
// log flow and removed through delete; they are never edited in place.
type FeedingRecord struct {
	ID         uint `gorm:"primaryKey"`
	UserID     uint `gorm:"index"`
	Category   string
	Amount     int
	OccurredAt time.Time `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
