package models

import "time"

// Category tag applied to every custom event in the unified view.
const (
	CustomCategoryLabel = "Kişisel"
	CustomCategorySlug  = "custom"
)

// UnifiedEvent is a catalog or custom event viewed through one shape.
// The variant is resolved once at the unification boundary via IsCustom;
// downstream code never probes optional fields to guess provenance.
type UnifiedEvent struct {
	ID            string
	Title         string
	TargetDate    time.Time
	Color         string
	Priority      int
	Type          EventType
	CategoryLabel string
	CategorySlug  string
	IsCustom      bool
	Notes         string // empty for catalog events
}

// DisplayColor returns the event color, falling back to the default.
func (e UnifiedEvent) DisplayColor() string {
	if e.Color == "" {
		return DefaultColor
	}
	return e.Color
}
