// Package events merges the static catalog and the user's custom countdowns
// into one list and applies the browse-page filters, sorts and paging.
package events

import (
	"github.com/soonur/soonur-desktop/pkg/models"
)

// Unify concatenates catalog and custom events into one unified sequence,
// tagging each entry with its provenance. Source records are copied, never
// mutated.
func Unify(categories []models.Category, custom []models.CustomEvent) []models.UnifiedEvent {
	var result []models.UnifiedEvent

	for _, cat := range categories {
		for _, e := range cat.Events {
			result = append(result, models.UnifiedEvent{
				ID:            e.ID,
				Title:         e.Title,
				TargetDate:    e.TargetDate,
				Color:         e.Color,
				Priority:      e.Priority,
				Type:          e.Type,
				CategoryLabel: cat.Title,
				CategorySlug:  cat.Slug,
				IsCustom:      false,
			})
		}
	}

	for _, e := range custom {
		result = append(result, models.UnifiedEvent{
			ID:            e.ID,
			Title:         e.Title,
			TargetDate:    e.TargetDate,
			Color:         e.Color,
			Priority:      e.Priority,
			Type:          e.Type,
			CategoryLabel: models.CustomCategoryLabel,
			CategorySlug:  models.CustomCategorySlug,
			IsCustom:      true,
			Notes:         e.Notes,
		})
	}

	return result
}
