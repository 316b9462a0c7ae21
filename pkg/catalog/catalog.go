// Package catalog supplies the static, read-only event dataset. It is
// loaded once from the embedded YAML file and constant thereafter; nothing
// in the application mutates it.
package catalog

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/soonur/soonur-desktop/pkg/models"
)

//go:embed events.yaml
var eventsYAML []byte

type dataset struct {
	Categories []models.Category `yaml:"categories"`
}

// Load parses the embedded dataset and applies defaults: events without a
// color get their type color (or the app default), and priority defaults
// to 3 when unset.
func Load() ([]models.Category, error) {
	var data dataset
	if err := yaml.Unmarshal(eventsYAML, &data); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}

	for ci := range data.Categories {
		cat := &data.Categories[ci]
		if cat.Slug == "" {
			return nil, fmt.Errorf("catalog category %q has no slug", cat.ID)
		}
		for ei := range cat.Events {
			e := &cat.Events[ei]
			if e.ID == "" || e.Title == "" || e.TargetDate.IsZero() {
				return nil, fmt.Errorf("catalog event %q in %q is incomplete", e.ID, cat.Slug)
			}
			if !e.Type.Valid() {
				return nil, fmt.Errorf("catalog event %q has unknown type %q", e.ID, e.Type)
			}
			if e.Color == "" {
				if info, ok := models.Types[e.Type]; ok {
					e.Color = info.Color
				} else {
					e.Color = models.DefaultColor
				}
			}
			if e.Priority == 0 {
				e.Priority = 3
			}
		}
	}

	return data.Categories, nil
}

// Featured picks the hero event: the nearest upcoming priority-1 event, or
// the nearest upcoming event of any priority when no priority-1 event is
// left, ok=false when everything has elapsed.
func Featured(categories []models.Category, now time.Time) (models.Event, bool) {
	var best models.Event
	var found, foundTop bool

	for _, cat := range categories {
		for _, e := range cat.Events {
			if !e.TargetDate.After(now) {
				continue
			}
			top := e.Priority == 1
			switch {
			case !found,
				top && !foundTop,
				top == foundTop && e.TargetDate.Before(best.TargetDate):
				best = e
				found = true
				foundTop = foundTop || top
			}
		}
	}

	return best, found
}
