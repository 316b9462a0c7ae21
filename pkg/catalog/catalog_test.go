package catalog

import (
	"testing"
	"time"

	"github.com/soonur/soonur-desktop/pkg/models"
)

func TestLoadDataset(t *testing.T) {
	categories, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(categories))
	}

	slugs := map[string]bool{}
	ids := map[string]bool{}
	for _, cat := range categories {
		if cat.Slug == "" || cat.Title == "" {
			t.Fatalf("category missing metadata: %+v", cat)
		}
		slugs[cat.Slug] = true
		for _, e := range cat.Events {
			if ids[e.ID] {
				t.Fatalf("duplicate event id %q", e.ID)
			}
			ids[e.ID] = true
			if e.TargetDate.IsZero() {
				t.Fatalf("event %q has no target date", e.ID)
			}
			if !e.Type.Valid() {
				t.Fatalf("event %q has invalid type %q", e.ID, e.Type)
			}
		}
	}
	for _, slug := range []string{"exams", "holidays", "special"} {
		if !slugs[slug] {
			t.Fatalf("missing category %q", slug)
		}
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	categories, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	byID := map[string]models.Event{}
	for _, cat := range categories {
		for _, e := range cat.Events {
			byID[e.ID] = e
		}
	}

	// dgs-2026 carries no color in the dataset; it gets the exam type color.
	dgs, ok := byID["dgs-2026"]
	if !ok {
		t.Fatal("dgs-2026 missing")
	}
	if dgs.Color != models.Types[models.TypeExam].Color {
		t.Fatalf("default color not applied: %q", dgs.Color)
	}

	for id, e := range byID {
		if e.Color == "" {
			t.Fatalf("event %q has empty color after defaults", id)
		}
		if e.Priority == 0 {
			t.Fatalf("event %q has zero priority after defaults", id)
		}
	}
}

func TestFeaturedPrefersNearestTopPriority(t *testing.T) {
	categories := []models.Category{
		{
			Slug: "exams", Title: "Sınavlar",
			Events: []models.Event{
				{ID: "low-soon", Title: "A", TargetDate: time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC), Priority: 3, Type: models.TypeExam},
				{ID: "top-later", Title: "B", TargetDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), Priority: 1, Type: models.TypeExam},
				{ID: "top-soonest", Title: "C", TargetDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), Priority: 1, Type: models.TypeExam},
				{ID: "top-past", Title: "D", TargetDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), Priority: 1, Type: models.TypeExam},
			},
		},
	}

	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	featured, ok := Featured(categories, now)
	if !ok {
		t.Fatal("expected a featured event")
	}
	if featured.ID != "top-soonest" {
		t.Fatalf("got %q, want top-soonest", featured.ID)
	}

	// Without any priority-1 events left, the nearest upcoming one wins.
	now = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	if _, ok := Featured(categories, now); ok {
		t.Fatal("everything elapsed, expected ok=false")
	}

	categories[0].Events = categories[0].Events[:1]
	now = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	featured, ok = Featured(categories, now)
	if !ok || featured.ID != "low-soon" {
		t.Fatalf("fallback to non-priority event failed: %+v ok=%v", featured, ok)
	}
}
