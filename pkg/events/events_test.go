package events

import (
	"testing"
	"time"

	"github.com/soonur/soonur-desktop/pkg/models"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return testNow.AddDate(0, 0, offset)
}

func testCategories() []models.Category {
	return []models.Category{
		{
			ID: "cat-exams", Title: "Sınavlar", Slug: "exams",
			Events: []models.Event{
				{ID: "e1", Title: "YKS 2026", TargetDate: day(13), Priority: 1, Type: models.TypeExam},
				{ID: "e2", Title: "ALES 2026", TargetDate: day(90), Priority: 2, Type: models.TypeExam},
				{ID: "e3", Title: "Son Başvuru", TargetDate: day(5), Priority: 1, Type: models.TypeApplicationEnd},
				{ID: "e4", Title: "Eski Sınav", TargetDate: day(-10), Priority: 3, Type: models.TypeExam},
			},
		},
		{
			ID: "cat-holidays", Title: "Tatiller", Slug: "holidays",
			Events: []models.Event{
				{ID: "h1", Title: "Kurban Bayramı", TargetDate: day(20), Priority: 2, Type: models.TypeHoliday},
			},
		},
	}
}

func testCustom() []models.CustomEvent {
	return []models.CustomEvent{
		{ID: "custom-1", Title: "Çalışma Planı", TargetDate: day(2), Priority: 1,
			Type: models.TypeExam, Notes: "son tekrar", IsCustom: true},
	}
}

func TestUnifyTagsProvenance(t *testing.T) {
	list := Unify(testCategories(), testCustom())

	if len(list) != 6 {
		t.Fatalf("expected 6 unified events, got %d", len(list))
	}

	byID := map[string]models.UnifiedEvent{}
	for _, e := range list {
		byID[e.ID] = e
	}

	e1 := byID["e1"]
	if e1.IsCustom || e1.CategoryLabel != "Sınavlar" || e1.CategorySlug != "exams" {
		t.Fatalf("catalog provenance wrong: %+v", e1)
	}

	c1 := byID["custom-1"]
	if !c1.IsCustom || c1.CategoryLabel != models.CustomCategoryLabel ||
		c1.CategorySlug != models.CustomCategorySlug || c1.Notes != "son tekrar" {
		t.Fatalf("custom provenance wrong: %+v", c1)
	}
}

func TestUnifyDoesNotMutateSources(t *testing.T) {
	cats := testCategories()
	custom := testCustom()
	Unify(cats, custom)

	if cats[0].Events[0].Title != "YKS 2026" || custom[0].Title != "Çalışma Planı" {
		t.Fatal("source records mutated")
	}
}

func TestFilterComposition(t *testing.T) {
	list := Unify(testCategories(), testCustom())

	tests := []struct {
		name     string
		criteria Criteria
		wantIDs  []string
	}{
		{
			name:     "no criteria hides only far past",
			criteria: Criteria{},
			wantIDs:  []string{"e1", "e2", "e3", "h1", "custom-1"},
		},
		{
			name:     "query is case insensitive substring",
			criteria: Criteria{Query: "yks"},
			wantIDs:  []string{"e1"},
		},
		{
			name:     "category slug",
			criteria: Criteria{CategorySlug: "holidays"},
			wantIDs:  []string{"h1"},
		},
		{
			name:     "type equality",
			criteria: Criteria{Type: models.TypeApplicationEnd},
			wantIDs:  []string{"e3"},
		},
		{
			name:     "quick upcoming exams within 30 days",
			criteria: Criteria{Quick: QuickUpcoming},
			wantIDs:  []string{"e1", "custom-1"},
		},
		{
			name:     "quick composes with category",
			criteria: Criteria{Quick: QuickUpcoming, CategorySlug: "exams"},
			wantIDs:  []string{"e1"},
		},
		{
			name:     "quick applications",
			criteria: Criteria{Quick: QuickApplications},
			wantIDs:  []string{"e3"},
		},
		{
			name:     "query plus type",
			criteria: Criteria{Query: "2026", Type: models.TypeExam},
			wantIDs:  []string{"e1", "e2"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(list, tc.criteria, testNow)
			ids := map[string]bool{}
			for _, e := range got {
				ids[e.ID] = true
			}
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("got %d events %v, want %v", len(got), ids, tc.wantIDs)
			}
			for _, id := range tc.wantIDs {
				if !ids[id] {
					t.Fatalf("missing %q in %v", id, ids)
				}
			}
		})
	}
}

func TestFilterFarPastBoundary(t *testing.T) {
	list := []models.UnifiedEvent{
		{ID: "today", TargetDate: testNow.Add(-time.Hour)},
		{ID: "yesterday", TargetDate: day(-1)},
		{ID: "older", TargetDate: day(-2)},
	}

	got := Filter(list, Criteria{}, testNow)
	ids := map[string]bool{}
	for _, e := range got {
		ids[e.ID] = true
	}
	// Just-elapsed events stay visible down to one day back.
	if !ids["today"] || !ids["yesterday"] || ids["older"] {
		t.Fatalf("far-past boundary wrong: %v", ids)
	}
}

func TestSortModes(t *testing.T) {
	base := []models.UnifiedEvent{
		{ID: "a", Title: "Üniversite", TargetDate: day(10)},
		{ID: "b", Title: "Çanakkale Gezisi", TargetDate: day(30)},
		{ID: "c", Title: "Deneme Sınavı", TargetDate: day(1)},
	}

	clone := func() []models.UnifiedEvent {
		return append([]models.UnifiedEvent(nil), base...)
	}

	tests := []struct {
		mode  SortMode
		order []string
	}{
		{SortDateAsc, []string{"c", "a", "b"}},
		{SortDateDesc, []string{"b", "a", "c"}},
		// Turkish collation: Ç sorts before D, Ü after U but before V.
		{SortNameAsc, []string{"b", "c", "a"}},
		{SortNameDesc, []string{"a", "c", "b"}},
	}

	for _, tc := range tests {
		t.Run(string(tc.mode), func(t *testing.T) {
			list := clone()
			Sort(list, tc.mode)
			for i, id := range tc.order {
				if list[i].ID != id {
					t.Fatalf("position %d: got %q, want %q (list %v)", i, list[i].ID, id, list)
				}
			}
		})
	}
}

func TestStatusBuckets(t *testing.T) {
	tests := []struct {
		offsetDays int
		want       Status
	}{
		{-3, StatusPast},
		{0, StatusImminent},
		{7, StatusImminent},
		{8, StatusSoon},
		{30, StatusSoon},
		{31, StatusStandard},
		{90, StatusStandard},
		{91, StatusLongTerm},
	}

	for _, tc := range tests {
		e := models.UnifiedEvent{TargetDate: day(tc.offsetDays)}
		if got := StatusOf(e, testNow); got != tc.want {
			t.Fatalf("offset %d: got %q, want %q", tc.offsetDays, got, tc.want)
		}
	}
}

func TestPagerWindowing(t *testing.T) {
	list := make([]models.UnifiedEvent, 30)
	pager := NewPager(12)

	if got := pager.Visible(list); len(got) != 12 {
		t.Fatalf("first window: %d", len(got))
	}
	if !pager.HasMore(list) {
		t.Fatal("expected more pages")
	}

	pager.Grow()
	if got := pager.Visible(list); len(got) != 24 {
		t.Fatalf("second window: %d", len(got))
	}

	pager.Grow()
	if got := pager.Visible(list); len(got) != 30 {
		t.Fatalf("final window: %d", len(got))
	}
	if pager.HasMore(list) {
		t.Fatal("no more pages expected")
	}

	pager.Reset()
	if got := pager.Visible(list); len(got) != 12 {
		t.Fatalf("window after reset: %d", len(got))
	}
}
