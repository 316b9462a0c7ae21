package events

import (
	"strings"
	"time"

	"github.com/soonur/soonur-desktop/pkg/countdown"
	"github.com/soonur/soonur-desktop/pkg/models"
)

// QuickFilter is one of the preset filter chips. Presets are mutually
// exclusive with each other but compose with the query, category and type
// filters.
type QuickFilter string

const (
	QuickAll          QuickFilter = "all"
	QuickUpcoming     QuickFilter = "upcoming"    // exams within the next 30 days
	QuickApplications QuickFilter = "application" // application windows
	QuickExams        QuickFilter = "exams"       // every exam
)

// Criteria describes one filter pass. Zero values mean "no restriction"
// for Query, CategorySlug and Type; the quick filter defaults to QuickAll.
type Criteria struct {
	Query        string
	CategorySlug string
	Type         models.EventType
	Quick        QuickFilter
}

// Filter applies the criteria to the unified list, AND-ing every active
// predicate, then drops events more than one day in the past. Events that
// elapsed earlier today stay visible; the -1 day boundary is a product
// decision carried over as is.
func Filter(list []models.UnifiedEvent, c Criteria, now time.Time) []models.UnifiedEvent {
	query := strings.ToLower(strings.TrimSpace(c.Query))

	result := make([]models.UnifiedEvent, 0, len(list))
	for _, e := range list {
		if query != "" && !strings.Contains(strings.ToLower(e.Title), query) {
			continue
		}
		if c.CategorySlug != "" && e.CategorySlug != c.CategorySlug {
			continue
		}
		if c.Type != "" && e.Type != c.Type {
			continue
		}
		if !matchQuick(e, c.Quick, now) {
			continue
		}
		if countdown.DaysRemaining(e.TargetDate, now) < -1 {
			continue
		}
		result = append(result, e)
	}
	return result
}

func matchQuick(e models.UnifiedEvent, q QuickFilter, now time.Time) bool {
	switch q {
	case QuickUpcoming:
		days := countdown.DaysRemaining(e.TargetDate, now)
		return e.Type == models.TypeExam && days >= 0 && days <= 30
	case QuickApplications:
		return e.Type == models.TypeApplicationStart || e.Type == models.TypeApplicationEnd
	case QuickExams:
		return e.Type == models.TypeExam
	default:
		return true
	}
}

// Status buckets an event by how soon it is, for the list badges.
type Status string

const (
	StatusPast     Status = "GEÇMİŞ"
	StatusImminent Status = "ÇOK YAKINDA" // within a week
	StatusSoon     Status = "YAKLAŞIYOR"  // within a month
	StatusStandard Status = "STANDART"    // within three months
	StatusLongTerm Status = "UZUN DÖNEM"
)

// StatusOf returns the badge bucket for an event at the given time.
func StatusOf(e models.UnifiedEvent, now time.Time) Status {
	days := countdown.DaysRemaining(e.TargetDate, now)
	switch {
	case days < 0:
		return StatusPast
	case days <= 7:
		return StatusImminent
	case days <= 30:
		return StatusSoon
	case days <= 90:
		return StatusStandard
	default:
		return StatusLongTerm
	}
}
