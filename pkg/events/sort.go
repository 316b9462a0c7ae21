package events

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/soonur/soonur-desktop/pkg/models"
)

// SortMode selects the ordering of the filtered list.
type SortMode string

const (
	SortDateAsc  SortMode = "date_asc"
	SortDateDesc SortMode = "date_desc"
	SortNameAsc  SortMode = "name_asc"
	SortNameDesc SortMode = "name_desc"
)

// Name sorting collates in Turkish so that İ/ı, Ş, Ç and friends order the
// way the UI locale expects, not by byte value.
var turkish = collate.New(language.Turkish)

// Sort orders the list in place according to the mode. Unknown modes leave
// the order untouched.
func Sort(list []models.UnifiedEvent, mode SortMode) {
	switch mode {
	case SortDateAsc:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].TargetDate.Before(list[j].TargetDate)
		})
	case SortDateDesc:
		sort.SliceStable(list, func(i, j int) bool {
			return list[j].TargetDate.Before(list[i].TargetDate)
		})
	case SortNameAsc:
		sort.SliceStable(list, func(i, j int) bool {
			return turkish.CompareString(list[i].Title, list[j].Title) < 0
		})
	case SortNameDesc:
		sort.SliceStable(list, func(i, j int) bool {
			return turkish.CompareString(list[j].Title, list[i].Title) < 0
		})
	}
}
