package events

import "github.com/soonur/soonur-desktop/pkg/models"

// Pager windows an already filtered and sorted list: show the first N
// entries, grow N on demand. It never re-fetches; callers hand it the
// current list on every render.
type Pager struct {
	pageSize int
	count    int
}

// NewPager creates a pager showing pageSize entries initially.
func NewPager(pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = 12
	}
	return &Pager{pageSize: pageSize, count: pageSize}
}

// Visible returns the currently windowed slice of the list.
func (p *Pager) Visible(list []models.UnifiedEvent) []models.UnifiedEvent {
	if len(list) <= p.count {
		return list
	}
	return list[:p.count]
}

// HasMore reports whether the list extends past the current window.
func (p *Pager) HasMore(list []models.UnifiedEvent) bool {
	return len(list) > p.count
}

// Grow extends the window by one page.
func (p *Pager) Grow() {
	p.count += p.pageSize
}

// Reset shrinks the window back to the first page, used when the filter
// criteria change.
func (p *Pager) Reset() {
	p.count = p.pageSize
}
