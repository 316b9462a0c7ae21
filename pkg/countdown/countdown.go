// Package countdown computes remaining-time breakdowns and drives the
// once-per-second refresh of displayed countdowns.
package countdown

import "time"

// Remaining is the calendar-aware decomposition of the time left until a
// target: whole years, then whole months inside the remaining year, then
// whole days inside the remaining month, then the clock remainder. It is a
// transient projection, recomputed on every tick and never persisted.
type Remaining struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Until decomposes the delta between now and target. ok is false when the
// target is not strictly in the future; target == now counts as elapsed,
// not as a zeroed duration.
func Until(target, now time.Time) (Remaining, bool) {
	if !target.After(now) {
		return Remaining{}, false
	}

	var r Remaining

	// Calendar units first: count whole boundaries crossed, so variable
	// month lengths and leap years are respected.
	cursor := now
	for {
		next := cursor.AddDate(1, 0, 0)
		if next.After(target) {
			break
		}
		cursor = next
		r.Years++
	}
	for {
		next := cursor.AddDate(0, 1, 0)
		if next.After(target) {
			break
		}
		cursor = next
		r.Months++
	}
	for {
		next := cursor.AddDate(0, 0, 1)
		if next.After(target) {
			break
		}
		cursor = next
		r.Days++
	}

	rest := target.Sub(cursor)
	r.Hours = int(rest / time.Hour)
	rest -= time.Duration(r.Hours) * time.Hour
	r.Minutes = int(rest / time.Minute)
	rest -= time.Duration(r.Minutes) * time.Minute
	r.Seconds = int(rest / time.Second)

	return r, true
}

// DaysRemaining returns the calendar-day difference between target and now:
// the number of midnight boundaries between them, negative when the target
// day is already behind. Used for badges and the hide-far-past rule
// independently of the full breakdown.
func DaysRemaining(target, now time.Time) int {
	ty, tm, td := target.Date()
	ny, nm, nd := now.Date()
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	n := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(n) / (24 * time.Hour))
}
