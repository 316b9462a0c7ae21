// Package export writes countdown events out as an iCalendar file, so
// targets can live in a regular calendar application too.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"

	"github.com/soonur/soonur-desktop/pkg/models"
)

const productID = "-//soonur//soonur-desktop//TR"

// WriteICS encodes the events as a VCALENDAR stream. Each event becomes a
// zero-length VEVENT at its target date; the category label rides along as
// CATEGORIES so the provenance survives the export.
func WriteICS(w io.Writer, list []models.UnifiedEvent) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, productID)
	cal.Props.SetText(ical.PropVersion, "2.0")

	stamp := time.Now().UTC()
	for _, e := range list {
		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, e.ID+"@soonur")
		event.Props.SetText(ical.PropSummary, e.Title)
		event.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
		event.Props.SetDateTime(ical.PropDateTimeStart, e.TargetDate)
		event.Props.SetText(ical.PropCategories, e.CategoryLabel)
		if e.Notes != "" {
			event.Props.SetText(ical.PropDescription, e.Notes)
		}
		cal.Children = append(cal.Children, event.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}
	return nil
}
