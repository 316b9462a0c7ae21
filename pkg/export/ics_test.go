package export

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"

	"github.com/soonur/soonur-desktop/pkg/models"
)

func TestWriteICSRoundTrip(t *testing.T) {
	list := []models.UnifiedEvent{
		{
			ID:            "yks-2026",
			Title:         "YKS 2026",
			TargetDate:    time.Date(2026, 6, 20, 10, 0, 0, 0, time.UTC),
			CategoryLabel: "Sınavlar",
		},
		{
			ID:            "custom-1",
			Title:         "Çalışma Planı",
			TargetDate:    time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
			CategoryLabel: "Kişisel",
			IsCustom:      true,
			Notes:         "son tekrar haftası",
		},
	}

	var buf bytes.Buffer
	if err := WriteICS(&buf, list); err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(buf.String(), "BEGIN:VCALENDAR") {
		t.Fatalf("output does not start a calendar: %q", buf.String()[:40])
	}

	decoder := ical.NewDecoder(&buf)
	cal, err := decoder.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := decoder.Decode(); err != io.EOF {
		t.Fatalf("expected a single calendar, got %v", err)
	}

	type decoded struct {
		summary, categories, description string
		start                            time.Time
	}
	byUID := map[string]decoded{}
	for _, comp := range cal.Children {
		if comp.Name != ical.CompEvent {
			continue
		}
		var d decoded
		uid := comp.Props.Get(ical.PropUID).Value
		d.summary = comp.Props.Get(ical.PropSummary).Value
		d.categories = comp.Props.Get(ical.PropCategories).Value
		if prop := comp.Props.Get(ical.PropDescription); prop != nil {
			d.description = prop.Value
		}
		start, err := comp.Props.Get(ical.PropDateTimeStart).DateTime(time.UTC)
		if err != nil {
			t.Fatal(err)
		}
		d.start = start
		byUID[uid] = d
	}

	if len(byUID) != 2 {
		t.Fatalf("expected 2 events, got %d", len(byUID))
	}

	yks := byUID["yks-2026@soonur"]
	if yks.summary != "YKS 2026" || yks.categories != "Sınavlar" {
		t.Fatalf("catalog event fields wrong: %+v", yks)
	}
	if !yks.start.Equal(list[0].TargetDate) {
		t.Fatalf("start time off: %v vs %v", yks.start, list[0].TargetDate)
	}

	custom := byUID["custom-1@soonur"]
	if custom.description != "son tekrar haftası" {
		t.Fatalf("notes not exported: %+v", custom)
	}
}

func TestWriteICSEmptyList(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteICS(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "PRODID") {
		t.Fatal("calendar header missing")
	}
}
