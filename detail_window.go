package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/soonur/soonur-desktop/pkg/countdown"
	"github.com/soonur/soonur-desktop/pkg/models"
)

// DetailWindow shows one event with the large six-unit countdown. It owns a
// single ticker; switching the shown event stops the old ticker before a
// new one is armed, so no stale callback can fire for the previous target.
type DetailWindow struct {
	app    *Soonur
	window fyne.Window

	titleLabel    *widget.Label
	categoryLabel *widget.Label
	dateLabel     *widget.Label
	notesLabel    *widget.Label
	unitLabels    [6]*widget.Label

	ticker *countdown.Ticker
}

var unitNames = [6]string{"YIL", "AY", "GÜN", "SAAT", "DAKİKA", "SANİYE"}

func NewDetailWindow(s *Soonur) *DetailWindow {
	dw := &DetailWindow{
		app:           s,
		window:        s.app.NewWindow("Soonur"),
		titleLabel:    widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		categoryLabel: widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{}),
		dateLabel:     widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{}),
		notesLabel:    widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
	}

	units := make([]fyne.CanvasObject, 0, len(unitNames))
	for i, name := range unitNames {
		dw.unitLabels[i] = widget.NewLabelWithStyle("00", fyne.TextAlignCenter, fyne.TextStyle{Bold: true, Monospace: true})
		units = append(units, container.NewVBox(
			dw.unitLabels[i],
			widget.NewLabelWithStyle(name, fyne.TextAlignCenter, fyne.TextStyle{}),
		))
	}

	dw.window.Resize(fyne.NewSize(520, 320))
	dw.window.SetContent(container.NewVBox(
		dw.categoryLabel,
		dw.titleLabel,
		dw.dateLabel,
		container.NewGridWithColumns(len(units), units...),
		dw.notesLabel,
	))
	return dw
}

// SetEvent retargets the window. The previous ticker, if any, is stopped
// before the new one starts.
func (dw *DetailWindow) SetEvent(e models.UnifiedEvent) {
	dw.stop()

	dw.titleLabel.SetText(fmt.Sprintf("%s'e Kalan Süre", e.Title))
	dw.categoryLabel.SetText(e.CategoryLabel)
	dw.dateLabel.SetText(formatDate(e.TargetDate))
	dw.notesLabel.SetText(e.Notes)

	dw.ticker = countdown.Start(e.TargetDate, func(r countdown.Remaining, past bool) {
		fyne.Do(func() {
			if past {
				for _, label := range dw.unitLabels {
					label.SetText("00")
				}
				dw.dateLabel.SetText("Bu etkinlik geçmiş")
				return
			}
			values := [6]int{r.Years, r.Months, r.Days, r.Hours, r.Minutes, r.Seconds}
			for i, v := range values {
				dw.unitLabels[i].SetText(fmt.Sprintf("%02d", v))
			}
		})
	})
}

func (dw *DetailWindow) stop() {
	if dw.ticker != nil {
		dw.ticker.Stop()
		dw.ticker = nil
	}
}
