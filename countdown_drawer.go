package main

import (
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/soonur/soonur-desktop/pkg/models"
)

// Color swatches offered in the form, first one is the default.
var formColors = []string{"#3b82f6", "#ef4444", "#f59e0b", "#a855f7", "#6b7280"}

// Event types in stable form order.
var formTypes = []models.EventType{
	models.TypeExam,
	models.TypeApplicationStart,
	models.TypeApplicationEnd,
	models.TypeResult,
	models.TypeHoliday,
}

// showCountdownForm opens the create/edit form. With edit == nil a new
// countdown is created; otherwise the form is prefilled and saves as a
// partial update. Validation happens here, before the store is called: the
// store trusts its callers on business rules.
func showCountdownForm(s *Soonur, parent fyne.Window, edit *models.CustomEvent, onSaved func()) {
	titleEntry := widget.NewEntry()
	titleEntry.SetPlaceHolder("Örn: KPSS 2026")

	dateEntry := widget.NewEntry()
	dateEntry.SetPlaceHolder("2026-06-14")
	timeEntry := widget.NewEntry()
	timeEntry.SetPlaceHolder("09:00")

	typeLabels := make([]string, len(formTypes))
	typeByLabel := map[string]models.EventType{}
	for i, t := range formTypes {
		typeLabels[i] = t.Label()
		typeByLabel[t.Label()] = t
	}
	typeSelect := widget.NewSelect(typeLabels, nil)
	typeSelect.SetSelected(models.TypeExam.Label())

	colorSelect := widget.NewSelect(formColors, nil)
	colorSelect.SetSelected(formColors[0])

	notesEntry := widget.NewMultiLineEntry()
	notesEntry.SetPlaceHolder("Notlar (isteğe bağlı)")

	formTitle := "Yeni Geri Sayım"
	if edit != nil {
		formTitle = "Geri Sayımı Düzenle"
		titleEntry.SetText(edit.Title)
		dateEntry.SetText(edit.TargetDate.Format("2006-01-02"))
		timeEntry.SetText(edit.TargetDate.Format("15:04"))
		typeSelect.SetSelected(edit.Type.Label())
		if edit.Color != "" {
			colorSelect.SetSelected(edit.Color)
		}
		notesEntry.SetText(edit.Notes)
	}

	items := []*widget.FormItem{
		widget.NewFormItem("Etkinlik Adı", titleEntry),
		widget.NewFormItem("Tarih", dateEntry),
		widget.NewFormItem("Saat", timeEntry),
		widget.NewFormItem("Tür", typeSelect),
		widget.NewFormItem("Renk", colorSelect),
		widget.NewFormItem("Notlar", notesEntry),
	}

	dialog.ShowForm(formTitle, "Kaydet", "Vazgeç", items, func(confirmed bool) {
		if !confirmed {
			return
		}

		title := strings.TrimSpace(titleEntry.Text)
		if title == "" {
			dialog.ShowError(fmt.Errorf("etkinlik adı boş olamaz"), parent)
			return
		}

		target, err := parseFormDate(dateEntry.Text, timeEntry.Text)
		if err != nil {
			dialog.ShowError(err, parent)
			return
		}

		eventType := typeByLabel[typeSelect.Selected]
		notes := strings.TrimSpace(notesEntry.Text)
		color := colorSelect.Selected

		if edit != nil {
			s.store.Update(edit.ID, models.EventUpdate{
				Title:      &title,
				TargetDate: &target,
				Color:      &color,
				Type:       &eventType,
				Notes:      &notes,
			})
		} else {
			s.store.Add(models.NewEventFields{
				Title:      title,
				TargetDate: target,
				Color:      color,
				Priority:   1,
				Type:       eventType,
				Notes:      notes,
			})
		}

		if onSaved != nil {
			onSaved()
		}
	}, parent)
}

func parseFormDate(dateText, timeText string) (time.Time, error) {
	dateText = strings.TrimSpace(dateText)
	timeText = strings.TrimSpace(timeText)
	if dateText == "" {
		return time.Time{}, fmt.Errorf("tarih gerekli")
	}
	if timeText == "" {
		timeText = "00:00"
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", dateText+" "+timeText, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("tarih biçimi geçersiz (YYYY-AA-GG ve SS:DD): %w", err)
	}
	return t, nil
}
