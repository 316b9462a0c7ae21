package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/soonur/soonur-desktop/pkg/events"
)

// Settings holds application preferences.
type Settings struct {
	AutoStart    bool
	ChimeEnabled bool
	PageSize     int
	DefaultSort  string
}

func loadSettings(app fyne.App) *Settings {
	prefs := app.Preferences()

	return &Settings{
		AutoStart:    prefs.BoolWithFallback("auto_start", false),
		ChimeEnabled: prefs.BoolWithFallback("chime_enabled", true),
		PageSize:     prefs.IntWithFallback("page_size", 12),
		DefaultSort:  prefs.StringWithFallback("default_sort", string(events.SortDateAsc)),
	}
}

func saveSettings(app fyne.App, settings *Settings) {
	prefs := app.Preferences()

	prefs.SetBool("auto_start", settings.AutoStart)
	prefs.SetBool("chime_enabled", settings.ChimeEnabled)
	prefs.SetInt("page_size", settings.PageSize)
	prefs.SetString("default_sort", settings.DefaultSort)
}

func (s *Soonur) showSettingsDialog(parent fyne.Window) {
	autoStartCheck := widget.NewCheck("Başlangıçta çalıştır", nil)
	autoStartCheck.SetChecked(s.settings.AutoStart)
	chimeCheck := widget.NewCheck("Süre dolunca ses çal", nil)
	chimeCheck.SetChecked(s.settings.ChimeEnabled)

	items := []*widget.FormItem{
		widget.NewFormItem("", autoStartCheck),
		widget.NewFormItem("", chimeCheck),
	}

	dialog.ShowForm("Ayarlar", "Kaydet", "Vazgeç", items, func(confirmed bool) {
		if !confirmed {
			return
		}

		s.settings.AutoStart = autoStartCheck.Checked
		s.settings.ChimeEnabled = chimeCheck.Checked
		saveSettings(s.app, s.settings)

		if err := setupAutostart(s.settings.AutoStart); err != nil {
			dialog.ShowError(err, parent)
		}
	}, parent)
}
