package main

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"github.com/soonur/soonur-desktop/pkg/countdown"
	"github.com/soonur/soonur-desktop/pkg/events"
	"github.com/soonur/soonur-desktop/pkg/export"
	"github.com/soonur/soonur-desktop/pkg/models"
)

func (s *Soonur) setupSystemTray() {
	desk, ok := s.app.(desktop.App)
	if !ok {
		return
	}

	menuItems := []*fyne.MenuItem{}

	upcoming := s.upcomingEvents(5)
	if len(upcoming) > 0 {
		header := fyne.NewMenuItem("Yaklaşanlar:", nil)
		header.Disabled = true
		menuItems = append(menuItems, header)

		for _, e := range upcoming {
			days := countdown.DaysRemaining(e.TargetDate, time.Now())
			item := fyne.NewMenuItem(fmt.Sprintf("  %s - %s (%d gün)",
				e.TargetDate.Format("02.01"), truncateString(e.Title, 35), days), nil)
			item.Disabled = true
			menuItems = append(menuItems, item)
		}

		menuItems = append(menuItems, fyne.NewMenuItemSeparator())
	}

	menuItems = append(menuItems,
		fyne.NewMenuItem("Etkinlikler", func() {
			s.showMainWindow()
		}),
		fyne.NewMenuItem("Yeni Geri Sayım", func() {
			s.showMainWindow()
			showCountdownForm(s, s.mainWindow.window, nil, s.mainWindow.resetAndRefresh)
		}),
		fyne.NewMenuItem("Takvimi Dışa Aktar", func() {
			s.showMainWindow()
			s.exportCalendar(s.mainWindow.window)
		}),
		fyne.NewMenuItem("Ayarlar", func() {
			s.showMainWindow()
			s.showSettingsDialog(s.mainWindow.window)
		}),
	)

	menuItems = append(menuItems, fyne.NewMenuItemSeparator())
	menuItems = append(menuItems, fyne.NewMenuItem("Çıkış", func() {
		s.quit()
	}))

	desk.SetSystemTrayMenu(fyne.NewMenu("Soonur", menuItems...))
	desk.SetSystemTrayIcon(theme.HistoryIcon())
}

// upcomingEvents returns the next N future events across both sources,
// soonest first.
func (s *Soonur) upcomingEvents(limit int) []models.UnifiedEvent {
	now := time.Now()
	list := events.Unify(s.categories, s.store.Events())
	list = events.Filter(list, events.Criteria{}, now)
	events.Sort(list, events.SortDateAsc)

	upcoming := make([]models.UnifiedEvent, 0, limit)
	for _, e := range list {
		if !e.TargetDate.After(now) {
			continue
		}
		upcoming = append(upcoming, e)
		if len(upcoming) >= limit {
			break
		}
	}
	return upcoming
}

// exportCalendar writes the full unified event list to an .ics file picked
// by the user.
func (s *Soonur) exportCalendar(parent fyne.Window) {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, parent)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		list := events.Unify(s.categories, s.store.Events())
		events.Sort(list, events.SortDateAsc)
		if err := export.WriteICS(writer, list); err != nil {
			log.Printf("Calendar export failed: %v", err)
			dialog.ShowError(err, parent)
			return
		}
		log.Printf("Exported %d events to %s", len(list), writer.URI())
	}, parent)
}

// truncateString truncates a string to maxLen characters, adding "..." if needed
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
