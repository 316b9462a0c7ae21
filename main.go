package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/soonur/soonur-desktop/pkg/catalog"
	"github.com/soonur/soonur-desktop/pkg/models"
	"github.com/soonur/soonur-desktop/pkg/store"
)

type Soonur struct {
	app        fyne.App
	settings   *Settings
	categories []models.Category
	store      *store.Store
	mainWindow *MainWindow
}

func main() {
	s := &Soonur{
		app: app.NewWithID("com.soonur.desktop"),
	}

	if err := s.initialize(); err != nil {
		log.Fatal(err)
	}

	s.run()
}

func (s *Soonur) initialize() error {
	categories, err := catalog.Load()
	if err != nil {
		return err
	}
	s.categories = categories

	s.settings = loadSettings(s.app)

	// Sync autostart state with settings on startup
	if err := setupAutostart(s.settings.AutoStart); err != nil {
		log.Printf("Warning: failed to setup autostart: %v", err)
	}

	s.store = store.New(store.PreferencesBackend{Prefs: s.app.Preferences()})
	loaded := s.store.Load()
	log.Printf("Loaded %d custom countdowns", len(loaded))

	s.setupSystemTray()
	s.showMainWindow()

	return nil
}

func (s *Soonur) run() {
	s.app.Run()
}

func (s *Soonur) showMainWindow() {
	if s.mainWindow != nil {
		s.mainWindow.window.RequestFocus()
		s.mainWindow.window.Show()
		return
	}

	mw := NewMainWindow(s)
	s.mainWindow = mw
	mw.window.SetOnClosed(func() {
		mw.stopTickers()
		if s.mainWindow == mw {
			s.mainWindow = nil
		}
	})
	mw.Show()
}

func (s *Soonur) quit() {
	if s.mainWindow != nil {
		s.mainWindow.stopTickers()
	}
	s.app.Quit()
}
