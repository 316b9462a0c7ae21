package main

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/soonur/soonur-desktop/pkg/audio"
	"github.com/soonur/soonur-desktop/pkg/catalog"
	"github.com/soonur/soonur-desktop/pkg/countdown"
	"github.com/soonur/soonur-desktop/pkg/events"
	"github.com/soonur/soonur-desktop/pkg/models"
)

// MainWindow is the event browser: search, filters, sorted card list with
// live countdowns, and show-more paging.
type MainWindow struct {
	app    *Soonur
	window fyne.Window

	criteria events.Criteria
	sortMode events.SortMode
	pager    *events.Pager

	cards      []*eventCard
	listBox    *fyne.Container
	countLabel *widget.Label
	moreButton *widget.Button

	detail *DetailWindow
}

// eventCard is one rendered row. Every card owns its own ticker, stopped
// whenever the list is rebuilt or the window closes.
type eventCard struct {
	ticker *countdown.Ticker
}

var sortOptions = []struct {
	label string
	mode  events.SortMode
}{
	{"Tarih (En Yakın)", events.SortDateAsc},
	{"Tarih (En Uzak)", events.SortDateDesc},
	{"Alfabetik (A-Z)", events.SortNameAsc},
	{"Alfabetik (Z-A)", events.SortNameDesc},
}

var quickOptions = []struct {
	label  string
	filter events.QuickFilter
}{
	{"Tümü", events.QuickAll},
	{"Yaklaşan Sınavlar", events.QuickUpcoming},
	{"Başvuru Tarihleri", events.QuickApplications},
	{"Sınavlar", events.QuickExams},
}

func NewMainWindow(s *Soonur) *MainWindow {
	mw := &MainWindow{
		app:      s,
		window:   s.app.NewWindow("Soonur"),
		sortMode: events.SortMode(s.settings.DefaultSort),
		pager:    events.NewPager(s.settings.PageSize),
	}

	mw.window.Resize(fyne.NewSize(760, 620))
	mw.window.SetContent(mw.buildContent())
	mw.refresh()
	return mw
}

func (mw *MainWindow) Show() {
	mw.window.Show()
}

func (mw *MainWindow) buildContent() fyne.CanvasObject {
	// List widgets first: the select callbacks below fire during initial
	// SetSelected and already trigger a refresh.
	mw.countLabel = widget.NewLabel("")
	mw.listBox = container.NewVBox()
	mw.moreButton = widget.NewButton("Daha Fazla Göster", func() {
		mw.pager.Grow()
		mw.refresh()
	})

	search := widget.NewEntry()
	search.SetPlaceHolder("Etkinlik, sınav veya kategori ara...")
	search.OnChanged = func(q string) {
		mw.criteria.Query = q
		mw.resetAndRefresh()
	}

	categoryOptions := []string{"Kategori: Tümü"}
	slugByLabel := map[string]string{}
	for _, cat := range mw.app.categories {
		categoryOptions = append(categoryOptions, cat.Title)
		slugByLabel[cat.Title] = cat.Slug
	}
	categoryOptions = append(categoryOptions, models.CustomCategoryLabel)
	slugByLabel[models.CustomCategoryLabel] = models.CustomCategorySlug

	categorySelect := widget.NewSelect(categoryOptions, func(label string) {
		mw.criteria.CategorySlug = slugByLabel[label]
		mw.resetAndRefresh()
	})
	categorySelect.SetSelectedIndex(0)

	typeOptions := []string{"Tür: Tümü"}
	typeByLabel := map[string]models.EventType{}
	for _, t := range formTypes {
		typeOptions = append(typeOptions, t.Label())
		typeByLabel[t.Label()] = t
	}
	typeSelect := widget.NewSelect(typeOptions, func(label string) {
		mw.criteria.Type = typeByLabel[label]
		mw.resetAndRefresh()
	})
	typeSelect.SetSelectedIndex(0)

	sortLabels := make([]string, len(sortOptions))
	sortByLabel := map[string]events.SortMode{}
	selectedSort := "Tarih (En Yakın)"
	for i, opt := range sortOptions {
		sortLabels[i] = opt.label
		sortByLabel[opt.label] = opt.mode
		if opt.mode == mw.sortMode {
			selectedSort = opt.label
		}
	}
	sortSelect := widget.NewSelect(sortLabels, func(label string) {
		mw.sortMode = sortByLabel[label]
		mw.refresh()
	})
	sortSelect.SetSelected(selectedSort)

	quickLabels := make([]string, len(quickOptions))
	quickByLabel := map[string]events.QuickFilter{}
	for i, opt := range quickOptions {
		quickLabels[i] = opt.label
		quickByLabel[opt.label] = opt.filter
	}
	quickGroup := widget.NewRadioGroup(quickLabels, func(label string) {
		mw.criteria.Quick = quickByLabel[label]
		mw.resetAndRefresh()
	})
	quickGroup.Horizontal = true
	quickGroup.SetSelected("Tümü")

	createButton := widget.NewButton("Geri Sayım Oluştur", func() {
		showCountdownForm(mw.app, mw.window, nil, mw.resetAndRefresh)
	})
	featuredButton := widget.NewButton("Öne Çıkan", func() {
		event, ok := catalog.Featured(mw.app.categories, time.Now())
		if !ok {
			dialog.ShowInformation("Öne Çıkan", "Yaklaşan etkinlik bulunamadı.", mw.window)
			return
		}
		unified := events.Unify(mw.app.categories, nil)
		for _, ue := range unified {
			if ue.ID == event.ID {
				mw.showDetail(ue)
				return
			}
		}
	})

	filterBar := container.NewVBox(
		search,
		container.NewHBox(categorySelect, typeSelect, sortSelect),
		quickGroup,
		container.NewHBox(mw.countLabel, featuredButton, createButton),
	)

	list := container.NewScroll(container.NewVBox(mw.listBox, container.NewCenter(mw.moreButton)))
	return container.NewBorder(filterBar, nil, nil, nil, list)
}

func (mw *MainWindow) resetAndRefresh() {
	mw.pager.Reset()
	mw.refresh()
}

// refresh rebuilds the card list from the current criteria. All existing
// card tickers are stopped first so no stale callback outlives its row.
func (mw *MainWindow) refresh() {
	mw.stopTickers()

	now := time.Now()
	unified := events.Unify(mw.app.categories, mw.app.store.Events())
	filtered := events.Filter(unified, mw.criteria, now)
	events.Sort(filtered, mw.sortMode)
	visible := mw.pager.Visible(filtered)

	mw.listBox.RemoveAll()
	for _, e := range visible {
		card, obj := mw.newEventCard(e, now)
		mw.cards = append(mw.cards, card)
		mw.listBox.Add(obj)
	}
	if len(visible) == 0 {
		mw.listBox.Add(widget.NewLabel("Sonuç Bulunamadı. Filtreleri değiştirmeyi deneyin."))
	}
	mw.listBox.Refresh()

	mw.countLabel.SetText(fmt.Sprintf("%d Adet", len(filtered)))
	if mw.pager.HasMore(filtered) {
		mw.moreButton.Show()
	} else {
		mw.moreButton.Hide()
	}
}

func (mw *MainWindow) newEventCard(e models.UnifiedEvent, now time.Time) (*eventCard, fyne.CanvasObject) {
	title := widget.NewLabelWithStyle(e.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	date := widget.NewLabel(formatDate(e.TargetDate))
	badge := widget.NewLabel(string(events.StatusOf(e, now)))
	remainingLabel := widget.NewLabel("")

	colorBar := canvas.NewRectangle(parseHexColor(e.DisplayColor()))
	colorBar.SetMinSize(fyne.NewSize(6, 48))

	card := &eventCard{}
	chime := mw.app.settings.ChimeEnabled
	wasFuture := e.TargetDate.After(now)
	card.ticker = countdown.Start(e.TargetDate, func(r countdown.Remaining, past bool) {
		text := formatRemaining(r, past)
		if past && wasFuture && chime {
			audio.PlayChime()
		}
		wasFuture = !past
		fyne.Do(func() {
			remainingLabel.SetText(text)
		})
	})

	buttons := []fyne.CanvasObject{
		widget.NewButton("Detaylar", func() { mw.showDetail(e) }),
	}
	if e.IsCustom {
		id := e.ID
		buttons = append(buttons,
			widget.NewButton("Düzenle", func() {
				record, ok := mw.app.store.Get(id)
				if !ok {
					return
				}
				showCountdownForm(mw.app, mw.window, &record, mw.resetAndRefresh)
			}),
			widget.NewButton("Sil", func() {
				dialog.ShowConfirm("Geri Sayımı Sil",
					fmt.Sprintf("\"%s\" silinsin mi?", e.Title),
					func(confirmed bool) {
						if !confirmed {
							return
						}
						mw.app.store.Remove(id)
						mw.resetAndRefresh()
					}, mw.window)
			}),
		)
	}

	info := container.NewVBox(
		container.NewHBox(title, badge),
		container.NewHBox(date, widget.NewLabel(e.CategoryLabel)),
		remainingLabel,
	)
	row := container.NewBorder(nil, widget.NewSeparator(), colorBar,
		container.NewHBox(buttons...), info)
	return card, row
}

func (mw *MainWindow) showDetail(e models.UnifiedEvent) {
	if mw.detail == nil {
		dw := NewDetailWindow(mw.app)
		dw.window.SetOnClosed(func() {
			dw.stop()
			if mw.detail == dw {
				mw.detail = nil
			}
		})
		mw.detail = dw
	}
	mw.detail.SetEvent(e)
	mw.detail.window.Show()
	mw.detail.window.RequestFocus()
}

// stopTickers cancels every card ticker. Must run before the card list is
// rebuilt or dropped. The detail window keeps its own ticker; it stops
// itself on close or retarget.
func (mw *MainWindow) stopTickers() {
	for _, card := range mw.cards {
		card.ticker.Stop()
	}
	mw.cards = nil
}

// formatRemaining renders a breakdown the way the cards show it, largest
// unit first, clock units always present.
func formatRemaining(r countdown.Remaining, past bool) string {
	if past {
		return "Bu etkinlik geçmiş"
	}
	text := ""
	if r.Years > 0 {
		text += fmt.Sprintf("%dYıl ", r.Years)
	}
	if r.Months > 0 {
		text += fmt.Sprintf("%dAy ", r.Months)
	}
	if r.Days > 0 {
		text += fmt.Sprintf("%dG ", r.Days)
	}
	return text + fmt.Sprintf("%02d:%02d:%02d", r.Hours, r.Minutes, r.Seconds)
}

var turkishMonths = [...]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

func formatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), turkishMonths[t.Month()-1], t.Year())
}

func parseHexColor(s string) color.Color {
	var r, g, b uint8
	if n, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil || n != 3 {
		return color.NRGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}
