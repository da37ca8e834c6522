// Package ui implements the interactive colour picker window with fyne.
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/colormine/internal/config"
	"github.com/jmylchreest/colormine/internal/history"
	"github.com/jmylchreest/colormine/internal/picker"
	"github.com/jmylchreest/colormine/internal/sampler"
	"github.com/jmylchreest/colormine/internal/wheel"
)

// AppID is the fyne application identifier; it scopes the preferences store.
const AppID = "io.github.jmylchreest.colormine"

// sidePanelWidth is the space reserved next to the wheel in the initial window.
const sidePanelWidth = 340

// Run opens the picker window and blocks until it is closed.
func Run(cfg config.Config, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	a := app.NewWithID(AppID)
	w := a.NewWindow("colormine")

	v := NewWindowView(a, w, cfg, logger)
	w.SetContent(v.Content())
	w.Resize(fyne.NewSize(float32(cfg.Size+sidePanelWidth), float32(max(cfg.Size, 480))))
	w.ShowAndRun()
	return nil
}

// NewWindowView wires the controller, history and sampler for an application
// window. History lives in the app preferences unless a history file is
// configured, in which case it is shared with the command-line tools.
func NewWindowView(a fyne.App, w fyne.Window, cfg config.Config, logger hclog.Logger) *View {
	var store history.Store = NewPreferencesStore(a.Preferences())
	if cfg.HistoryFile != "" {
		store = history.NewFileStore(cfg.HistoryFile)
	}
	h := history.Load(store, logger.Named("history"))

	screen := sampler.NewScreen(logger.Named("sampler"))
	screen.Tool = cfg.Sampler

	c := picker.New(picker.Options{
		Clipboard: w.Clipboard(),
		Sampler:   screen,
		History:   h,
		Logger:    logger.Named("picker"),
		Mode:      cfg.Center,
		Notify: func(msg string) {
			fyne.Do(func() { dialog.ShowInformation("Pick from screen", msg, w) })
		},
	})

	return NewView(w, c, h, wheel.NewCache(logger.Named("wheel")), logger)
}
