package ui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/colormine/internal/colour"
	"github.com/jmylchreest/colormine/internal/export"
	"github.com/jmylchreest/colormine/internal/history"
	"github.com/jmylchreest/colormine/internal/picker"
	"github.com/jmylchreest/colormine/internal/sampler"
	"github.com/jmylchreest/colormine/internal/wheel"
)

// screenPickTimeout bounds how long an external picker may hold the screen.
const screenPickTimeout = 2 * time.Minute

// View binds a picker controller to the widgets of the main window.
type View struct {
	window     fyne.Window
	controller *picker.Controller
	history    *history.History
	palette    *colour.Palette
	logger     hclog.Logger

	// do runs UI updates on the main goroutine.
	do func(func())

	syncing    bool
	lastHex    string
	lastRecent []string

	wheel    *Wheel
	preview  *canvas.Rectangle
	hexEntry *focusEntry
	rgbEntry *focusEntry
	sliders  [3]*widget.Slider
	hsvLabel *widget.Label
	name     *widget.Label

	copyHex   *widget.Button
	copyRGB   *widget.Button
	centerBtn *widget.Button

	recent    *fyne.Container
	harmonies *fyne.Container
	swatches  *fyne.Container
	content   fyne.CanvasObject
}

// NewView builds the picker UI for window.
func NewView(window fyne.Window, c *picker.Controller, h *history.History, cache *wheel.Cache, logger hclog.Logger) *View {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	v := &View{
		window:     window,
		controller: c,
		history:    h,
		palette:    colour.NewPalette(),
		logger:     logger,
		do:         fyne.Do,
	}
	v.build(cache)
	// Snapshots can reach the main goroutine out of order (timer callbacks run
	// elsewhere), so apply whatever is current when the update runs.
	c.OnChange(func(picker.State) {
		v.do(func() { v.apply(c.State()) })
	})
	v.apply(c.State())
	return v
}

// Content returns the root canvas object.
func (v *View) Content() fyne.CanvasObject {
	return v.content
}

func (v *View) build(cache *wheel.Cache) {
	v.wheel = NewWheel(cache)
	v.wheel.OnSelect = v.controller.SetFromWheel
	v.wheel.OnRelease = v.controller.Commit

	v.preview = canvas.NewRectangle(colour.RGBToColor(colour.Red.RGB()))
	v.preview.SetMinSize(fyne.NewSize(64, 64))
	v.preview.CornerRadius = 6

	v.hexEntry = newFocusEntry("#RRGGBB", func(focused bool) {
		v.controller.SetFocus(picker.FieldHex, focused)
	})
	v.hexEntry.OnChanged = func(text string) {
		if v.syncing {
			return
		}
		_ = v.controller.SetFromHexText(text)
	}

	v.rgbEntry = newFocusEntry("R, G, B", func(focused bool) {
		v.controller.SetFocus(picker.FieldRGB, focused)
	})
	v.rgbEntry.OnChanged = func(text string) {
		if v.syncing {
			return
		}
		_ = v.controller.SetFromRGBText(text)
	}

	channels := []picker.Channel{picker.ChannelR, picker.ChannelG, picker.ChannelB}
	sliderRows := make([]fyne.CanvasObject, 0, len(channels))
	for i, ch := range channels {
		s := widget.NewSlider(0, 255)
		s.Step = 1
		s.OnChanged = func(value float64) {
			if v.syncing {
				return
			}
			v.controller.SetFromSlider(ch, int(value))
		}
		s.OnChangeEnded = func(float64) {
			v.controller.Commit()
		}
		v.sliders[i] = s
		sliderRows = append(sliderRows, container.NewBorder(nil, nil, widget.NewLabel("RGB"[i:i+1]), nil, s))
	}

	v.hsvLabel = widget.NewLabel("")
	v.name = widget.NewLabel("")

	v.copyHex = widget.NewButtonWithIcon("Copy hex", theme.ContentCopyIcon(), func() { v.controller.CopyHex() })
	v.copyRGB = widget.NewButtonWithIcon("Copy RGB", theme.ContentCopyIcon(), func() { v.controller.CopyRGB() })
	v.centerBtn = widget.NewButton("", func() { v.controller.ToggleCenterMode() })
	reset := widget.NewButtonWithIcon("Reset", theme.ViewRefreshIcon(), v.controller.Reset)
	pick := widget.NewButtonWithIcon("Pick from screen", theme.SearchIcon(), v.pickFromScreen)

	v.recent = container.NewHBox()
	v.harmonies = container.NewVBox()
	v.swatches = container.NewGridWrap(fyne.NewSize(swatchSize, swatchSize))

	inputs := container.NewVBox(
		container.NewBorder(nil, nil, v.preview, nil, container.NewVBox(v.name, v.hsvLabel)),
		widget.NewForm(
			widget.NewFormItem("Hex", v.hexEntry),
			widget.NewFormItem("RGB", v.rgbEntry),
		),
		container.NewVBox(sliderRows...),
		container.NewGridWithColumns(2, v.copyHex, v.copyRGB),
		container.NewGridWithColumns(3, v.centerBtn, reset, pick),
	)

	palette := container.NewVBox(
		widget.NewLabelWithStyle("Palette", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		v.swatches,
		container.NewHBox(
			widget.NewButtonWithIcon("Add", theme.ContentAddIcon(), v.addToPalette),
			widget.NewButtonWithIcon("Copy all", theme.ContentCopyIcon(), v.copyPalette),
			widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), v.clearPalette),
			widget.NewButtonWithIcon("Export", theme.DocumentSaveIcon(), v.exportPalette),
		),
	)

	side := container.NewVScroll(container.NewVBox(
		inputs,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Recent", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		v.recent,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Harmonies", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		v.harmonies,
		widget.NewSeparator(),
		palette,
	))
	side.SetMinSize(fyne.NewSize(320, 0))

	v.content = container.NewBorder(nil, nil, nil, side, v.wheel)
}

// apply pushes a controller snapshot into the widgets.
func (v *View) apply(s picker.State) {
	v.syncing = true
	defer func() { v.syncing = false }()

	rgb := s.RGB()
	hex := rgb.Hex()

	v.wheel.Update(s.Mode, s.Position)

	if v.hexEntry.Text != s.HexText {
		v.hexEntry.SetText(s.HexText)
	}
	if v.rgbEntry.Text != s.RGBText {
		v.rgbEntry.SetText(s.RGBText)
	}
	for i, c := range []uint8{rgb.R, rgb.G, rgb.B} {
		if v.sliders[i].Value != float64(c) {
			v.sliders[i].SetValue(float64(c))
		}
	}

	v.preview.FillColor = colour.RGBToColor(rgb)
	v.preview.Refresh()
	v.hsvLabel.SetText(fmt.Sprintf("%s  %s", s.Colour, rgb))
	name, exact := colour.NearestName(rgb)
	if !exact {
		name = "≈ " + name
	}
	v.name.SetText(name)

	v.copyHex.SetText(copyLabel("Copy hex", s.Copied == picker.CopiedHex))
	v.copyRGB.SetText(copyLabel("Copy RGB", s.Copied == picker.CopiedRGB))
	v.centerBtn.SetText("Centre: " + capitalise(s.Mode.String()))

	if hex != v.lastHex {
		v.lastHex = hex
		v.rebuildHarmonies(s.Colour)
	}
	v.rebuildRecent()
}

func copyLabel(label string, copied bool) string {
	if copied {
		return "Copied!"
	}
	return label
}

func capitalise(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (v *View) rebuildRecent() {
	entries := v.history.Entries()
	if slices.Equal(entries, v.lastRecent) {
		return
	}
	v.lastRecent = entries

	objects := make([]fyne.CanvasObject, 0, len(entries))
	for _, hex := range entries {
		objects = append(objects, NewSwatch(hex, v.selectHex))
	}
	v.recent.Objects = objects
	v.recent.Refresh()
}

func (v *View) rebuildHarmonies(base colour.HSV) {
	rows := make([]fyne.CanvasObject, 0, 4)
	for _, h := range colour.Harmonies(base) {
		swatches := make([]fyne.CanvasObject, 0, len(h.Colours))
		for _, c := range h.Colours {
			hsv := c
			swatches = append(swatches, NewSwatch(c.Hex(), func(string) {
				v.controller.SetFromHSV(hsv)
			}))
		}
		label := widget.NewLabel(h.Name)
		rows = append(rows, container.NewBorder(nil, nil, label, nil, container.NewHBox(swatches...)))
	}
	v.harmonies.Objects = rows
	v.harmonies.Refresh()
}

func (v *View) selectHex(hex string) {
	if err := v.controller.SetFromHex(hex); err != nil {
		v.logger.Warn("ignoring invalid history entry", "colour", hex, "error", err)
	}
}

func (v *View) pickFromScreen() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), screenPickTimeout)
		defer cancel()
		err := v.controller.PickFromScreen(ctx)
		if err != nil && !errors.Is(err, sampler.ErrUnsupported) {
			v.do(func() { dialog.ShowError(err, v.window) })
		}
	}()
}

func (v *View) addToPalette() {
	hex := v.controller.State().Hex()
	if _, err := v.palette.Add(hex); err != nil {
		v.logger.Warn("failed to add colour to palette", "colour", hex, "error", err)
		return
	}
	v.rebuildPalette()
}

func (v *View) removeFromPalette(hex string) {
	v.palette.Remove(hex)
	v.rebuildPalette()
}

func (v *View) clearPalette() {
	v.palette.Clear()
	v.rebuildPalette()
}

func (v *View) copyPalette() {
	if v.palette.Len() == 0 {
		return
	}
	v.window.Clipboard().SetContent(v.palette.Joined())
}

func (v *View) rebuildPalette() {
	objects := make([]fyne.CanvasObject, 0, v.palette.Len())
	for _, hex := range v.palette.All() {
		objects = append(objects, NewSwatch(hex, v.removeFromPalette))
	}
	v.swatches.Objects = objects
	v.swatches.Refresh()
}

// exportPalette asks for a destination and writes the palette in the format
// matching the chosen file extension.
func (v *View) exportPalette() {
	if v.palette.Len() == 0 {
		dialog.ShowInformation("Export palette", "Add some colours to the palette first.", v.window)
		return
	}

	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, v.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		f, ok := export.FormatFromPath(writer.URI().Name())
		if !ok {
			f = export.FormatCSS
		}
		if err := export.Write(writer, v.palette, f); err != nil {
			dialog.ShowError(err, v.window)
			return
		}
		v.logger.Info("palette exported", "path", writer.URI().Path(), "format", string(f), "colours", v.palette.Len())
	}, v.window)
	save.SetFileName(export.FormatCSS.DefaultFilename())
	save.Show()
}
