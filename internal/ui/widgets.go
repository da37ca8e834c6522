package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/jmylchreest/colormine/internal/colour"
)

const swatchSize = 28

// Swatch is a tappable colour square.
type Swatch struct {
	widget.BaseWidget

	Hex   string
	rect  *canvas.Rectangle
	onTap func(hex string)
}

// NewSwatch creates a swatch for hex. Invalid hex renders black.
func NewSwatch(hex string, onTap func(hex string)) *Swatch {
	s := &Swatch{Hex: hex, onTap: onTap}
	s.rect = canvas.NewRectangle(colour.RGBToColor(swatchColour(hex)))
	s.rect.StrokeWidth = 1
	s.rect.StrokeColor = colour.RGBToColor(colour.RGB{R: 128, G: 128, B: 128})
	s.rect.CornerRadius = 4
	s.ExtendBaseWidget(s)
	return s
}

func swatchColour(hex string) colour.RGB {
	rgb, _ := colour.ParseHex(hex)
	return rgb
}

// Tapped implements fyne.Tappable.
func (s *Swatch) Tapped(*fyne.PointEvent) {
	if s.onTap != nil {
		s.onTap(s.Hex)
	}
}

// MinSize implements fyne.Widget.
func (s *Swatch) MinSize() fyne.Size {
	return fyne.NewSize(swatchSize, swatchSize)
}

// CreateRenderer implements fyne.Widget.
func (s *Swatch) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.rect)
}

// focusEntry is an Entry that reports focus changes.
type focusEntry struct {
	widget.Entry
	onFocus func(focused bool)
}

func newFocusEntry(placeholder string, onFocus func(bool)) *focusEntry {
	e := &focusEntry{onFocus: onFocus}
	e.PlaceHolder = placeholder
	e.ExtendBaseWidget(e)
	return e
}

// FocusGained implements fyne.Focusable.
func (e *focusEntry) FocusGained() {
	e.Entry.FocusGained()
	if e.onFocus != nil {
		e.onFocus(true)
	}
}

// FocusLost implements fyne.Focusable.
func (e *focusEntry) FocusLost() {
	e.Entry.FocusLost()
	if e.onFocus != nil {
		e.onFocus(false)
	}
}
