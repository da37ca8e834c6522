// Package picker owns the canonical colour state and keeps the wheel, text
// inputs and channel sliders in sync with it.
package picker

import (
	"time"

	"github.com/jmylchreest/colormine/internal/colour"
)

// Field identifies a text input whose content is synced from the colour.
type Field int

const (
	FieldHex Field = iota
	FieldRGB
)

// String returns the field name.
func (f Field) String() string {
	if f == FieldRGB {
		return "rgb"
	}
	return "hex"
}

// Channel is one of the RGB slider channels.
type Channel int

const (
	ChannelR Channel = iota
	ChannelG
	ChannelB
)

// Copied records which representation was copied most recently.
type Copied int

const (
	CopiedNone Copied = iota
	CopiedHex
	CopiedRGB
)

// String returns the copied flag name.
func (c Copied) String() string {
	switch c {
	case CopiedHex:
		return "hex"
	case CopiedRGB:
		return "rgb"
	default:
		return "none"
	}
}

// CopiedFlagDuration is how long the copied indicator stays set.
const CopiedFlagDuration = 2 * time.Second

// State is a snapshot of the controller.
type State struct {
	Colour   colour.HSV
	Position colour.Position
	Mode     colour.CenterMode

	// HexText and RGBText are what the text inputs should display. They follow
	// the colour except while their field has focus.
	HexText string
	RGBText string

	Copied Copied
}

// RGB returns the colour as 8-bit channels.
func (s State) RGB() colour.RGB {
	return s.Colour.RGB()
}

// Hex returns the colour as "#RRGGBB".
func (s State) Hex() string {
	return s.Colour.Hex()
}

// DefaultState is the state after Reset: red, white centre, marker on the rim at 0°.
func DefaultState() State {
	rgb := colour.Red.RGB()
	return State{
		Colour:   colour.Red,
		Position: colour.DefaultPosition,
		Mode:     colour.CenterWhite,
		HexText:  rgb.Hex(),
		RGBText:  rgb.Text(),
	}
}
