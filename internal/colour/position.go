package colour

import (
	"fmt"
	"math"
	"strings"
)

// CenterMode selects what the centre of the wheel represents.
type CenterMode int

const (
	// CenterWhite pins value to 1; saturation grows from the centre to the rim.
	CenterWhite CenterMode = iota
	// CenterBlack pins saturation to 1; value grows from the centre to the rim.
	CenterBlack
)

// String returns the mode name.
func (m CenterMode) String() string {
	switch m {
	case CenterWhite:
		return "white"
	case CenterBlack:
		return "black"
	default:
		return fmt.Sprintf("CenterMode(%d)", int(m))
	}
}

// Toggle returns the opposite mode.
func (m CenterMode) Toggle() CenterMode {
	if m == CenterWhite {
		return CenterBlack
	}
	return CenterWhite
}

// Components returns saturation and value for a radial ratio in [0, 1].
// The renderer and the pointer mapper both derive colours through this so the
// marker always lands on the pixel under the pointer.
func (m CenterMode) Components(ratio float64) (s, v float64) {
	if m == CenterBlack {
		return 1, ratio
	}
	return ratio, 1
}

// ParseCenterMode parses "white" or "black" (case-insensitive).
func ParseCenterMode(s string) (CenterMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return CenterWhite, nil
	case "black", "b":
		return CenterBlack, nil
	default:
		return CenterWhite, fmt.Errorf("invalid center mode: %s (valid: white, black)", s)
	}
}

// ModeFor infers the centre mode for a colour entered as RGB or hex:
// white when value is exactly 1, black otherwise.
func ModeFor(c HSV) CenterMode {
	if c.V == 1 {
		return CenterWhite
	}
	return CenterBlack
}

// Position is a point on the wheel normalised to its radius.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// String returns the position as "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y)
}

// DefaultPosition is the rim point for pure red.
var DefaultPosition = Position{X: 1, Y: 0}

// PositionFromHSV places a colour on the wheel. The radial ratio is the
// saturation when value is 1 and the value otherwise.
func PositionFromHSV(c HSV) Position {
	angle := c.H * math.Pi / 180
	radius := c.V
	if c.V == 1 {
		radius = c.S
	}
	return Position{
		X: math.Cos(angle) * radius,
		Y: math.Sin(angle) * radius,
	}
}
