// Package colour provides the HSV colour model behind the wheel and picker.
package colour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidHex is returned when a string is not a 3 or 6 digit hex colour.
	ErrInvalidHex = errors.New("invalid hex colour")

	// ErrInvalidRGB is returned when a string is not an "r, g, b" triple in 0-255.
	ErrInvalidRGB = errors.New("invalid rgb triple")
)

// RGB represents a colour as 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the colour in CSS form, e.g. "rgb(255, 0, 0)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Text returns the colour as the plain "r, g, b" triple shown in input fields.
func (rgb RGB) Text() string {
	return fmt.Sprintf("%d, %d, %d", rgb.R, rgb.G, rgb.B)
}

// Hex returns the colour as an uppercase hex string (e.g., "#1A2B3C").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// HSV is the canonical colour state.
// Hue is in degrees [0, 360), saturation and value are in [0, 1].
type HSV struct {
	H float64 `json:"hue"`
	S float64 `json:"saturation"`
	V float64 `json:"value"`
}

// RGB converts the colour to 8-bit channels.
func (c HSV) RGB() RGB {
	return HSVToRGB(c.H, c.S, c.V)
}

// Hex converts the colour to an uppercase hex string.
func (c HSV) Hex() string {
	return c.RGB().Hex()
}

// String returns a human-readable representation of the colour.
func (c HSV) String() string {
	return fmt.Sprintf("hsv(%.1f, %.3f, %.3f)", c.H, c.S, c.V)
}

// Red is the default picker colour.
var Red = HSV{H: 0, S: 1, V: 1}

// HSVToRGB converts HSV to RGB using the six-sector formula.
//
// Hue is checked against the half-open sectors [0,60) .. [300,360), so a hue
// outside [0, 360), including exactly 360, matches no sector and all three
// channels collapse to v-v*s (black for a fully saturated colour).
// Saturation and value are not clamped; callers are expected to clamp them.
func HSVToRGB(h, s, v float64) RGB {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h >= 0 && h < 60:
		r, g, b = c, x, 0
	case h >= 60 && h < 120:
		r, g, b = x, c, 0
	case h >= 120 && h < 180:
		r, g, b = 0, c, x
	case h >= 180 && h < 240:
		r, g, b = 0, x, c
	case h >= 240 && h < 300:
		r, g, b = x, 0, c
	case h >= 300 && h < 360:
		r, g, b = c, 0, x
	}

	return RGB{
		R: toChannel(r + m),
		G: toChannel(g + m),
		B: toChannel(b + m),
	}
}

// toChannel scales a [0, 1] component to a rounded 8-bit channel.
func toChannel(f float64) uint8 {
	n := math.Round(f * 255)
	switch {
	case math.IsNaN(n), n < 0:
		return 0
	case n > 255:
		return 255
	}
	return uint8(n)
}

// RGBToHSV converts RGB to HSV.
// Achromatic colours (r == g == b) get a hue of 0 and black gets a saturation of 0,
// so the result never contains NaN.
func RGBToHSV(rgb RGB) HSV {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	var h float64
	switch {
	case delta == 0:
		h = 0
	case maxVal == r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case maxVal == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	var s float64
	if maxVal != 0 {
		s = delta / maxVal
	}

	return HSV{H: h, S: s, V: maxVal}
}

// ParseHex parses "#RGB", "#RRGGBB", "RGB" or "RRGGBB" in any case.
func ParseHex(s string) (RGB, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 3 && len(digits) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
	}

	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}

	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	return RGB{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
	}, nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// ParseRGBText parses an "r, g, b" triple.
// Exactly three comma-separated integers in 0-255 are accepted; whitespace
// around each number is ignored.
func ParseRGBText(s string) (RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidRGB, s)
	}

	var channels [3]uint8
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 255 {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidRGB, s)
		}
		channels[i] = uint8(n)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// Parse accepts either a hex colour or an "r, g, b" triple.
func Parse(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		return ParseRGBText(strings.TrimSuffix(strings.TrimPrefix(s, "rgb("), ")"))
	}
	return ParseHex(s)
}

// NormaliseHue wraps a hue in degrees into [0, 360).
func NormaliseHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// A tiny negative hue rounds up to exactly 360 above.
	if h >= 360 {
		h = 0
	}
	return h
}
