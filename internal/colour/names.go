package colour

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// NearestName returns the SVG 1.1 colour keyword perceptually closest to rgb,
// measured as CIE-Lab distance. exact reports whether the keyword matches rgb
// channel for channel.
func NearestName(rgb RGB) (name string, exact bool) {
	target := colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}

	best := math.Inf(1)
	for _, n := range colornames.Names {
		named := colornames.Map[n]
		if named.R == rgb.R && named.G == rgb.G && named.B == rgb.B {
			return n, true
		}

		c, ok := colorful.MakeColor(named)
		if !ok {
			continue
		}
		if d := target.DistanceLab(c); d < best {
			best = d
			name = n
		}
	}
	return name, false
}

// RGBToColor converts an RGB value to an opaque color.RGBA.
func RGBToColor(rgb RGB) color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// ToRGB converts any color.Color to RGB, dropping alpha.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}
