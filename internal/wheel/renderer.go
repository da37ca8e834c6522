// Package wheel renders the HSV colour wheel and maps pointer positions onto it.
package wheel

import (
	"image"
	"image/color"
	"math"

	"github.com/jmylchreest/colormine/internal/colour"
)

// rimInset is the gap in pixels between the edge of the buffer and the disc.
const rimInset = 2

// Radius returns the disc radius for a wheel buffer of the given side.
func Radius(size int) float64 {
	return float64(size)/2 - rimInset
}

// Render builds a size×size wheel. Pixels inside the disc are opaque, with hue
// taken from the angle and saturation/value from the radial distance according
// to mode. Pixels outside the disc are fully transparent.
//
// Render does O(size²) trigonometry; use a Cache rather than calling it per frame.
func Render(size int, mode colour.CenterMode) *image.RGBA {
	return renderDisc(size, Radius(size), mode)
}

func renderDisc(size int, radius float64, mode colour.CenterMode) *image.RGBA {
	if size <= 0 || radius <= 0 {
		return image.NewRGBA(image.Rect(0, 0, max(size, 1), max(size, 1)))
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	centre := float64(size) / 2
	radiusSquared := radius * radius

	for y := 0; y < size; y++ {
		dy := float64(y) - centre
		for x := 0; x < size; x++ {
			dx := float64(x) - centre
			distanceSquared := dx*dx + dy*dy
			if distanceSquared > radiusSquared {
				// image.NewRGBA starts transparent.
				continue
			}

			angle := colour.NormaliseHue(math.Atan2(dy, dx) * 180 / math.Pi)
			s, v := mode.Components(math.Sqrt(distanceSquared) / radius)
			rgb := colour.HSVToRGB(angle, s, v)

			i := img.PixOffset(x, y)
			img.Pix[i+0] = rgb.R
			img.Pix[i+1] = rgb.G
			img.Pix[i+2] = rgb.B
			img.Pix[i+3] = 0xff
		}
	}

	return img
}

// Marker ring geometry in pixels.
const (
	markerOuterRadius = 6.0
	markerOuterStroke = 2.0
	markerInnerRadius = 5.0
	markerInnerStroke = 1.0
)

var (
	markerOuterColour = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	markerInnerColour = color.RGBA{A: 0xff}
)

// MarkerCentre converts a normalised wheel position into buffer pixel coordinates.
func MarkerCentre(pos colour.Position, size int) (x, y float64) {
	centre := float64(size) / 2
	radius := Radius(size)
	return centre + pos.X*radius, centre + pos.Y*radius
}

// DrawMarker copies base and draws the selection ring at pos: an outer white
// ring with a black ring inside it. base is left untouched.
func DrawMarker(base *image.RGBA, pos colour.Position) *image.RGBA {
	return DrawMarkerScaled(base, pos, 1)
}

// DrawMarkerScaled is DrawMarker for a buffer holding scale device pixels per
// logical pixel. Ring radii and strokes grow by the same factor.
func DrawMarkerScaled(base *image.RGBA, pos colour.Position, scale int) *image.RGBA {
	scale = max(scale, 1)
	dst := image.NewRGBA(base.Rect)
	copy(dst.Pix, base.Pix)

	k := float64(scale)
	cx, cy := MarkerCentre(pos, base.Rect.Dx()/scale)
	cx, cy = cx*k, cy*k
	strokeRing(dst, cx, cy, markerOuterRadius*k, markerOuterStroke*k, markerOuterColour)
	strokeRing(dst, cx, cy, markerInnerRadius*k, markerInnerStroke*k, markerInnerColour)
	return dst
}

// strokeRing paints every pixel whose centre lies within width/2 of the circle.
func strokeRing(dst *image.RGBA, cx, cy, radius, width float64, c color.RGBA) {
	half := width / 2
	outer := radius + half
	inner := radius - half

	b := dst.Rect
	minX := max(b.Min.X, int(math.Floor(cx-outer)))
	maxX := min(b.Max.X-1, int(math.Ceil(cx+outer)))
	minY := max(b.Min.Y, int(math.Floor(cy-outer)))
	maxY := min(b.Max.Y-1, int(math.Ceil(cy+outer)))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			if d >= inner && d <= outer {
				dst.SetRGBA(x, y, c)
			}
		}
	}
}
