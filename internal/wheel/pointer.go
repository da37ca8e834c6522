package wheel

import (
	"errors"
	"math"

	"github.com/jmylchreest/colormine/internal/colour"
)

// EdgeTolerance is how far outside the visible rim, in pixels, a pointer is
// still treated as being on the wheel.
const EdgeTolerance = 10.0

// ErrOutsideWheel is returned by MapPoint for pointers beyond the tolerance band.
var ErrOutsideWheel = errors.New("pointer outside wheel")

// Selection is the result of mapping a pointer onto the wheel.
//
// Ratio is clamped to [0, 1] and drives saturation/value, so points in the
// tolerance band land on the rim colour. Position is the raw dx/radius,
// dy/radius and is not clamped.
type Selection struct {
	Colour   colour.HSV
	Position colour.Position
	Distance float64
	Ratio    float64
}

// Mapper maps canvas-local pointer coordinates to wheel selections.
type Mapper struct {
	Size int
	Mode colour.CenterMode
}

// Map converts a pointer at (x, y) in canvas pixels. ok is false when the
// pointer is more than EdgeTolerance pixels outside the disc; callers must not
// change any state in that case.
func (m Mapper) Map(x, y float64) (sel Selection, ok bool) {
	centre := float64(m.Size) / 2
	radius := Radius(m.Size)
	if radius <= 0 {
		return Selection{}, false
	}

	dx := x - centre
	dy := y - centre
	distance := math.Sqrt(dx*dx + dy*dy)
	if distance > radius+EdgeTolerance {
		return Selection{}, false
	}

	ratio := math.Min(distance/radius, 1)

	angle := colour.NormaliseHue(math.Atan2(dy, dx) * 180 / math.Pi)

	s, v := m.Mode.Components(ratio)
	return Selection{
		Colour:   colour.HSV{H: angle, S: s, V: v},
		Position: colour.Position{X: dx / radius, Y: dy / radius},
		Distance: distance,
		Ratio:    ratio,
	}, true
}

// MapPoint is Map for callers that prefer an error.
func MapPoint(size int, mode colour.CenterMode, x, y float64) (Selection, error) {
	sel, ok := Mapper{Size: size, Mode: mode}.Map(x, y)
	if !ok {
		return Selection{}, ErrOutsideWheel
	}
	return sel, nil
}
