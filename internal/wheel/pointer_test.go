package wheel

import (
	"errors"
	"math"
	"testing"

	"github.com/jmylchreest/colormine/internal/colour"
)

// size 104 gives centre 52 and radius 50.
const testSize = 104

func TestMapCentre(t *testing.T) {
	tests := []struct {
		mode  colour.CenterMode
		wantS float64
		wantV float64
	}{
		{colour.CenterWhite, 0, 1},
		{colour.CenterBlack, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			sel, ok := Mapper{Size: testSize, Mode: tt.mode}.Map(52, 52)
			if !ok {
				t.Fatal("Map() rejected the centre")
			}
			if sel.Distance != 0 || sel.Ratio != 0 {
				t.Errorf("distance/ratio = %v/%v, want 0/0", sel.Distance, sel.Ratio)
			}
			if sel.Colour.S != tt.wantS || sel.Colour.V != tt.wantV {
				t.Errorf("colour = %v, want s=%v v=%v", sel.Colour, tt.wantS, tt.wantV)
			}
		})
	}
}

func TestMapTolerance(t *testing.T) {
	m := Mapper{Size: testSize, Mode: colour.CenterWhite}

	tests := []struct {
		name   string
		offset float64
		wantOK bool
	}{
		{name: "inside", offset: 25, wantOK: true},
		{name: "on rim", offset: 50, wantOK: true},
		{name: "within tolerance", offset: 55, wantOK: true},
		{name: "tolerance edge", offset: 60, wantOK: true},
		{name: "beyond tolerance", offset: 65, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, ok := m.Map(52+tt.offset, 52)
			if ok != tt.wantOK {
				t.Fatalf("Map(+%v) ok = %v, want %v", tt.offset, ok, tt.wantOK)
			}
			if !ok {
				if sel != (Selection{}) {
					t.Errorf("rejected Map returned %+v", sel)
				}
				return
			}
			if sel.Ratio > 1 {
				t.Errorf("ratio %v not clamped", sel.Ratio)
			}
		})
	}
}

func TestMapClampsRatioButNotPosition(t *testing.T) {
	sel, ok := Mapper{Size: testSize, Mode: colour.CenterBlack}.Map(52+55, 52)
	if !ok {
		t.Fatal("Map() rejected a point inside the tolerance band")
	}
	if sel.Ratio != 1 {
		t.Errorf("Ratio = %v, want 1", sel.Ratio)
	}
	if sel.Colour.V != 1 || sel.Colour.S != 1 {
		t.Errorf("colour = %v, want rim colour", sel.Colour)
	}
	if math.Abs(sel.Position.X-1.1) > 1e-9 || sel.Position.Y != 0 {
		t.Errorf("Position = %v, want unclamped (1.1, 0)", sel.Position)
	}
}

func TestMapAngles(t *testing.T) {
	m := Mapper{Size: testSize, Mode: colour.CenterWhite}
	tests := []struct {
		x, y float64
		want float64
		hex  string
	}{
		{52 + 30, 52, 0, ""},
		{52, 52 + 30, 90, ""},
		{52 - 30, 52, 180, ""},
		{52, 52 - 30, 270, ""},
		// Just above the x axis: atan2 is a tiny negative angle.
		{52 + 50, 51.99999999999999, 0, "#FF0000"},
	}

	for _, tt := range tests {
		sel, ok := m.Map(tt.x, tt.y)
		if !ok {
			t.Fatalf("Map(%v, %v) rejected", tt.x, tt.y)
		}
		if math.Abs(sel.Colour.H-tt.want) > 1e-9 {
			t.Errorf("Map(%v, %v) hue = %v, want %v", tt.x, tt.y, sel.Colour.H, tt.want)
		}
		if sel.Colour.H < 0 || sel.Colour.H >= 360 {
			t.Errorf("hue %v out of range", sel.Colour.H)
		}
		if tt.hex != "" {
			if got := sel.Colour.RGB().Hex(); got != tt.hex {
				t.Errorf("Map(%v, %v) colour = %s, want %s", tt.x, tt.y, got, tt.hex)
			}
		}
	}
}

func TestMapPositionRoundTripsThroughHSV(t *testing.T) {
	m := Mapper{Size: testSize, Mode: colour.CenterWhite}
	sel, _ := m.Map(52+20, 52-10)
	pos := colour.PositionFromHSV(sel.Colour)
	if math.Abs(pos.X-sel.Position.X) > 1e-9 || math.Abs(pos.Y-sel.Position.Y) > 1e-9 {
		t.Errorf("PositionFromHSV = %v, mapper position %v", pos, sel.Position)
	}
}

func TestMapPoint(t *testing.T) {
	if _, err := MapPoint(testSize, colour.CenterWhite, 52+65, 52); !errors.Is(err, ErrOutsideWheel) {
		t.Errorf("MapPoint() error = %v, want ErrOutsideWheel", err)
	}
	if _, err := MapPoint(testSize, colour.CenterWhite, 52, 52); err != nil {
		t.Errorf("MapPoint() centre error = %v", err)
	}
}
