package colour

import (
	"testing"
)

func TestHarmonies(t *testing.T) {
	base := HSV{H: 350, S: 0.6, V: 0.8}
	got := Harmonies(base)

	want := map[string][]float64{
		"Complementary":       {170},
		"Analogous":           {320, 20},
		"Triadic":             {110, 230},
		"Split Complementary": {140, 200},
	}

	if len(got) != len(want) {
		t.Fatalf("Harmonies() returned %d rules, want %d", len(got), len(want))
	}

	for _, h := range got {
		hues, ok := want[h.Name]
		if !ok {
			t.Errorf("unexpected harmony %q", h.Name)
			continue
		}
		if len(h.Colours) != len(hues) {
			t.Fatalf("%s: %d colours, want %d", h.Name, len(h.Colours), len(hues))
		}
		for i, c := range h.Colours {
			if !approx(c.H, hues[i]) {
				t.Errorf("%s[%d].H = %v, want %v", h.Name, i, c.H, hues[i])
			}
			if c.S != base.S || c.V != base.V {
				t.Errorf("%s[%d] changed s/v: %v", h.Name, i, c)
			}
		}
	}
}

func TestHarmoniesOrder(t *testing.T) {
	names := []string{"Complementary", "Analogous", "Triadic", "Split Complementary"}
	for i, h := range Harmonies(Red) {
		if h.Name != names[i] {
			t.Errorf("Harmonies()[%d] = %s, want %s", i, h.Name, names[i])
		}
	}
}

func TestComplementaryIsOppositeOnWheel(t *testing.T) {
	for _, hue := range []float64{0, 45, 179, 180, 300} {
		c := Harmonies(HSV{H: hue, S: 1, V: 1})[0].Colours[0]
		if d := HueDistance(hue, c.H); !approx(d, 180) {
			t.Errorf("complement of %v is %v degrees away, want 180", hue, d)
		}
	}
}
