package colour

// Harmony is a named set of hue offsets from a base colour.
type Harmony struct {
	Name    string
	Offsets []float64
	Colours []HSV
}

// harmonyRules lists the supported rules in display order.
var harmonyRules = []struct {
	name    string
	offsets []float64
}{
	{"Complementary", []float64{180}},
	{"Analogous", []float64{-30, 30}},
	{"Triadic", []float64{120, 240}},
	{"Split Complementary", []float64{150, 210}},
}

// Harmonies derives the complementary, analogous, triadic and
// split-complementary colours for c. Saturation and value are carried over.
func Harmonies(c HSV) []Harmony {
	result := make([]Harmony, 0, len(harmonyRules))
	for _, rule := range harmonyRules {
		h := Harmony{
			Name:    rule.name,
			Offsets: rule.offsets,
			Colours: make([]HSV, len(rule.offsets)),
		}
		for i, off := range rule.offsets {
			h.Colours[i] = HSV{H: NormaliseHue(c.H + off), S: c.S, V: c.V}
		}
		result = append(result, h)
	}
	return result
}
