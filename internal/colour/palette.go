package colour

import (
	"encoding/json"
	"slices"
	"strings"
)

// Palette is an ordered set of hex colours curated during a session.
// Entries are stored in canonical uppercase "#RRGGBB" form.
type Palette struct {
	colours []string
}

// NewPalette creates a palette from hex colours. Invalid and duplicate entries
// are skipped.
func NewPalette(hexes ...string) *Palette {
	p := &Palette{}
	for _, h := range hexes {
		_, _ = p.Add(h)
	}
	return p
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.colours)
}

// Add appends a colour if it is not already present.
// Reports whether the palette changed.
func (p *Palette) Add(hex string) (bool, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return false, err
	}
	canonical := rgb.Hex()
	if slices.Contains(p.colours, canonical) {
		return false, nil
	}
	p.colours = append(p.colours, canonical)
	return true, nil
}

// Remove deletes a colour. Reports whether it was present.
func (p *Palette) Remove(hex string) bool {
	rgb, err := ParseHex(hex)
	if err != nil {
		return false
	}
	canonical := rgb.Hex()
	idx := slices.Index(p.colours, canonical)
	if idx < 0 {
		return false
	}
	p.colours = slices.Delete(p.colours, idx, idx+1)
	return true
}

// Clear removes all colours.
func (p *Palette) Clear() {
	p.colours = nil
}

// ToHex returns a copy of the colours in insertion order.
func (p *Palette) ToHex() []string {
	return slices.Clone(p.colours)
}

// ToRGBSlice converts the palette colours to RGB structs.
func (p *Palette) ToRGBSlice() []RGB {
	rgbColours := make([]RGB, len(p.colours))
	for i, h := range p.colours {
		rgbColours[i], _ = ParseHex(h)
	}
	return rgbColours
}

// Joined returns the colours separated by ", " for pasting elsewhere.
func (p *Palette) Joined() string {
	return strings.Join(p.colours, ", ")
}

// ToJSON converts the palette to a pretty-printed JSON array of hex strings.
func (p *Palette) ToJSON() ([]byte, error) {
	colours := p.colours
	if colours == nil {
		colours = []string{}
	}
	return json.MarshalIndent(colours, "", "  ")
}

// All returns an iterator over all colours in the palette.
func (p *Palette) All() func(func(int, string) bool) {
	return func(yield func(int, string) bool) {
		for i, c := range p.colours {
			if !yield(i, c) {
				return
			}
		}
	}
}
