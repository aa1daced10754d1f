package nodelink

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette maps color indices to fill colors ("#rrggbb").
type Palette []string

// DefaultPalette is a twelve-entry qualitative palette (ColorBrewer Set3).
var DefaultPalette = Palette{
	"#8dd3c7", "#ffffb3", "#bebada", "#fb8072",
	"#80b1d3", "#fdb462", "#b3de69", "#fccde5",
	"#d9d9d9", "#bc80bd", "#ccebc5", "#ffed6f",
}

// goldenAngle spreads generated hues so neighbouring indices stay apart.
const goldenAngle = 137.50776405003785

// Fill returns the fill for color index i. Indices past the end of the
// palette get generated pastel fills.
func (p Palette) Fill(i int) string {
	if i >= 0 && i < len(p) {
		return p[i]
	}
	hue := math.Mod(float64(i)*goldenAngle, 360)
	return colorful.Hsv(hue, 0.45, 0.95).Hex()
}

// OrDefault returns p, or DefaultPalette when p is empty.
func (p Palette) OrDefault() Palette {
	if len(p) == 0 {
		return DefaultPalette
	}
	return p
}

// Valid reports whether every entry parses as a hex color.
func (p Palette) Valid() bool {
	for _, s := range p {
		if _, err := colorful.Hex(s); err != nil {
			return false
		}
	}
	return true
}
