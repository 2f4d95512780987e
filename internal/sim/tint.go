package sim

import "image/color"

type tintKind uint8

const (
	singleColor tintKind = iota
	paletteColor
)

// Tint is either a single colour or a three-entry palette. Particles resolve
// it once, at construction.
type Tint struct {
	kind   tintKind
	colors [3]color.NRGBA
}

// SingleColor is a tint that always resolves to c.
func SingleColor(c color.NRGBA) Tint {
	return Tint{kind: singleColor, colors: [3]color.NRGBA{c, c, c}}
}

// Palette is a tint that picks one of a, b and c per particle.
func Palette(a, b, c color.NRGBA) Tint {
	return Tint{kind: paletteColor, colors: [3]color.NRGBA{a, b, c}}
}

// Resolve returns the single colour, or a uniformly chosen palette entry.
func (t Tint) Resolve(r Rand) color.NRGBA {
	if t.kind == singleColor {
		return t.colors[0]
	}
	return t.colors[r.IntN(len(t.colors))]
}

// Colors returns the distinct entries a particle could resolve to.
func (t Tint) Colors() []color.NRGBA {
	if t.kind == singleColor {
		return t.colors[:1]
	}
	return t.colors[:]
}
