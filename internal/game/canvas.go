package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// canvas draws the show onto an ebiten frame.
type canvas struct {
	dst *ebiten.Image
}

func (c canvas) Clear(col color.NRGBA) {
	c.dst.Fill(col)
}

func (c canvas) FillCircle(x, y, radius float64, col color.NRGBA) {
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(radius), col, true)
}
