package sim

import (
	"image"

	"github.com/iburimskiy/fireworks/internal/config"
)

// TrailMode selects which slice of a particle's history feeds a trail.
type TrailMode uint8

const (
	// Dynamic trails hug the particle: slot n reads history n+DynamicOffset.
	Dynamic TrailMode = iota
	// Static trails lag further: slot n reads history n+StaticOffset.
	Static
)

func (m TrailMode) String() string {
	if m == Static {
		return "static"
	}
	return "dynamic"
}

// Trail is one afterimage point behind a particle.
type Trail struct {
	Slot int
	Mode TrailMode
	Pos  image.Point
	// Size is copied from the particle at construction and never updated.
	Size float64
}

func (t *Trail) offset(cfg *config.Config) int {
	if t.Mode == Static {
		return cfg.Trail.StaticOffset
	}
	return cfg.Trail.DynamicOffset
}

func (t *Trail) feed(h *history, cfg *config.Config) {
	t.Pos = h.at(t.Slot + t.offset(cfg))
}

// Draw renders the trail with its slot's colour and opacity.
func (t *Trail) Draw(c Canvas, cfg *config.Config) {
	col := cfg.Trail.Colors[t.Slot].NRGBA()
	col.A = cfg.TrailAlpha(t.Slot)
	c.FillCircle(float64(t.Pos.X), float64(t.Pos.Y), t.Size, col)
}
