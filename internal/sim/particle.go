package sim

import (
	"image"
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/fireworks/internal/config"
)

// Kind distinguishes the ascending rocket from post-explosion sparks.
type Kind uint8

const (
	// Rocket is the ascending body of a firework.
	Rocket Kind = iota
	// Spark is debris released when a rocket bursts.
	Spark
)

func (k Kind) String() string {
	if k == Spark {
		return "spark"
	}
	return "rocket"
}

// offscreen seeds the position history before a particle has moved.
var offscreen = image.Pt(-10, -10)

// Particle is a point mass with a position history feeding its trails.
type Particle struct {
	Kind Kind

	Pos    r2.Vec
	Origin r2.Vec
	Vel    r2.Vec
	// Acc is an impulse accumulator, zeroed by every Move.
	Acc r2.Vec

	Size  float64
	Color color.NRGBA
	Age   int

	// ExplosionRadius only matters for sparks: one still outside it after the
	// first tick is discarded.
	ExplosionRadius float64
	PendingRemoval  bool

	Trails [config.TrailCount]Trail

	history history
	cfg     *config.Config
}

func newParticle(cfg *config.Config, kind Kind, pos r2.Vec, size float64, col color.NRGBA, mode TrailMode) *Particle {
	p := &Particle{
		Kind:    kind,
		Pos:     pos,
		Origin:  pos,
		Size:    size,
		Color:   col,
		history: newHistory(cfg.Trail.History, offscreen),
		cfg:     cfg,
	}
	for i := range p.Trails {
		p.Trails[i] = Trail{Slot: i, Mode: mode, Pos: offscreen, Size: size}
	}
	return p
}

// NewRocket builds a rocket at pos with the given launch velocity.
func NewRocket(cfg *config.Config, pos, vel r2.Vec) *Particle {
	p := newParticle(cfg, Rocket, pos, cfg.Rocket.Size, cfg.Rocket.Color.NRGBA(), Dynamic)
	p.Vel = vel
	return p
}

// NewSpark builds a spark at pos, sampling size, velocity, arming radius and
// colour independently.
func NewSpark(cfg *config.Config, r Rand, pos r2.Vec, tint Tint) *Particle {
	sc := cfg.Spark
	size := float64(intBetween(r, sc.SizeMin, sc.SizeMax))
	p := newParticle(cfg, Spark, pos, size, tint.Resolve(r), Static)
	p.Vel = r2.Vec{
		X: uniform(r, -1, 1) * sc.Speed,
		Y: uniform(r, -1, 1) * sc.Speed,
	}
	p.ExplosionRadius = float64(intStep(r, sc.RadiusMin, sc.RadiusMax, sc.RadiusStep))
	return p
}

// ApplyForce adds f to this tick's acceleration.
func (p *Particle) ApplyForce(f r2.Vec) {
	p.Acc = r2.Add(p.Acc, f)
}

// Move advances the particle by one tick.
func (p *Particle) Move(r Rand) {
	if p.Kind == Spark {
		p.Vel = r2.Scale(p.cfg.Spark.Drag, p.Vel)
	}

	p.Vel = r2.Add(p.Vel, p.Acc)
	p.Pos = r2.Add(p.Pos, p.Vel)
	p.Acc = r2.Vec{}

	if p.Kind == Spark && p.Age == 0 {
		if r2.Norm(r2.Sub(p.Pos, p.Origin)) > p.ExplosionRadius {
			p.PendingRemoval = true
		}
	}

	p.decay(r)
	p.updateTrails()
	p.Age++
}

// decay flags sparks for removal at a rate set by their age band.
// Sparks at or below FlareTicks always survive; rockets never decay.
func (p *Particle) decay(r Rand) {
	if p.Kind != Spark {
		return
	}
	d := p.cfg.Decay
	switch {
	case p.Age > d.FlareTicks && p.Age < d.TailTicks:
		if r.IntN(d.GlowOdds) == 0 {
			p.PendingRemoval = true
		}
	case p.Age >= d.TailTicks:
		if r.IntN(d.TailOdds) == 0 {
			p.PendingRemoval = true
		}
	}
}

func (p *Particle) updateTrails() {
	// int() truncates toward zero, matching how positions are drawn.
	p.history.push(image.Pt(int(p.Pos.X), int(p.Pos.Y)))
	for i := range p.Trails {
		p.Trails[i].feed(&p.history, p.cfg)
	}
}

// History returns the recorded positions, most recent first.
func (p *Particle) History() []image.Point {
	out := make([]image.Point, p.history.size())
	for i := range out {
		out[i] = p.history.at(i)
	}
	return out
}

// Draw renders the trails, then the body on top.
func (p *Particle) Draw(c Canvas) {
	for i := range p.Trails {
		p.Trails[i].Draw(c, p.cfg)
	}
	c.FillCircle(float64(int(p.Pos.X)), float64(int(p.Pos.Y)), p.Size, p.Color)
}
