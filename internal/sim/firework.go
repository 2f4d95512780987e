package sim

import (
	"slices"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/fireworks/internal/config"
)

// Firework owns one rocket and, once it bursts, the sparks it produced.
// It moves one way from ascending to exploded.
type Firework struct {
	Rocket   *Particle
	Exploded bool
	Sparks   []*Particle
	Palette  Tint

	// detonated is set only during the tick the rocket burst.
	detonated bool
	cfg       *config.Config
}

// NewFirework places a rocket at the bottom of the screen at x, launching it
// straight up, and picks the palette its sparks will share.
func NewFirework(cfg *config.Config, r Rand, x float64, cues Cues) *Firework {
	speed := float64(intBetween(r, cfg.Rocket.SpeedMin, cfg.Rocket.SpeedMax))
	pos := r2.Vec{X: x, Y: float64(cfg.Screen.Height)}

	accent := cfg.Palette.Accents[r.IntN(len(cfg.Palette.Accents))].NRGBA()
	white := cfg.Palette.White.NRGBA()

	f := &Firework{
		Rocket:  NewRocket(cfg, pos, r2.Vec{Y: -speed}),
		Palette: Palette(accent, white, white),
		cfg:     cfg,
	}
	cues.Liftoff()
	return f
}

func (f *Firework) gravity() r2.Vec {
	return r2.Vec{X: f.cfg.Physics.GravityX, Y: f.cfg.Physics.GravityY}
}

// sparkForce is gravity with a fresh per-axis jitter.
func (f *Firework) sparkForce(r Rand) r2.Vec {
	g := f.gravity()
	sc := f.cfg.Spark
	return r2.Vec{
		X: g.X + uniform(r, -1, 1)*sc.JitterX,
		Y: g.Y*sc.GravityScale + float64(intBetween(r, sc.LiftMin, sc.LiftMax))/sc.LiftDivisor,
	}
}

// Update advances the firework one tick.
func (f *Firework) Update(r Rand, cues Cues) {
	f.detonated = false

	if !f.Exploded {
		f.Rocket.ApplyForce(f.gravity())
		f.Rocket.Move(r)
		if f.Rocket.Vel.Y >= f.cfg.Rocket.ExplodeVelocity {
			f.Exploded = true
			f.detonated = true
			f.explode(r, cues)
		}
		return
	}

	for _, s := range f.Sparks {
		s.ApplyForce(f.sparkForce(r))
		s.Move(r)
	}
}

func (f *Firework) explode(r Rand, cues Cues) {
	n := intBetween(r, f.cfg.Spark.CountMin, f.cfg.Spark.CountMax)
	f.Sparks = make([]*Particle, 0, n)
	for range n {
		f.Sparks = append(f.Sparks, NewSpark(f.cfg, r, f.Rocket.Pos, f.Palette))
		if f.cfg.Audio.ExplosionPerSpark {
			cues.Explosion()
		}
	}
	if !f.cfg.Audio.ExplosionPerSpark {
		cues.Explosion()
	}
}

// Detonated reports whether the rocket burst during the latest Update.
func (f *Firework) Detonated() bool { return f.detonated }

// prune drops sparks flagged for removal.
func (f *Firework) prune() {
	f.Sparks = slices.DeleteFunc(f.Sparks, func(p *Particle) bool {
		return p.PendingRemoval
	})
}

// Removable reports whether the firework has burst and every spark is gone.
// Flagged sparks must be pruned first.
func (f *Firework) Removable() bool {
	return f.Exploded && len(f.Sparks) == 0
}

// Draw renders the rocket until the tick it bursts, the sparks afterwards.
func (f *Firework) Draw(c Canvas) {
	if !f.Exploded || f.detonated {
		f.Rocket.Draw(c)
		return
	}
	for _, s := range f.Sparks {
		s.Draw(c)
	}
}
