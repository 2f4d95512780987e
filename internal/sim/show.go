package sim

import (
	"slices"

	"github.com/iburimskiy/fireworks/internal/config"
)

// Stats is a snapshot of the show's population and running totals.
type Stats struct {
	Tick      uint64
	Fireworks int
	Rockets   int
	Sparks    int
	Launched  uint64
	Exploded  uint64
}

// Show is the simulation loop: it spawns, advances, prunes and draws fireworks.
// It is not safe for concurrent use.
type Show struct {
	cfg       config.Config
	rng       Rand
	cues      Cues
	launchX   []float64
	fireworks []*Firework

	tick     uint64
	launched uint64
	exploded uint64
}

// NewShow takes its own deep copy of cfg. A nil cues silences the show.
func NewShow(cfg config.Config, r Rand, cues Cues) *Show {
	if cues == nil {
		cues = nopCues{}
	}
	s := &Show{
		cfg:  cfg.Clone(),
		rng:  r,
		cues: cues,
	}
	s.launchX = s.cfg.LaunchSlots()
	return s
}

// Config returns the tuning the show was built with.
func (s *Show) Config() config.Config { return s.cfg.Clone() }

// Step runs one tick: maybe launch, advance every firework, drop finished ones.
func (s *Show) Step() {
	if s.rng.IntN(s.cfg.Spawn.Odds) == 0 {
		s.Launch()
	}

	for _, f := range s.fireworks {
		f.Update(s.rng, s.cues)
		if f.Detonated() {
			s.exploded++
		}
		f.prune()
	}
	s.fireworks = slices.DeleteFunc(s.fireworks, (*Firework).Removable)
	s.tick++
}

// Launch adds a firework at a random launch slot.
func (s *Show) Launch() *Firework {
	x := s.launchX[s.rng.IntN(len(s.launchX))]
	f := NewFirework(&s.cfg, s.rng, x, s.cues)
	s.fireworks = append(s.fireworks, f)
	s.launched++
	return f
}

// Draw clears the frame and renders every live firework.
func (s *Show) Draw(c Canvas) {
	c.Clear(s.cfg.Screen.Background.NRGBA())
	for _, f := range s.fireworks {
		f.Draw(c)
	}
}

// Fireworks returns the live fireworks. The slice is owned by the show.
func (s *Show) Fireworks() []*Firework { return s.fireworks }

// Tick returns the number of completed steps.
func (s *Show) Tick() uint64 { return s.tick }

// Stats counts the live population and the running totals.
func (s *Show) Stats() Stats {
	st := Stats{
		Tick:      s.tick,
		Fireworks: len(s.fireworks),
		Launched:  s.launched,
		Exploded:  s.exploded,
	}
	for _, f := range s.fireworks {
		if f.Exploded {
			st.Sparks += len(f.Sparks)
		} else {
			st.Rockets++
		}
	}
	return st
}
