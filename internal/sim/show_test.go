package sim

import (
	"math"
	"slices"
	"testing"

	"github.com/iburimskiy/fireworks/internal/config"
)

func TestShowLaunchRate(t *testing.T) {
	cfg := testConfig(t)
	cues := &countCues{}
	s := NewShow(*cfg, NewRand(5), cues)
	slots := cfg.LaunchSlots()

	const ticks = 4500
	for range ticks {
		s.Step()
		for _, f := range s.Fireworks() {
			if !f.Exploded && len(f.Sparks) != 0 {
				t.Fatalf("tick %d: unexploded firework holds sparks", s.Tick())
			}
			if !slices.Contains(slots, f.Rocket.Origin.X) {
				t.Fatalf("launch x %v not in %v", f.Rocket.Origin.X, slots)
			}
			if f.Rocket.Origin.Y != float64(cfg.Screen.Height) {
				t.Fatalf("launch y %v, want %d", f.Rocket.Origin.Y, cfg.Screen.Height)
			}
		}
	}

	st := s.Stats()
	if st.Tick != ticks {
		t.Fatalf("tick = %d, want %d", st.Tick, ticks)
	}
	withinBinomial(t, "launch", int(st.Launched), ticks, 1.0/9)
	if uint64(cues.liftoffs) != st.Launched {
		t.Fatalf("liftoff cues = %d, launched = %d", cues.liftoffs, st.Launched)
	}
	if st.Exploded > st.Launched {
		t.Fatalf("exploded %d > launched %d", st.Exploded, st.Launched)
	}
}

func TestShowPrunesFinishedFireworks(t *testing.T) {
	cfg := testConfig(t)
	cfg.Spawn.Odds = math.MaxInt
	s := NewShow(*cfg, NewRand(6), nil)

	s.Launch()
	if got := s.Stats(); got.Fireworks != 1 || got.Rockets != 1 {
		t.Fatalf("stats after launch = %+v", got)
	}

	sawSparks := false
	for len(s.Fireworks()) > 0 {
		if s.Tick() > 2000 {
			t.Fatalf("firework never pruned")
		}
		s.Step()
		if s.Stats().Sparks > 0 {
			sawSparks = true
		}
	}
	if !sawSparks {
		t.Fatalf("never observed sparks")
	}
	st := s.Stats()
	if st.Launched != 1 || st.Exploded != 1 || st.Sparks != 0 {
		t.Fatalf("final stats = %+v", st)
	}
}

func TestShowDrawClearsFirst(t *testing.T) {
	cfg := testConfig(t)
	cfg.Spawn.Odds = math.MaxInt
	s := NewShow(*cfg, NewRand(8), nil)

	rc := &recordCanvas{}
	s.Draw(rc)
	if len(rc.clears) != 1 || rc.clears[0] != cfg.Screen.Background.NRGBA() || len(rc.circles) != 0 {
		t.Fatalf("empty show: clears=%v circles=%d", rc.clears, len(rc.circles))
	}

	s.Launch()
	s.Launch()
	s.Step()
	rc = &recordCanvas{}
	s.Draw(rc)
	if len(rc.clears) != 1 || len(rc.circles) != 12 {
		t.Fatalf("two rockets: clears=%d circles=%d, want 1/12", len(rc.clears), len(rc.circles))
	}
}

func TestShowOwnsConfigCopy(t *testing.T) {
	cfg := testConfig(t)
	s := NewShow(*cfg, NewRand(9), nil)
	wantTrail := cfg.Trail.Colors[0]
	wantAccent := cfg.Palette.Accents[0]

	cfg.Physics.GravityY = 99
	cfg.Trail.Colors[0] = config.Color{R: 1, G: 2, B: 3, A: 255}
	cfg.Palette.Accents[0] = config.Color{R: 9, G: 9, B: 9, A: 255}

	got := s.Config()
	if got.Physics.GravityY != 0.3 {
		t.Fatalf("show gravity = %v after caller mutation, want 0.3", got.Physics.GravityY)
	}
	if got.Trail.Colors[0] != wantTrail {
		t.Fatalf("show trail color 0 = %v after caller mutation, want %v", got.Trail.Colors[0], wantTrail)
	}
	if got.Palette.Accents[0] != wantAccent {
		t.Fatalf("show accent 0 = %v after caller mutation, want %v", got.Palette.Accents[0], wantAccent)
	}

	// the returned value is detached too
	got.Trail.Colors[0] = config.Color{R: 7, A: 255}
	if c := s.Config().Trail.Colors[0]; c != wantTrail {
		t.Fatalf("Config() result aliases the show: trail color 0 = %v", c)
	}
}
