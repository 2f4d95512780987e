package sim

import (
	"image/color"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/iburimskiy/fireworks/internal/config"
)

// scriptRand replays ints for IntN and records every bound it was asked for.
// Once the script runs out IntN returns n-1, which never triggers decay or spawn.
type scriptRand struct {
	ints  []int
	calls []int
	f     float64
}

func (s *scriptRand) IntN(n int) int {
	s.calls = append(s.calls, n)
	if len(s.ints) == 0 {
		return n - 1
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func (s *scriptRand) Float64() float64 { return s.f }

type circle struct {
	x, y, r float64
	c       color.NRGBA
}

type recordCanvas struct {
	clears  []color.NRGBA
	circles []circle
}

func (rc *recordCanvas) Clear(c color.NRGBA) { rc.clears = append(rc.clears, c) }

func (rc *recordCanvas) FillCircle(x, y, r float64, c color.NRGBA) {
	rc.circles = append(rc.circles, circle{x, y, r, c})
}

type countCues struct {
	liftoffs, explosions int
}

func (c *countCues) Liftoff()   { c.liftoffs++ }
func (c *countCues) Explosion() { c.explosions++ }

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	return &cfg
}

// withinBinomial fails the test if hits is more than 5 standard deviations
// from the mean of Binomial(n, p).
func withinBinomial(t *testing.T, name string, hits, n int, p float64) {
	t.Helper()
	b := distuv.Binomial{N: float64(n), P: p}
	mean, sd := b.Mean(), math.Sqrt(b.Variance())
	if math.Abs(float64(hits)-mean) > 5*sd {
		t.Fatalf("%s: %d hits in %d trials, want %.1f ± %.1f", name, hits, n, mean, 5*sd)
	}
}
