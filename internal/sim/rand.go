package sim

import "math/rand/v2"

// Rand is the source of every random draw in the show.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// NewRand returns a PCG-backed source. A zero seed draws one from the runtime,
// so two runs never match.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// intBetween draws uniformly from [lo, hi] inclusive.
func intBetween(r Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// intStep draws uniformly from lo, lo+step, ... below hi.
func intStep(r Rand, lo, hi, step int) int {
	n := (hi - lo + step - 1) / step
	return lo + step*r.IntN(n)
}

func uniform(r Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}
