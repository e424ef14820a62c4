package engine

import "math/rand/v2"

// LCG parameters (Numerical Recipes).
const (
	lcgA uint32 = 1664525
	lcgC uint32 = 1013904223
	lcgM        = 1 << 32
)

// Sequence is the seeded generator behind piece selection.
// It is a value type: Next returns the advanced generator instead of
// mutating the receiver, so a State can be copied and replayed freely.
type Sequence struct {
	z uint32
}

// NewSequence creates a generator with the given seed.
func NewSequence(seed uint32) Sequence {
	return Sequence{z: seed}
}

// Next draws a value in [0, 1) and returns it with the advanced generator.
// uint32 arithmetic wraps, which is exactly mod 2^32.
func (s Sequence) Next() (float64, Sequence) {
	z := lcgA*s.z + lcgC
	return float64(z) / lcgM, Sequence{z: z}
}

// Seed returns the raw generator state.
func (s Sequence) Seed() uint32 {
	return s.z
}

// debrisStream selects the PCG stream used for refill cells.
const debrisStream = 0x9e3779b97f4a7c15

// Debris is the random source for refill cells after a line clear.
// It never shares state with the piece Sequence; restarts reseed both
// from separate values.
type Debris struct {
	pcg rand.PCG
}

// NewDebris creates a debris source with the given seed.
func NewDebris(seed uint64) Debris {
	return Debris{pcg: *rand.NewPCG(seed, debrisStream)}
}

// IntN draws a value in [0, n) and returns it with the advanced source.
// n must be positive.
func (d Debris) IntN(n int) (int, Debris) {
	src := d.pcg
	v := rand.New(&src).IntN(n)
	return v, Debris{pcg: src}
}
