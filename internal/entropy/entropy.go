// Package entropy provides the random source for the simulation.
// Randomness is the only non-determinism in the engine, so every
// subsystem draws from an injected Source instead of the global
// generator. Tests substitute a scripted Source; production code uses
// a math/rand generator seeded from crypto/rand.
package entropy

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source is the minimal random interface the subsystems draw from.
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// NewSeed generates a high-entropy seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewRand returns a seeded generator. A zero seed means "pick one":
// the seed is drawn from crypto/rand, falling back to 1 if even that
// fails (it never should, but a deterministic fallback beats a panic).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			s = 1
		}
		seed = s
	}
	return rand.New(rand.NewSource(seed))
}

// IntBetween returns a uniform draw in [min, max] inclusive.
// Degenerate ranges collapse to min.
func IntBetween(rng Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}
