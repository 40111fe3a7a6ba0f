package property

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// MarketIndex models the housing market cycle as smooth noise over
// the simulated year. Neighbouring years get similar factors, so
// booms and slumps last a few years instead of flickering.
type MarketIndex struct {
	noise opensimplex.Noise
}

// NewMarketIndex creates a market deterministic in the given seed.
func NewMarketIndex(seed int64) *MarketIndex {
	return &MarketIndex{noise: opensimplex.NewNormalized(seed)}
}

// Market factor bounds around the neutral 1.0.
const (
	factorMin  = 0.8
	factorSpan = 0.4
)

// Factor returns the price multiplier for a year, in [0.8, 1.2].
func (m *MarketIndex) Factor(year int) float64 {
	// Low frequency: one noise step stretches over roughly a decade.
	v := m.noise.Eval2(float64(year)/10.0, 0)
	return factorMin + factorSpan*v
}
