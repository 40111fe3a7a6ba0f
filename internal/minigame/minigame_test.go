package minigame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoberg/lebenslauf/internal/stats"
)

type fixedInts struct{ v int }

func (f fixedInts) Float64() float64 { return 0.5 }
func (f fixedInts) Intn(n int) int {
	if f.v >= n {
		return n - 1
	}
	return f.v
}

func TestAutoRunner_ScoreTracksSkill(t *testing.T) {
	sharp := stats.PlayerStats{IQ: 100}
	dull := stats.PlayerStats{IQ: 0}

	r := AutoRunner{RNG: fixedInts{v: 3}}

	res, err := r.Run("math", sharp)
	require.NoError(t, err)
	assert.Equal(t, 8, res.Score)
	assert.True(t, res.Won)
	assert.Equal(t, stats.EffectDelta{IQ: 2}, res.Effects)

	res, err = r.Run("math", dull)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Score)
	assert.False(t, res.Won)
	assert.True(t, res.Effects.IsZero(), "losing pays nothing")
}

func TestAutoRunner_UnknownIDIsNeutral(t *testing.T) {
	r := AutoRunner{RNG: fixedInts{v: 5}}
	res, err := r.Run("schach", stats.PlayerStats{})
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)
}

func TestStubRunner(t *testing.T) {
	r := StubRunner{"math": {Score: 5, Won: true}}

	res, err := r.Run("math", stats.PlayerStats{})
	require.NoError(t, err)
	assert.True(t, res.Won)

	_, err = r.Run("driving", stats.PlayerStats{})
	assert.Error(t, err)
}
