package crime

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkoberg/lebenslauf/internal/player"
	"github.com/mkoberg/lebenslauf/internal/stats"
)

type fixedSource struct {
	f float64
	n int
}

func (s fixedSource) Float64() float64 { return s.f }
func (s fixedSource) Intn(n int) int   { return s.n }

func TestEffectiveChance_Formula(t *testing.T) {
	c := Crime{BaseSuccessRate: 0.3}

	tests := []struct {
		name   string
		st     stats.PlayerStats
		record []player.CrimeRecord
		want   float64
	}{
		{
			name: "baseline 50/50 stats no record",
			st:   stats.PlayerStats{IQ: 50, Luck: 50},
			want: 30,
		},
		{
			name: "iq and luck shift",
			st:   stats.PlayerStats{IQ: 100, Luck: 100},
			want: 30 + 50*0.2 + 50*0.3, // 55
		},
		{
			name: "prior successes help, catches hurt",
			st:   stats.PlayerStats{IQ: 50, Luck: 50},
			record: []player.CrimeRecord{
				{Caught: false}, {Caught: false}, {Caught: true},
			},
			want: 30 + 2*2 - 5, // 29
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, EffectiveChance(c, tc.st, tc.record), 1e-9)
		})
	}
}

func TestEffectiveChance_ClampedToRange(t *testing.T) {
	hopeless := Crime{BaseSuccessRate: 0}
	record := make([]player.CrimeRecord, 0, 20)
	for i := 0; i < 20; i++ {
		record = append(record, player.CrimeRecord{Caught: true})
	}
	assert.Equal(t, 5.0, EffectiveChance(hopeless, stats.PlayerStats{IQ: 0, Luck: 0}, record))

	sure := Crime{BaseSuccessRate: 1}
	veteran := make([]player.CrimeRecord, 0, 50)
	for i := 0; i < 50; i++ {
		veteran = append(veteran, player.CrimeRecord{Caught: false})
	}
	assert.Equal(t, 95.0, EffectiveChance(sure, stats.PlayerStats{IQ: 100, Luck: 100}, veteran))
}

func TestResolve_SuccessAndFailureBranches(t *testing.T) {
	c := Crime{ID: "cr_test", BaseSuccessRate: 0.3,
		RewardMin: 100, RewardMax: 500, PrisonMin: 2, PrisonMax: 4}
	st := stats.PlayerStats{IQ: 50, Luck: 50} // effective chance exactly 30%

	// Draw below 0.30: success, reward = min + Intn(401).
	out := Resolve(fixedSource{f: 0.29, n: 150}, c, st, nil)
	assert.True(t, out.Success)
	assert.Equal(t, 250, out.Reward)
	assert.Equal(t, player.CrimeRecord{CrimeID: "cr_test", Caught: false, Reward: 250}, out.Record)

	// Draw at 0.30: failure, sentence = min + Intn(3).
	out = Resolve(fixedSource{f: 0.30, n: 1}, c, st, nil)
	assert.False(t, out.Success)
	assert.Equal(t, 3, out.PrisonYears)
	assert.True(t, out.Record.Caught)
	assert.Equal(t, 3, out.Record.PrisonYears)
}

func TestResolve_RewardStaysInRange(t *testing.T) {
	c := Crime{ID: "cr_range", BaseSuccessRate: 1, RewardMin: 10, RewardMax: 10}
	out := Resolve(fixedSource{f: 0, n: 0}, c, stats.PlayerStats{IQ: 50, Luck: 50}, nil)
	assert.Equal(t, 10, out.Reward, "degenerate range collapses to min")
}

func TestCatalogIsWellFormed(t *testing.T) {
	for _, c := range Catalog() {
		assert.NotEmpty(t, c.ID)
		assert.Greater(t, c.BaseSuccessRate, 0.0)
		assert.LessOrEqual(t, c.BaseSuccessRate, 1.0)
		assert.LessOrEqual(t, c.RewardMin, c.RewardMax)
		assert.LessOrEqual(t, c.PrisonMin, c.PrisonMax)
		assert.GreaterOrEqual(t, c.PrisonMin, 1)
	}
}
