// Package crime provides the crime catalog, the success-probability
// model, and outcome resolution (reward or sentence).
package crime

import (
	"github.com/mkoberg/lebenslauf/internal/entropy"
	"github.com/mkoberg/lebenslauf/internal/player"
	"github.com/mkoberg/lebenslauf/internal/stats"
)

// Crime is one entry in the static crime catalog.
type Crime struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	BaseSuccessRate float64 `json:"base_success_rate"` // 0..1
	RewardMin       int     `json:"reward_min"`
	RewardMax       int     `json:"reward_max"`
	PrisonMin       int     `json:"prison_min"` // Years
	PrisonMax       int     `json:"prison_max"`
}

// Catalog returns the static crime table.
func Catalog() []Crime {
	return []Crime{
		{ID: "cr_schwarzfahren", Title: "Schwarzfahren",
			BaseSuccessRate: 0.8, RewardMin: 3, RewardMax: 10, PrisonMin: 1, PrisonMax: 1},
		{ID: "cr_ladendiebstahl", Title: "Ladendiebstahl",
			BaseSuccessRate: 0.6, RewardMin: 20, RewardMax: 200, PrisonMin: 1, PrisonMax: 2},
		{ID: "cr_einbruch", Title: "Einbruch",
			BaseSuccessRate: 0.4, RewardMin: 500, RewardMax: 5_000, PrisonMin: 2, PrisonMax: 5},
		{ID: "cr_autodiebstahl", Title: "Autodiebstahl",
			BaseSuccessRate: 0.3, RewardMin: 2_000, RewardMax: 20_000, PrisonMin: 3, PrisonMax: 7},
		{ID: "cr_banküberfall", Title: "Banküberfall",
			BaseSuccessRate: 0.15, RewardMin: 10_000, RewardMax: 150_000, PrisonMin: 5, PrisonMax: 12},
	}
}

// ByID looks up a crime in the catalog.
func ByID(id string) (Crime, bool) {
	for _, c := range Catalog() {
		if c.ID == id {
			return c, true
		}
	}
	return Crime{}, false
}

// Chance bounds: even a hopeless amateur keeps a sliver of luck, and
// no record of success makes a crime a sure thing.
const (
	chanceFloor   = 5.0
	chanceCeiling = 95.0
)

// EffectiveChance computes the success probability (in percent) for a
// player attempting a crime:
//
//	base*100 + (iq-50)*0.2 + (luck-50)*0.3 + priorSuccesses*2 - priorCatches*5
//
// clamped to [5,95]. The formula is a fixed contract; downstream saves
// and tests depend on it verbatim.
func EffectiveChance(c Crime, st stats.PlayerStats, record []player.CrimeRecord) float64 {
	successes, catches := 0, 0
	for _, r := range record {
		if r.Caught {
			catches++
		} else {
			successes++
		}
	}

	chance := c.BaseSuccessRate*100 +
		float64(st.IQ-50)*0.2 +
		float64(st.Luck-50)*0.3 +
		float64(successes)*2 -
		float64(catches)*5

	if chance < chanceFloor {
		return chanceFloor
	}
	if chance > chanceCeiling {
		return chanceCeiling
	}
	return chance
}

// Outcome is the resolved result of one crime attempt. The record
// entry is ready to append; the caller owns committing the state
// transition (money, prison, job loss).
type Outcome struct {
	Success     bool               `json:"success"`
	Reward      int                `json:"reward,omitempty"`
	PrisonYears int                `json:"prison_years,omitempty"`
	Record      player.CrimeRecord `json:"record"`
}

// Resolve draws once against the effective chance. Success pays a
// reward in [RewardMin,RewardMax]; failure sentences the player to
// [PrisonMin,PrisonMax] years.
func Resolve(rng entropy.Source, c Crime, st stats.PlayerStats, record []player.CrimeRecord) Outcome {
	chance := EffectiveChance(c, st, record)

	if rng.Float64()*100 < chance {
		reward := entropy.IntBetween(rng, c.RewardMin, c.RewardMax)
		return Outcome{
			Success: true,
			Reward:  reward,
			Record:  player.CrimeRecord{CrimeID: c.ID, Caught: false, Reward: reward},
		}
	}

	years := entropy.IntBetween(rng, c.PrisonMin, c.PrisonMax)
	return Outcome{
		PrisonYears: years,
		Record:      player.CrimeRecord{CrimeID: c.ID, Caught: true, PrisonYears: years},
	}
}
