package minigame

import (
	"github.com/mkoberg/lebenslauf/internal/entropy"
	"github.com/mkoberg/lebenslauf/internal/stats"
)

// AutoRunner simulates minigames headlessly: the score is drawn
// around the stat the game exercises, so a sharp player tends to win
// the math quiz and a fit one the driving test. Unknown ids resolve
// neutrally, like NopRunner.
type AutoRunner struct {
	RNG entropy.Source
}

// winThreshold is the score needed to win; scores run 0-10.
const winThreshold = 6

func (r AutoRunner) Run(id string, st stats.PlayerStats) (Result, error) {
	var skill int
	var reward stats.EffectDelta
	switch id {
	case "math":
		skill = st.IQ
		reward = stats.EffectDelta{IQ: 2}
	case "driving":
		skill = st.Fitness
		reward = stats.EffectDelta{Luck: 1}
	case "sport":
		skill = st.Fitness
		reward = stats.EffectDelta{Fitness: 2, Health: 1}
	default:
		return Result{}, nil
	}

	// skill 0 → scores 0-5, skill 100 → 5-10.
	score := skill/20 + r.RNG.Intn(6)
	res := Result{Score: score, Won: score >= winThreshold}
	if res.Won {
		res.Effects = reward
	}
	return res, nil
}
