// Package minigame defines the collaborator contract for the external
// minigames. The engine merges a result's effects with the pending
// option effects and never inspects minigame internals.
package minigame

import (
	"fmt"

	"github.com/mkoberg/lebenslauf/internal/stats"
)

// Result is what a minigame hands back to the engine.
type Result struct {
	Score   int               `json:"score"`
	Won     bool              `json:"won"`
	Effects stats.EffectDelta `json:"effects"`
}

// Runner executes a minigame by id against the player's current
// attributes. Implementations live outside the engine.
type Runner interface {
	Run(id string, st stats.PlayerStats) (Result, error)
}

// NopRunner is the fallback when no minigame frontend is wired in:
// every game resolves to a neutral, effect-free result.
type NopRunner struct{}

// Run returns a zero result for any id.
func (NopRunner) Run(id string, _ stats.PlayerStats) (Result, error) {
	return Result{}, nil
}

// StubRunner returns canned results per id; unknown ids fail.
// Used by tests and the headless CLI.
type StubRunner map[string]Result

// Run looks up the canned result for the id.
func (r StubRunner) Run(id string, _ stats.PlayerStats) (Result, error) {
	res, ok := r[id]
	if !ok {
		return Result{}, fmt.Errorf("unknown minigame %q", id)
	}
	return res, nil
}
