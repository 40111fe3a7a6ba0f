package event

import (
	"errors"

	"github.com/mkoberg/lebenslauf/internal/entropy"
	"github.com/mkoberg/lebenslauf/internal/stats"
)

// ErrNoEligibleEvents signals an empty draw. The orchestrator treats
// it as a "nothing happens" year, never as a failure.
var ErrNoEligibleEvents = errors.New("no eligible events for this age")

// PlayerView is the slice of world state the selector needs. The
// orchestrator builds it from the snapshot; the selector never touches
// the snapshot itself.
type PlayerView struct {
	Age          int
	Luck         int
	HasJob       bool
	HasPartner   bool
	OwnsProperty bool
	InSchool     bool
	Imprisoned   bool
	Triggered    map[string]bool // Unique event ids already fired this life
}

// EligibleForAge filters the catalog by the [MinAge,MaxAge] window.
func EligibleForAge(catalog []GameEvent, age int) []GameEvent {
	var out []GameEvent
	for _, e := range catalog {
		if e.MinAge <= age && age <= e.MaxAge {
			out = append(out, e)
		}
	}
	return out
}

// Eligible applies the full filter chain: age window, per-life
// uniqueness, typed preconditions, and positive weight.
func Eligible(catalog []GameEvent, v PlayerView) []GameEvent {
	var out []GameEvent
	for _, e := range EligibleForAge(catalog, v.Age) {
		if e.Weight <= 0 {
			continue
		}
		if e.Unique() && v.Triggered[e.ID] {
			continue
		}
		if !preconditionsMet(&e, v) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func preconditionsMet(e *GameEvent, v PlayerView) bool {
	for _, req := range e.Requires {
		switch req {
		case NeedsJob:
			if !v.HasJob {
				return false
			}
		case NeedsNoJob:
			if v.HasJob {
				return false
			}
		case NeedsPartner:
			if !v.HasPartner {
				return false
			}
		case NeedsNoPartner:
			if v.HasPartner {
				return false
			}
		case NeedsOwnedProperty:
			if !v.OwnsProperty {
				return false
			}
		case NeedsSchoolAge:
			if !v.InSchool {
				return false
			}
		default:
			// Unknown codes fail closed: a row asking for something
			// this engine cannot verify is not drawn.
			return false
		}
	}
	return true
}

// LuckFactor returns the selection weight multiplier for events with a
// net-positive option. Luck 70 and above scales up toward 1.5x at 100;
// 30 and below scales down toward a 0.5x floor at 0. Mid-range luck
// leaves the weight untouched — a soft bias, not a hard filter.
func LuckFactor(luck int) float64 {
	if luck > 30 && luck < 70 {
		return 1.0
	}
	f := 1.0 + float64(luck-50)/100.0
	if f > 1.5 {
		f = 1.5
	}
	if f < 0.5 {
		f = 0.5
	}
	return f
}

// hasPositiveOption reports whether any option is a net benefit.
func hasPositiveOption(e *GameEvent) bool {
	for _, o := range e.Options {
		if stats.NetPositive(o.Effects) {
			return true
		}
	}
	return false
}

// EffectiveWeight is the selection weight after luck biasing.
func EffectiveWeight(e *GameEvent, luck int) float64 {
	w := e.Weight
	if hasPositiveOption(e) {
		w *= LuckFactor(luck)
	}
	return w
}

// Select draws the next event for the player. While imprisoned it
// bypasses the catalog entirely and draws from the fixed prison pool.
// An empty eligible set yields ErrNoEligibleEvents, never a panic.
func Select(rng entropy.Source, catalog []GameEvent, v PlayerView) (GameEvent, error) {
	if v.Imprisoned {
		return drawWeighted(rng, PrisonPool(), v.Luck)
	}
	return drawWeighted(rng, Eligible(catalog, v), v.Luck)
}

func drawWeighted(rng entropy.Source, pool []GameEvent, luck int) (GameEvent, error) {
	total := 0.0
	weights := make([]float64, len(pool))
	for i := range pool {
		w := EffectiveWeight(&pool[i], luck)
		weights[i] = w
		total += w
	}
	if total <= 0 {
		return GameEvent{}, ErrNoEligibleEvents
	}

	r := rng.Float64() * total
	for i := range pool {
		r -= weights[i]
		if r < 0 {
			return pool[i], nil
		}
	}
	// Floating point slack: fall back to the last weighted entry.
	for i := len(pool) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return pool[i], nil
		}
	}
	return GameEvent{}, ErrNoEligibleEvents
}
