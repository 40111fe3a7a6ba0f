// Package event provides the life-event catalog model and the
// weighted, luck-biased selector that feeds the player one event per
// simulated year.
package event

import (
	"errors"
	"fmt"

	"github.com/mkoberg/lebenslauf/internal/stats"
)

// Precondition gates an event on cross-subsystem state. Rules are
// typed codes on the event row, never inferred from title text.
type Precondition string

const (
	NeedsJob           Precondition = "needs_job"
	NeedsNoJob         Precondition = "needs_no_job"
	NeedsPartner       Precondition = "needs_partner"
	NeedsNoPartner     Precondition = "needs_no_partner"
	NeedsOwnedProperty Precondition = "needs_owned_property"
	NeedsSchoolAge     Precondition = "needs_school_age"
)

// Action marks what an option does beyond plain stat/money effects.
// Side effects are driven by these codes, not by matching label text.
type Action string

const (
	ActionNone            Action = ""
	ActionBuyProperty     Action = "buy_property"
	ActionAddSibling      Action = "add_sibling"
	ActionAddFriend       Action = "add_friend"
	ActionRaiseEducation  Action = "raise_education"
	ActionDriversLicense  Action = "drivers_license"
	ActionLoseJob         Action = "lose_job"
)

// Tags that make an event unique per life: once chosen, it never
// becomes eligible again within the same playthrough.
var uniqueTags = map[string]bool{
	"milestone": true,
	"club":      true,
	"driving":   true,
}

// Option is one choice offered by an event.
type Option struct {
	ID         string            `json:"id"`
	Label      string            `json:"label"`
	Effects    stats.EffectDelta `json:"effects"`
	ResultText string            `json:"result_text"`
	Minigame   string            `json:"minigame,omitempty"` // Collaborator id, empty = none
	Action     Action            `json:"action,omitempty"`
}

// GameEvent is one immutable catalog entry.
type GameEvent struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Text     string         `json:"text"`
	MinAge   int            `json:"min_age"`
	MaxAge   int            `json:"max_age"`
	Category string         `json:"category"`
	Weight   float64        `json:"weight"`
	Tags     []string       `json:"tags,omitempty"`
	Requires []Precondition `json:"requires,omitempty"`
	Options  []Option       `json:"options"`
}

// HasTag reports whether the event carries the given tag.
func (e *GameEvent) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Unique reports whether the event may fire at most once per life.
func (e *GameEvent) Unique() bool {
	for _, t := range e.Tags {
		if uniqueTags[t] {
			return true
		}
	}
	return false
}

// Option returns the option with the given id.
func (e *GameEvent) Option(id string) (Option, bool) {
	for _, o := range e.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

var (
	errNoID      = errors.New("event has no id")
	errNoOptions = errors.New("event has no options")
)

// Validate checks a catalog row at load time. Invalid rows are
// quarantined by the loader, never trusted at runtime.
func (e *GameEvent) Validate() error {
	if e.ID == "" {
		return errNoID
	}
	if e.Title == "" {
		return fmt.Errorf("event %s: title empty", e.ID)
	}
	if len(e.Options) == 0 {
		return fmt.Errorf("event %s: %w", e.ID, errNoOptions)
	}
	if e.MinAge < 0 || e.MaxAge < e.MinAge {
		return fmt.Errorf("event %s: bad age window [%d,%d]", e.ID, e.MinAge, e.MaxAge)
	}
	if e.Weight < 0 {
		return fmt.Errorf("event %s: negative weight %f", e.ID, e.Weight)
	}
	seen := make(map[string]bool, len(e.Options))
	for _, o := range e.Options {
		if o.ID == "" {
			return fmt.Errorf("event %s: option without id", e.ID)
		}
		if seen[o.ID] {
			return fmt.Errorf("event %s: duplicate option id %s", e.ID, o.ID)
		}
		seen[o.ID] = true
	}
	return nil
}
