// Package engine provides the year-advancement orchestrator. It owns
// the single mutable snapshot; every subsystem is a pure function of
// the slices it is handed, and only the orchestrator commits results.
package engine

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/mkoberg/lebenslauf/internal/entropy"
	"github.com/mkoberg/lebenslauf/internal/event"
	"github.com/mkoberg/lebenslauf/internal/minigame"
	"github.com/mkoberg/lebenslauf/internal/player"
	"github.com/mkoberg/lebenslauf/internal/pregnancy"
	"github.com/mkoberg/lebenslauf/internal/property"
	"github.com/mkoberg/lebenslauf/internal/relationship"
	"github.com/mkoberg/lebenslauf/internal/stats"
)

// Phase is the orchestrator state machine.
type Phase uint8

const (
	PhaseAwaitingChoice Phase = iota
	PhaseEffectsApplied
	PhaseReadyToAdvance
	PhaseAwaitingBirthNames
	PhaseDead
)

var phaseNames = map[Phase]string{
	PhaseAwaitingChoice:     "awaiting_choice",
	PhaseEffectsApplied:     "effects_applied",
	PhaseReadyToAdvance:     "ready_to_advance",
	PhaseAwaitingBirthNames: "awaiting_birth_names",
	PhaseDead:               "dead",
}

// String returns the wire name of a phase.
func (p Phase) String() string { return phaseNames[p] }

// TimelineEntry is one committed occurrence in the life.
type TimelineEntry struct {
	Year     int    `json:"year"`
	Age      int    `json:"age"`
	Category string `json:"category"` // "event", "job", "crime", "family", "death", ...
	Text     string `json:"text"`
}

// GameState is the complete snapshot. It is what gets saved after
// every committed change and what the life archive receives at death.
type GameState struct {
	Year int `json:"year"`

	Player        player.Player      `json:"player"`
	Relationships relationship.State `json:"relationships"`
	Property      property.State     `json:"property"`
	Pregnancy     pregnancy.State    `json:"pregnancy"`

	Phase        Phase            `json:"phase"`
	CurrentEvent *event.GameEvent `json:"current_event,omitempty"`

	// Genders of newborns awaiting name confirmation. While set, the
	// year cannot advance.
	PendingBabies []player.Gender `json:"pending_babies,omitempty"`

	// Purchase offers regenerated each year from the market index.
	YearListings []property.Property `json:"year_listings,omitempty"`

	Timeline []TimelineEntry `json:"timeline,omitempty"`

	CauseOfDeath string `json:"cause_of_death,omitempty"`
}

// Clone returns a state copy with top-level slices and maps detached,
// safe to hand to other goroutines.
func (s GameState) Clone() GameState {
	s.Player.CriminalRecord = slices.Clone(s.Player.CriminalRecord)
	s.Player.TriggeredEventIDs = maps.Clone(s.Player.TriggeredEventIDs)
	s.Relationships.ExPartners = slices.Clone(s.Relationships.ExPartners)
	s.Relationships.Children = slices.Clone(s.Relationships.Children)
	s.Relationships.Family = slices.Clone(s.Relationships.Family)
	s.Relationships.Friends = slices.Clone(s.Relationships.Friends)
	s.Relationships.ActivityUsage = maps.Clone(s.Relationships.ActivityUsage)
	if s.Relationships.Partner != nil {
		p := *s.Relationships.Partner
		s.Relationships.Partner = &p
	}
	s.Property.Owned = slices.Clone(s.Property.Owned)
	if s.Property.Rented != nil {
		r := *s.Property.Rented
		s.Property.Rented = &r
	}
	s.Pregnancy.Genders = slices.Clone(s.Pregnancy.Genders)
	s.PendingBabies = slices.Clone(s.PendingBabies)
	s.YearListings = slices.Clone(s.YearListings)
	s.Timeline = slices.Clone(s.Timeline)
	if s.CurrentEvent != nil {
		e := *s.CurrentEvent
		s.CurrentEvent = &e
	}
	return s
}

// Store is the persistence collaborator. Saves happen after every
// committed change; archive happens once at death. Both are
// fire-and-forget from the engine's perspective.
type Store interface {
	SaveGame(state GameState) error
	ArchiveLife(state GameState, cause string) error
}

// Options wires the collaborators into a Game.
type Options struct {
	Catalog    []event.GameEvent // Falls back to the built-in catalog
	RNG        entropy.Source    // Falls back to a crypto-seeded generator
	Minigames  minigame.Runner   // Falls back to NopRunner
	Store      Store             // Optional; nil disables persistence
	MarketSeed int64
}

// Game is the orchestrator. All mutation goes through its methods
// under one lock; the simulation itself is strictly turn-based.
type Game struct {
	mu    sync.Mutex
	state GameState

	catalog   []event.GameEvent
	rng       entropy.Source
	minigames minigame.Runner
	store     Store
	market    *property.MarketIndex
}

func (o *Options) fill() {
	if o.Catalog == nil {
		o.Catalog = event.Builtin()
	}
	if o.RNG == nil {
		o.RNG = entropy.NewRand(0)
	}
	if o.Minigames == nil {
		o.Minigames = minigame.NopRunner{}
	}
}

// New starts a fresh life in the given year. Starting attributes are
// rolled mid-range; the family roster gets two parents and sometimes
// a sibling.
func New(name string, gender player.Gender, startYear int, opts Options) *Game {
	opts.fill()

	g := &Game{
		catalog:   opts.Catalog,
		rng:       opts.RNG,
		minigames: opts.Minigames,
		store:     opts.Store,
		market:    property.NewMarketIndex(opts.MarketSeed),
	}

	st := stats.PlayerStats{
		IQ:      entropy.IntBetween(g.rng, 30, 75),
		Health:  entropy.IntBetween(g.rng, 60, 95),
		Fitness: entropy.IntBetween(g.rng, 30, 75),
		Looks:   entropy.IntBetween(g.rng, 25, 85),
		Luck:    entropy.IntBetween(g.rng, 10, 90),
	}

	g.state = GameState{
		Year:          startYear,
		Player:        *player.New(name, gender, startYear, st),
		Relationships: relationship.NewFamily(g.rng),
		Phase:         PhaseReadyToAdvance,
	}
	g.state.YearListings = property.Listings(g.rng, g.market, startYear)
	g.note("milestone", "%s erblickt das Licht der Welt.", name)
	g.persist()
	return g
}

// Restore resumes a saved life.
func Restore(state GameState, opts Options) *Game {
	opts.fill()
	return &Game{
		state:     state,
		catalog:   opts.Catalog,
		rng:       opts.RNG,
		minigames: opts.Minigames,
		store:     opts.Store,
		market:    property.NewMarketIndex(opts.MarketSeed),
	}
}

// Snapshot returns a detached copy of the current state.
func (g *Game) Snapshot() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Clone()
}

// Phase returns the current orchestrator phase.
func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Phase
}

// CurrentEvent returns the pending event, if any.
func (g *Game) CurrentEvent() *event.GameEvent {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state.CurrentEvent == nil {
		return nil
	}
	e := *g.state.CurrentEvent
	return &e
}

// playerView assembles the selector's read-only slice of the snapshot.
func (g *Game) playerView() event.PlayerView {
	p := &g.state.Player
	return event.PlayerView{
		Age:          p.Age,
		Luck:         p.Stats.Luck,
		HasJob:       p.Job != nil,
		HasPartner:   g.state.Relationships.Partner != nil,
		OwnsProperty: g.state.Property.OwnsAny(),
		InSchool:     p.Age >= 6 && p.Age < 19 && p.Education < player.EduAbitur,
		Imprisoned:   p.Imprisoned(),
		Triggered:    p.TriggeredEventIDs,
	}
}

// selectNext draws the next event. An empty pool is a quiet year, not
// an error: the player simply stays ready to advance.
func (g *Game) selectNext() {
	e, err := event.Select(g.rng, g.catalog, g.playerView())
	if err != nil {
		g.state.CurrentEvent = nil
		g.state.Phase = PhaseReadyToAdvance
		return
	}
	g.state.CurrentEvent = &e
	g.state.Phase = PhaseAwaitingChoice
}

// note appends a timeline entry for the current year.
func (g *Game) note(category, format string, args ...any) {
	g.state.Timeline = append(g.state.Timeline, TimelineEntry{
		Year:     g.state.Year,
		Age:      g.state.Player.Age,
		Category: category,
		Text:     fmt.Sprintf(format, args...),
	})
}

// persist auto-saves the snapshot. Persistence failures never
// interrupt the turn.
func (g *Game) persist() {
	if g.store == nil {
		return
	}
	if err := g.store.SaveGame(g.state.Clone()); err != nil {
		slog.Warn("auto-save failed", "error", err)
	}
}

// die marks the terminal state, archives the life, and stops the
// state machine.
func (g *Game) die(cause string) {
	p := &g.state.Player
	p.Alive = false
	g.state.Phase = PhaseDead
	g.state.CurrentEvent = nil
	g.state.CauseOfDeath = cause
	g.note("death", "%s ist gestorben: %s", p.Name, cause)
	slog.Info("life ended", "name", p.Name, "age", p.Age, "cause", cause)

	if g.store != nil {
		if err := g.store.ArchiveLife(g.state.Clone(), cause); err != nil {
			slog.Warn("life archive failed", "error", err)
		}
	}
}

// guard rejects actions in terminal or paused states.
func (g *Game) guard() error {
	switch g.state.Phase {
	case PhaseDead:
		return refuse(RefusalDead, "das Leben ist vorbei")
	case PhaseAwaitingBirthNames:
		return refuse(RefusalNamesRequired, "erst müssen die Neugeborenen Namen bekommen")
	}
	return nil
}
