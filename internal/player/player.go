// Package player provides the core character model: identity, money,
// education, employment, and the criminal record.
package player

import (
	"github.com/mkoberg/lebenslauf/internal/stats"
)

// Gender for demographic simulation.
type Gender uint8

const (
	GenderMale   Gender = 0
	GenderFemale Gender = 1
)

// String returns the display name of a gender.
func (g Gender) String() string {
	if g == GenderFemale {
		return "weiblich"
	}
	return "männlich"
}

// Education is an ordered ladder. Requirements compare by rank, so a
// Master also satisfies a Bachelor requirement.
type Education uint8

const (
	EduNone Education = iota
	EduHauptschule
	EduRealschule
	EduAbitur
	EduAusbildung
	EduBachelor
	EduMaster
	EduPromotion
)

var educationNames = map[Education]string{
	EduNone:        "keine",
	EduHauptschule: "Hauptschulabschluss",
	EduRealschule:  "Mittlere Reife",
	EduAbitur:      "Abitur",
	EduAusbildung:  "Ausbildung",
	EduBachelor:    "Bachelor",
	EduMaster:      "Master",
	EduPromotion:   "Promotion",
}

// String returns the display name of an education level.
func (e Education) String() string {
	if n, ok := educationNames[e]; ok {
		return n
	}
	return "keine"
}

// AtLeast reports whether e satisfies the required rank.
func (e Education) AtLeast(req Education) bool {
	return e >= req
}

// Job is the player's current employment. Offers live in the job
// package; an accepted offer is copied here wholesale.
type Job struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Salary int    `json:"salary"` // Euros per year
}

// SideJob is a small secondary income, available from age 14.
type SideJob struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	YearlyPay int    `json:"yearly_pay"`
}

// CrimeRecord is one append-only criminal record entry. Caught entries
// carry the sentence; uncaught ones carry the take.
type CrimeRecord struct {
	CrimeID     string `json:"crime_id"`
	Caught      bool   `json:"caught"`
	Reward      int    `json:"reward,omitempty"`
	PrisonYears int    `json:"prison_years,omitempty"`
}

// Player is the simulated character. Created once at game start,
// mutated every decision and every year-advance, never deleted —
// death only flips Alive.
type Player struct {
	Name      string `json:"name"`
	Gender    Gender `json:"gender"`
	BirthYear int    `json:"birth_year"`
	Age       int    `json:"age"`

	Money int               `json:"money"` // Euros, may go negative
	Stats stats.PlayerStats `json:"stats"`

	Education Education `json:"education"`
	Job       *Job      `json:"job,omitempty"`
	SideJob   *SideJob  `json:"side_job,omitempty"`

	HasDriversLicense bool `json:"has_drivers_license,omitempty"`

	CriminalRecord       []CrimeRecord `json:"criminal_record,omitempty"`
	InPrison             bool          `json:"in_prison"`
	PrisonYearsRemaining int           `json:"prison_years_remaining,omitempty"`

	// Per-life uniqueness for milestone events. Persisted with the
	// player so uniqueness survives reloads.
	TriggeredEventIDs map[string]bool `json:"triggered_event_ids,omitempty"`

	Alive bool `json:"alive"`
}

// New creates a newborn player with the given starting attributes.
func New(name string, gender Gender, birthYear int, st stats.PlayerStats) *Player {
	return &Player{
		Name:              name,
		Gender:            gender,
		BirthYear:         birthYear,
		Stats:             st.Clamped(),
		TriggeredEventIDs: make(map[string]bool),
		Alive:             true,
	}
}

// IsDead reports the terminal condition.
func (p *Player) IsDead() bool {
	return !p.Alive || p.Stats.Health <= 0
}

// Imprisoned reports whether the player is currently serving time.
func (p *Player) Imprisoned() bool {
	return p.InPrison && p.PrisonYearsRemaining > 0
}

// SuccessfulCrimes counts uncaught record entries.
func (p *Player) SuccessfulCrimes() int {
	n := 0
	for _, r := range p.CriminalRecord {
		if !r.Caught {
			n++
		}
	}
	return n
}

// CaughtCrimes counts caught record entries.
func (p *Player) CaughtCrimes() int {
	n := 0
	for _, r := range p.CriminalRecord {
		if r.Caught {
			n++
		}
	}
	return n
}

// HasConviction reports whether any record entry ended in a catch.
// Jobs with a clean-record requirement check this, not mere attempts.
func (p *Player) HasConviction() bool {
	return p.CaughtCrimes() > 0
}

// MarkTriggered records a unique event id against this life.
func (p *Player) MarkTriggered(eventID string) {
	if p.TriggeredEventIDs == nil {
		p.TriggeredEventIDs = make(map[string]bool)
	}
	p.TriggeredEventIDs[eventID] = true
}
