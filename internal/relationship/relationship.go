// Package relationship provides partner search, marriage, children,
// the family roster, friends, and the yearly activity throttle.
package relationship

import (
	"errors"
	"fmt"

	"github.com/mkoberg/lebenslauf/internal/entropy"
	"github.com/mkoberg/lebenslauf/internal/player"
)

// PartnerStatus orders the relationship ladder.
type PartnerStatus uint8

const (
	StatusDating PartnerStatus = iota
	StatusMarried
)

// String returns the display name of a partner status.
func (s PartnerStatus) String() string {
	if s == StatusMarried {
		return "verheiratet"
	}
	return "zusammen"
}

// Partner is the current significant other or an archived ex.
type Partner struct {
	Name          string        `json:"name"`
	Gender        player.Gender `json:"gender"`
	Age           int           `json:"age"`
	Looks         int           `json:"looks"`         // 0-100
	Personality   int           `json:"personality"`   // 0-100
	Compatibility int           `json:"compatibility"` // 0-100
	YearsTogether int           `json:"years_together"`
	Status        PartnerStatus `json:"status"`
}

// Child of the player.
type Child struct {
	Name         string        `json:"name"`
	Gender       player.Gender `json:"gender"`
	Age          int           `json:"age"`
	BirthYear    int           `json:"birth_year"`
	Relationship int           `json:"relationship"` // 0-100
}

// FamilyRole distinguishes the roster entries.
type FamilyRole uint8

const (
	RoleMother FamilyRole = iota
	RoleFather
	RoleSibling
)

// FamilyMember is a parent or sibling.
type FamilyMember struct {
	Name         string        `json:"name"`
	Role         FamilyRole    `json:"role"`
	Gender       player.Gender `json:"gender"`
	Age          int           `json:"age"`
	Alive        bool          `json:"alive"`
	Relationship int           `json:"relationship"` // 0-100
}

// Friend of the player.
type Friend struct {
	Name         string        `json:"name"`
	Gender       player.Gender `json:"gender"`
	Age          int           `json:"age"`
	Relationship int           `json:"relationship"` // 0-100
}

// State is the full relationship slice of the snapshot. The
// orchestrator owns it; functions here mutate only the copy they are
// handed.
type State struct {
	Partner    *Partner  `json:"partner,omitempty"`
	ExPartners []Partner `json:"ex_partners,omitempty"`

	Children []Child        `json:"children,omitempty"`
	Family   []FamilyMember `json:"family,omitempty"`
	Friends  []Friend       `json:"friends,omitempty"`

	// Per-year activity throttle, keyed by activity id. Reset exactly
	// once per year-advance.
	ActivityUsage map[string]int `json:"activity_usage,omitempty"`

	Marriages int `json:"marriages"`
	Divorces  int `json:"divorces"`
}

// NewFamily creates the starting roster: two parents in their late
// twenties to late thirties, occasionally an older sibling.
func NewFamily(rng entropy.Source) State {
	s := State{
		Family: []FamilyMember{
			{Name: RandomName(rng, player.GenderFemale), Role: RoleMother,
				Gender: player.GenderFemale, Age: entropy.IntBetween(rng, 24, 38),
				Alive: true, Relationship: entropy.IntBetween(rng, 70, 95)},
			{Name: RandomName(rng, player.GenderMale), Role: RoleFather,
				Gender: player.GenderMale, Age: entropy.IntBetween(rng, 26, 42),
				Alive: true, Relationship: entropy.IntBetween(rng, 65, 95)},
		},
		ActivityUsage: make(map[string]int),
	}
	if rng.Float64() < 0.4 {
		g := RandomGender(rng)
		s.Family = append(s.Family, FamilyMember{
			Name: RandomName(rng, g), Role: RoleSibling, Gender: g,
			Age: entropy.IntBetween(rng, 1, 6), Alive: true,
			Relationship: entropy.IntBetween(rng, 50, 90),
		})
	}
	return s
}

// FatherFigurePresent reports whether a living father is on the
// roster. Minors with one get family activities paid for.
func (s *State) FatherFigurePresent() bool {
	for _, m := range s.Family {
		if m.Role == RoleFather && m.Alive {
			return true
		}
	}
	return false
}

// FindPartners generates n dating candidates near the player's age.
// Compatibility blends the player's looks with randomness, so pretty
// players meet better matches on average but nothing is guaranteed.
func FindPartners(rng entropy.Source, playerLooks, playerAge, n int) []Partner {
	if n <= 0 {
		n = 3
	}
	out := make([]Partner, 0, n)
	for i := 0; i < n; i++ {
		g := RandomGender(rng)
		compat := clampScore(playerLooks/2 + entropy.IntBetween(rng, 0, 60))
		out = append(out, Partner{
			Name:          RandomName(rng, g),
			Gender:        g,
			Age:           clampAge(playerAge + entropy.IntBetween(rng, -4, 4)),
			Looks:         entropy.IntBetween(rng, 20, 95),
			Personality:   entropy.IntBetween(rng, 20, 95),
			Compatibility: compat,
			Status:        StatusDating,
		})
	}
	return out
}

// AcceptPartner replaces the current partner, archiving any previous
// one as an ex.
func (s *State) AcceptPartner(p Partner) {
	if s.Partner != nil {
		s.ExPartners = append(s.ExPartners, *s.Partner)
	}
	p.Status = StatusDating
	p.YearsTogether = 0
	s.Partner = &p
}

// MarriageCompatibilityThreshold is the minimum compatibility for a
// proposal to stick.
const MarriageCompatibilityThreshold = 60

var (
	// ErrNoPartner signals an operation that needs a partner.
	ErrNoPartner = errors.New("no partner")
	// ErrAlreadyMarried signals a redundant proposal.
	ErrAlreadyMarried = errors.New("already married")
	// ErrNotCompatible signals a refused proposal.
	ErrNotCompatible = errors.New("compatibility too low for marriage")
)

// Marry upgrades a dating partner to married. Requires dating status
// and the compatibility threshold.
func (s *State) Marry() error {
	if s.Partner == nil {
		return ErrNoPartner
	}
	if s.Partner.Status == StatusMarried {
		return ErrAlreadyMarried
	}
	if s.Partner.Compatibility < MarriageCompatibilityThreshold {
		return ErrNotCompatible
	}
	s.Partner.Status = StatusMarried
	s.Marriages++
	return nil
}

// Breakup ends the current relationship. Always allowed while
// partnered; a married breakup counts as a divorce.
func (s *State) Breakup() error {
	if s.Partner == nil {
		return ErrNoPartner
	}
	if s.Partner.Status == StatusMarried {
		s.Divorces++
	}
	s.ExPartners = append(s.ExPartners, *s.Partner)
	s.Partner = nil
	return nil
}

// AddSibling appends a newborn sibling to the family roster.
func (s *State) AddSibling(rng entropy.Source) FamilyMember {
	g := RandomGender(rng)
	m := FamilyMember{
		Name: RandomName(rng, g), Role: RoleSibling, Gender: g,
		Age: 0, Alive: true, Relationship: entropy.IntBetween(rng, 60, 90),
	}
	s.Family = append(s.Family, m)
	return m
}

// AddFriend appends a new friend near the player's age.
func (s *State) AddFriend(rng entropy.Source, playerAge int) Friend {
	g := RandomGender(rng)
	f := Friend{
		Name: RandomName(rng, g), Gender: g,
		Age:          clampAge(playerAge + entropy.IntBetween(rng, -3, 3)),
		Relationship: entropy.IntBetween(rng, 40, 80),
	}
	s.Friends = append(s.Friends, f)
	return f
}

// AddChildren appends newborns and returns them.
func (s *State) AddChildren(names []string, genders []player.Gender, birthYear int) []Child {
	born := make([]Child, 0, len(names))
	for i, name := range names {
		g := player.GenderMale
		if i < len(genders) {
			g = genders[i]
		}
		c := Child{Name: name, Gender: g, Age: 0, BirthYear: birthYear, Relationship: 90}
		born = append(born, c)
	}
	s.Children = append(s.Children, born...)
	return born
}

// ResetYearlyUsage clears the activity throttle. Called exactly once
// per year-advance, never mid-year.
func (s *State) ResetYearlyUsage() {
	s.ActivityUsage = make(map[string]int)
}

// Parent mortality: no rolls before 60, then a climbing yearly chance.
const (
	parentMortalityAge  = 60
	parentMortalityBase = 0.02
	parentMortalityStep = 0.015
)

// AgeEveryone advances partner, family, friends, and children by one
// year and rolls parent mortality. Returned notes feed the timeline.
func (s *State) AgeEveryone(rng entropy.Source) []string {
	var notes []string

	if s.Partner != nil {
		s.Partner.Age++
		s.Partner.YearsTogether++
	}
	for i := range s.Children {
		s.Children[i].Age++
	}
	for i := range s.Friends {
		s.Friends[i].Age++
	}
	for i := range s.Family {
		m := &s.Family[i]
		if !m.Alive {
			continue
		}
		m.Age++
		if m.Role == RoleSibling || m.Age < parentMortalityAge {
			continue
		}
		chance := parentMortalityBase + float64(m.Age-parentMortalityAge)*parentMortalityStep
		if rng.Float64() < chance {
			m.Alive = false
			notes = append(notes, fmt.Sprintf("%s ist im Alter von %d Jahren gestorben.", m.Name, m.Age))
		}
	}

	return notes
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clampAge(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
