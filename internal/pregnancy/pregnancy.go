// Package pregnancy provides the two-phase conception model: a yearly
// attempt starts a gestation that other systems can observe before
// birth resolves.
package pregnancy

import (
	"github.com/mkoberg/lebenslauf/internal/entropy"
	"github.com/mkoberg/lebenslauf/internal/player"
)

// Gestation thresholds. A year-advance is one coarse jump of twelve
// months, so any active pregnancy comes due on the next advance.
const (
	TermMonths     = 9
	MonthsPerYear  = 12
	conceiveChance = 0.4
	twinChance     = 0.12
)

// State is the pregnancy slice of the snapshot.
type State struct {
	Pregnant       bool            `json:"pregnant"`
	Month          int             `json:"month,omitempty"`
	ExpectedBabies int             `json:"expected_babies,omitempty"`
	Genders        []player.Gender `json:"genders,omitempty"`

	// Birth control on either side blocks conception attempts.
	BirthControl        bool `json:"birth_control"`
	PartnerBirthControl bool `json:"partner_birth_control"`

	// One conception attempt per year; cleared on year-advance.
	// Persisted so a reload cannot grant a second roll.
	AttemptUsed bool `json:"attempt_used,omitempty"`
}

// CanConceive reports whether a conception attempt is allowed.
func (s *State) CanConceive() bool {
	return !s.Pregnant && !s.BirthControl && !s.PartnerBirthControl
}

// TryConceive rolls the yearly attempt. On success the state carries
// one or two expected babies with randomized genders; the birth itself
// waits for gestation.
func (s *State) TryConceive(rng entropy.Source) bool {
	if !s.CanConceive() {
		return false
	}
	if rng.Float64() >= conceiveChance {
		return false
	}

	babies := 1
	if rng.Float64() < twinChance {
		babies = 2
	}
	genders := make([]player.Gender, babies)
	for i := range genders {
		if rng.Intn(2) == 1 {
			genders[i] = player.GenderFemale
		}
	}

	s.Pregnant = true
	s.Month = 0
	s.ExpectedBabies = babies
	s.Genders = genders
	return true
}

// Advance moves gestation forward and reports whether the birth is
// due. The caller resolves the birth exactly once via Resolve.
func (s *State) Advance(months int) (due bool) {
	if !s.Pregnant {
		return false
	}
	s.Month += months
	return s.Month >= TermMonths
}

// Resolve ends the pregnancy and returns the genders of the newborns.
func (s *State) Resolve() []player.Gender {
	genders := s.Genders
	s.Pregnant = false
	s.Month = 0
	s.ExpectedBabies = 0
	s.Genders = nil
	return genders
}
