// Package job provides the static job offer table, the eligibility
// predicate, and application/promotion mechanics.
package job

import (
	"fmt"

	"github.com/mkoberg/lebenslauf/internal/entropy"
	"github.com/mkoberg/lebenslauf/internal/player"
	"github.com/mkoberg/lebenslauf/internal/stats"
)

// Requirements is the predicate attached to every offer. Zero values
// mean "no requirement". Education compares by rank.
type Requirements struct {
	MinIQ        int              `json:"min_iq,omitempty"`
	MinFitness   int              `json:"min_fitness,omitempty"`
	MinHealth    int              `json:"min_health,omitempty"`
	MinLooks     int              `json:"min_looks,omitempty"`
	MinEducation player.Education `json:"min_education,omitempty"`
	MinAge       int              `json:"min_age,omitempty"`
	CleanRecord  bool             `json:"clean_record,omitempty"`
}

// Offer is one row of the static job table.
type Offer struct {
	ID     string       `json:"id"`
	Title  string       `json:"title"`
	Salary int          `json:"salary"` // Euros per year
	Req    Requirements `json:"requirements"`
}

// Offers returns the static job table.
func Offers() []Offer {
	return []Offer{
		{ID: "job_zeitung", Title: "Zeitungszusteller", Salary: 6_000,
			Req: Requirements{MinAge: 14}},
		{ID: "job_lager", Title: "Lagerarbeiter", Salary: 24_000,
			Req: Requirements{MinAge: 16, MinFitness: 30, MinHealth: 40}},
		{ID: "job_einzelhandel", Title: "Einzelhandelskaufmann", Salary: 28_000,
			Req: Requirements{MinAge: 16, MinEducation: player.EduHauptschule, MinLooks: 30}},
		{ID: "job_handwerk", Title: "Geselle im Handwerk", Salary: 34_000,
			Req: Requirements{MinAge: 18, MinEducation: player.EduAusbildung, MinFitness: 40}},
		{ID: "job_polizei", Title: "Polizeikommissar", Salary: 42_000,
			Req: Requirements{MinAge: 18, MinEducation: player.EduRealschule,
				MinFitness: 55, MinHealth: 60, CleanRecord: true}},
		{ID: "job_buero", Title: "Sachbearbeiter", Salary: 38_000,
			Req: Requirements{MinAge: 18, MinEducation: player.EduRealschule, MinIQ: 45}},
		{ID: "job_lehrer", Title: "Lehrer", Salary: 52_000,
			Req: Requirements{MinAge: 25, MinEducation: player.EduMaster, MinIQ: 60, CleanRecord: true}},
		{ID: "job_ingenieur", Title: "Ingenieur", Salary: 62_000,
			Req: Requirements{MinAge: 23, MinEducation: player.EduBachelor, MinIQ: 70}},
		{ID: "job_arzt", Title: "Assistenzarzt", Salary: 72_000,
			Req: Requirements{MinAge: 26, MinEducation: player.EduPromotion,
				MinIQ: 80, MinHealth: 50, CleanRecord: true}},
		{ID: "job_model", Title: "Model", Salary: 45_000,
			Req: Requirements{MinAge: 16, MinLooks: 80, MinFitness: 50}},
	}
}

// OfferByID looks up an offer in the static table.
func OfferByID(id string) (Offer, bool) {
	for _, o := range Offers() {
		if o.ID == id {
			return o, true
		}
	}
	return Offer{}, false
}

// Eligibility is the result of checking a player against an offer.
// Missing lists one human-readable reason per failed predicate; the
// list is part of the contract, not just UI garnish.
type Eligibility struct {
	Eligible bool     `json:"eligible"`
	Missing  []string `json:"missing,omitempty"`
}

// CheckEligibility evaluates every requirement of the offer and
// collects a reason for each one the player fails.
func CheckEligibility(p *player.Player, o Offer) Eligibility {
	var missing []string

	if o.Req.MinAge > 0 && p.Age < o.Req.MinAge {
		missing = append(missing, fmt.Sprintf("Mindestalter %d Jahre", o.Req.MinAge))
	}
	if !p.Education.AtLeast(o.Req.MinEducation) {
		missing = append(missing, fmt.Sprintf("Abschluss: mindestens %s", o.Req.MinEducation))
	}
	if p.Stats.IQ < o.Req.MinIQ {
		missing = append(missing, fmt.Sprintf("IQ mindestens %d", o.Req.MinIQ))
	}
	if p.Stats.Fitness < o.Req.MinFitness {
		missing = append(missing, fmt.Sprintf("Fitness mindestens %d", o.Req.MinFitness))
	}
	if p.Stats.Health < o.Req.MinHealth {
		missing = append(missing, fmt.Sprintf("Gesundheit mindestens %d", o.Req.MinHealth))
	}
	if p.Stats.Looks < o.Req.MinLooks {
		missing = append(missing, fmt.Sprintf("Aussehen mindestens %d", o.Req.MinLooks))
	}
	if o.Req.CleanRecord && p.HasConviction() {
		missing = append(missing, "keine Vorstrafen")
	}

	return Eligibility{Eligible: len(missing) == 0, Missing: missing}
}

// ApplicationChance is the probability an eligible application is
// accepted: a coin flip shifted by intelligence and looks.
func ApplicationChance(st stats.PlayerStats) float64 {
	return 0.5 + float64(st.IQ-50)*0.005 + float64(st.Looks-50)*0.003
}

// TryApplication draws against the application chance. The caller
// commits the hire; an accepted offer replaces any current job
// wholesale.
func TryApplication(rng entropy.Source, st stats.PlayerStats) bool {
	return rng.Float64() < ApplicationChance(st)
}

// Promotion raise bounds, in percent of the current salary.
const (
	raiseMinPct = 10
	raiseMaxPct = 30
)

// PromotionRaise draws a raise uniformly in [10%,30%] of the current
// salary and returns the new salary.
func PromotionRaise(rng entropy.Source, salary int) int {
	pct := entropy.IntBetween(rng, raiseMinPct, raiseMaxPct)
	return salary + salary*pct/100
}

// SideJobs returns the static side-job table. Side jobs stack with a
// main job and pay out at yearly settlement.
func SideJobs() []player.SideJob {
	return []player.SideJob{
		{ID: "side_zeitung", Title: "Zeitungen austragen", YearlyPay: 1_200},
		{ID: "side_nachhilfe", Title: "Nachhilfe geben", YearlyPay: 2_400},
		{ID: "side_babysitten", Title: "Babysitten", YearlyPay: 1_800},
	}
}

// SideJobByID looks up a side job in the static table.
func SideJobByID(id string) (player.SideJob, bool) {
	for _, s := range SideJobs() {
		if s.ID == id {
			return s, true
		}
	}
	return player.SideJob{}, false
}
