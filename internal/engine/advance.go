package engine

import (
	"log/slog"

	"github.com/mkoberg/lebenslauf/internal/pregnancy"
	"github.com/mkoberg/lebenslauf/internal/property"
)

// KindergeldPerChild is the yearly child benefit in euros.
const KindergeldPerChild = 300

// YearReport summarizes one committed year-advance.
type YearReport struct {
	Year int `json:"year"`
	Age  int `json:"age"`

	Salary      int `json:"salary,omitempty"`
	SideJobPay  int `json:"side_job_pay,omitempty"`
	Kindergeld  int `json:"kindergeld,omitempty"`
	Rent        int `json:"rent,omitempty"`
	Maintenance int `json:"maintenance,omitempty"`

	Released     bool     `json:"released,omitempty"`
	BirthPending bool     `json:"birth_pending,omitempty"`
	Died         bool     `json:"died,omitempty"`
	CauseOfDeath string   `json:"cause_of_death,omitempty"`
	Notes        []string `json:"notes,omitempty"`
}

// AdvanceYear commits the atomic year transition: aging, settlement,
// subsystem aging, and selection of the next event. It runs exactly
// once per confirmed year; every sub-step completes (or is skipped as
// inapplicable) before the next event is drawn.
func (g *Game) AdvanceYear() (*YearReport, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.state.Phase {
	case PhaseDead:
		return nil, refuse(RefusalDead, "das Leben ist vorbei")
	case PhaseAwaitingBirthNames:
		return nil, refuse(RefusalNamesRequired, "erst müssen die Neugeborenen Namen bekommen")
	case PhaseAwaitingChoice:
		return nil, refuse(RefusalWrongPhase, "erst das offene Ereignis entscheiden")
	}

	p := &g.state.Player
	rel := &g.state.Relationships

	g.state.Year++
	p.Age++
	report := &YearReport{Year: g.state.Year, Age: p.Age}

	// ── Settlement: income ────────────────────────────────────────
	if !p.Imprisoned() {
		if p.Job != nil {
			report.Salary = p.Job.Salary
			p.Money += p.Job.Salary
		}
		if p.SideJob != nil {
			report.SideJobPay = p.SideJob.YearlyPay
			p.Money += p.SideJob.YearlyPay
		}
	}
	report.Kindergeld = len(rel.Children) * KindergeldPerChild
	p.Money += report.Kindergeld

	// ── Settlement: housing ───────────────────────────────────────
	report.Rent, report.Maintenance = g.state.Property.YearlySettlement()
	p.Money -= report.Rent + report.Maintenance
	g.state.YearListings = property.Listings(g.rng, g.market, g.state.Year)

	// ── Pregnancy ─────────────────────────────────────────────────
	if g.state.Pregnancy.Pregnant {
		if g.state.Pregnancy.Advance(pregnancy.MonthsPerYear) {
			g.state.PendingBabies = g.state.Pregnancy.Resolve()
			report.BirthPending = true
		}
	}

	// ── Prison clock ──────────────────────────────────────────────
	if p.InPrison {
		p.PrisonYearsRemaining--
		if p.PrisonYearsRemaining <= 0 {
			p.InPrison = false
			p.PrisonYearsRemaining = 0
			report.Released = true
			g.note("crime", "Entlassung aus der Haft")
		}
	}

	// ── Age the social circle ─────────────────────────────────────
	for _, note := range rel.AgeEveryone(g.rng) {
		g.note("family", "%s", note)
		report.Notes = append(report.Notes, note)
	}
	rel.ResetYearlyUsage()
	g.state.Pregnancy.AttemptUsed = false

	// ── Stat drift ────────────────────────────────────────────────
	g.applyAgeDrift()

	// ── Death check and next event ────────────────────────────────
	if p.IsDead() {
		g.die("Gesundheit versagt")
		report.Died = true
		report.CauseOfDeath = g.state.CauseOfDeath
		g.persist()
		return report, nil
	}

	if report.BirthPending {
		// The modal naming step pauses everything; the next event is
		// drawn after ConfirmBirthNames.
		g.state.CurrentEvent = nil
		g.state.Phase = PhaseAwaitingBirthNames
	} else {
		g.selectNext()
		if g.state.CurrentEvent == nil {
			g.note("event", "Ein ruhiges Jahr, nichts Besonderes passiert.")
		}
	}

	slog.Debug("year advanced",
		"year", g.state.Year,
		"age", p.Age,
		"money", p.Money,
		"phase", g.state.Phase.String(),
	)
	g.persist()
	return report, nil
}

// applyAgeDrift models ordinary wear: health declines slowly from
// mid-life, faster in old age.
func (g *Game) applyAgeDrift() {
	p := &g.state.Player
	switch {
	case p.Age >= 75:
		p.Stats.Health -= 3
	case p.Age >= 55:
		p.Stats.Health -= 2
	case p.Age >= 40:
		p.Stats.Health -= 1
	}
	if p.Stats.Health < 0 {
		p.Stats.Health = 0
	}
}
