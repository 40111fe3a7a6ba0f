package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/mkoberg/lebenslauf/internal/crime"
	"github.com/mkoberg/lebenslauf/internal/event"
	"github.com/mkoberg/lebenslauf/internal/job"
	"github.com/mkoberg/lebenslauf/internal/minigame"
	"github.com/mkoberg/lebenslauf/internal/player"
	"github.com/mkoberg/lebenslauf/internal/property"
	"github.com/mkoberg/lebenslauf/internal/relationship"
	"github.com/mkoberg/lebenslauf/internal/stats"
)

// ChoiceResult reports one committed event decision.
type ChoiceResult struct {
	EventTitle string            `json:"event_title"`
	OptionID   string            `json:"option_id"`
	ResultText string            `json:"result_text"`
	Applied    stats.EffectDelta `json:"applied"`
	Feedback   stats.Feedback    `json:"feedback"`
	Minigame   *minigame.Result  `json:"minigame,omitempty"`
}

// Choose commits an option of the current event: runs the referenced
// minigame if any, merges its effects with the option's, applies the
// combined delta once, executes the option's action code, and commits
// the state machine to EffectsApplied. From there the year may
// advance.
func (g *Game) Choose(optionID string) (*ChoiceResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.guard(); err != nil {
		return nil, err
	}
	if g.state.Phase != PhaseAwaitingChoice || g.state.CurrentEvent == nil {
		return nil, refuse(RefusalWrongPhase, "kein Ereignis offen")
	}

	ev := g.state.CurrentEvent
	opt, ok := ev.Option(optionID)
	if !ok {
		return nil, refuse(RefusalNotFound, "Option %q gibt es nicht", optionID)
	}

	res := &ChoiceResult{
		EventTitle: ev.Title,
		OptionID:   opt.ID,
		ResultText: opt.ResultText,
	}

	effects := opt.Effects
	if opt.Minigame != "" {
		mg, err := g.minigames.Run(opt.Minigame, g.state.Player.Stats)
		if err != nil {
			// A broken minigame collaborator must not eat the turn:
			// the option resolves with its own effects only.
			slog.Warn("minigame failed, resolving without it",
				"minigame", opt.Minigame, "event", ev.ID, "error", err)
		} else {
			res.Minigame = &mg
			effects = effects.Merge(mg.Effects)
		}
	}

	p := &g.state.Player
	p.Stats, p.Money = stats.Apply(p.Stats, p.Money, effects)
	res.Applied = effects
	res.Feedback = stats.Classify(effects)

	g.runAction(opt)

	if ev.Unique() {
		p.MarkTriggered(ev.ID)
	}

	g.note("event", "%s — %s", ev.Title, opt.ResultText)
	g.state.CurrentEvent = nil

	if p.IsDead() {
		g.die(ev.Title)
		g.persist()
		return res, nil
	}

	g.state.Phase = PhaseEffectsApplied
	g.persist()
	return res, nil
}

// runAction executes an option's typed action code. Side effects are
// driven by these codes on the data, never by matching label text.
func (g *Game) runAction(opt event.Option) {
	p := &g.state.Player
	switch opt.Action {
	case event.ActionBuyProperty:
		listing := g.pickListing()
		p.Money -= listing.PurchasePrice
		g.state.Property.Buy(listing)
		g.note("property", "Immobilie gekauft: %s für %d €", listing.Name, listing.PurchasePrice)
	case event.ActionAddSibling:
		m := g.state.Relationships.AddSibling(g.rng)
		g.note("family", "Geschwisterchen geboren: %s", m.Name)
	case event.ActionAddFriend:
		f := g.state.Relationships.AddFriend(g.rng, p.Age)
		g.note("social", "Neue Freundschaft: %s", f.Name)
	case event.ActionRaiseEducation:
		if p.Education < player.EduPromotion {
			p.Education++
			g.note("school", "Bildungsweg: %s", p.Education)
		}
	case event.ActionDriversLicense:
		p.HasDriversLicense = true
		g.note("milestone", "Führerschein bestanden")
	case event.ActionLoseJob:
		if p.Job != nil {
			g.note("job", "Stelle verloren: %s", p.Job.Title)
			p.Job = nil
		}
	}
}

// pickListing returns the dearest current-year listing the player can
// afford, falling back to the cheapest one on the market.
func (g *Game) pickListing() property.Property {
	listings := g.state.YearListings
	if len(listings) == 0 {
		listings = property.Listings(g.rng, g.market, g.state.Year)
	}
	best := listings[0]
	for _, l := range listings[1:] {
		if l.PurchasePrice <= g.state.Player.Money && l.PurchasePrice > best.PurchasePrice {
			best = l
		}
	}
	best.ID = fmt.Sprintf("%s_%d", best.ID, g.state.Year)
	return best
}

// JobApplication is the outcome of one application.
type JobApplication struct {
	Offer       job.Offer       `json:"offer"`
	Eligibility job.Eligibility `json:"eligibility"`
	Hired       bool            `json:"hired"`
}

// ApplyForJob checks eligibility and, if eligible, draws against the
// application chance. Ineligibility is a normal outcome carrying the
// missing requirements; imprisonment is a hard refusal.
func (g *Game) ApplyForJob(offerID string) (*JobApplication, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.guard(); err != nil {
		return nil, err
	}
	if g.state.Player.Imprisoned() {
		return nil, refuse(RefusalImprisoned, "aus der Zelle bewirbt sich niemand")
	}

	offer, ok := job.OfferByID(offerID)
	if !ok {
		return nil, refuse(RefusalNotFound, "Stelle %q gibt es nicht", offerID)
	}

	app := &JobApplication{Offer: offer, Eligibility: job.CheckEligibility(&g.state.Player, offer)}
	if !app.Eligibility.Eligible {
		return app, nil
	}

	if job.TryApplication(g.rng, g.state.Player.Stats) {
		app.Hired = true
		g.state.Player.Job = &player.Job{ID: offer.ID, Title: offer.Title, Salary: offer.Salary}
		g.note("job", "Neue Stelle: %s (%d € im Jahr)", offer.Title, offer.Salary)
		g.persist()
	}
	return app, nil
}

// QuitJob clears the current job unconditionally.
func (g *Game) QuitJob() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.guard(); err != nil {
		return err
	}
	if g.state.Player.Job != nil {
		g.note("job", "Gekündigt: %s", g.state.Player.Job.Title)
		g.state.Player.Job = nil
		g.persist()
	}
	return nil
}

// TryPromotion rolls for a raise on the current job.
func (g *Game) TryPromotion() (promoted bool, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.guard(); err != nil {
		return false, err
	}
	p := &g.state.Player
	if p.Job == nil {
		return false, refuse(RefusalNotFound, "ohne Stelle keine Beförderung")
	}
	if p.Imprisoned() {
		return false, refuse(RefusalImprisoned, "im Gefängnis wird niemand befördert")
	}

	// Diligence is mostly luck plus a nod to intelligence.
	chance := 0.2 + float64(p.Stats.IQ-50)*0.002 + float64(p.Stats.Luck-50)*0.002
	if g.rng.Float64() >= chance {
		return false, nil
	}
	p.Job.Salary = job.PromotionRaise(g.rng, p.Job.Salary)
	g.note("job", "Befördert: %s verdient jetzt %d €", p.Job.Title, p.Job.Salary)
	g.persist()
	return true, nil
}

// TakeSideJob starts a side job from the static table.
func (g *Game) TakeSideJob(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.guard(); err != nil {
		return err
	}
	p := &g.state.Player
	if p.Imprisoned() {
		return refuse(RefusalImprisoned, "kein Nebenjob hinter Gittern")
	}
	if p.Age < 14 {
		return refuse(RefusalUnderage, "Nebenjobs gibt es ab 14")
	}
	sj, ok := job.SideJobByID(id)
	if !ok {
		return refuse(RefusalNotFound, "Nebenjob %q gibt es nicht", id)
	}
	p.SideJob = &sj
	g.note("job", "Nebenjob angenommen: %s", sj.Title)
	g.persist()
	return nil
}

// QuitSideJob drops the side job.
func (g *Game) QuitSideJob() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.guard(); err != nil {
		return err
	}
	g.state.Player.SideJob = nil
	g.persist()
	return nil
}

// CommitCrime attempts a catalog crime and commits the outcome: the
// reward on success, or prison plus job loss on a catch.
func (g *Game) CommitCrime(crimeID string) (*crime.Outcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.guard(); err != nil {
		return nil, err
	}
	p := &g.state.Player
	if p.Imprisoned() {
		return nil, refuse(RefusalImprisoned, "du sitzt bereits")
	}

	c, ok := crime.ByID(crimeID)
	if !ok {
		return nil, refuse(RefusalNotFound, "Delikt %q gibt es nicht", crimeID)
	}

	out := crime.Resolve(g.rng, c, p.Stats, p.CriminalRecord)
	p.CriminalRecord = append(p.CriminalRecord, out.Record)

	if out.Success {
		p.Money += out.Reward
		g.note("crime", "%s: unentdeckt, Beute %d €", c.Title, out.Reward)
	} else {
		p.InPrison = true
		p.PrisonYearsRemaining = out.PrisonYears
		p.Job = nil
		p.SideJob = nil
		g.state.CurrentEvent = nil
		g.state.Phase = PhaseReadyToAdvance
		g.note("crime", "%s: erwischt, %d Jahre Haft", c.Title, out.PrisonYears)
	}
	g.persist()
	return &out, nil
}

// SearchPartners produces dating candidates. Nothing commits until
// one is accepted.
func (g *Game) SearchPartners(n int) ([]relationship.Partner, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.guard(); err != nil {
		return nil, err
	}
	p := &g.state.Player
	if p.Imprisoned() {
		return nil, refuse(RefusalImprisoned, "Besuchszeit ist kein Date")
	}
	if p.Age < 16 {
		return nil, refuse(RefusalUnderage, "Partnersuche gibt es ab 16")
	}
	return relationship.FindPartners(g.rng, p.Stats.Looks, p.Age, n), nil
}

// AcceptPartner commits a candidate as the new partner.
func (g *Game) AcceptPartner(p relationship.Partner) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.guard(); err != nil {
		return err
	}
	g.state.Relationships.AcceptPartner(p)
	g.note("love", "Neue Beziehung: %s", p.Name)
	g.persist()
	return nil
}

// Marry proposes to the current partner.
func (g *Game) Marry() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.guard(); err != nil {
		return err
	}
	if g.state.Player.Imprisoned() {
		return refuse(RefusalImprisoned, "keine Hochzeit im Vollzug")
	}
	if err := g.state.Relationships.Marry(); err != nil {
		switch {
		case errors.Is(err, relationship.ErrNoPartner):
			return refuse(RefusalNoPartner, "niemand zum Heiraten da")
		case errors.Is(err, relationship.ErrNotCompatible):
			return refuse(RefusalNotCompatible, "der Antrag wird abgelehnt")
		default:
			return refuse(RefusalWrongPhase, "%s", err)
		}
	}
	g.note("love", "Hochzeit mit %s", g.state.Relationships.Partner.Name)
	g.persist()
	return nil
}

// Breakup ends the current relationship.
func (g *Game) Breakup() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.guard(); err != nil {
		return err
	}
	rel := &g.state.Relationships
	if rel.Partner == nil {
		return refuse(RefusalNoPartner, "keine Beziehung zu beenden")
	}
	name := rel.Partner.Name
	if err := rel.Breakup(); err != nil {
		return refuse(RefusalNoPartner, "%s", err)
	}
	g.note("love", "Trennung von %s", name)
	g.persist()
	return nil
}

// SetBirthControl flips the contraception flags.
func (g *Game) SetBirthControl(self, partner bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.guard(); err != nil {
		return err
	}
	g.state.Pregnancy.BirthControl = self
	g.state.Pregnancy.PartnerBirthControl = partner
	g.persist()
	return nil
}

// TryForBaby rolls the yearly conception attempt with the current
// partner. One roll per year: a failed attempt cannot be retried
// until the year advances.
func (g *Game) TryForBaby() (conceived bool, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.guard(); err != nil {
		return false, err
	}
	if g.state.Player.Imprisoned() {
		return false, refuse(RefusalImprisoned, "dafür fehlt gerade die Gelegenheit")
	}
	if g.state.Relationships.Partner == nil {
		return false, refuse(RefusalNoPartner, "dazu gehören zwei")
	}
	if g.state.Pregnancy.AttemptUsed {
		return false, refuse(RefusalActivityCap, "dieses Jahr hat es schon einen Versuch gegeben")
	}

	g.state.Pregnancy.AttemptUsed = true
	if !g.state.Pregnancy.TryConceive(g.rng) {
		g.persist()
		return false, nil
	}
	g.note("family", "Schwangerschaft: %d Kind(er) unterwegs", g.state.Pregnancy.ExpectedBabies)
	g.persist()
	return true, nil
}

// ActivityResult reports a committed activity.
type ActivityResult struct {
	Activity   relationship.Activity `json:"activity"`
	Cost       int                   `json:"cost"` // Actually charged; 0 under parents-pay
	ParentsPay bool                  `json:"parents_pay"`
	Applied    stats.EffectDelta     `json:"applied"`
}

// DoActivity runs a family/friend/partner activity under the yearly
// cap. Minors with a living father figure go for free.
func (g *Game) DoActivity(activityID string) (*ActivityResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.guard(); err != nil {
		return nil, err
	}
	p := &g.state.Player
	if p.Imprisoned() {
		return nil, refuse(RefusalImprisoned, "Freizeit sieht anders aus")
	}

	act, ok := relationship.ActivityByID(activityID)
	if !ok {
		return nil, refuse(RefusalNotFound, "Aktivität %q gibt es nicht", activityID)
	}
	if act.Kind == relationship.KindPartner && g.state.Relationships.Partner == nil {
		return nil, refuse(RefusalNoPartner, "dafür braucht es einen Partner")
	}

	rel := &g.state.Relationships
	if ok, excuse := rel.CheckCap(act); !ok {
		return nil, refuse(RefusalActivityCap, "%s", excuse)
	}

	res := &ActivityResult{Activity: act, Cost: act.Cost}
	if p.Age < 18 && rel.FatherFigurePresent() {
		res.Cost = 0
		res.ParentsPay = true
	}

	// Cost is deducted before effects apply.
	p.Money -= res.Cost
	p.Stats, p.Money = stats.Apply(p.Stats, p.Money, act.Effects)
	res.Applied = act.Effects
	rel.ApplyBond(act)
	rel.RecordUse(act)
	g.note("social", "%s", act.Title)
	g.persist()
	return res, nil
}

// BuyListing purchases one of this year's listings by id.
func (g *Game) BuyListing(listingID string) (*property.Property, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.guard(); err != nil {
		return nil, err
	}
	if g.state.Player.Imprisoned() {
		return nil, refuse(RefusalImprisoned, "der Notar kommt nicht in die JVA")
	}

	for _, l := range g.state.YearListings {
		if l.ID != listingID {
			continue
		}
		l.ID = fmt.Sprintf("%s_%d", l.ID, g.state.Year)
		g.state.Player.Money -= l.PurchasePrice
		g.state.Property.Buy(l)
		g.note("property", "Immobilie gekauft: %s für %d €", l.Name, l.PurchasePrice)
		g.persist()
		return &l, nil
	}
	return nil, refuse(RefusalNotFound, "Angebot %q gibt es nicht", listingID)
}

// RentHome moves the player into a rental.
func (g *Game) RentHome(r property.Rental) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.guard(); err != nil {
		return err
	}
	if g.state.Player.Imprisoned() {
		return refuse(RefusalImprisoned, "die Unterkunft ist gestellt")
	}
	g.state.Property.RentHome(r)
	g.note("property", "Eingezogen: %s (%d € Miete)", r.Name, r.MonthlyRent)
	g.persist()
	return nil
}

// SellProperty sells an owned property at 90% of its current value.
func (g *Game) SellProperty(id string) (payout int, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.guard(); err != nil {
		return 0, err
	}
	if g.state.Player.Imprisoned() {
		return 0, refuse(RefusalImprisoned, "Verkäufe sind gerade nicht möglich")
	}

	payout, err = g.state.Property.Sell(id)
	if err != nil {
		return 0, refuse(RefusalNotFound, "%s", err)
	}
	g.state.Player.Money += payout
	g.note("property", "Immobilie verkauft für %d €", payout)
	g.persist()
	return payout, nil
}

// ConfirmBirthNames names the newborns and resumes the state machine.
// Until this is called, further year-advances are refused.
func (g *Game) ConfirmBirthNames(names []string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Phase != PhaseAwaitingBirthNames {
		return refuse(RefusalWrongPhase, "keine Geburt offen")
	}
	if len(names) != len(g.state.PendingBabies) {
		return refuse(RefusalNotFound, "%d Namen erwartet, %d erhalten",
			len(g.state.PendingBabies), len(names))
	}

	born := g.state.Relationships.AddChildren(names, g.state.PendingBabies, g.state.Year)
	for _, c := range born {
		g.note("family", "Willkommen, %s!", c.Name)
	}
	g.state.PendingBabies = nil
	g.selectNext()
	g.persist()
	return nil
}
