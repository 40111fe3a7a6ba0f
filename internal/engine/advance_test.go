package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoberg/lebenslauf/internal/event"
	"github.com/mkoberg/lebenslauf/internal/player"
	"github.com/mkoberg/lebenslauf/internal/pregnancy"
	"github.com/mkoberg/lebenslauf/internal/property"
	"github.com/mkoberg/lebenslauf/internal/relationship"
)

// quietCatalog never matches, forcing a quiet year on every advance.
func quietCatalog() []event.GameEvent {
	return []event.GameEvent{
		{ID: "ev_nie", Title: "Nie", MinAge: 200, MaxAge: 201, Weight: 1,
			Options: []event.Option{{ID: "ok", Label: "Ok"}}},
	}
}

func TestAdvanceYear_PhaseRefusals(t *testing.T) {
	state := baseState(10)
	state.Phase = PhaseAwaitingChoice
	state.CurrentEvent = mathetestEvent()
	g := restore(state, Options{})

	_, err := g.AdvanceYear()
	r, ok := AsRefusal(err)
	require.True(t, ok)
	assert.Equal(t, RefusalWrongPhase, r.Code)

	state = baseState(30)
	state.Phase = PhaseAwaitingBirthNames
	state.PendingBabies = []player.Gender{player.GenderFemale}
	g = restore(state, Options{})
	_, err = g.AdvanceYear()
	r, _ = AsRefusal(err)
	assert.Equal(t, RefusalNamesRequired, r.Code)

	state = baseState(30)
	state.Phase = PhaseDead
	g = restore(state, Options{})
	_, err = g.AdvanceYear()
	r, _ = AsRefusal(err)
	assert.Equal(t, RefusalDead, r.Code)
}

func TestAdvanceYear_IncomeAndKindergeld(t *testing.T) {
	state := baseState(30)
	state.Player.Money = 1_000
	state.Player.Job = &player.Job{ID: "job_buero", Title: "Sachbearbeiter", Salary: 38_000}
	state.Player.SideJob = &player.SideJob{ID: "side_nachhilfe", Title: "Nachhilfe", YearlyPay: 2_400}
	state.Relationships.Children = []relationship.Child{
		{Name: "Mia", Age: 4}, {Name: "Ben", Age: 2},
	}
	g := restore(state, Options{Catalog: quietCatalog()})

	report, err := g.AdvanceYear()
	require.NoError(t, err)
	assert.Equal(t, 38_000, report.Salary)
	assert.Equal(t, 2_400, report.SideJobPay)
	assert.Equal(t, 2*KindergeldPerChild, report.Kindergeld)

	snap := g.Snapshot()
	assert.Equal(t, 31, snap.Player.Age)
	assert.Equal(t, 1_000+38_000+2_400+600, snap.Player.Money)
	assert.Equal(t, PhaseReadyToAdvance, snap.Phase, "empty pool is a quiet year, not an error")
	assert.Nil(t, snap.CurrentEvent)
}

func TestAdvanceYear_PrisonSuppressesIncomeAndReleases(t *testing.T) {
	state := baseState(30)
	state.Player.Money = 500
	state.Player.SideJob = &player.SideJob{ID: "side_babysitten", Title: "Babysitten", YearlyPay: 1_800}
	state.Player.InPrison = true
	state.Player.PrisonYearsRemaining = 2
	g := restore(state, Options{Catalog: quietCatalog()})

	report, err := g.AdvanceYear()
	require.NoError(t, err)
	assert.Zero(t, report.SideJobPay, "no pay behind bars")
	assert.False(t, report.Released)
	assert.Equal(t, 1, g.Snapshot().Player.PrisonYearsRemaining)

	// The year inside drew a prison event; it must be decided before
	// the next advance.
	_, err = g.AdvanceYear()
	r, ok := AsRefusal(err)
	require.True(t, ok)
	assert.Equal(t, RefusalWrongPhase, r.Code)

	snap := g.Snapshot()
	require.NotNil(t, snap.CurrentEvent)
	_, err = g.Choose(snap.CurrentEvent.Options[0].ID)
	require.NoError(t, err)

	report, err = g.AdvanceYear()
	require.NoError(t, err)
	assert.True(t, report.Released)
	snap = g.Snapshot()
	assert.False(t, snap.Player.InPrison)
	assert.Zero(t, snap.Player.PrisonYearsRemaining)
}

func TestAdvanceYear_PrisonYearsDrawFromPrisonPool(t *testing.T) {
	state := baseState(30)
	state.Player.InPrison = true
	state.Player.PrisonYearsRemaining = 5
	g := restore(state, Options{Catalog: quietCatalog()})

	_, err := g.AdvanceYear()
	require.NoError(t, err)

	snap := g.Snapshot()
	assert.Equal(t, PhaseAwaitingChoice, snap.Phase)
	require.NotNil(t, snap.CurrentEvent)
	assert.Equal(t, "prison", snap.CurrentEvent.Category)
}

func TestAdvanceYear_HousingSettlement(t *testing.T) {
	state := baseState(40)
	state.Player.Money = 10_000
	state.Property.Owned = []property.Property{
		{ID: "haus", Name: "Haus", PurchasePrice: 50_000, Value: 50_000, AppreciationPct: 5},
	}
	state.Property.Rented = &property.Rental{Name: "Mietwohnung", MonthlyRent: 500}
	state.Property.CurrentHomeID = property.RentalHomeID
	g := restore(state, Options{Catalog: quietCatalog()})

	report, err := g.AdvanceYear()
	require.NoError(t, err)
	assert.Equal(t, 6_000, report.Rent)
	assert.Equal(t, 525, report.Maintenance, "maintenance on the appreciated value")

	snap := g.Snapshot()
	assert.Equal(t, 52_500, snap.Property.Owned[0].Value)
	assert.Equal(t, 10_000-6_000-525, snap.Player.Money)
	assert.Len(t, snap.YearListings, 4, "market offers regenerate each year")
}

func TestAdvanceYear_BirthPausesUntilNamesConfirmed(t *testing.T) {
	state := baseState(28)
	state.Relationships.Partner = &relationship.Partner{Name: "Lena", Compatibility: 80}
	state.Pregnancy = pregnancy.State{
		Pregnant:       true,
		Month:          0,
		ExpectedBabies: 2,
		Genders:        []player.Gender{player.GenderFemale, player.GenderMale},
	}
	g := restore(state, Options{Catalog: quietCatalog()})

	report, err := g.AdvanceYear()
	require.NoError(t, err)
	assert.True(t, report.BirthPending)

	snap := g.Snapshot()
	assert.Equal(t, PhaseAwaitingBirthNames, snap.Phase)
	assert.Nil(t, snap.CurrentEvent, "the naming pause defers the event draw")
	require.Len(t, snap.PendingBabies, 2)
	assert.False(t, snap.Pregnancy.Pregnant, "birth resolves exactly once")

	// Everything else waits for the names.
	_, err = g.AdvanceYear()
	r, ok := AsRefusal(err)
	require.True(t, ok)
	assert.Equal(t, RefusalNamesRequired, r.Code)
	_, err = g.DoActivity("act_zoo")
	r, _ = AsRefusal(err)
	assert.Equal(t, RefusalNamesRequired, r.Code)

	err = g.ConfirmBirthNames([]string{"Mia"})
	r, ok = AsRefusal(err)
	require.True(t, ok)
	assert.Equal(t, RefusalNotFound, r.Code, "one name for two babies")

	require.NoError(t, g.ConfirmBirthNames([]string{"Mia", "Ben"}))
	snap = g.Snapshot()
	require.Len(t, snap.Relationships.Children, 2)
	assert.Equal(t, "Mia", snap.Relationships.Children[0].Name)
	assert.Equal(t, player.GenderFemale, snap.Relationships.Children[0].Gender)
	assert.Empty(t, snap.PendingBabies)
	assert.Equal(t, PhaseReadyToAdvance, snap.Phase)

	// A later advance must not deliver the same babies again.
	report, err = g.AdvanceYear()
	require.NoError(t, err)
	assert.False(t, report.BirthPending)
	assert.Equal(t, 2*KindergeldPerChild, report.Kindergeld)
	assert.Len(t, g.Snapshot().Relationships.Children, 2)
}

func TestAdvanceYear_ResetsActivityUsage(t *testing.T) {
	state := baseState(30)
	state.Player.Money = 1_000
	state.Relationships.ActivityUsage = map[string]int{"act_freizeitpark": 1}
	g := restore(state, Options{Catalog: quietCatalog()})

	_, err := g.DoActivity("act_freizeitpark")
	r, ok := AsRefusal(err)
	require.True(t, ok)
	assert.Equal(t, RefusalActivityCap, r.Code)

	_, err = g.AdvanceYear()
	require.NoError(t, err)

	_, err = g.DoActivity("act_freizeitpark")
	assert.NoError(t, err, "caps reset once per year-advance")
}

func TestAdvanceYear_AgeDrift(t *testing.T) {
	cases := []struct {
		name       string
		ageBefore  int
		healthLoss int
	}{
		{"under forty", 30, 0},
		{"mid-life", 39, 1},
		{"late mid-life", 54, 2},
		{"old age", 74, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := baseState(tc.ageBefore)
			g := restore(state, Options{Catalog: quietCatalog()})
			_, err := g.AdvanceYear()
			require.NoError(t, err)
			assert.Equal(t, 80-tc.healthLoss, g.Snapshot().Player.Stats.Health)
		})
	}
}

func TestAdvanceYear_NaturalDeath(t *testing.T) {
	state := baseState(80)
	state.Player.Stats.Health = 2
	state.Relationships.Family = nil // no mortality draws
	store := &memStore{}
	g := restore(state, Options{Catalog: quietCatalog(), Store: store})

	report, err := g.AdvanceYear()
	require.NoError(t, err)
	assert.True(t, report.Died)
	assert.NotEmpty(t, report.CauseOfDeath)

	snap := g.Snapshot()
	assert.Equal(t, PhaseDead, snap.Phase)
	assert.False(t, snap.Player.Alive)
	assert.Equal(t, 1, store.archives)
}

func TestAdvanceYear_ParentDeathReachesTimeline(t *testing.T) {
	state := baseState(40)
	state.Relationships.Family = []relationship.FamilyMember{
		{Name: "Heinz", Role: relationship.RoleFather, Age: 85, Alive: true},
	}
	// Father turns 86; mortality 0.02+0.015*26 = 0.41, draw 0.40 dies.
	g := restore(state, Options{
		Catalog: quietCatalog(),
		RNG:     &scriptedSource{floats: []float64{0.40}},
	})

	report, err := g.AdvanceYear()
	require.NoError(t, err)
	require.Len(t, report.Notes, 1)

	snap := g.Snapshot()
	assert.False(t, snap.Relationships.Family[0].Alive)
	found := false
	for _, e := range snap.Timeline {
		if e.Category == "family" {
			found = true
		}
	}
	assert.True(t, found, "the loss is recorded in the timeline")
}

func TestAdvanceYear_DrawsNextEventWhenEligible(t *testing.T) {
	state := baseState(9)
	g := restore(state, Options{Catalog: []event.GameEvent{*mathetestEvent()}})

	_, err := g.AdvanceYear()
	require.NoError(t, err)

	snap := g.Snapshot()
	assert.Equal(t, PhaseAwaitingChoice, snap.Phase)
	require.NotNil(t, snap.CurrentEvent)
	assert.Equal(t, "ev_mathetest", snap.CurrentEvent.ID)
}
