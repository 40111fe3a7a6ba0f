package player

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkoberg/lebenslauf/internal/stats"
)

func TestNew_ClampsStartingStats(t *testing.T) {
	p := New("Jona", GenderMale, 2000, stats.PlayerStats{IQ: 140, Health: -5})
	assert.Equal(t, 100, p.Stats.IQ)
	assert.Equal(t, 0, p.Stats.Health)
	assert.True(t, p.Alive)
	assert.NotNil(t, p.TriggeredEventIDs)
}

func TestIsDead(t *testing.T) {
	p := New("Jona", GenderMale, 2000, stats.PlayerStats{Health: 50})
	assert.False(t, p.IsDead())

	p.Stats.Health = 0
	assert.True(t, p.IsDead())

	p.Stats.Health = 50
	p.Alive = false
	assert.True(t, p.IsDead())
}

func TestImprisoned_NeedsRemainingYears(t *testing.T) {
	p := New("Jona", GenderMale, 2000, stats.PlayerStats{Health: 50})
	p.InPrison = true
	assert.False(t, p.Imprisoned())
	p.PrisonYearsRemaining = 2
	assert.True(t, p.Imprisoned())
}

func TestConvictions_CountCaughtOnly(t *testing.T) {
	p := New("Jona", GenderMale, 2000, stats.PlayerStats{Health: 50})
	p.CriminalRecord = []CrimeRecord{
		{CrimeID: "cr_schwarzfahren", Caught: false, Reward: 30},
		{CrimeID: "cr_einbruch", Caught: true, PrisonYears: 2},
		{CrimeID: "cr_ladendiebstahl", Caught: false, Reward: 80},
	}
	assert.Equal(t, 2, p.SuccessfulCrimes())
	assert.Equal(t, 1, p.CaughtCrimes())
	assert.True(t, p.HasConviction())
}

func TestEducation_AtLeast(t *testing.T) {
	assert.True(t, EduMaster.AtLeast(EduBachelor))
	assert.True(t, EduMaster.AtLeast(EduMaster))
	assert.False(t, EduHauptschule.AtLeast(EduAbitur))
}

func TestGenderAndEducationNames(t *testing.T) {
	assert.Equal(t, "männlich", GenderMale.String())
	assert.Equal(t, "weiblich", GenderFemale.String())
	assert.NotEmpty(t, EduPromotion.String())
}
