package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource struct{ n int }

func (s fixedSource) Float64() float64 { return 0.5 }
func (s fixedSource) Intn(n int) int   { return s.n }

func TestBuy_SetsHomeAndRoster(t *testing.T) {
	s := State{}
	s.Buy(Property{ID: "p1", Name: "Reihenhaus", PurchasePrice: 150_000})

	require.Len(t, s.Owned, 1)
	assert.Equal(t, "p1", s.CurrentHomeID)
	assert.Equal(t, 150_000, s.Owned[0].Value, "value defaults to the purchase price")
	assert.Equal(t, "Reihenhaus", s.Home())
}

func TestRentHome_DoesNotTouchOwned(t *testing.T) {
	s := State{}
	s.Buy(Property{ID: "p1", Name: "Wohnung", PurchasePrice: 90_000})
	s.RentHome(Rental{Name: "Mietwohnung", MonthlyRent: 600})

	assert.Len(t, s.Owned, 1)
	assert.Equal(t, RentalHomeID, s.CurrentHomeID)
	assert.Equal(t, "Mietwohnung", s.Home())
}

func TestSell_Pays90PercentOfAppreciatedValue(t *testing.T) {
	s := State{}
	s.Buy(Property{ID: "p1", Name: "Haus", PurchasePrice: 100_000})
	s.Owned[0].Value = 120_000 // after some years of appreciation

	payout, err := s.Sell("p1")
	require.NoError(t, err)
	assert.Equal(t, 108_000, payout)
	assert.Empty(t, s.Owned)
	assert.Empty(t, s.CurrentHomeID)

	_, err = s.Sell("p1")
	assert.ErrorIs(t, err, ErrUnknownProperty)
}

func TestYearlySettlement_HouseScenario(t *testing.T) {
	// A 50,000 house at 5% appreciation: one advance raises the value
	// to 52,500 and charges 1% of that (525) as maintenance.
	s := State{}
	s.Buy(Property{ID: "p1", Name: "Haus", PurchasePrice: 50_000, AppreciationPct: 5})

	rent, maintenance := s.YearlySettlement()
	assert.Equal(t, 0, rent)
	assert.Equal(t, 52_500, s.Owned[0].Value)
	assert.Equal(t, 525, maintenance)
}

func TestYearlySettlement_RentCharged(t *testing.T) {
	s := State{}
	s.RentHome(Rental{Name: "Mietwohnung", MonthlyRent: 650})

	rent, maintenance := s.YearlySettlement()
	assert.Equal(t, 650*12, rent)
	assert.Equal(t, 0, maintenance)
}

func TestMarketIndex_BoundedAndStable(t *testing.T) {
	m := NewMarketIndex(7)
	for year := 2000; year < 2100; year++ {
		f := m.Factor(year)
		assert.GreaterOrEqual(t, f, 0.8)
		assert.LessOrEqual(t, f, 1.2)
	}
	assert.Equal(t, m.Factor(2042), m.Factor(2042), "deterministic per seed and year")
}

func TestListings_MarketAndFloor(t *testing.T) {
	listings := Listings(fixedSource{n: 0}, NewMarketIndex(1), 2030)
	require.NotEmpty(t, listings)
	for _, p := range listings {
		assert.Equal(t, p.PurchasePrice, p.Value)
		assert.GreaterOrEqual(t, p.AppreciationPct, 0.5)
	}
}
