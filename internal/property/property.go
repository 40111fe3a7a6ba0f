// Package property provides housing transactions, yearly rent and
// maintenance, and value appreciation.
package property

import (
	"errors"
	"fmt"
	"math"

	"github.com/mkoberg/lebenslauf/internal/entropy"
)

// Property is one owned home. Value compounds yearly by the
// appreciation percentage; maintenance is charged on the current
// value.
type Property struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	PurchasePrice   int     `json:"purchase_price"`
	Value           int     `json:"value"`
	MonthlyRent     int     `json:"monthly_rent"` // Achievable rent if let out; informational
	AppreciationPct float64 `json:"appreciation_pct"`
}

// Rental is the single rented home slot.
type Rental struct {
	Name        string `json:"name"`
	MonthlyRent int    `json:"monthly_rent"`
}

// State is the property slice of the snapshot. A home slot is owned
// xor rented; CurrentHomeID points into Owned or is the rental marker.
type State struct {
	Owned         []Property `json:"owned,omitempty"`
	Rented        *Rental    `json:"rented,omitempty"`
	CurrentHomeID string     `json:"current_home_id,omitempty"`
}

// RentalHomeID marks the rented flat as the current home.
const RentalHomeID = "rental"

// Home describes where the player currently lives.
func (s *State) Home() string {
	if s.CurrentHomeID == RentalHomeID && s.Rented != nil {
		return s.Rented.Name
	}
	for _, p := range s.Owned {
		if p.ID == s.CurrentHomeID {
			return p.Name
		}
	}
	return "bei den Eltern"
}

// OwnsAny reports whether the player owns at least one property.
func (s *State) OwnsAny() bool {
	return len(s.Owned) > 0
}

var (
	// ErrUnknownProperty signals a sale of a property not on the roster.
	ErrUnknownProperty = errors.New("unknown property")
)

// Buy appends the property to the roster and makes it the current
// home. The caller deducts the purchase price in the same commit —
// ownership transfers atomically with the money.
func (s *State) Buy(p Property) {
	if p.Value == 0 {
		p.Value = p.PurchasePrice
	}
	s.Owned = append(s.Owned, p)
	s.CurrentHomeID = p.ID
}

// RentHome sets the rented slot and makes it the current home. The
// owned roster is untouched.
func (s *State) RentHome(r Rental) {
	s.Rented = &r
	s.CurrentHomeID = RentalHomeID
}

// Sale fee: selling returns 90% of the current appreciated value.
const salePayoutPct = 90

// Sell removes the property and returns the payout. Selling the
// current home moves the player back to their rental, or out entirely.
func (s *State) Sell(id string) (int, error) {
	for i, p := range s.Owned {
		if p.ID != id {
			continue
		}
		s.Owned = append(s.Owned[:i], s.Owned[i+1:]...)
		if s.CurrentHomeID == id {
			s.CurrentHomeID = ""
			if s.Rented != nil {
				s.CurrentHomeID = RentalHomeID
			}
		}
		return p.Value * salePayoutPct / 100, nil
	}
	return 0, fmt.Errorf("sell %s: %w", id, ErrUnknownProperty)
}

// Maintenance rate on owned property value, charged yearly.
const maintenancePct = 1

// YearlySettlement applies one year of property economics: owned
// values compound by their appreciation rate first, then rent and
// maintenance fall due on the new values. Returns the total charge.
func (s *State) YearlySettlement() (rent, maintenance int) {
	for i := range s.Owned {
		p := &s.Owned[i]
		p.Value = int(math.Round(float64(p.Value) * (1 + p.AppreciationPct/100)))
		maintenance += p.Value * maintenancePct / 100
	}
	if s.Rented != nil && s.CurrentHomeID == RentalHomeID {
		rent = s.Rented.MonthlyRent * 12
	}
	return rent, maintenance
}

// Listings generates this year's purchase offers. Prices and
// appreciation ride the market index, so boom years list dearer homes
// that appreciate faster.
func Listings(rng entropy.Source, market *MarketIndex, year int) []Property {
	base := []Property{
		{ID: "prop_wohnung", Name: "Eigentumswohnung", PurchasePrice: 90_000, MonthlyRent: 450},
		{ID: "prop_reihenhaus", Name: "Reihenhaus", PurchasePrice: 150_000, MonthlyRent: 700},
		{ID: "prop_altbau", Name: "Altbauhaus", PurchasePrice: 220_000, MonthlyRent: 950},
		{ID: "prop_villa", Name: "Stadtvilla", PurchasePrice: 480_000, MonthlyRent: 1_900},
	}

	factor := 1.0
	if market != nil {
		factor = market.Factor(year)
	}
	for i := range base {
		p := &base[i]
		p.PurchasePrice = int(float64(p.PurchasePrice) * factor)
		p.Value = p.PurchasePrice
		// 2-6% nominal, nudged by the market and a little noise.
		p.AppreciationPct = 2 + 4*(factor-0.8)/0.4 + float64(rng.Intn(3)-1)*0.5
		if p.AppreciationPct < 0.5 {
			p.AppreciationPct = 0.5
		}
	}
	return base
}
