// Package stats provides the player attribute model and the
// delta-application contract shared by events, minigames, and
// activities.
package stats

// Bounds for every numeric attribute. No write path may leave a stat
// outside this range.
const (
	StatMin = 0
	StatMax = 100
)

// PlayerStats holds the five bounded attributes. Health at or below
// zero is a terminal condition; the rest only gate eligibility and
// probabilities.
type PlayerStats struct {
	IQ      int `json:"iq"`
	Health  int `json:"health"`
	Fitness int `json:"fitness"`
	Looks   int `json:"looks"`
	Luck    int `json:"luck"`
}

// Clamped returns a copy with every attribute forced into [0,100].
func (s PlayerStats) Clamped() PlayerStats {
	s.IQ = clamp(s.IQ)
	s.Health = clamp(s.Health)
	s.Fitness = clamp(s.Fitness)
	s.Looks = clamp(s.Looks)
	s.Luck = clamp(s.Luck)
	return s
}

// EffectDelta is a sparse set of signed adjustments produced by an
// event option, an activity, or a minigame result. Zero fields mean
// "no change".
type EffectDelta struct {
	IQ      int `json:"iq,omitempty"`
	Health  int `json:"health,omitempty"`
	Fitness int `json:"fitness,omitempty"`
	Looks   int `json:"looks,omitempty"`
	Luck    int `json:"luck,omitempty"`
	Money   int `json:"money,omitempty"`
}

// IsZero reports whether the delta changes nothing.
func (d EffectDelta) IsZero() bool {
	return d == EffectDelta{}
}

// Merge sums two deltas field by field. Used to fold minigame results
// into pending option effects before a single application.
func (d EffectDelta) Merge(o EffectDelta) EffectDelta {
	d.IQ += o.IQ
	d.Health += o.Health
	d.Fitness += o.Fitness
	d.Looks += o.Looks
	d.Luck += o.Luck
	d.Money += o.Money
	return d
}

// statWeight converts a stat point into the same unit as one euro for
// net-benefit scoring. One stat point weighs as much as 20 euros.
const statWeight = 20

// Apply adds an effect delta to stats and money. Stats are clamped to
// [0,100]; money is unclamped and may go negative.
func Apply(s PlayerStats, money int, d EffectDelta) (PlayerStats, int) {
	s.IQ = clamp(s.IQ + d.IQ)
	s.Health = clamp(s.Health + d.Health)
	s.Fitness = clamp(s.Fitness + d.Fitness)
	s.Looks = clamp(s.Looks + d.Looks)
	s.Luck = clamp(s.Luck + d.Luck)
	return s, money + d.Money
}

// Feedback classifies a delta for presentation. The engine never
// branches on it.
type Feedback uint8

const (
	FeedbackNeutral Feedback = iota
	FeedbackPositive
	FeedbackNegative
)

// Classify scores a delta across all fields, stats weighted into money
// units, and reports whether the net result helps or hurts.
func Classify(d EffectDelta) Feedback {
	score := d.Money + (d.IQ+d.Health+d.Fitness+d.Looks+d.Luck)*statWeight
	switch {
	case score > 0:
		return FeedbackPositive
	case score < 0:
		return FeedbackNegative
	default:
		return FeedbackNeutral
	}
}

// NetPositive reports whether a delta counts as beneficial for luck
// biasing: positive money, or luck/health gains outweighing losses in
// the common money unit.
func NetPositive(d EffectDelta) bool {
	if d.Money > 0 {
		return true
	}
	return (d.Luck+d.Health)*statWeight > 0
}

func clamp(v int) int {
	if v < StatMin {
		return StatMin
	}
	if v > StatMax {
		return StatMax
	}
	return v
}
