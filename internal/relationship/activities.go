package relationship

import (
	"github.com/mkoberg/lebenslauf/internal/stats"
)

// ActivityKind groups activities by who they are done with.
type ActivityKind uint8

const (
	KindFamily ActivityKind = iota
	KindFriend
	KindPartner
)

// Activity is one throttled social action. Cost is deducted before
// effects apply unless the parents-pay rule covers it.
type Activity struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Kind       ActivityKind      `json:"kind"`
	Cost       int               `json:"cost"`
	MaxPerYear int               `json:"max_per_year"`
	Effects    stats.EffectDelta `json:"effects"`
	Bond       int               `json:"bond"` // Relationship points gained
}

// Activities returns the static activity table.
func Activities() []Activity {
	return []Activity{
		{ID: "act_zoo", Title: "Zoobesuch", Kind: KindFamily,
			Cost: 40, MaxPerYear: 2, Effects: stats.EffectDelta{Luck: 1}, Bond: 5},
		{ID: "act_essen", Title: "Essen gehen", Kind: KindFamily,
			Cost: 60, MaxPerYear: 4, Bond: 4},
		{ID: "act_freizeitpark", Title: "Freizeitpark", Kind: KindFamily,
			Cost: 120, MaxPerYear: 1, Effects: stats.EffectDelta{Luck: 2}, Bond: 8},
		{ID: "act_kino", Title: "Kinoabend", Kind: KindFriend,
			Cost: 15, MaxPerYear: 6, Bond: 3},
		{ID: "act_wandern", Title: "Wandertour", Kind: KindFriend,
			Cost: 10, MaxPerYear: 3, Effects: stats.EffectDelta{Fitness: 2, Health: 1}, Bond: 4},
		{ID: "act_kurzurlaub", Title: "Kurzurlaub", Kind: KindPartner,
			Cost: 400, MaxPerYear: 2, Effects: stats.EffectDelta{Health: 2, Luck: 2}, Bond: 10},
		{ID: "act_tanzkurs", Title: "Tanzkurs", Kind: KindPartner,
			Cost: 90, MaxPerYear: 1, Effects: stats.EffectDelta{Fitness: 1}, Bond: 6},
	}
}

// ActivityByID looks up an activity in the static table.
func ActivityByID(id string) (Activity, bool) {
	for _, a := range Activities() {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

// Flavor excuses returned when the yearly cap is hit. Declining is a
// normal outcome, never a silent failure.
var capExcuses = map[ActivityKind]string{
	KindFamily:  "Deine Familie hat dieses Jahr schon genug unternommen.",
	KindFriend:  "Deine Freunde haben gerade keine Zeit.",
	KindPartner: "Euer Kalender ist für dieses Jahr voll.",
}

// CheckCap reports whether the activity may run this year. When the
// cap is hit it returns the flavor excuse.
func (s *State) CheckCap(a Activity) (ok bool, excuse string) {
	if s.ActivityUsage == nil {
		return true, ""
	}
	if s.ActivityUsage[a.ID] >= a.MaxPerYear {
		return false, capExcuses[a.Kind]
	}
	return true, ""
}

// RecordUse increments the yearly usage counter.
func (s *State) RecordUse(a Activity) {
	if s.ActivityUsage == nil {
		s.ActivityUsage = make(map[string]int)
	}
	s.ActivityUsage[a.ID]++
}

// ApplyBond distributes the bond gain to the matching roster: family
// activities touch parents and siblings, friend activities every
// friend, partner activities the partner.
func (s *State) ApplyBond(a Activity) {
	switch a.Kind {
	case KindFamily:
		for i := range s.Family {
			if s.Family[i].Alive {
				s.Family[i].Relationship = clampScore(s.Family[i].Relationship + a.Bond)
			}
		}
	case KindFriend:
		for i := range s.Friends {
			s.Friends[i].Relationship = clampScore(s.Friends[i].Relationship + a.Bond)
		}
	case KindPartner:
		if s.Partner != nil {
			s.Partner.Compatibility = clampScore(s.Partner.Compatibility + a.Bond/2)
		}
	}
}
