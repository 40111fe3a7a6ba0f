package event

import "github.com/mkoberg/lebenslauf/internal/stats"

// PrisonPool is the fixed event pool drawn while the player is
// incarcerated. Catalog events are unreachable until release.
func PrisonPool() []GameEvent {
	return []GameEvent{
		{
			ID: "pr_hofgang", Title: "Hofgang",
			Text:   "Eine Stunde Hof, grauer Himmel, Stacheldraht.",
			MinAge: 14, MaxAge: 99, Category: "prison", Weight: 2,
			Options: []Option{
				{ID: "exercise", Label: "Runden drehen", Effects: stats.EffectDelta{Fitness: 2}, ResultText: "Der Kopf wird etwas freier."},
				{ID: "sit", Label: "In der Ecke sitzen", Effects: stats.EffectDelta{Health: -1}, ResultText: "Die Zeit kriecht."},
			},
		},
		{
			ID: "pr_bibliothek", Title: "Anstaltsbibliothek",
			Text:   "Der Bücherwagen rollt über den Flur.",
			MinAge: 14, MaxAge: 99, Category: "prison", Weight: 2,
			Options: []Option{
				{ID: "read", Label: "Etwas ausleihen", Effects: stats.EffectDelta{IQ: 2}, ResultText: "Du liest mehr als je zuvor."},
				{ID: "pass", Label: "Kein Interesse", ResultText: "Der Wagen rollt weiter."},
			},
		},
		{
			ID: "pr_streit", Title: "Streit in der Kantine",
			Text:   "Ein Mitinsasse rempelt dich beim Essen absichtlich an.",
			MinAge: 14, MaxAge: 99, Category: "prison", Weight: 1.5,
			Options: []Option{
				{ID: "back_down", Label: "Aus dem Weg gehen", Effects: stats.EffectDelta{Luck: -1}, ResultText: "Du giltst als leichtes Ziel."},
				{ID: "stand", Label: "Dagegenhalten", Effects: stats.EffectDelta{Health: -4, Fitness: 1}, ResultText: "Ein blaues Auge, aber Respekt."},
			},
		},
		{
			ID: "pr_fuehrung", Title: "Gute Führung",
			Text:   "Der Vollzugsbeamte notiert sich dein Verhalten.",
			MinAge: 14, MaxAge: 99, Category: "prison", Weight: 1,
			Options: []Option{
				{ID: "cooperate", Label: "Kooperieren", Effects: stats.EffectDelta{Luck: 2}, ResultText: "Ein Vermerk für die Akte."},
				{ID: "defy", Label: "Provozieren", Effects: stats.EffectDelta{Luck: -2}, ResultText: "Hofgang gestrichen."},
			},
		},
	}
}
