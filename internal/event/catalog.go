package event

import "github.com/mkoberg/lebenslauf/internal/stats"

// Builtin returns the built-in event catalog. It seeds the catalog
// store on first run and serves as the fallback when the store is
// unreachable. Rows are immutable once loaded.
func Builtin() []GameEvent {
	return []GameEvent{
		// ── Childhood ─────────────────────────────────────────────
		{
			ID: "ev_einschulung", Title: "Einschulung",
			Text:   "Dein erster Schultag steht an. Die Schultüte ist fast so groß wie du.",
			MinAge: 6, MaxAge: 7, Category: "school", Weight: 3, Tags: []string{"milestone"},
			Options: []Option{
				{ID: "brave", Label: "Brav in die erste Reihe setzen", Effects: stats.EffectDelta{IQ: 2}, ResultText: "Die Lehrerin mag dich sofort.", Action: ActionRaiseEducation},
				{ID: "clown", Label: "Den Klassenclown geben", Effects: stats.EffectDelta{Looks: 1, IQ: -1}, ResultText: "Alle lachen. Die Lehrerin nicht.", Action: ActionRaiseEducation},
			},
		},
		{
			ID: "ev_mathetest", Title: "Mathetest",
			Text:   "Überraschungstest in Mathe. Kopfrechnen, keine Taschenrechner.",
			MinAge: 7, MaxAge: 14, Category: "school", Weight: 2,
			Requires: []Precondition{NeedsSchoolAge},
			Options: []Option{
				{ID: "try", Label: "Konzentrieren und rechnen", Minigame: "math", ResultText: "Du gibst dein Bestes."},
				{ID: "cheat", Label: "Beim Nachbarn abschreiben", Effects: stats.EffectDelta{IQ: -2, Luck: -2}, ResultText: "Erwischt. Das gibt einen Eintrag."},
			},
		},
		{
			ID: "ev_fahrradunfall", Title: "Fahrradunfall",
			Text:   "Beim Wettrennen mit den Nachbarskindern fliegst du über den Lenker.",
			MinAge: 6, MaxAge: 13, Category: "health", Weight: 1.5,
			Options: []Option{
				{ID: "tough", Label: "Aufstehen und weiterfahren", Effects: stats.EffectDelta{Health: -5, Fitness: 2}, ResultText: "Das Knie blutet, aber du gewinnst."},
				{ID: "home", Label: "Heulend nach Hause", Effects: stats.EffectDelta{Health: -2}, ResultText: "Mama klebt ein Pflaster drauf."},
			},
		},
		{
			ID: "ev_schwimmkurs", Title: "Schwimmkurs",
			Text:   "Seepferdchen-Prüfung im Hallenbad.",
			MinAge: 5, MaxAge: 10, Category: "sport", Weight: 1.5, Tags: []string{"club"},
			Options: []Option{
				{ID: "swim", Label: "Reinspringen", Minigame: "swim", Effects: stats.EffectDelta{Fitness: 3}, ResultText: "Abzeichen auf die Badehose genäht."},
				{ID: "refuse", Label: "Zu kalt, keine Lust", Effects: stats.EffectDelta{Fitness: -1}, ResultText: "Das Wasser bleibt dir unheimlich."},
			},
		},
		{
			ID: "ev_geschwister", Title: "Familienzuwachs",
			Text:   "Deine Eltern haben Neuigkeiten: du bekommst ein Geschwisterchen.",
			MinAge: 3, MaxAge: 12, Category: "family", Weight: 1, Tags: []string{"milestone"},
			Options: []Option{
				{ID: "happy", Label: "Freuen", Effects: stats.EffectDelta{Luck: 2}, ResultText: "Du darfst den Namen mit aussuchen.", Action: ActionAddSibling},
				{ID: "sulk", Label: "Eifersüchtig sein", Effects: stats.EffectDelta{Luck: -1}, ResultText: "Plötzlich dreht sich alles ums Baby.", Action: ActionAddSibling},
			},
		},
		{
			ID: "ev_neuer_freund", Title: "Neu in der Klasse",
			Text:   "Ein neues Kind sitzt neben dir und teilt sein Pausenbrot.",
			MinAge: 6, MaxAge: 16, Category: "social", Weight: 2,
			Options: []Option{
				{ID: "friend", Label: "Freundschaft schließen", Effects: stats.EffectDelta{Luck: 1}, ResultText: "Ihr seid ab jetzt unzertrennlich.", Action: ActionAddFriend},
				{ID: "ignore", Label: "Ignorieren", ResultText: "Du bleibst lieber für dich."},
			},
		},
		// ── Youth ─────────────────────────────────────────────────
		{
			ID: "ev_abschluss", Title: "Schulabschluss",
			Text:   "Die Prüfungen sind geschafft. Zeugnisvergabe in der Aula.",
			MinAge: 15, MaxAge: 19, Category: "school", Weight: 3, Tags: []string{"milestone"},
			Options: []Option{
				{ID: "learn", Label: "Bis zuletzt büffeln", Effects: stats.EffectDelta{IQ: 3}, ResultText: "Ein Abschluss, auf den man bauen kann.", Action: ActionRaiseEducation},
				{ID: "party", Label: "Lieber feiern als lernen", Effects: stats.EffectDelta{Looks: 1, IQ: -1}, ResultText: "Bestanden. Knapp.", Action: ActionRaiseEducation},
			},
		},
		{
			ID: "ev_fuehrerschein", Title: "Führerscheinprüfung",
			Text:   "Theorie bestanden, jetzt die praktische Prüfung.",
			MinAge: 17, MaxAge: 25, Category: "milestone", Weight: 2, Tags: []string{"driving"},
			Options: []Option{
				{ID: "drive", Label: "Prüfung antreten", Minigame: "driving", ResultText: "Der Prüfer macht sich Notizen.", Action: ActionDriversLicense},
				{ID: "later", Label: "Doch noch verschieben", Effects: stats.EffectDelta{Luck: -1}, ResultText: "Der Termin verfällt."},
			},
		},
		{
			ID: "ev_fussballverein", Title: "Fußballverein",
			Text:   "Der SV Eintracht sucht Verstärkung für die Jugendmannschaft.",
			MinAge: 8, MaxAge: 17, Category: "sport", Weight: 1.5, Tags: []string{"club"},
			Options: []Option{
				{ID: "join", Label: "Beitreten", Effects: stats.EffectDelta{Fitness: 5, Money: -50}, ResultText: "Training zweimal die Woche."},
				{ID: "skip", Label: "Kein Interesse", ResultText: "Fußball ist nichts für dich."},
			},
		},
		{
			ID: "ev_erste_liebe", Title: "Erste Liebe",
			Text:   "Auf der Klassenfahrt funkt es.",
			MinAge: 13, MaxAge: 18, Category: "love", Weight: 1.5, Tags: []string{"milestone"},
			Requires: []Precondition{NeedsNoPartner},
			Options: []Option{
				{ID: "confess", Label: "Gefühle gestehen", Effects: stats.EffectDelta{Luck: 3}, ResultText: "Herzklopfen. Es wird erwidert."},
				{ID: "shy", Label: "Nichts sagen", Effects: stats.EffectDelta{Luck: -2}, ResultText: "Die Chance verstreicht."},
			},
		},
		{
			ID: "ev_nebenjob", Title: "Ferienjob",
			Text:   "Der Kiosk am Markt sucht Aushilfen für den Sommer.",
			MinAge: 14, MaxAge: 19, Category: "job", Weight: 1.5,
			Requires: []Precondition{NeedsNoJob},
			Options: []Option{
				{ID: "work", Label: "Zusagen", Effects: stats.EffectDelta{Money: 400, Fitness: -1}, ResultText: "Sechs Wochen Frühschicht."},
				{ID: "rest", Label: "Ferien sind Ferien", ResultText: "Du genießt den Sommer."},
			},
		},
		// ── Adult life ────────────────────────────────────────────
		{
			ID: "ev_befoerderung", Title: "Beförderung in Sicht",
			Text:   "Deine Chefin deutet an, dass eine Stelle frei wird.",
			MinAge: 20, MaxAge: 60, Category: "job", Weight: 2,
			Requires: []Precondition{NeedsJob},
			Options: []Option{
				{ID: "push", Label: "Mehrarbeit zeigen", Effects: stats.EffectDelta{Health: -2, Money: 500}, ResultText: "Die Überstunden fallen auf."},
				{ID: "coast", Label: "Dienst nach Vorschrift", ResultText: "Jemand anderes bekommt die Stelle."},
			},
		},
		{
			ID: "ev_kuendigungswelle", Title: "Stellenabbau",
			Text:   "Die Firma baut um. Deine Abteilung steht auf der Liste.",
			MinAge: 20, MaxAge: 63, Category: "job", Weight: 1,
			Requires: []Precondition{NeedsJob},
			Options: []Option{
				{ID: "fight", Label: "Um die Stelle kämpfen", Effects: stats.EffectDelta{Health: -3}, ResultText: "Es hilft nichts. Die Kündigung kommt per Post.", Action: ActionLoseJob},
				{ID: "severance", Label: "Abfindung aushandeln", Effects: stats.EffectDelta{Money: 3000}, ResultText: "Ein halbes Jahresgehalt zum Abschied.", Action: ActionLoseJob},
			},
		},
		{
			ID: "ev_lotto", Title: "Lottoschein",
			Text:   "Der Jackpot liegt bei 12 Millionen. Ein Schein kostet 10 Euro.",
			MinAge: 18, MaxAge: 99, Category: "money", Weight: 1,
			Options: []Option{
				{ID: "play", Label: "Mitspielen", Minigame: "lottery", Effects: stats.EffectDelta{Money: -10}, ResultText: "Samstagabend, Ziehung der Lottozahlen."},
				{ID: "skip", Label: "Geldverschwendung", ResultText: "Die Quoten sprechen für dich."},
			},
		},
		{
			ID: "ev_grippe", Title: "Grippewelle",
			Text:   "Das halbe Büro liegt flach, jetzt erwischt es auch dich.",
			MinAge: 6, MaxAge: 99, Category: "health", Weight: 1.5,
			Options: []Option{
				{ID: "rest", Label: "Auskurieren", Effects: stats.EffectDelta{Health: -3}, ResultText: "Eine Woche Bett und Kamillentee."},
				{ID: "ignore", Label: "Durchziehen", Effects: stats.EffectDelta{Health: -8, Fitness: -2}, ResultText: "Aus der Grippe wird eine Bronchitis."},
			},
		},
		{
			ID: "ev_marathon", Title: "Stadtmarathon",
			Text:   "Anmeldung für den Stadtmarathon ist offen.",
			MinAge: 18, MaxAge: 65, Category: "sport", Weight: 1,
			Options: []Option{
				{ID: "run", Label: "Anmelden und trainieren", Minigame: "running", Effects: stats.EffectDelta{Fitness: 4, Health: 2, Money: -80}, ResultText: "Monatelange Vorbereitung."},
				{ID: "watch", Label: "Vom Straßenrand zuschauen", ResultText: "Du klatschst den Läufern zu."},
			},
		},
		{
			ID: "ev_hausangebot", Title: "Haus zu verkaufen",
			Text:   "Das Reihenhaus in deiner Straße steht zum Verkauf: 150.000 Euro.",
			MinAge: 25, MaxAge: 70, Category: "property", Weight: 1,
			Options: []Option{
				{ID: "buy", Label: "Kaufen", Effects: stats.EffectDelta{Luck: 1}, ResultText: "Der Notartermin ist gemacht.", Action: ActionBuyProperty},
				{ID: "decline", Label: "Zu teuer", ResultText: "Jemand anderes greift zu."},
			},
		},
		{
			ID: "ev_wasserschaden", Title: "Wasserschaden",
			Text:   "Ein Rohrbruch setzt dein Wohnzimmer unter Wasser.",
			MinAge: 18, MaxAge: 99, Category: "property", Weight: 1,
			Requires: []Precondition{NeedsOwnedProperty},
			Options: []Option{
				{ID: "pro", Label: "Handwerker rufen", Effects: stats.EffectDelta{Money: -2000}, ResultText: "Teuer, aber gründlich."},
				{ID: "diy", Label: "Selbst trocknen", Effects: stats.EffectDelta{Money: -300, Health: -2}, ResultText: "Der Schimmel kommt später."},
			},
		},
		{
			ID: "ev_jahrestag", Title: "Jahrestag",
			Text:   "Euer Jahrestag steht an und du hast ihn fast vergessen.",
			MinAge: 16, MaxAge: 99, Category: "love", Weight: 1.5,
			Requires: []Precondition{NeedsPartner},
			Options: []Option{
				{ID: "dinner", Label: "Groß ausführen", Effects: stats.EffectDelta{Money: -120, Luck: 2}, ResultText: "Ein gelungener Abend."},
				{ID: "forget", Label: "Drauf ankommen lassen", Effects: stats.EffectDelta{Luck: -3}, ResultText: "Es kommt nicht gut an."},
			},
		},
		{
			ID: "ev_erbschaft", Title: "Erbschaft",
			Text:   "Eine Großtante, die du kaum kanntest, hat dich bedacht.",
			MinAge: 25, MaxAge: 99, Category: "money", Weight: 0.5,
			Options: []Option{
				{ID: "accept", Label: "Erbe annehmen", Effects: stats.EffectDelta{Money: 8000}, ResultText: "Nach Abzug aller Gebühren bleibt etwas übrig."},
				{ID: "donate", Label: "An ein Tierheim spenden", Effects: stats.EffectDelta{Luck: 4}, ResultText: "Die Katzen danken es dir."},
			},
		},
		{
			ID: "ev_rueckenschmerzen", Title: "Rückenschmerzen",
			Text:   "Das Alter meldet sich im Lendenwirbel.",
			MinAge: 45, MaxAge: 99, Category: "health", Weight: 1.5,
			Options: []Option{
				{ID: "physio", Label: "Physiotherapie", Effects: stats.EffectDelta{Money: -250, Health: 3}, ResultText: "Die Übungen helfen tatsächlich."},
				{ID: "endure", Label: "Zusammenbeißen", Effects: stats.EffectDelta{Health: -4}, ResultText: "Es wird schleichend schlimmer."},
			},
		},
		{
			ID: "ev_klassentreffen", Title: "Klassentreffen",
			Text:   "30 Jahre nach dem Abschluss lädt der alte Jahrgang ein.",
			MinAge: 45, MaxAge: 75, Category: "social", Weight: 1,
			Options: []Option{
				{ID: "go", Label: "Hingehen", Effects: stats.EffectDelta{Luck: 2, Money: -40}, ResultText: "Alte Geschichten, neue Gesichter.", Action: ActionAddFriend},
				{ID: "skip", Label: "Absagen", ResultText: "Die Vergangenheit bleibt Vergangenheit."},
			},
		},
		{
			ID: "ev_angelverein", Title: "Angelverein",
			Text:   "Der örtliche Angelverein wirbt um Mitglieder.",
			MinAge: 50, MaxAge: 99, Category: "social", Weight: 1, Tags: []string{"club"},
			Options: []Option{
				{ID: "join", Label: "Mitglied werden", Effects: stats.EffectDelta{Health: 2, Money: -60}, ResultText: "Sonntags am See, endlich Ruhe."},
				{ID: "skip", Label: "Nichts für dich", ResultText: "Fische stinken."},
			},
		},
	}
}
