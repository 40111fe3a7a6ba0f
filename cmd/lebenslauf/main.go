// Command lebenslauf runs the interactive life simulation.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/mkoberg/lebenslauf/internal/api"
	"github.com/mkoberg/lebenslauf/internal/config"
	"github.com/mkoberg/lebenslauf/internal/engine"
	"github.com/mkoberg/lebenslauf/internal/entropy"
	"github.com/mkoberg/lebenslauf/internal/job"
	"github.com/mkoberg/lebenslauf/internal/minigame"
	"github.com/mkoberg/lebenslauf/internal/persistence"
	"github.com/mkoberg/lebenslauf/internal/player"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	// ── Database ──────────────────────────────────────────────────────
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	if _, err := db.SeedIfBelow(cfg.CatalogFloor); err != nil {
		slog.Error("catalog seeding failed", "error", err)
		os.Exit(1)
	}
	catalog, err := db.LoadCatalog()
	if err != nil {
		slog.Error("catalog load failed", "error", err)
		os.Exit(1)
	}

	// ── Game: resume or fresh life ────────────────────────────────────
	rng := entropy.NewRand(cfg.Seed)
	opts := engine.Options{
		Catalog:    catalog,
		RNG:        rng,
		Minigames:  minigame.AutoRunner{RNG: rng},
		Store:      db,
		MarketSeed: cfg.Seed,
	}

	var game *engine.Game
	saved, err := db.LoadGame()
	switch {
	case err == nil && saved.Player.Alive:
		slog.Info("resuming saved life",
			"name", saved.Player.Name, "age", saved.Player.Age, "year", saved.Year)
		game = engine.Restore(saved, opts)
	case err == nil || errors.Is(err, persistence.ErrNoSave):
		gender := player.GenderMale
		if strings.EqualFold(cfg.PlayerGender, "w") {
			gender = player.GenderFemale
		}
		slog.Info("starting fresh life", "name", cfg.PlayerName, "year", cfg.StartYear)
		game = engine.New(cfg.PlayerName, gender, cfg.StartYear, opts)
	default:
		slog.Error("save slot unreadable", "error", err)
		os.Exit(1)
	}

	// ── Observation API ───────────────────────────────────────────────
	if cfg.HTTPAddr != "" {
		srv := &api.Server{Game: game, DB: db, Addr: cfg.HTTPAddr}
		srv.Start()
	}

	repl(game, db)
}

func repl(game *engine.Game, db *persistence.DB) {
	fmt.Println("Lebenslauf — 'hilfe' zeigt die Befehle.")
	printStatus(game)

	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !sc.Scan() {
			return
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "hilfe":
			printHelp()
		case "status":
			printStatus(game)
		case "weiter":
			advance(game)
		case "wahl":
			choose(game, args)
		case "jobs":
			printJobs(game)
		case "bewerben":
			apply(game, args)
		case "kuendigen":
			report(game.QuitJob())
		case "verbrechen":
			commitCrime(game, args)
		case "suche":
			searchPartners(game)
		case "heiraten":
			report(game.Marry())
		case "kind":
			tryForBaby(game)
		case "namen":
			report(game.ConfirmBirthNames(args))
		case "angebote":
			printListings(game)
		case "kaufen":
			buy(game, args)
		case "leben":
			printLives(db)
		case "ende":
			return
		default:
			fmt.Println("Unbekannter Befehl, 'hilfe' zeigt die Liste.")
		}
	}
}

func printHelp() {
	fmt.Println(`Befehle:
  weiter            nächstes Jahr
  wahl <option>     offenes Ereignis entscheiden
  status            aktueller Stand
  jobs              offene Stellen
  bewerben <id>     auf eine Stelle bewerben
  kuendigen         Stelle aufgeben
  verbrechen <id>   Delikt versuchen
  suche             Partnersuche
  heiraten          Antrag machen
  kind              Nachwuchsversuch
  namen <n...>      Neugeborene benennen
  angebote          Immobilien am Markt
  kaufen <id>       Immobilie kaufen
  leben             Archiv vergangener Leben
  ende              beenden`)
}

func euro(n int) string {
	return humanize.Comma(int64(n)) + " €"
}

func printStatus(game *engine.Game) {
	s := game.Snapshot()
	p := s.Player
	fmt.Printf("%s, %d Jahre (%d) — %s\n", p.Name, p.Age, s.Year, euro(p.Money))
	fmt.Printf("  IQ %d  Gesundheit %d  Fitness %d  Aussehen %d  Glück %d\n",
		p.Stats.IQ, p.Stats.Health, p.Stats.Fitness, p.Stats.Looks, p.Stats.Luck)
	if p.Job != nil {
		fmt.Printf("  Beruf: %s (%s)\n", p.Job.Title, euro(p.Job.Salary))
	}
	if p.Imprisoned() {
		fmt.Printf("  Im Gefängnis, noch %d Jahre\n", p.PrisonYearsRemaining)
	}
	fmt.Printf("  Wohnt: %s\n", s.Property.Home())
	if s.CurrentEvent != nil {
		printEvent(s)
	}
	if s.Phase == engine.PhaseAwaitingBirthNames {
		fmt.Printf("  %d Neugeborene warten auf Namen ('namen ...')\n", len(s.PendingBabies))
	}
}

func printEvent(s engine.GameState) {
	ev := s.CurrentEvent
	fmt.Printf("\n  ▶ %s\n    %s\n", ev.Title, ev.Text)
	for _, o := range ev.Options {
		fmt.Printf("    [%s] %s\n", o.ID, o.Label)
	}
}

func advance(game *engine.Game) {
	report, err := game.AdvanceYear()
	if err != nil {
		printErr(err)
		return
	}
	fmt.Printf("— Jahr %d, %d Jahre alt —\n", report.Year, report.Age)
	if report.Salary > 0 {
		fmt.Printf("  Gehalt: %s\n", euro(report.Salary))
	}
	if report.Kindergeld > 0 {
		fmt.Printf("  Kindergeld: %s\n", euro(report.Kindergeld))
	}
	if report.Rent+report.Maintenance > 0 {
		fmt.Printf("  Wohnen: -%s\n", euro(report.Rent+report.Maintenance))
	}
	for _, n := range report.Notes {
		fmt.Printf("  %s\n", n)
	}
	if report.Died {
		fmt.Printf("  ✝ %s\n", report.CauseOfDeath)
		return
	}
	printStatus(game)
}

func choose(game *engine.Game, args []string) {
	if len(args) != 1 {
		fmt.Println("wahl <option>")
		return
	}
	res, err := game.Choose(args[0])
	if err != nil {
		printErr(err)
		return
	}
	fmt.Printf("  %s\n", res.ResultText)
	if res.Minigame != nil {
		fmt.Printf("  Minispiel: %d Punkte\n", res.Minigame.Score)
	}
}

func printJobs(game *engine.Game) {
	s := game.Snapshot()
	for _, o := range job.Offers() {
		elig := job.CheckEligibility(&s.Player, o)
		marker := " "
		if elig.Eligible {
			marker = "*"
		}
		fmt.Printf("  %s %-18s %-24s %s\n", marker, o.ID, o.Title, euro(o.Salary))
	}
}

func apply(game *engine.Game, args []string) {
	if len(args) != 1 {
		fmt.Println("bewerben <id>")
		return
	}
	app, err := game.ApplyForJob(args[0])
	if err != nil {
		printErr(err)
		return
	}
	switch {
	case app.Hired:
		fmt.Printf("  Eingestellt als %s!\n", app.Offer.Title)
	case !app.Eligibility.Eligible:
		for _, m := range app.Eligibility.Missing {
			fmt.Printf("  %s\n", m)
		}
	default:
		fmt.Println("  Absage erhalten.")
	}
}

func commitCrime(game *engine.Game, args []string) {
	if len(args) != 1 {
		fmt.Println("verbrechen <id>")
		return
	}
	out, err := game.CommitCrime(args[0])
	if err != nil {
		printErr(err)
		return
	}
	if out.Success {
		fmt.Printf("  Unentdeckt davongekommen: %s\n", euro(out.Reward))
	} else {
		fmt.Printf("  Erwischt! %d Jahre Haft.\n", out.PrisonYears)
	}
}

func searchPartners(game *engine.Game) {
	candidates, err := game.SearchPartners(3)
	if err != nil {
		printErr(err)
		return
	}
	for i, c := range candidates {
		fmt.Printf("  %d) %s, %d — Kompatibilität %d\n", i+1, c.Name, c.Age, c.Compatibility)
	}
	if len(candidates) > 0 {
		// Keep it simple: the best match is accepted automatically.
		best := candidates[0]
		for _, c := range candidates[1:] {
			if c.Compatibility > best.Compatibility {
				best = c
			}
		}
		if err := game.AcceptPartner(best); err != nil {
			printErr(err)
			return
		}
		fmt.Printf("  Zusammen mit %s.\n", best.Name)
	}
}

func tryForBaby(game *engine.Game) {
	ok, err := game.TryForBaby()
	if err != nil {
		printErr(err)
		return
	}
	if ok {
		fmt.Println("  Nachwuchs ist unterwegs!")
	} else {
		fmt.Println("  Diesmal nicht geklappt.")
	}
}

func printListings(game *engine.Game) {
	s := game.Snapshot()
	for _, l := range s.YearListings {
		fmt.Printf("  %-16s %-20s %s\n", l.ID, l.Name, euro(l.PurchasePrice))
	}
}

func buy(game *engine.Game, args []string) {
	if len(args) != 1 {
		fmt.Println("kaufen <id>")
		return
	}
	p, err := game.BuyListing(args[0])
	if err != nil {
		printErr(err)
		return
	}
	fmt.Printf("  Gekauft: %s für %s\n", p.Name, euro(p.PurchasePrice))
}

func printLives(db *persistence.DB) {
	lives, err := db.RecentLives(10)
	if err != nil {
		printErr(err)
		return
	}
	for _, l := range lives {
		fmt.Printf("  %s (*%d), %d Jahre — %s, %s\n",
			l.Name, l.BirthYear, l.FinalAge, l.CauseOfDeath, euro(l.Money))
	}
}

func report(err error) {
	if err != nil {
		printErr(err)
		return
	}
	fmt.Println("  Erledigt.")
}

func printErr(err error) {
	if r, ok := engine.AsRefusal(err); ok {
		fmt.Printf("  ✗ %s\n", r.Reason)
		return
	}
	fmt.Printf("  Fehler: %v\n", err)
}
