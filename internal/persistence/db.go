// Package persistence provides SQLite-based storage: the single save
// slot, the event catalog, and the archive of finished lives.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/mkoberg/lebenslauf/internal/engine"
	"github.com/mkoberg/lebenslauf/internal/event"
)

// ErrNoSave signals that no resumable save exists. A corrupt slot is
// treated the same way: the caller starts a fresh life.
var ErrNoSave = errors.New("no saved game")

// DB wraps a SQLite connection for game state persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS save_slot (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		state_json TEXT NOT NULL,
		saved_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		category TEXT NOT NULL,
		min_age INTEGER NOT NULL,
		max_age INTEGER NOT NULL,
		weight REAL NOT NULL,
		active INTEGER NOT NULL DEFAULT 1,
		payload_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS lives (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		birth_year INTEGER NOT NULL,
		final_age INTEGER NOT NULL,
		cause_of_death TEXT NOT NULL,
		money INTEGER NOT NULL,
		state_json TEXT NOT NULL,
		archived_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_active ON events(active);
	CREATE INDEX IF NOT EXISTS idx_lives_archived ON lives(archived_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveGame writes the snapshot into the single save slot.
func (db *DB) SaveGame(state engine.GameState) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	_, err = db.conn.Exec(
		"INSERT OR REPLACE INTO save_slot (id, state_json, saved_at) VALUES (1, ?, ?)",
		string(blob), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("write save slot: %w", err)
	}
	return nil
}

// LoadGame reads the save slot. A missing or unreadable slot returns
// ErrNoSave; the caller starts over rather than crashing on old data.
func (db *DB) LoadGame() (engine.GameState, error) {
	var blob string
	err := db.conn.Get(&blob, "SELECT state_json FROM save_slot WHERE id = 1")
	if errors.Is(err, sql.ErrNoRows) {
		return engine.GameState{}, ErrNoSave
	}
	if err != nil {
		return engine.GameState{}, fmt.Errorf("read save slot: %w", err)
	}

	var state engine.GameState
	if err := json.Unmarshal([]byte(blob), &state); err != nil {
		slog.Warn("save slot is corrupt, starting over", "error", err)
		return engine.GameState{}, ErrNoSave
	}
	return state, nil
}

// DeleteSave clears the save slot, typically after a death has been
// archived.
func (db *DB) DeleteSave() error {
	_, err := db.conn.Exec("DELETE FROM save_slot WHERE id = 1")
	return err
}

// ArchiveLife appends a finished life to the archive.
func (db *DB) ArchiveLife(state engine.GameState, cause string) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal life: %w", err)
	}
	_, err = db.conn.Exec(`INSERT INTO lives
		(name, birth_year, final_age, cause_of_death, money, state_json, archived_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		state.Player.Name, state.Player.BirthYear, state.Player.Age,
		cause, state.Player.Money, string(blob),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("archive life: %w", err)
	}
	return nil
}

// LifeSummary is one archived life, without the full state blob.
type LifeSummary struct {
	ID           int64  `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	BirthYear    int    `db:"birth_year" json:"birth_year"`
	FinalAge     int    `db:"final_age" json:"final_age"`
	CauseOfDeath string `db:"cause_of_death" json:"cause_of_death"`
	Money        int    `db:"money" json:"money"`
	ArchivedAt   string `db:"archived_at" json:"archived_at"`
}

// RecentLives returns the most recently archived lives.
func (db *DB) RecentLives(limit int) ([]LifeSummary, error) {
	var lives []LifeSummary
	err := db.conn.Select(&lives,
		`SELECT id, name, birth_year, final_age, cause_of_death, money, archived_at
		 FROM lives ORDER BY id DESC LIMIT ?`, limit)
	return lives, err
}

// SaveCatalog replaces the stored event rows with the given catalog.
func (db *DB) SaveCatalog(catalog []event.GameEvent) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM events"); err != nil {
		return err
	}

	stmt, err := tx.Preparex(`INSERT INTO events
		(id, title, category, min_age, max_age, weight, active, payload_json)
		VALUES (?, ?, ?, ?, ?, ?, 1, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range catalog {
		blob, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", e.ID, err)
		}
		if _, err := stmt.Exec(e.ID, e.Title, e.Category, e.MinAge, e.MaxAge, e.Weight, string(blob)); err != nil {
			return fmt.Errorf("insert event %s: %w", e.ID, err)
		}
	}

	return tx.Commit()
}

// SeedIfBelow tops the stored catalog up to at least n events: first
// the built-in catalog, then minted low-weight flavor variants. Seeding
// is idempotent; an already-full table is left alone.
func (db *DB) SeedIfBelow(n int) (added int, err error) {
	var count int
	if err := db.conn.Get(&count, "SELECT COUNT(*) FROM events"); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	if count >= n {
		return 0, nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT OR IGNORE INTO events
		(id, title, category, min_age, max_age, weight, active, payload_json)
		VALUES (?, ?, ?, ?, ?, ?, 1, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	insert := func(e event.GameEvent) error {
		blob, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", e.ID, err)
		}
		res, err := stmt.Exec(e.ID, e.Title, e.Category, e.MinAge, e.MaxAge, e.Weight, string(blob))
		if err != nil {
			return fmt.Errorf("insert event %s: %w", e.ID, err)
		}
		if rows, _ := res.RowsAffected(); rows > 0 {
			added++
		}
		return nil
	}

	for _, e := range event.Builtin() {
		if count+added >= n {
			break
		}
		if err := insert(e); err != nil {
			return added, err
		}
	}

	for count+added < n {
		e := mintFlavorEvent()
		if err := insert(e); err != nil {
			return added, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	slog.Info("event catalog seeded", "added", added, "floor", n)
	return added, nil
}

// flavorTemplates are harmless low-weight fillers used to pad a thin
// catalog. Minted copies get fresh ids so repeated seeding of a
// partially filled table cannot collide.
var flavorTemplates = []event.GameEvent{
	{Title: "Regentag", Text: "Es regnet den ganzen Tag.", MinAge: 0, MaxAge: 99,
		Category: "alltag", Weight: 0.3,
		Options: []event.Option{{ID: "drinnen", Label: "Drinnen bleiben",
			ResultText: "Ein ruhiger Tag zu Hause."}}},
	{Title: "Fundstück", Text: "Auf dem Gehweg liegt ein Geldschein.", MinAge: 6, MaxAge: 99,
		Category: "alltag", Weight: 0.3,
		Options: []event.Option{{ID: "nehmen", Label: "Einstecken",
			ResultText: "Fünf Euro reicher."}}},
	{Title: "Nachbarschaftsfest", Text: "Die Straße feiert ihr Sommerfest.", MinAge: 4, MaxAge: 99,
		Category: "alltag", Weight: 0.3,
		Options: []event.Option{{ID: "hingehen", Label: "Mitfeiern",
			ResultText: "Ein netter Nachmittag."}}},
}

func mintFlavorEvent() event.GameEvent {
	id := uuid.New()
	e := flavorTemplates[int(id[0])%len(flavorTemplates)]
	e.ID = "ev_" + id.String()
	return e
}

// LoadCatalog reads the active stored events. Rows that fail
// validation are quarantined: marked inactive and skipped, never
// allowed to take down the game on startup.
func (db *DB) LoadCatalog() ([]event.GameEvent, error) {
	var rows []struct {
		ID      string `db:"id"`
		Payload string `db:"payload_json"`
	}
	err := db.conn.Select(&rows, "SELECT id, payload_json FROM events WHERE active = 1")
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	catalog := make([]event.GameEvent, 0, len(rows))
	for _, row := range rows {
		var e event.GameEvent
		if err := json.Unmarshal([]byte(row.Payload), &e); err != nil {
			db.quarantine(row.ID, err)
			continue
		}
		if err := e.Validate(); err != nil {
			db.quarantine(row.ID, err)
			continue
		}
		catalog = append(catalog, e)
	}
	return catalog, nil
}

func (db *DB) quarantine(id string, cause error) {
	slog.Warn("quarantining invalid catalog event", "id", id, "error", cause)
	if _, err := db.conn.Exec("UPDATE events SET active = 0 WHERE id = ?", id); err != nil {
		slog.Warn("quarantine update failed", "id", id, "error", err)
	}
}

// SaveMeta stores a key-value pair.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM meta WHERE key = ?", key)
	return value, err
}
