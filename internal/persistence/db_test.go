package persistence

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoberg/lebenslauf/internal/engine"
	"github.com/mkoberg/lebenslauf/internal/event"
	"github.com/mkoberg/lebenslauf/internal/player"
	"github.com/mkoberg/lebenslauf/internal/stats"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testState() engine.GameState {
	p := player.New("Jona", player.GenderMale, 2010, stats.PlayerStats{
		IQ: 55, Health: 80, Fitness: 50, Looks: 60, Luck: 45,
	})
	p.Age = 12
	p.Money = 350
	return engine.GameState{Year: 2022, Player: *p, Phase: engine.PhaseReadyToAdvance}
}

func TestSaveGame_RoundTrip(t *testing.T) {
	db := testDB(t)

	state := testState()
	require.NoError(t, db.SaveGame(state))

	loaded, err := db.LoadGame()
	require.NoError(t, err)
	assert.Equal(t, 2022, loaded.Year)
	assert.Equal(t, "Jona", loaded.Player.Name)
	assert.Equal(t, 350, loaded.Player.Money)
	assert.Equal(t, engine.PhaseReadyToAdvance, loaded.Phase)
}

func TestSaveGame_SingleSlotOverwrites(t *testing.T) {
	db := testDB(t)

	state := testState()
	require.NoError(t, db.SaveGame(state))
	state.Year = 2030
	require.NoError(t, db.SaveGame(state))

	loaded, err := db.LoadGame()
	require.NoError(t, err)
	assert.Equal(t, 2030, loaded.Year)
}

func TestLoadGame_MissingSlotSignalsNoSave(t *testing.T) {
	db := testDB(t)

	_, err := db.LoadGame()
	assert.ErrorIs(t, err, ErrNoSave)
}

func TestLoadGame_CorruptSlotSignalsNoSave(t *testing.T) {
	db := testDB(t)

	_, err := db.conn.Exec(
		"INSERT INTO save_slot (id, state_json, saved_at) VALUES (1, ?, ?)",
		"{not json", "2026-01-01T00:00:00Z")
	require.NoError(t, err)

	_, err = db.LoadGame()
	assert.ErrorIs(t, err, ErrNoSave)
}

func TestDeleteSave(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.SaveGame(testState()))
	require.NoError(t, db.DeleteSave())

	_, err := db.LoadGame()
	assert.ErrorIs(t, err, ErrNoSave)
}

func TestArchiveLife_AndRecentLives(t *testing.T) {
	db := testDB(t)

	state := testState()
	state.Player.Age = 83
	state.Player.Money = 120_000
	require.NoError(t, db.ArchiveLife(state, "Gesundheit versagt"))
	require.NoError(t, db.ArchiveLife(state, "Schwerer Unfall"))

	lives, err := db.RecentLives(10)
	require.NoError(t, err)
	require.Len(t, lives, 2)
	assert.Equal(t, "Schwerer Unfall", lives[0].CauseOfDeath, "newest first")
	assert.Equal(t, "Jona", lives[0].Name)
	assert.Equal(t, 83, lives[0].FinalAge)
	assert.Equal(t, 120_000, lives[0].Money)
}

func TestSeedIfBelow_FillsAndIsIdempotent(t *testing.T) {
	db := testDB(t)

	builtin := len(event.Builtin())
	added, err := db.SeedIfBelow(builtin)
	require.NoError(t, err)
	assert.Equal(t, builtin, added)

	// A second seeding run of the same floor is a no-op.
	added, err = db.SeedIfBelow(builtin)
	require.NoError(t, err)
	assert.Zero(t, added)

	catalog, err := db.LoadCatalog()
	require.NoError(t, err)
	assert.Len(t, catalog, builtin)
}

func TestSeedIfBelow_MintsFillersAboveBuiltin(t *testing.T) {
	db := testDB(t)

	floor := len(event.Builtin()) + 5
	added, err := db.SeedIfBelow(floor)
	require.NoError(t, err)
	assert.Equal(t, floor, added)

	catalog, err := db.LoadCatalog()
	require.NoError(t, err)
	assert.Len(t, catalog, floor)
	for _, e := range catalog {
		assert.NoError(t, e.Validate())
	}
}

func TestLoadCatalog_QuarantinesInvalidRows(t *testing.T) {
	db := testDB(t)

	_, err := db.SeedIfBelow(len(event.Builtin()))
	require.NoError(t, err)

	// Unparseable payload.
	_, err = db.conn.Exec(`INSERT INTO events
		(id, title, category, min_age, max_age, weight, active, payload_json)
		VALUES ('ev_kaputt', 'Kaputt', 'alltag', 0, 99, 1, 1, '{broken')`)
	require.NoError(t, err)

	// Parseable but invalid: no options.
	_, err = db.conn.Exec(`INSERT INTO events
		(id, title, category, min_age, max_age, weight, active, payload_json)
		VALUES ('ev_leer', 'Leer', 'alltag', 0, 99, 1, 1,
		 '{"id":"ev_leer","title":"Leer","min_age":0,"max_age":99,"weight":1}')`)
	require.NoError(t, err)

	catalog, err := db.LoadCatalog()
	require.NoError(t, err)
	assert.Len(t, catalog, len(event.Builtin()), "bad rows are skipped")

	var active int
	require.NoError(t, db.conn.Get(&active,
		"SELECT COUNT(*) FROM events WHERE active = 0"))
	assert.Equal(t, 2, active, "bad rows are marked inactive")
}

func TestMetaRoundTrip(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.SaveMeta("seed", "42"))
	require.NoError(t, db.SaveMeta("seed", "43"))

	v, err := db.GetMeta("seed")
	require.NoError(t, err)
	assert.Equal(t, "43", v)
}
