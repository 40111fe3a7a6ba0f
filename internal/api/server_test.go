package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoberg/lebenslauf/internal/engine"
	"github.com/mkoberg/lebenslauf/internal/player"
	"github.com/mkoberg/lebenslauf/internal/stats"
)

func testServer() *Server {
	p := player.New("Jona", player.GenderMale, 2000, stats.PlayerStats{
		IQ: 55, Health: 80, Fitness: 50, Looks: 60, Luck: 45,
	})
	p.Age = 25
	p.Money = 12_500
	state := engine.GameState{
		Year:   2025,
		Player: *p,
		Phase:  engine.PhaseReadyToAdvance,
		Timeline: []engine.TimelineEntry{
			{Year: 2016, Age: 16, Category: "event", Text: "Erster Nebenjob"},
			{Year: 2020, Age: 20, Category: "job", Text: "Neue Stelle"},
			{Year: 2024, Age: 24, Category: "love", Text: "Neue Beziehung"},
		},
	}
	return &Server{Game: engine.Restore(state, engine.Options{})}
}

func TestHandleStatus(t *testing.T) {
	s := testServer()
	rec := httptest.NewRecorder()
	s.handleStatus(rec, httptest.NewRequest("GET", "/api/v1/status", nil))

	require.Equal(t, 200, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Jona", body["name"])
	assert.Equal(t, float64(2025), body["year"])
	assert.Equal(t, "ready_to_advance", body["phase"])
	assert.Equal(t, "12,500 €", body["money_display"])
	assert.Equal(t, "bei den Eltern", body["home"])
}

func TestHandleEvent_NothingPending(t *testing.T) {
	s := testServer()
	rec := httptest.NewRecorder()
	s.handleEvent(rec, httptest.NewRequest("GET", "/api/v1/event", nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["pending"])
}

func TestHandleTimeline_LimitKeepsNewest(t *testing.T) {
	s := testServer()
	rec := httptest.NewRecorder()
	s.handleTimeline(rec, httptest.NewRequest("GET", "/api/v1/timeline?limit=2", nil))

	var entries []engine.TimelineEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, 2020, entries[0].Year)
	assert.Equal(t, 2024, entries[1].Year)
}

func TestHandleTimeline_RejectsBadLimit(t *testing.T) {
	s := testServer()
	rec := httptest.NewRecorder()
	s.handleTimeline(rec, httptest.NewRequest("GET", "/api/v1/timeline?limit=zero", nil))
	assert.Equal(t, 400, rec.Code)
}

func TestRateLimiter_WindowBudget(t *testing.T) {
	rl := NewRateLimiter(2, time.Hour)
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"), "budgets are per client")
	assert.Positive(t, rl.RetryAfter("10.0.0.1"))
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.0.2.7:53211"
	assert.Equal(t, "192.0.2.7", clientIP(r))

	r.Header.Set("X-Forwarded-For", "198.51.100.4, 10.0.0.1")
	assert.Equal(t, "198.51.100.4", clientIP(r))
}
