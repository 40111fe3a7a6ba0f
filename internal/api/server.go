// Package api provides the read-only HTTP observation surface. All
// endpoints are GET; mutation happens exclusively through the
// interactive frontend driving the engine directly.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/mkoberg/lebenslauf/internal/engine"
	"github.com/mkoberg/lebenslauf/internal/persistence"
)

// Server exposes a running game over HTTP.
type Server struct {
	Game *engine.Game
	DB   *persistence.DB // Optional; nil disables the archive endpoint
	Addr string
}

// Start begins serving in a goroutine.
func (s *Server) Start() {
	archiveLimiter := NewRateLimiter(60, time.Hour)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/status", s.handleStatus)
	mux.HandleFunc("GET /api/v1/player", s.handlePlayer)
	mux.HandleFunc("GET /api/v1/event", s.handleEvent)
	mux.HandleFunc("GET /api/v1/relationships", s.handleRelationships)
	mux.HandleFunc("GET /api/v1/property", s.handleProperty)
	mux.HandleFunc("GET /api/v1/timeline", s.handleTimeline)
	if s.DB != nil {
		mux.HandleFunc("GET /api/v1/lives", rateLimited(archiveLimiter, s.handleLives))
	}

	slog.Info("HTTP API starting", "addr", s.Addr)
	go func() {
		if err := http.ListenAndServe(s.Addr, mux); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("response encode failed", "error", err)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.Game.Snapshot()
	writeJSON(w, map[string]any{
		"year":          snap.Year,
		"age":           snap.Player.Age,
		"name":          snap.Player.Name,
		"alive":         snap.Player.Alive,
		"phase":         snap.Phase.String(),
		"money":         snap.Player.Money,
		"money_display": humanize.Comma(int64(snap.Player.Money)) + " €",
		"in_prison":     snap.Player.Imprisoned(),
		"home":          snap.Property.Home(),
	})
}

func (s *Server) handlePlayer(w http.ResponseWriter, r *http.Request) {
	snap := s.Game.Snapshot()
	writeJSON(w, snap.Player)
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	snap := s.Game.Snapshot()
	if snap.CurrentEvent == nil {
		writeJSON(w, map[string]any{"pending": false})
		return
	}
	writeJSON(w, map[string]any{
		"pending": true,
		"event":   snap.CurrentEvent,
	})
}

func (s *Server) handleRelationships(w http.ResponseWriter, r *http.Request) {
	snap := s.Game.Snapshot()
	writeJSON(w, snap.Relationships)
}

func (s *Server) handleProperty(w http.ResponseWriter, r *http.Request) {
	snap := s.Game.Snapshot()
	writeJSON(w, map[string]any{
		"owned":    snap.Property.Owned,
		"rented":   snap.Property.Rented,
		"home":     snap.Property.Home(),
		"listings": snap.YearListings,
	})
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	snap := s.Game.Snapshot()
	entries := snap.Timeline

	limit := 50
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 {
			http.Error(w, "bad limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	writeJSON(w, entries)
}

func (s *Server) handleLives(w http.ResponseWriter, r *http.Request) {
	lives, err := s.DB.RecentLives(20)
	if err != nil {
		slog.Warn("life archive query failed", "error", err)
		http.Error(w, "archive unavailable", http.StatusInternalServerError)
		return
	}
	writeJSON(w, lives)
}
