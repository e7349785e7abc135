// internal/httpserver/routes_game.go
//
// HTTP routes for the daily word game.
// Exposes three endpoints under /api:
//   - GET  /api/status → current-day snapshot for the caller's session
//   - POST /api/guess  → submit a guess, receive per-letter feedback
//   - GET  /api/stats  → aggregate results for a date (default today)
//
// Both gameplay endpoints identify the caller by the wg_token cookie and
// issue one when missing, so a first-time caller can play immediately.
// Finished games are journaled to the results store on the request that
// finished them; journal failures never affect the gameplay response.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordtide/internal/game"
	"github.com/robalobadob/wordtide/internal/history"
)

// mountGame registers all /api routes.
func (s *Server) mountGame() {
	s.r.Route("/api", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Post("/guess", s.handleGuess)
		r.Get("/stats", s.handleStats)
	})
}

// handleStatus returns the caller's current-day snapshot.
// Never mutates game state beyond lazily creating the empty day record.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	token := s.ensureToken(w, r)
	_ = json.NewEncoder(w).Encode(s.svc.GetStatus(token))
}

// guessReq is the request payload for POST /api/guess.
type guessReq struct {
	Guess string `json:"guess"`
}

// handleGuess validates and applies one guess for the caller's current day.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	token := s.ensureToken(w, r)

	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	res, err := s.svc.SubmitGuess(token, req.Guess)
	if err != nil {
		if errors.Is(err, game.ErrInvalidGuess) {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Msg("submit guess")
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}

	// Journal the outcome when this request finished the game
	// (best effort, non-fatal if it fails).
	if res.Status != game.StatusInProgress && !res.AlreadyFinished {
		jerr := s.hist.InsertResult(r.Context(), history.Result{
			Token:    token,
			Date:     res.Date,
			Won:      res.Status == game.StatusWon,
			Attempts: res.AttemptsUsed,
		})
		if jerr != nil {
			log.Warn().Err(jerr).Str("date", res.Date).Msg("journal result")
		}
	}

	_ = json.NewEncoder(w).Encode(res)
}

// handleStats returns the journal aggregate for a date (default today).
// Anything that is not an eight-digit key falls back to today.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if !validDateKey(date) {
		date = s.svc.Today()
	}
	stats, err := s.hist.StatsFor(r.Context(), date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("load stats")
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(stats)
}

// validDateKey accepts exactly eight ASCII digits (YYYYMMDD).
func validDateKey(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
