// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/queen-house/clock"
	"github.com/danielhkuo/queen-house/dailyvote"
	"github.com/danielhkuo/queen-house/leaderboard"
	"github.com/danielhkuo/queen-house/middleware"
	"github.com/danielhkuo/queen-house/models"
	"github.com/danielhkuo/queen-house/store"
)

// SiteHandler serves the public, read-only views.
type SiteHandler struct {
	store *store.Store
	db    *sql.DB
	now   clock.Func
	start time.Time // ticker rotation counts from here
}

func NewSiteHandler(st *store.Store, db *sql.DB, now clock.Func) *SiteHandler {
	return &SiteHandler{store: st, db: db, now: now, start: now()}
}

// GetSite handles GET /site
func (h *SiteHandler) GetSite(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.store.Snapshot())
}

// ListCandidates handles GET /candidates?q=&view=past
// Default order puts PRESENT candidates first; view=past lists only
// ELIMINATED and LEFT.
func (h *SiteHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	all := h.store.Candidates()

	var list []models.Candidate
	switch r.URL.Query().Get("view") {
	case "", "all":
		list = leaderboard.Roster(all)
	case "past":
		list = leaderboard.Past(all)
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "view must be one of: all, past")
		return
	}

	list = leaderboard.Search(list, r.URL.Query().Get("q"), leaderboard.CandidateName)
	middleware.JSONResponse(w, http.StatusOK, models.CandidatesResponse{Candidates: list})
}

// GetLeaderboard handles GET /leaderboard?q=
// The caller's daily pick, if any, gets the cosmetic boost.
func (h *SiteHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	var votedID string
	if storage, ok := deviceStorage(h.db, r); ok {
		rec, active, err := dailyvote.New(storage, h.now).Active()
		if err != nil {
			slog.Error("failed to read daily vote", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		if active {
			votedID = rec.CandidateID
		}
	}

	entries := leaderboard.Rank(h.store.Candidates(), votedID)
	entries = leaderboard.Search(entries, r.URL.Query().Get("q"), leaderboard.EntryName)

	middleware.JSONResponse(w, http.StatusOK, models.LeaderboardResponse{Entries: entries})
}

// GetBosses handles GET /bosses
func (h *SiteHandler) GetBosses(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.BossesResponse{Bosses: h.store.Bosses()})
}

// GetFAQs handles GET /faqs
func (h *SiteHandler) GetFAQs(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.FAQsResponse{FAQs: h.store.FAQs()})
}

// GetLive handles GET /live
func (h *SiteHandler) GetLive(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.store.LiveConfig())
}

// GetCasting handles GET /casting
func (h *SiteHandler) GetCasting(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.CastingResponse{Open: h.store.CastingOpen()})
}

// GetCountdown handles GET /countdown
func (h *SiteHandler) GetCountdown(w http.ResponseWriter, r *http.Request) {
	target := h.store.SiteConfig().CountdownTarget
	middleware.JSONResponse(w, http.StatusOK, models.CountdownResponse{
		Target:    target,
		Remaining: clock.Countdown(target, h.now()),
	})
}

// GetTicker handles GET /ticker
func (h *SiteHandler) GetTicker(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.TickerResponse{Messages: h.store.TickerMessages()})
}

// GetCurrentTicker handles GET /ticker/current
// Returns 404 when there are no messages to show.
func (h *SiteHandler) GetCurrentTicker(w http.ResponseWriter, r *http.Request) {
	messages := h.store.TickerMessages()
	elapsed := h.now().Sub(h.start)

	i := clock.TickerIndex(len(messages), elapsed, clock.RotationInterval)
	if i < 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "No ticker messages")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CurrentTickerResponse{
		Index:   i,
		Message: messages[i],
	})
}
