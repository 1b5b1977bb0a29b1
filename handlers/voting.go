// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/queen-house/clock"
	"github.com/danielhkuo/queen-house/dailyvote"
	"github.com/danielhkuo/queen-house/middleware"
	"github.com/danielhkuo/queen-house/models"
	"github.com/danielhkuo/queen-house/store"
)

type VotingHandler struct {
	store *store.Store
	db    *sql.DB
	now   clock.Func
}

func NewVotingHandler(st *store.Store, db *sql.DB, now clock.Func) *VotingHandler {
	return &VotingHandler{store: st, db: db, now: now}
}

// GetDailyVote handles GET /votes/daily
// candidate_id is null when the device has not voted today.
func (h *VotingHandler) GetDailyVote(w http.ResponseWriter, r *http.Request) {
	storage, ok := deviceStorage(h.db, r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Device-UUID header required")
		return
	}

	helper := dailyvote.New(storage, h.now)
	rec, active, err := helper.Active()
	if err != nil {
		slog.Error("failed to read daily vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	resp := models.DailyVoteResponse{Day: helper.Today()}
	if active {
		resp.CandidateID = &rec.CandidateID
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// CastDailyVote handles POST /votes/daily
func (h *VotingHandler) CastDailyVote(w http.ResponseWriter, r *http.Request) {
	storage, ok := deviceStorage(h.db, r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Device-UUID header required")
		return
	}

	var req models.DailyVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.CandidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate_id is required")
		return
	}

	// Only candidates still in the house can be picked
	c, found := h.store.Candidate(req.CandidateID)
	if !found || c.Status != models.StatusPresent {
		middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	if _, err := GetOrCreateDevice(h.db, r, h.now); err != nil {
		slog.Error("failed to track device", "error", err)
	}

	rec, err := dailyvote.New(storage, h.now).Cast(req.CandidateID)
	if errors.Is(err, dailyvote.ErrAlreadyVoted) || errors.Is(err, dailyvote.ErrContended) {
		middleware.ErrorResponse(w, http.StatusConflict, "Already voted today")
		return
	}
	if err != nil {
		slog.Error("failed to store daily vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	slog.Info("daily vote recorded", "candidate_id", rec.CandidateID, "day", rec.Day)

	middleware.JSONResponse(w, http.StatusCreated, models.DailyVoteResponse{
		CandidateID: &rec.CandidateID,
		Day:         rec.Day,
	})
}
