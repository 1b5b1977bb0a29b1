// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/queen-house/auth"
	"github.com/danielhkuo/queen-house/clock"
	"github.com/danielhkuo/queen-house/middleware"
	"github.com/danielhkuo/queen-house/models"
	"github.com/danielhkuo/queen-house/store"
)

// AdminHandler serves login/logout and every content mutation. All routes
// except Login, Logout and Session must be wrapped with
// middleware.RequireAdmin(h.IsAdmin, ...).
type AdminHandler struct {
	store    *store.Store
	db       *sql.DB
	sessions *auth.Sessions
	now      clock.Func
}

func NewAdminHandler(st *store.Store, db *sql.DB, sessions *auth.Sessions, now clock.Func) *AdminHandler {
	return &AdminHandler{store: st, db: db, sessions: sessions, now: now}
}

// IsAdmin reports whether the request carries a live admin session for its
// device.
func (h *AdminHandler) IsAdmin(r *http.Request) bool {
	storage, ok := deviceStorage(h.db, r)
	if !ok {
		return false
	}
	return h.sessions.IsAdmin(storage, middleware.BearerToken(r))
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	storage, ok := deviceStorage(h.db, r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Device-UUID header required")
		return
	}

	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	token, expiresAt, err := h.sessions.Login(storage, req.Password)
	if errors.Is(err, auth.ErrWrongPassword) {
		slog.Warn("admin login rejected", "remote", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Wrong password")
		return
	}
	if err != nil {
		slog.Error("failed to create admin session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	if _, err := GetOrCreateDevice(h.db, r, h.now); err != nil {
		slog.Error("failed to track device", "error", err)
	}

	slog.Info("admin logged in", "remote", middleware.GetClientIP(r))

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// Logout handles POST /admin/logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	storage, ok := deviceStorage(h.db, r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Device-UUID header required")
		return
	}

	if err := h.sessions.Logout(storage); err != nil {
		slog.Error("failed to clear admin session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log out")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Session handles GET /admin/session
func (h *AdminHandler) Session(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{IsAdmin: h.IsAdmin(r)})
}

// Candidates

// ReplaceCandidates handles PUT /admin/candidates
func (h *AdminHandler) ReplaceCandidates(w http.ResponseWriter, r *http.Request) {
	var req models.ReplaceCandidatesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.store.ReplaceCandidates(req.Candidates); err != nil {
		storeError(w, err)
		return
	}

	slog.Info("candidates replaced", "count", len(req.Candidates))
	h.writeCandidates(w)
}

// CreateCandidate handles POST /admin/candidates
func (h *AdminHandler) CreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req models.Candidate
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	c, err := h.store.AddCandidate(req)
	if err != nil {
		storeError(w, err)
		return
	}

	slog.Info("candidate created", "candidate_id", c.ID, "name", c.Name)
	middleware.JSONResponse(w, http.StatusCreated, c)
}

// PatchCandidate handles PATCH /admin/candidates/{id}
func (h *AdminHandler) PatchCandidate(w http.ResponseWriter, r *http.Request) {
	var patch models.CandidatePatch
	if err := middleware.ParseJSONBody(r, &patch); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.updateCandidate(w, r.PathValue("id"), patch)
}

// UpdateCandidateStatus handles PUT /admin/candidates/{id}/status
func (h *AdminHandler) UpdateCandidateStatus(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.updateCandidate(w, r.PathValue("id"), models.CandidatePatch{Status: &req.Status})
}

// UpdateCandidateRanking handles PUT /admin/candidates/{id}/ranking
func (h *AdminHandler) UpdateCandidateRanking(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateRankingRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.updateCandidate(w, r.PathValue("id"), models.CandidatePatch{Ranking: &req.Ranking})
}

func (h *AdminHandler) updateCandidate(w http.ResponseWriter, id string, patch models.CandidatePatch) {
	if err := h.store.UpdateCandidate(id, patch); err != nil {
		storeError(w, err)
		return
	}

	slog.Info("candidate updated", "candidate_id", id)
	h.writeCandidates(w)
}

func (h *AdminHandler) writeCandidates(w http.ResponseWriter) {
	middleware.JSONResponse(w, http.StatusOK, models.CandidatesResponse{Candidates: h.store.Candidates()})
}

// PatchBoss handles PATCH /admin/bosses/{id}
func (h *AdminHandler) PatchBoss(w http.ResponseWriter, r *http.Request) {
	var patch models.BossPatch
	if err := middleware.ParseJSONBody(r, &patch); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.store.UpdateBoss(r.PathValue("id"), patch)
	slog.Info("boss updated", "boss_id", r.PathValue("id"))

	middleware.JSONResponse(w, http.StatusOK, models.BossesResponse{Bosses: h.store.Bosses()})
}

// Configuration

// PatchSiteConfig handles PATCH /admin/config/site
func (h *AdminHandler) PatchSiteConfig(w http.ResponseWriter, r *http.Request) {
	var patch models.SiteConfigPatch
	if err := middleware.ParseJSONBody(r, &patch); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.store.UpdateSiteConfig(patch); err != nil {
		storeError(w, err)
		return
	}

	slog.Info("site config updated")
	middleware.JSONResponse(w, http.StatusOK, h.store.SiteConfig())
}

// PatchLiveConfig handles PATCH /admin/config/live
func (h *AdminHandler) PatchLiveConfig(w http.ResponseWriter, r *http.Request) {
	var patch models.LiveConfigPatch
	if err := middleware.ParseJSONBody(r, &patch); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.store.UpdateLiveConfig(patch)
	slog.Info("live config updated")

	middleware.JSONResponse(w, http.StatusOK, h.store.LiveConfig())
}

// FAQ

// AddFAQ handles POST /admin/faqs
func (h *AdminHandler) AddFAQ(w http.ResponseWriter, r *http.Request) {
	var req models.AddFAQRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Question == "" || req.Answer == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question and answer are required")
		return
	}

	item := h.store.AddFAQ(req.Question, req.Answer)
	slog.Info("faq added", "faq_id", item.ID)

	middleware.JSONResponse(w, http.StatusCreated, item)
}

// PatchFAQ handles PATCH /admin/faqs/{id}
func (h *AdminHandler) PatchFAQ(w http.ResponseWriter, r *http.Request) {
	var patch models.FAQPatch
	if err := middleware.ParseJSONBody(r, &patch); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.store.UpdateFAQ(r.PathValue("id"), patch)
	middleware.JSONResponse(w, http.StatusOK, models.FAQsResponse{FAQs: h.store.FAQs()})
}

// RemoveFAQ handles DELETE /admin/faqs/{id}
func (h *AdminHandler) RemoveFAQ(w http.ResponseWriter, r *http.Request) {
	h.store.RemoveFAQ(r.PathValue("id"))
	slog.Info("faq removed", "faq_id", r.PathValue("id"))

	middleware.JSONResponse(w, http.StatusOK, models.FAQsResponse{FAQs: h.store.FAQs()})
}

// Ticker

// SetTicker handles PUT /admin/ticker
func (h *AdminHandler) SetTicker(w http.ResponseWriter, r *http.Request) {
	var req models.TickerListRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.store.SetTickerMessages(req.Messages)
	h.writeTicker(w)
}

// AddTickerMessage handles POST /admin/ticker
func (h *AdminHandler) AddTickerMessage(w http.ResponseWriter, r *http.Request) {
	var req models.TickerMessageRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.store.AddTickerMessage(req.Message)
	h.writeTicker(w)
}

// RemoveTickerMessage handles DELETE /admin/ticker/{index}
func (h *AdminHandler) RemoveTickerMessage(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "index must be an integer")
		return
	}

	h.store.RemoveTickerMessage(index)
	h.writeTicker(w)
}

func (h *AdminHandler) writeTicker(w http.ResponseWriter) {
	middleware.JSONResponse(w, http.StatusOK, models.TickerResponse{Messages: h.store.TickerMessages()})
}

// SetCasting handles PUT /admin/casting
func (h *AdminHandler) SetCasting(w http.ResponseWriter, r *http.Request) {
	var req models.CastingRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.store.SetCastingOpen(req.Open)
	slog.Info("casting updated", "open", req.Open)

	middleware.JSONResponse(w, http.StatusOK, models.CastingResponse{Open: h.store.CastingOpen()})
}

// storeError maps store and model errors onto HTTP statuses.
func storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidTransition):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInvalidVoteTemplate),
		errors.Is(err, models.ErrInvalidBannerType),
		errors.Is(err, store.ErrDuplicateID),
		errors.Is(err, store.ErrEmptyID):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("store update failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Update failed")
	}
}
