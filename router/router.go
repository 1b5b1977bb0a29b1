// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/queen-house/auth"
	"github.com/danielhkuo/queen-house/clock"
	"github.com/danielhkuo/queen-house/handlers"
	"github.com/danielhkuo/queen-house/middleware"
	"github.com/danielhkuo/queen-house/store"
)

func NewRouter(st *store.Store, db *sql.DB, sessions *auth.Sessions, now clock.Func) *http.ServeMux {
	mux := http.NewServeMux()

	siteHandler := handlers.NewSiteHandler(st, db, now)
	votingHandler := handlers.NewVotingHandler(st, db, now)
	adminHandler := handlers.NewAdminHandler(st, db, sessions, now)
	deviceHandler := handlers.NewDeviceHandler(db, now)

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(adminHandler.IsAdmin, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public site (read-only)
	mux.HandleFunc("GET /site", middleware.WithLogging(siteHandler.GetSite))
	mux.HandleFunc("GET /candidates", middleware.WithLogging(siteHandler.ListCandidates))
	mux.HandleFunc("GET /leaderboard", middleware.WithLogging(siteHandler.GetLeaderboard))
	mux.HandleFunc("GET /bosses", middleware.WithLogging(siteHandler.GetBosses))
	mux.HandleFunc("GET /faqs", middleware.WithLogging(siteHandler.GetFAQs))
	mux.HandleFunc("GET /live", middleware.WithLogging(siteHandler.GetLive))
	mux.HandleFunc("GET /casting", middleware.WithLogging(siteHandler.GetCasting))
	mux.HandleFunc("GET /countdown", middleware.WithLogging(siteHandler.GetCountdown))
	mux.HandleFunc("GET /ticker", middleware.WithLogging(siteHandler.GetTicker))
	mux.HandleFunc("GET /ticker/current", middleware.WithLogging(siteHandler.GetCurrentTicker))

	// Daily vote (per device)
	mux.HandleFunc("GET /votes/daily", middleware.WithLogging(votingHandler.GetDailyVote))
	mux.HandleFunc("POST /votes/daily", middleware.WithLogging(votingHandler.CastDailyVote))

	// Device management
	mux.HandleFunc("POST /devices/register", middleware.WithLogging(deviceHandler.Register))
	mux.HandleFunc("GET /devices/me", middleware.WithLogging(deviceHandler.GetMe))

	// Admin session
	mux.HandleFunc("POST /admin/login", middleware.WithLogging(adminHandler.Login))
	mux.HandleFunc("POST /admin/logout", middleware.WithLogging(adminHandler.Logout))
	mux.HandleFunc("GET /admin/session", middleware.WithLogging(adminHandler.Session))

	// Admin content (requires Bearer session)
	mux.HandleFunc("PUT /admin/candidates", admin(adminHandler.ReplaceCandidates))
	mux.HandleFunc("POST /admin/candidates", admin(adminHandler.CreateCandidate))
	mux.HandleFunc("PATCH /admin/candidates/{id}", admin(adminHandler.PatchCandidate))
	mux.HandleFunc("PUT /admin/candidates/{id}/status", admin(adminHandler.UpdateCandidateStatus))
	mux.HandleFunc("PUT /admin/candidates/{id}/ranking", admin(adminHandler.UpdateCandidateRanking))
	mux.HandleFunc("PATCH /admin/bosses/{id}", admin(adminHandler.PatchBoss))
	mux.HandleFunc("PATCH /admin/config/site", admin(adminHandler.PatchSiteConfig))
	mux.HandleFunc("PATCH /admin/config/live", admin(adminHandler.PatchLiveConfig))
	mux.HandleFunc("POST /admin/faqs", admin(adminHandler.AddFAQ))
	mux.HandleFunc("PATCH /admin/faqs/{id}", admin(adminHandler.PatchFAQ))
	mux.HandleFunc("DELETE /admin/faqs/{id}", admin(adminHandler.RemoveFAQ))
	mux.HandleFunc("PUT /admin/ticker", admin(adminHandler.SetTicker))
	mux.HandleFunc("POST /admin/ticker", admin(adminHandler.AddTickerMessage))
	mux.HandleFunc("DELETE /admin/ticker/{index}", admin(adminHandler.RemoveTickerMessage))
	mux.HandleFunc("PUT /admin/casting", admin(adminHandler.SetCasting))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("queen-house API v1"))
	})

	return mux
}
