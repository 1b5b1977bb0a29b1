// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/queen-house/auth"
	"github.com/danielhkuo/queen-house/models"
	"github.com/danielhkuo/queen-house/store"
	"github.com/danielhkuo/queen-house/testutil"
)

// testNow is 21:00 UTC on the day the test store is seeded
var testNow = time.Date(2026, 10, 18, 21, 0, 0, 0, time.UTC)

type testEnv struct {
	store    *store.Store
	db       *sql.DB
	sessions *auth.Sessions
	now      time.Time
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		store: testutil.NewTestStore(t),
		db:    testutil.SetupTestDB(t),
		now:   testNow,
	}

	cfg := testutil.GetTestConfig()
	sessions, err := auth.NewSessions(cfg.AdminPassword, cfg.SessionSecret, cfg.SessionTTL, env.clock)
	if err != nil {
		t.Fatalf("Failed to create sessions: %v", err)
	}
	env.sessions = sessions

	return env
}

// clock reads env.now so tests can move time forward.
func (e *testEnv) clock() time.Time { return e.now }

func (e *testEnv) admin() *AdminHandler {
	return NewAdminHandler(e.store, e.db, e.sessions, e.clock)
}

func (e *testEnv) voting() *VotingHandler {
	return NewVotingHandler(e.store, e.db, e.clock)
}

func (e *testEnv) site() *SiteHandler {
	return NewSiteHandler(e.store, e.db, e.clock)
}

// login signs deviceUUID in and returns headers for admin requests.
func (e *testEnv) login(t *testing.T, deviceUUID string) map[string]string {
	t.Helper()

	req := testutil.MakeRequest("POST", "/admin/login", models.LoginRequest{Password: testutil.TestPassword},
		map[string]string{"X-Device-UUID": deviceUUID})
	w := httptest.NewRecorder()
	e.admin().Login(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Login failed with status %d: %s", w.Code, w.Body.String())
	}

	var resp models.LoginResponse
	testutil.AssertJSON(t, w, &resp)

	return map[string]string{
		"X-Device-UUID": deviceUUID,
		"Authorization": "Bearer " + resp.Token,
	}
}
