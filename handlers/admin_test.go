// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/queen-house/localstore"
	"github.com/danielhkuo/queen-house/models"
	"github.com/danielhkuo/queen-house/testutil"
)

func ptr[T any](v T) *T { return &v }

func TestAdminLogin(t *testing.T) {
	env := setupTestEnv(t)
	handler := env.admin()

	tests := []struct {
		name       string
		headers    map[string]string
		body       interface{}
		wantStatus int
	}{
		{"correct password", map[string]string{"X-Device-UUID": "admin-1"}, models.LoginRequest{Password: testutil.TestPassword}, http.StatusOK},
		{"wrong password", map[string]string{"X-Device-UUID": "admin-2"}, models.LoginRequest{Password: "wrong"}, http.StatusUnauthorized},
		{"empty password", map[string]string{"X-Device-UUID": "admin-2"}, models.LoginRequest{}, http.StatusUnauthorized},
		{"missing device", nil, models.LoginRequest{Password: testutil.TestPassword}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Login(w, testutil.MakeRequest("POST", "/admin/login", tt.body, tt.headers))
			testutil.AssertStatus(t, w, tt.wantStatus)
		})
	}

	// A rejected login leaves no session marker behind
	_, ok, err := localstore.NewSQL(env.db, "admin-2").Get("admin_session")
	if err != nil {
		t.Fatalf("Failed to read storage: %v", err)
	}
	if ok {
		t.Error("Expected no session marker after wrong password")
	}
}

func TestAdminSessionLifecycle(t *testing.T) {
	env := setupTestEnv(t)
	handler := env.admin()

	session := func(headers map[string]string) bool {
		t.Helper()
		w := httptest.NewRecorder()
		handler.Session(w, testutil.MakeRequest("GET", "/admin/session", nil, headers))
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.SessionResponse
		testutil.AssertJSON(t, w, &resp)
		return resp.IsAdmin
	}

	if session(map[string]string{"X-Device-UUID": "admin-1"}) {
		t.Error("Expected no session before login")
	}

	headers := env.login(t, "admin-1")
	if !session(headers) {
		t.Error("Expected session after login")
	}

	w := httptest.NewRecorder()
	handler.Logout(w, testutil.MakeRequest("POST", "/admin/logout", nil, map[string]string{"X-Device-UUID": "admin-1"}))
	testutil.AssertStatus(t, w, http.StatusNoContent)

	if session(headers) {
		t.Error("Expected token to be revoked by logout")
	}
}

func TestAdminSessionExpires(t *testing.T) {
	env := setupTestEnv(t)
	headers := env.login(t, "admin-1")

	env.now = env.now.Add(2 * time.Hour)

	if env.admin().IsAdmin(testutil.MakeRequest("GET", "/", nil, headers)) {
		t.Error("Expected expired token to be rejected")
	}
}

func TestAdminCandidateUpdates(t *testing.T) {
	env := setupTestEnv(t)
	handler := env.admin()

	patch := func(id string, body interface{}) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("PATCH", "/admin/candidates/"+id, body, nil)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		handler.PatchCandidate(w, req)
		return w
	}

	t.Run("partial merge", func(t *testing.T) {
		w := patch("p1", map[string]interface{}{"bio": "Nouvelle bio"})
		testutil.AssertStatus(t, w, http.StatusOK)

		c, _ := env.store.Candidate("p1")
		if c.Bio != "Nouvelle bio" || c.Name != "Kayliah" {
			t.Errorf("Expected only bio to change, got %+v", c)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		before := env.store.Candidates()
		w := patch("ghost", map[string]interface{}{"name": "Ghost"})
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.CandidatesResponse
		testutil.AssertJSON(t, w, &resp)
		if len(resp.Candidates) != len(before) {
			t.Errorf("Expected %d candidates, got %d", len(before), len(resp.Candidates))
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		testutil.AssertStatus(t, patch("p1", map[string]interface{}{"status": "WINNER"}), http.StatusBadRequest)
	})

	status := func(id string, s models.Status) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("PUT", "/admin/candidates/"+id+"/status", models.UpdateStatusRequest{Status: s}, nil)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		handler.UpdateCandidateStatus(w, req)
		return w
	}

	t.Run("eliminate", func(t *testing.T) {
		testutil.AssertStatus(t, status("p2", models.StatusEliminated), http.StatusOK)
		c, _ := env.store.Candidate("p2")
		if c.Status != models.StatusEliminated {
			t.Errorf("Expected ELIMINATED, got %s", c.Status)
		}
	})

	t.Run("backwards transition rejected", func(t *testing.T) {
		testutil.AssertStatus(t, status("p2", models.StatusPresent), http.StatusConflict)
		testutil.AssertStatus(t, status("e1", models.StatusLeft), http.StatusConflict)
	})

	t.Run("ranking", func(t *testing.T) {
		req := testutil.MakeRequest("PUT", "/admin/candidates/p7/ranking", models.UpdateRankingRequest{Ranking: 0}, nil)
		req.SetPathValue("id", "p7")
		w := httptest.NewRecorder()
		handler.UpdateCandidateRanking(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		c, _ := env.store.Candidate("p7")
		if c.RankingOrDefault() != 0 {
			t.Errorf("Expected ranking 0, got %d", c.RankingOrDefault())
		}
	})
}

func TestAdminCreateAndReplaceCandidates(t *testing.T) {
	env := setupTestEnv(t)
	handler := env.admin()

	w := httptest.NewRecorder()
	handler.CreateCandidate(w, testutil.MakeRequest("POST", "/admin/candidates", models.Candidate{Name: "Nouvelle", Age: 20}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.Candidate
	testutil.AssertJSON(t, w, &created)
	if created.ID != "p-1000" || created.Status != models.StatusPresent || created.RankingOrDefault() != models.DefaultRanking {
		t.Errorf("Unexpected created candidate: %+v", created)
	}

	w = httptest.NewRecorder()
	handler.CreateCandidate(w, testutil.MakeRequest("POST", "/admin/candidates", models.Candidate{}, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	// e1 is ELIMINATED in the seed
	revived := env.store.Candidates()
	for i := range revived {
		if revived[i].ID == "e1" {
			revived[i].Status = models.StatusPresent
		}
	}
	w = httptest.NewRecorder()
	handler.ReplaceCandidates(w, testutil.MakeRequest("PUT", "/admin/candidates", models.ReplaceCandidatesRequest{Candidates: revived}, nil))
	testutil.AssertStatus(t, w, http.StatusConflict)
	if c, _ := env.store.Candidate("e1"); c.Status != models.StatusEliminated {
		t.Errorf("Expected e1 to stay ELIMINATED, got %s", c.Status)
	}

	list := []models.Candidate{
		{ID: "a", Name: "A", Status: models.StatusPresent},
		{ID: "b", Name: "B", Status: models.StatusLeft},
	}
	w = httptest.NewRecorder()
	handler.ReplaceCandidates(w, testutil.MakeRequest("PUT", "/admin/candidates", models.ReplaceCandidatesRequest{Candidates: list}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if got := len(env.store.Candidates()); got != 2 {
		t.Errorf("Expected 2 candidates after replace, got %d", got)
	}

	dup := append(list, models.Candidate{ID: "a", Name: "A2", Status: models.StatusPresent})
	w = httptest.NewRecorder()
	handler.ReplaceCandidates(w, testutil.MakeRequest("PUT", "/admin/candidates", models.ReplaceCandidatesRequest{Candidates: dup}, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
	if got := len(env.store.Candidates()); got != 2 {
		t.Errorf("Expected rejected replace to leave 2 candidates, got %d", got)
	}
}

func TestAdminBossAndConfig(t *testing.T) {
	env := setupTestEnv(t)
	handler := env.admin()

	req := testutil.MakeRequest("PATCH", "/admin/bosses/yuma", models.BossPatch{Role: ptr("Co-boss")}, nil)
	req.SetPathValue("id", "yuma")
	w := httptest.NewRecorder()
	handler.PatchBoss(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var bosses models.BossesResponse
	testutil.AssertJSON(t, w, &bosses)
	if bosses.Bosses[1].Role != "Co-boss" || bosses.Bosses[1].Name != "Yuma" {
		t.Errorf("Unexpected boss after patch: %+v", bosses.Bosses[1])
	}

	t.Run("site template", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.PatchSiteConfig(w, testutil.MakeRequest("PATCH", "/admin/config/site",
			models.SiteConfigPatch{VoteTemplate: ptr(models.TemplateGrid)}, nil))
		testutil.AssertStatus(t, w, http.StatusOK)

		var site models.SiteConfig
		testutil.AssertJSON(t, w, &site)
		if site.VoteTemplate != models.TemplateGrid || site.Nav.HomeLabel != "Accueil" {
			t.Errorf("Unexpected site config: %+v", site)
		}
	})

	t.Run("site invalid enums", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.PatchSiteConfig(w, testutil.MakeRequest("PATCH", "/admin/config/site",
			map[string]interface{}{"vote_template": "CAROUSEL"}, nil))
		testutil.AssertStatus(t, w, http.StatusBadRequest)

		w = httptest.NewRecorder()
		handler.PatchSiteConfig(w, testutil.MakeRequest("PATCH", "/admin/config/site",
			map[string]interface{}{"banner": map[string]interface{}{"is_visible": true, "text": "x", "type": "PARTY"}}, nil))
		testutil.AssertStatus(t, w, http.StatusBadRequest)

		if env.store.SiteConfig().Banner.IsVisible {
			t.Error("Expected rejected banner patch to leave banner hidden")
		}
	})

	t.Run("live", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.PatchLiveConfig(w, testutil.MakeRequest("PATCH", "/admin/config/live",
			models.LiveConfigPatch{IsLive: ptr(true), VideoEmbedURL: ptr("https://www.youtube.com/embed/live")}, nil))
		testutil.AssertStatus(t, w, http.StatusOK)

		live := env.store.LiveConfig()
		if !live.IsLive || live.Title != "Le Live reprend à 20h00" {
			t.Errorf("Unexpected live config: %+v", live)
		}
	})

	t.Run("casting", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.SetCasting(w, testutil.MakeRequest("PUT", "/admin/casting", models.CastingRequest{Open: true}, nil))
		testutil.AssertStatus(t, w, http.StatusOK)
		if !env.store.CastingOpen() {
			t.Error("Expected casting open")
		}
	})
}

func TestAdminFAQ(t *testing.T) {
	env := setupTestEnv(t)
	handler := env.admin()
	before := env.store.FAQs()

	w := httptest.NewRecorder()
	handler.AddFAQ(w, testutil.MakeRequest("POST", "/admin/faqs", models.AddFAQRequest{Question: "Q?", Answer: "A."}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var item models.FAQItem
	testutil.AssertJSON(t, w, &item)
	if item.ID != "faq-1000" {
		t.Errorf("Expected id faq-1000, got %s", item.ID)
	}

	req := testutil.MakeRequest("PATCH", "/admin/faqs/"+item.ID, models.FAQPatch{Answer: ptr("B.")}, nil)
	req.SetPathValue("id", item.ID)
	w = httptest.NewRecorder()
	handler.PatchFAQ(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	req = testutil.MakeRequest("DELETE", "/admin/faqs/"+item.ID, nil, nil)
	req.SetPathValue("id", item.ID)
	w = httptest.NewRecorder()
	handler.RemoveFAQ(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.FAQsResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.FAQs) != len(before) {
		t.Errorf("Expected %d faqs after round trip, got %d", len(before), len(resp.FAQs))
	}

	w = httptest.NewRecorder()
	handler.AddFAQ(w, testutil.MakeRequest("POST", "/admin/faqs", models.AddFAQRequest{Question: "Q?"}, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestAdminTicker(t *testing.T) {
	env := setupTestEnv(t)
	handler := env.admin()

	w := httptest.NewRecorder()
	handler.SetTicker(w, testutil.MakeRequest("PUT", "/admin/ticker", models.TickerListRequest{Messages: []string{"a", "b"}}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = httptest.NewRecorder()
	handler.AddTickerMessage(w, testutil.MakeRequest("POST", "/admin/ticker", models.TickerMessageRequest{Message: "c"}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	remove := func(index string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("DELETE", "/admin/ticker/"+index, nil, nil)
		req.SetPathValue("index", index)
		w := httptest.NewRecorder()
		handler.RemoveTickerMessage(w, req)
		return w
	}

	testutil.AssertStatus(t, remove("0"), http.StatusOK)
	testutil.AssertStatus(t, remove("9"), http.StatusOK)
	testutil.AssertStatus(t, remove("first"), http.StatusBadRequest)

	got := env.store.TickerMessages()
	if !equalIDs(got, []string{"b", "c"}) {
		t.Errorf("Expected [b c], got %v", got)
	}
}
