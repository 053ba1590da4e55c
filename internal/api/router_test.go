package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/skillsaathi/skill-swap/internal/core/service"
	"github.com/skillsaathi/skill-swap/internal/infrastructure/memory"
)

const testSecret = "test-secret"

type testServer struct {
	t *testing.T
	h http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := zerolog.Nop()
	store := memory.NewStore(memory.WithSeed(memory.SeedUsers(), memory.SeedSwapRequests()))

	auth, err := service.NewAuthService(store, service.Credentials{
		Email:    "abc@gmail.com",
		Password: "12345",
		UserID:   "1",
	}, testSecret, 0)
	if err != nil {
		t.Fatalf("auth service: %v", err)
	}

	e := NewRouter(Dependencies{
		Auth:      auth,
		Directory: service.NewDirectoryService(store, log),
		Swaps:     service.NewSwapService(store, nil, log),
		Admin:     service.NewAdminService(store, memory.SeedFlaggedContent(), nil, log),
		JWTSecret: testSecret,
		Log:       log,
		Registry:  prometheus.NewRegistry(),
	})
	return &testServer{t: t, h: e}
}

func (s *testServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	s.t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.h.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login(admin bool) string {
	s.t.Helper()
	body := `{"email":"abc@gmail.com","password":"12345"}`
	if admin {
		body = `{"email":"abc@gmail.com","password":"12345","admin":true}`
	}
	rec := s.do(http.MethodPost, "/auth/login", "", body)
	if rec.Code != http.StatusOK {
		s.t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	decode(s.t, rec, &resp)
	return resp.Token
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

func TestRouter_SwapLifecycle(t *testing.T) {
	s := newTestServer(t)
	token := s.login(false)

	// seeded request 1 is pending and addressed to the session user
	rec := s.do(http.MethodPost, "/v1/swaps/1/accept", token, "")
	expectStatus(t, rec, http.StatusOK)

	// a second accept is no longer a legal transition
	rec = s.do(http.MethodPost, "/v1/swaps/1/accept", token, "")
	expectStatus(t, rec, http.StatusConflict)

	rec = s.do(http.MethodPost, "/v1/swaps/1/complete", token, `{"rating":5,"feedback":"very patient"}`)
	expectStatus(t, rec, http.StatusOK)
	var done struct {
		Status string `json:"status"`
		Rating int    `json:"rating"`
	}
	decode(t, rec, &done)
	if done.Status != "completed" || done.Rating != 5 {
		t.Fatalf("unexpected swap: %+v", done)
	}

	rec = s.do(http.MethodGet, "/v1/me/dashboard", token, "")
	expectStatus(t, rec, http.StatusOK)
	var dash struct {
		PendingSwaps   int `json:"pending_swaps"`
		AcceptedSwaps  int `json:"accepted_swaps"`
		CompletedSwaps int `json:"completed_swaps"`
	}
	decode(t, rec, &dash)
	if dash.PendingSwaps != 0 || dash.AcceptedSwaps != 1 || dash.CompletedSwaps != 1 {
		t.Fatalf("unexpected dashboard: %+v", dash)
	}
}

func TestRouter_ProposeAndWithdraw(t *testing.T) {
	s := newTestServer(t)
	token := s.login(false)

	rec := s.do(http.MethodPost, "/v1/swaps", token, `{"to_user_id":"2","offered_skill_id":"1","requested_skill_id":"5","message":"photos for react?"}`)
	expectStatus(t, rec, http.StatusCreated)
	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decode(t, rec, &created)
	if created.ID == "" || created.Status != "pending" {
		t.Fatalf("unexpected swap: %+v", created)
	}

	rec = s.do(http.MethodGet, "/v1/swaps?direction=sent", token, "")
	expectStatus(t, rec, http.StatusOK)
	var list struct {
		Count int `json:"count"`
	}
	decode(t, rec, &list)
	if list.Count != 1 {
		t.Fatalf("expected 1 sent request, got %d", list.Count)
	}

	rec = s.do(http.MethodDelete, "/v1/swaps/"+created.ID, token, "")
	expectStatus(t, rec, http.StatusNoContent)

	rec = s.do(http.MethodGet, "/v1/swaps/"+created.ID, token, "")
	expectStatus(t, rec, http.StatusNotFound)
}

func TestRouter_ErrorMapping(t *testing.T) {
	s := newTestServer(t)
	token := s.login(false)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"self swap", http.MethodPost, "/v1/swaps", `{"to_user_id":"1","offered_skill_id":"1","requested_skill_id":"2"}`, http.StatusUnprocessableEntity},
		{"unknown skill", http.MethodPost, "/v1/swaps", `{"to_user_id":"2","offered_skill_id":"1","requested_skill_id":"404"}`, http.StatusNotFound},
		{"bad json", http.MethodPost, "/v1/swaps", `{`, http.StatusBadRequest},
		{"withdraw as recipient", http.MethodDelete, "/v1/swaps/1", "", http.StatusForbidden},
		{"complete pending", http.MethodPost, "/v1/swaps/1/complete", `{"rating":4}`, http.StatusConflict},
		{"unknown direction", http.MethodGet, "/v1/swaps?direction=sideways", "", http.StatusUnprocessableEntity},
		{"unknown user", http.MethodGet, "/v1/users/99", "", http.StatusNotFound},
		{"bad skill kind", http.MethodPost, "/v1/me/skills/maybe", `{"name":"Go","category":"Programming"}`, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := s.do(tc.method, tc.path, token, tc.body)
			expectStatus(t, rec, tc.want)
			var resp errorResponse
			decode(t, rec, &resp)
			if resp.Error == "" {
				t.Fatal("expected error message")
			}
		})
	}
}

func TestRouter_AuthAndRoles(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/v1/me", "", "")
	expectStatus(t, rec, http.StatusUnauthorized)

	rec = s.do(http.MethodPost, "/auth/login", "", `{"email":"abc@gmail.com","password":"wrong"}`)
	expectStatus(t, rec, http.StatusUnauthorized)

	member := s.login(false)
	rec = s.do(http.MethodGet, "/v1/admin/stats", member, "")
	expectStatus(t, rec, http.StatusForbidden)

	admin := s.login(true)
	rec = s.do(http.MethodGet, "/v1/admin/stats", admin, "")
	expectStatus(t, rec, http.StatusOK)
	var stats struct {
		TotalUsers   int `json:"total_users"`
		PendingSwaps int `json:"pending_swaps"`
	}
	decode(t, rec, &stats)
	if stats.TotalUsers != 3 || stats.PendingSwaps != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestRouter_AdminModeration(t *testing.T) {
	s := newTestServer(t)
	admin := s.login(true)
	member := s.login(false)

	rec := s.do(http.MethodPost, "/v1/admin/users/3/ban", admin, "")
	expectStatus(t, rec, http.StatusOK)

	rec = s.do(http.MethodGet, "/v1/users/3", member, "")
	expectStatus(t, rec, http.StatusNotFound)

	rec = s.do(http.MethodPost, "/v1/admin/announcements", admin, `{"message":"  scheduled maintenance  "}`)
	expectStatus(t, rec, http.StatusCreated)

	rec = s.do(http.MethodGet, "/v1/announcements", member, "")
	expectStatus(t, rec, http.StatusOK)
	var feed struct {
		Announcements []struct {
			Message string `json:"message"`
		} `json:"announcements"`
	}
	decode(t, rec, &feed)
	if len(feed.Announcements) != 1 || feed.Announcements[0].Message != "scheduled maintenance" {
		t.Fatalf("unexpected announcements: %+v", feed)
	}

	rec = s.do(http.MethodPost, "/v1/admin/reports/unknown", admin, "")
	expectStatus(t, rec, http.StatusUnprocessableEntity)

	rec = s.do(http.MethodPost, "/v1/admin/reports/swap-stats", admin, "")
	expectStatus(t, rec, http.StatusAccepted)
}

func TestRouter_InfraRoutes(t *testing.T) {
	s := newTestServer(t)

	expectStatus(t, s.do(http.MethodGet, "/health", "", ""), http.StatusOK)
	expectStatus(t, s.do(http.MethodGet, "/health/ready", "", ""), http.StatusOK)

	// the live feed is optional; without a hub it reports unavailable
	token := s.login(false)
	expectStatus(t, s.do(http.MethodGet, "/v1/announcements/ws", token, ""), http.StatusServiceUnavailable)

	rec := s.do(http.MethodGet, "/metrics", "", "")
	expectStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), "skillswap_requests_total") {
		t.Fatal("expected http request metrics to be exported")
	}
}
