package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/consoleiam/admin-console/internal/core/codec"
	"github.com/consoleiam/admin-console/internal/core/session"
	"github.com/consoleiam/admin-console/internal/infrastructure/storage"
	"github.com/consoleiam/admin-console/internal/testutil"
)

type stubAuthenticator struct{ token string }

func (s stubAuthenticator) Login(context.Context, string, string) (string, error) {
	return s.token, nil
}

func newTestRouter(t *testing.T, permissions, roles []string) (http.Handler, *session.Store) {
	t.Helper()
	c := codec.New(codec.WithClock(testutil.Clock))
	store := session.NewStore(c, storage.NewMemorySlot())
	token := testutil.Token(t, testutil.Claims(permissions, roles))

	e := NewRouter(Deps{
		Store: store,
		Codec: c,
		Auth:  stubAuthenticator{token: token},
		Log:   zerolog.Nop(),
	})
	return e, store
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_LoginFlow(t *testing.T) {
	h, store := newTestRouter(t, []string{"USER_MGMT:read"}, []string{"tenant_admin"})

	if rec := serve(h, http.MethodGet, "/views/users", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 before login, got %d", rec.Code)
	}

	rec := serve(h, http.MethodPost, "/auth/login", `{"username":"ada","password":"pw"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from login, got %d: %s", rec.Code, rec.Body.String())
	}
	if !store.IsAuthenticated() {
		t.Fatalf("expected authenticated store after login")
	}

	rec = serve(h, http.MethodGet, "/views", "")
	var open map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &open); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(open) != 8 || !open["users"] || open["payments"] || open["system-settings"] {
		t.Fatalf("unexpected view verdicts: %v", open)
	}

	if rec := serve(h, http.MethodGet, "/views/users", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for granted view, got %d", rec.Code)
	}
	if rec := serve(h, http.MethodGet, "/views/payments", ""); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for missing permission, got %d", rec.Code)
	}
	if rec := serve(h, http.MethodGet, "/views/system-settings", ""); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", rec.Code)
	}

	if rec := serve(h, http.MethodPost, "/auth/logout", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 from logout, got %d", rec.Code)
	}
	if rec := serve(h, http.MethodGet, "/views/users", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", rec.Code)
	}
}

func TestRouter_ErrorMapping(t *testing.T) {
	h, _ := newTestRouter(t, nil, nil)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		code   int
	}{
		{"malformed token", http.MethodPost, "/session/token", `{"token":"abc"}`, http.StatusUnauthorized},
		{"profile without session", http.MethodPut, "/session/profile", `{"id":"1"}`, http.StatusUnauthorized},
		{"register without local issuer", http.MethodPost, "/auth/register", `{}`, http.StatusNotFound},
		{"invalid check", http.MethodPost, "/session/check", `{"mode":"most"}`, http.StatusBadRequest},
		{"unknown route", http.MethodGet, "/nope", "", http.StatusNotFound},
		{"session", http.MethodGet, "/session", "", http.StatusOK},
		{"liveness", http.MethodGet, "/health", "", http.StatusOK},
		{"readiness", http.MethodGet, "/health/ready", "", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := serve(h, tt.method, tt.target, tt.body); rec.Code != tt.code {
				t.Fatalf("expected %d, got %d: %s", tt.code, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRouter_ProfileRequiresLiveCredential(t *testing.T) {
	h, store := newTestRouter(t, nil, nil)
	if err := store.SetToken(context.Background(), testutil.Token(t, testutil.Claims(nil, nil))); err != nil {
		t.Fatalf("set token: %v", err)
	}

	rec := serve(h, http.MethodPut, "/session/profile", `{"id":"1","username":"ada","permissions":[{"name":"ROLE_MGMT:read"}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !store.Permissions().Has("ROLE_MGMT:read") {
		t.Fatalf("profile replacement must recompute permissions")
	}
}
