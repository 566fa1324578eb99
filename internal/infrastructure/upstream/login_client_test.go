package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/consoleiam/admin-console/internal/core/domain"
)

func TestLoginClient_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Username != "ada" || req.Password != "pw" {
			t.Fatalf("unexpected request: %+v", req)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": "a.b.c"})
	}))
	defer srv.Close()

	token, err := NewLoginClient(srv.URL, time.Second).Login(context.Background(), "ada", "pw")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token != "a.b.c" {
		t.Fatalf("expected a.b.c, got %q", token)
	}
}

func TestLoginClient_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewLoginClient(srv.URL, time.Second).Login(context.Background(), "ada", "bad")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewLoginClient(srv.URL, time.Second).Login(context.Background(), "ada", "pw")
	if err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestLoginClient_EmptyCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	if _, err := NewLoginClient(srv.URL, time.Second).Login(context.Background(), "ada", "pw"); err == nil {
		t.Fatalf("expected error for empty response")
	}
}
