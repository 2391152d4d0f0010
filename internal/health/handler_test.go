package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"leadg/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

func TestHealth(t *testing.T) {
	h := NewHandler(logger.Discard())

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil), httprouter.Params{})

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
}

func TestReady(t *testing.T) {
	ok := func(context.Context) error { return nil }
	failing := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name       string
		checks     map[string]Check
		wantStatus int
		wantDeps   map[string]string
	}{
		{
			name:       "no dependencies",
			checks:     nil,
			wantStatus: http.StatusOK,
			wantDeps:   map[string]string{},
		},
		{
			name:       "all healthy",
			checks:     map[string]Check{"mongo": ok, "redis": ok},
			wantStatus: http.StatusOK,
			wantDeps:   map[string]string{"mongo": "ok", "redis": "ok"},
		},
		{
			name:       "redis down",
			checks:     map[string]Check{"mongo": ok, "redis": failing},
			wantStatus: http.StatusServiceUnavailable,
			wantDeps:   map[string]string{"mongo": "ok", "redis": "error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(logger.Discard())
			for name, check := range tt.checks {
				h.WithCheck(name, check)
			}

			router := httprouter.New()
			h.RegisterRoutes(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}

			var resp Response
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatal(err)
			}
			for name, want := range tt.wantDeps {
				if resp.Dependencies[name] != want {
					t.Errorf("%s: got %q, want %q", name, resp.Dependencies[name], want)
				}
			}
		})
	}
}
