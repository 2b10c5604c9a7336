package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/klubbportal/klubbportal/internal/app/api"
	"github.com/klubbportal/klubbportal/internal/testutil"
	"go.uber.org/zap"
)

func TestServe_BackendUp(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Respond(http.MethodGet, "/health/", http.StatusOK, map[string]any{"status": "ok"})

	h := NewHandler(api.New(backend.URL(), zap.NewNop()), zap.NewNop())

	rec := httptest.NewRecorder()
	h.Serve(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["status"] != "ok" || resp["backend"] != "connected" {
		t.Errorf("unexpected response: %v", resp)
	}
}

func TestServe_BackendDown(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Respond(http.MethodGet, "/health/", http.StatusInternalServerError, map[string]any{"detail": "boom"})

	h := NewHandler(api.New(backend.URL(), zap.NewNop()), zap.NewNop())

	rec := httptest.NewRecorder()
	h.Serve(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["backend"] != "disconnected" {
		t.Errorf("unexpected response: %v", resp)
	}
}
