package rewards_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/klubbportal/klubbportal/internal/app/api"
	uierrors "github.com/klubbportal/klubbportal/internal/app/features/errors"
	"github.com/klubbportal/klubbportal/internal/app/features/rewards"
	"github.com/klubbportal/klubbportal/internal/app/media"
	"github.com/klubbportal/klubbportal/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, backend *testutil.Backend) *rewards.Handler {
	t.Helper()
	logger := zap.NewNop()
	errLog := uierrors.NewErrorLogger(logger)
	resolver := media.NewResolver("http://media.test")
	return rewards.NewHandler(api.New(backend.URL(), logger), resolver, errLog, logger)
}

func TestServeList_ScopedForClubAdmin(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.RespondList("/rewards/", []any{}, 0)
	backend.RespondList("/clubs/", []any{}, 0)
	handler := newTestHandler(t, backend)

	req := testutil.GetAs("/rewards", testutil.ClubUser("12"))
	renders := testutil.RecordRenders(t)
	rec := httptest.NewRecorder()
	handler.ServeList(rec, req)

	if last := renders.Last(); last == nil || last.Name != "rewards_list" {
		t.Fatalf("expected the list to render, got %+v", last)
	}

	call := backend.LastCall("GET", "/rewards/")
	if call == nil {
		t.Fatal("expected a GET /rewards/ call")
	}
	if got := call.Query["club"]; len(got) != 1 || got[0] != "12" {
		t.Errorf("club scope = %v, want [12]", got)
	}
}

func TestServeView_FetchesClaimHistory(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Respond("GET", "/rewards/6/", http.StatusOK, map[string]any{
		"id": 6, "name": "Biobiljett", "points": 150,
	})
	backend.RespondList("/rewards/6/history/", []any{
		map[string]any{"id": 1, "reward": 6, "user": 9, "user_name": "Elsa Lind", "status": "APPROVED"},
	}, 1)
	handler := newTestHandler(t, backend)

	req := testutil.GetAs("/rewards/6/view", testutil.SuperUser())
	req = testutil.WithChiURLParam(req, "id", "6")
	renders := testutil.RecordRenders(t)
	rec := httptest.NewRecorder()
	handler.ServeView(rec, req)

	if backend.LastCall("GET", "/rewards/6/history/") == nil {
		t.Error("expected a GET /rewards/6/history/ call")
	}
	if last := renders.Last(); last == nil || last.Name != "reward_view" {
		t.Fatalf("expected the view to render, got %+v", last)
	}
}

func TestServeView_NotFound(t *testing.T) {
	backend := testutil.NewBackend(t)
	handler := newTestHandler(t, backend)

	req := testutil.GetAs("/rewards/99/view", testutil.SuperUser())
	req = testutil.WithChiURLParam(req, "id", "99")
	renders := testutil.RecordRenders(t)
	rec := httptest.NewRecorder()
	handler.ServeView(rec, req)

	if backend.LastCall("GET", "/rewards/99/") == nil {
		t.Error("expected a GET /rewards/99/ call")
	}
	if last := renders.Last(); last == nil || last.Name != "error_not_found" {
		t.Fatalf("expected the not-found panel, got %+v", last)
	}
}
