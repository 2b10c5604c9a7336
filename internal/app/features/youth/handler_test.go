package youth_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/klubbportal/klubbportal/internal/app/api"
	uierrors "github.com/klubbportal/klubbportal/internal/app/features/errors"
	"github.com/klubbportal/klubbportal/internal/app/features/youth"
	"github.com/klubbportal/klubbportal/internal/app/media"
	"github.com/klubbportal/klubbportal/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, backend *testutil.Backend) *youth.Handler {
	t.Helper()
	logger := zap.NewNop()
	errLog := uierrors.NewErrorLogger(logger)
	resolver := media.NewResolver("http://media.test")
	return youth.NewHandler(api.New(backend.URL(), logger), resolver, errLog, logger, 10<<20)
}

func TestHandleCreate_MultiSelectRoundTrip(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Respond("POST", "/users/", http.StatusCreated, map[string]any{"id": 1})
	handler := newTestHandler(t, backend)

	req := testutil.PostMultipartAs("/youth", url.Values{
		"first_name": {"Elsa"},
		"last_name":  {"Lind"},
		"club":       {"4"},
		"guardians":  {"10", "11"},
		"interests":  {"2"},
	}, nil, testutil.SuperUser())

	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)

	testutil.AssertRedirect(t, rec, "/youth")

	call := backend.LastCall("POST", "/users/")
	if call == nil {
		t.Fatal("expected a POST /users/ call")
	}
	if got := call.Form["guardians"]; len(got) != 2 || got[0] != "10" || got[1] != "11" {
		t.Errorf("guardians = %v, want [10 11] as repeated fields", got)
	}
	if got := call.Form["interests"]; len(got) != 1 || got[0] != "2" {
		t.Errorf("interests = %v, want [2]", got)
	}
}

func TestHandleEdit_OmitsAvatarWhenEmpty(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Respond("PATCH", "/users/8/", http.StatusOK, map[string]any{"id": 8})
	handler := newTestHandler(t, backend)

	req := testutil.PostMultipartAs("/youth/8/edit", url.Values{
		"first_name": {"Elsa"},
		"last_name":  {"Lind"},
		"club":       {"4"},
	}, nil, testutil.SuperUser())
	req = testutil.WithChiURLParam(req, "id", "8")

	rec := httptest.NewRecorder()
	handler.HandleEdit(rec, req)

	testutil.AssertRedirect(t, rec, "/youth")

	call := backend.LastCall("PATCH", "/users/8/")
	if call == nil {
		t.Fatal("expected a PATCH /users/8/ call")
	}
	if got := call.Files["avatar"]; len(got) != 0 {
		t.Errorf("avatar should be omitted when no file is uploaded, got %v", got)
	}
}

func TestServeList_ForwardsRangeFilters(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.RespondList("/users/", []any{}, 0)
	backend.RespondList("/clubs/", []any{}, 0)
	handler := newTestHandler(t, backend)

	req := testutil.GetAs("/youth?age_from=10&age_to=15&verification_status=VERIFIED", testutil.SuperUser())
	renders := testutil.RecordRenders(t)
	rec := httptest.NewRecorder()
	handler.ServeList(rec, req)

	if last := renders.Last(); last == nil || last.Name != "youth_list" {
		t.Fatalf("expected the list to render, got %+v", last)
	}

	call := backend.LastCall("GET", "/users/")
	if call == nil {
		t.Fatal("expected a GET /users/ call")
	}
	for key, want := range map[string]string{
		"age_from":            "10",
		"age_to":              "15",
		"verification_status": "VERIFIED",
	} {
		if got := call.Query[key]; len(got) != 1 || got[0] != want {
			t.Errorf("%s = %v, want [%s]", key, got, want)
		}
	}
}

func TestServeList_ScopedForMunicipalityAdmin(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.RespondList("/users/", []any{}, 0)
	backend.RespondList("/clubs/", []any{}, 0)
	handler := newTestHandler(t, backend)

	req := testutil.GetAs("/youth", testutil.MunicipalityUser("7"))
	renders := testutil.RecordRenders(t)
	rec := httptest.NewRecorder()
	handler.ServeList(rec, req)

	if last := renders.Last(); last == nil || last.Name != "youth_list" {
		t.Fatalf("expected the list to render, got %+v", last)
	}

	call := backend.LastCall("GET", "/users/")
	if call == nil {
		t.Fatal("expected a GET /users/ call")
	}
	if got := call.Query["municipality"]; len(got) != 1 || got[0] != "7" {
		t.Errorf("municipality scope = %v, want [7]", got)
	}
}

func TestHandleCreate_MissingFirstName(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.RespondList("/clubs/", []any{}, 0)
	backend.RespondList("/guardians/", []any{}, 0)
	backend.RespondList("/interests/", []any{}, 0)
	handler := newTestHandler(t, backend)

	req := testutil.PostMultipartAs("/youth", url.Values{
		"last_name": {"Lind"},
		"club":      {"4"},
	}, nil, testutil.SuperUser())

	renders := testutil.RecordRenders(t)
	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)

	if call := backend.LastCall("POST", "/users/"); call != nil {
		t.Error("backend should not be called when validation fails")
	}
	last := renders.Last()
	if last == nil || last.Name != "youth_form" {
		t.Fatalf("expected the form to re-render, got %+v", last)
	}
	if got := testutil.FormError(last.Data); got != "First name is required." {
		t.Errorf("form error = %q", got)
	}
}

func TestHandleDelete_BackendFailureStaysOnList(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Respond("DELETE", "/users/8/", http.StatusInternalServerError, map[string]any{"detail": "boom"})
	handler := newTestHandler(t, backend)

	req := testutil.PostFormAs("/youth/8/delete", nil, testutil.SuperUser())
	req = testutil.WithChiURLParam(req, "id", "8")

	renders := testutil.RecordRenders(t)
	rec := httptest.NewRecorder()
	handler.HandleDelete(rec, req)

	testutil.AssertRedirect(t, rec, "/youth")
	if len(renders.Renders) != 0 {
		t.Errorf("delete failure should not render a page, rendered %+v", renders.Renders)
	}
}
