package events_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/klubbportal/klubbportal/internal/app/api"
	uierrors "github.com/klubbportal/klubbportal/internal/app/features/errors"
	"github.com/klubbportal/klubbportal/internal/app/features/events"
	"github.com/klubbportal/klubbportal/internal/app/media"
	"github.com/klubbportal/klubbportal/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, backend *testutil.Backend) *events.Handler {
	t.Helper()
	logger := zap.NewNop()
	errLog := uierrors.NewErrorLogger(logger)
	resolver := media.NewResolver("http://media.test")
	return events.NewHandler(api.New(backend.URL(), logger), resolver, errLog, logger, 10<<20)
}

func pngBytes() []byte {
	return append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)
}

func TestHandleCreate_UploadsGalleryPerImage(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Respond("POST", "/events/", http.StatusCreated, map[string]any{"id": 31})
	backend.Respond("POST", "/event-images/", http.StatusCreated, map[string]any{"id": 1})
	handler := newTestHandler(t, backend)

	req := testutil.PostMultipartAs("/events", url.Values{
		"name":          {"Sommarläger"},
		"club":          {"4"},
		"start_time":    {"2026-06-12T10:00"},
		"target_groups": {"1", "2"},
	}, map[string][]testutil.UploadFile{
		"gallery_images": {
			{Name: "one.png", Data: pngBytes()},
			{Name: "two.png", Data: pngBytes()},
		},
	}, testutil.SuperUser())

	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)

	testutil.AssertRedirect(t, rec, "/events")

	create := backend.LastCall("POST", "/events/")
	if create == nil {
		t.Fatal("expected a POST /events/ call")
	}
	if got := create.Form["target_groups"]; len(got) != 2 {
		t.Errorf("target_groups = %v, want two repeated fields", got)
	}

	var imageCalls int
	for _, call := range backend.Calls() {
		if call.Method == "POST" && call.Path == "/event-images/" {
			imageCalls++
			if got := call.Form["event"]; len(got) != 1 || got[0] != "31" {
				t.Errorf("event field = %v, want [31] from the created event", got)
			}
		}
	}
	if imageCalls != 2 {
		t.Errorf("gallery uploads = %d, want one call per image", imageCalls)
	}
}

func TestHandleCreate_RejectsNonDocumentAttachment(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.RespondList("/clubs/", []any{}, 0)
	backend.RespondList("/target-groups/", []any{}, 0)
	backend.RespondList("/interests/", []any{}, 0)
	handler := newTestHandler(t, backend)

	req := testutil.PostMultipartAs("/events", url.Values{
		"name":       {"Sommarläger"},
		"club":       {"4"},
		"start_time": {"2026-06-12T10:00"},
	}, map[string][]testutil.UploadFile{
		"documents": {{Name: "photo.png", Data: pngBytes()}},
	}, testutil.SuperUser())

	renders := testutil.RecordRenders(t)
	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)

	if call := backend.LastCall("POST", "/events/"); call != nil {
		t.Error("backend should not be called when an attachment is not a document")
	}
	last := renders.Last()
	if last == nil || last.Name != "event_form" {
		t.Fatalf("expected the form to re-render, got %+v", last)
	}
	if got := testutil.FormError(last.Data); got != "Attachments must be PDF, Word, or plain text files." {
		t.Errorf("form error = %q", got)
	}
}

func TestServeList_ForwardsDateRange(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.RespondList("/events/", []any{}, 0)
	backend.RespondList("/clubs/", []any{}, 0)
	handler := newTestHandler(t, backend)

	req := testutil.GetAs("/events?date_from=2026-06-01&date_to=2026-06-30&status=SCHEDULED", testutil.SuperUser())
	renders := testutil.RecordRenders(t)
	rec := httptest.NewRecorder()
	handler.ServeList(rec, req)

	if last := renders.Last(); last == nil || last.Name != "events_list" {
		t.Fatalf("expected the list to render, got %+v", last)
	}

	call := backend.LastCall("GET", "/events/")
	if call == nil {
		t.Fatal("expected a GET /events/ call")
	}
	for key, want := range map[string]string{
		"date_from": "2026-06-01",
		"date_to":   "2026-06-30",
		"status":    "SCHEDULED",
	} {
		if got := call.Query[key]; len(got) != 1 || got[0] != want {
			t.Errorf("%s = %v, want [%s]", key, got, want)
		}
	}
}

func TestServeView_FetchesRegistrations(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Respond("GET", "/events/5/", http.StatusOK, map[string]any{
		"id": 5, "name": "Sommarläger", "status": []string{"SCHEDULED"},
	})
	backend.RespondList("/registrations/", []any{
		map[string]any{"id": 1, "event": 5, "user": 9, "user_name": "Elsa Lind"},
	}, 1)
	handler := newTestHandler(t, backend)

	req := testutil.GetAs("/events/5/view", testutil.SuperUser())
	req = testutil.WithChiURLParam(req, "id", "5")
	renders := testutil.RecordRenders(t)
	rec := httptest.NewRecorder()
	handler.ServeView(rec, req)

	if last := renders.Last(); last == nil || last.Name != "event_view" {
		t.Fatalf("expected the view to render, got %+v", last)
	}

	call := backend.LastCall("GET", "/registrations/")
	if call == nil {
		t.Fatal("expected a GET /registrations/ call")
	}
	if got := call.Query["event"]; len(got) != 1 || got[0] != "5" {
		t.Errorf("event filter = %v, want [5]", got)
	}
}

func TestHandleDeleteImage_RedirectsToEdit(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Respond("DELETE", "/event-images/3/", http.StatusNoContent, nil)
	handler := newTestHandler(t, backend)

	req := testutil.PostFormAs("/events/5/images/3/delete", nil, testutil.SuperUser())
	req = testutil.WithChiURLParam(req, "id", "5")
	req = testutil.WithChiURLParam(req, "imageID", "3")

	rec := httptest.NewRecorder()
	handler.HandleDeleteImage(rec, req)

	testutil.AssertRedirect(t, rec, "/events/5/edit")
	if backend.LastCall("DELETE", "/event-images/3/") == nil {
		t.Error("expected DELETE call to backend")
	}
}

func TestHandleDelete_BackendFailureStaysOnList(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.Respond("DELETE", "/events/5/", http.StatusInternalServerError, map[string]any{"detail": "boom"})
	handler := newTestHandler(t, backend)

	req := testutil.PostFormAs("/events/5/delete", nil, testutil.SuperUser())
	req = testutil.WithChiURLParam(req, "id", "5")

	renders := testutil.RecordRenders(t)
	rec := httptest.NewRecorder()
	handler.HandleDelete(rec, req)

	testutil.AssertRedirect(t, rec, "/events")
	if len(renders.Renders) != 0 {
		t.Errorf("delete failure should not render a page, rendered %+v", renders.Renders)
	}
}
