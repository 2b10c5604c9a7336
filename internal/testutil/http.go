package testutil

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/klubbportal/klubbportal/internal/app/system/auth"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that call chi.URLParam directly. Repeated calls
// accumulate parameters on the same route context.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok || rctx == nil {
		rctx = chi.NewRouteContext()
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}
	rctx.URLParams.Add(key, value)
	return r
}

// SuperUser returns a session user with platform-wide access.
func SuperUser() *auth.SessionUser {
	return &auth.SessionUser{
		ID:    "1",
		Name:  "Test Super",
		Email: "super@example.com",
		Role:  auth.RoleSuper,
	}
}

// MunicipalityUser returns a session user scoped to one municipality.
func MunicipalityUser(municipalityID string) *auth.SessionUser {
	return &auth.SessionUser{
		ID:             "2",
		Name:           "Test Municipality Admin",
		Email:          "kommun@example.com",
		Role:           auth.RoleMunicipality,
		MunicipalityID: municipalityID,
	}
}

// ClubUser returns a session user scoped to one club.
func ClubUser(clubID string) *auth.SessionUser {
	return &auth.SessionUser{
		ID:     "3",
		Name:   "Test Club Admin",
		Email:  "klubb@example.com",
		Role:   auth.RoleClub,
		ClubID: clubID,
	}
}

// GetAs builds a GET request with the given user injected into context.
func GetAs(target string, u *auth.SessionUser) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	return auth.WithTestUser(r, u)
}

// PostFormAs builds an urlencoded POST request with the given user.
func PostFormAs(target string, form map[string]string, u *auth.SessionUser) *http.Request {
	vals := url.Values{}
	for k, v := range form {
		vals.Set(k, v)
	}
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(vals.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return auth.WithTestUser(r, u)
}

// UploadFile is a file attachment for PostMultipartAs.
type UploadFile struct {
	Name string
	Data []byte
}

// PostMultipartAs builds a multipart POST request with the given user, for
// handlers that accept file uploads. Repeated values under one field name
// model multi-selects; repeated attachments model multi-file inputs.
func PostMultipartAs(target string, form url.Values, files map[string][]UploadFile, u *auth.SessionUser) *http.Request {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, vs := range form {
		for _, v := range vs {
			_ = mw.WriteField(k, v)
		}
	}
	for field, atts := range files {
		for _, att := range atts {
			fw, err := mw.CreateFormFile(field, att.Name)
			if err != nil {
				panic(err)
			}
			_, _ = fw.Write(att.Data)
		}
	}
	_ = mw.Close()

	r := httptest.NewRequest(http.MethodPost, target, &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return auth.WithTestUser(r, u)
}

// AssertStatus fails the test when the recorded status differs.
func AssertStatus(t interface{ Errorf(string, ...any) }, rec *httptest.ResponseRecorder, want int) {
	if rec.Code != want {
		t.Errorf("status code: got %d, want %d", rec.Code, want)
	}
}

// AssertRedirect fails the test unless the response redirects to location.
func AssertRedirect(t interface{ Errorf(string, ...any) }, rec *httptest.ResponseRecorder, location string) {
	if rec.Code != http.StatusSeeOther && rec.Code != http.StatusFound {
		t.Errorf("expected redirect status, got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != location {
		t.Errorf("redirect location: got %q, want %q", got, location)
	}
}

// AssertContains fails the test unless the body contains the substring.
func AssertContains(t interface{ Errorf(string, ...any) }, rec *httptest.ResponseRecorder, want string) {
	if !strings.Contains(rec.Body.String(), want) {
		t.Errorf("response body does not contain %q", want)
	}
}
