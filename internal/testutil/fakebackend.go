// Package testutil provides helpers for handler tests: a scriptable fake
// of the platform REST API plus request builders.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Call records one request the fake backend received.
type Call struct {
	Method string
	Path   string
	Query  map[string][]string
	// Form holds multipart/urlencoded values when the request carried any.
	Form map[string][]string
	// Files maps multipart file field names to the received filenames.
	Files map[string][]string
}

// Backend is a scriptable stand-in for the platform API. Tests register
// canned responses per method+path and later assert on the recorded calls.
type Backend struct {
	t      *testing.T
	Server *httptest.Server

	mu        sync.Mutex
	responses map[string]response
	calls     []Call
}

type response struct {
	status int
	body   any
}

// NewBackend starts a fake backend. It is shut down with the test.
func NewBackend(t *testing.T) *Backend {
	t.Helper()
	b := &Backend{t: t, responses: make(map[string]response)}
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.Server.Close)
	return b
}

// URL returns the backend's base URL.
func (b *Backend) URL() string { return b.Server.URL }

// Respond registers a canned JSON response for method+path (path without
// query string). Later registrations replace earlier ones.
func (b *Backend) Respond(method, path string, status int, body any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.responses[method+" "+path] = response{status: status, body: body}
}

// RespondList registers a {results, count} envelope for GET path.
func (b *Backend) RespondList(path string, items any, count int) {
	b.Respond(http.MethodGet, path, http.StatusOK, map[string]any{
		"results": items,
		"count":   count,
	})
}

// Calls returns a copy of all recorded calls so far.
func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Call(nil), b.calls...)
}

// LastCall returns the most recent call to method+path, or nil.
func (b *Backend) LastCall(method, path string) *Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := len(b.calls) - 1; i >= 0; i-- {
		if b.calls[i].Method == method && b.calls[i].Path == path {
			c := b.calls[i]
			return &c
		}
	}
	return nil
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	call := Call{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
	}

	ct := r.Header.Get("Content-Type")
	switch {
	case len(ct) >= 19 && ct[:19] == "multipart/form-data":
		if err := r.ParseMultipartForm(32 << 20); err == nil {
			call.Form = r.MultipartForm.Value
			call.Files = map[string][]string{}
			for field, headers := range r.MultipartForm.File {
				for _, h := range headers {
					call.Files[field] = append(call.Files[field], h.Filename)
				}
			}
		}
	default:
		if err := r.ParseForm(); err == nil && len(r.PostForm) > 0 {
			call.Form = r.PostForm
		}
	}

	b.mu.Lock()
	b.calls = append(b.calls, call)
	resp, ok := b.responses[r.Method+" "+r.URL.Path]
	b.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"detail": "not found"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	if resp.body != nil {
		json.NewEncoder(w).Encode(resp.body)
	}
}
