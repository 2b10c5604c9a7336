package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"go.uber.org/zap"
)

func TestGet_DecodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/countries/7/" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected X-Request-ID header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":7,"name":"Sweden"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())

	var out struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	if err := c.Get(context.Background(), "/countries/7/", nil, &out); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if out.ID != 7 || out.Name != "Sweden" {
		t.Errorf("unexpected decode: %+v", out)
	}
}

func TestGet_QueryParams(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", zap.NewNop()) // trailing slash tolerated

	params := url.Values{}
	params.Set("search", "anna")
	params.Set("municipality", "3")
	if err := c.Get(context.Background(), "clubs/", params, nil); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if gotQuery.Get("search") != "anna" || gotQuery.Get("municipality") != "3" {
		t.Errorf("query params not forwarded: %v", gotQuery)
	}
}

func TestNon2xx_ReturnsErrorWithStatusAndData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"name":["club with this name already exists."]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	err := c.Post(context.Background(), "/clubs/", map[string]string{"name": "dup"}, nil)
	if err == nil {
		t.Fatal("expected error for 400 response")
	}

	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400", apiErr.Status)
	}
	if _, ok := apiErr.Data["name"]; !ok {
		t.Errorf("expected error body to carry the name key: %v", apiErr.Data)
	}
	if !ConflictOn(err, "name") {
		t.Error("ConflictOn(err, name) should be true")
	}
	if ConflictOn(err, "email") {
		t.Error("ConflictOn(err, email) should be false")
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"404", &Error{Status: http.StatusNotFound}, true},
		{"scoped 403", &Error{Status: http.StatusForbidden}, true},
		{"500", &Error{Status: http.StatusInternalServerError}, false},
		{"plain error", context.Canceled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.want {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNon2xx_NonJSONBodyTolerated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`upstream exploded`))
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	err := c.Get(context.Background(), "/events/", nil, nil)

	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T (%v)", err, err)
	}
	if apiErr.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", apiErr.Status)
	}
}

func TestPost_PayloadSentAsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("expected multipart request: %v", err)
		}
		if got := r.FormValue("name"); got != "Fritidsgården" {
			t.Errorf("name = %q", got)
		}
		if got := r.Form["interests"]; len(got) != 2 || got[0] != "1" || got[1] != "4" {
			t.Errorf("interests repeated field = %v", got)
		}
		f, hdr, err := r.FormFile("hero_image")
		if err != nil {
			t.Fatalf("expected hero_image file: %v", err)
		}
		defer f.Close()
		if hdr.Filename != "hero.png" {
			t.Errorf("filename = %q", hdr.Filename)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":12}`))
	}))
	defer srv.Close()

	p := NewPayload()
	p.Set("name", "Fritidsgården")
	p.Add("interests", int64(1))
	p.Add("interests", int64(4))
	p.AttachFile("hero_image", "hero.png", "image/png", []byte("not-a-real-png"))

	c := New(srv.URL, zap.NewNop())
	var out struct {
		ID int64 `json:"id"`
	}
	if err := c.Post(context.Background(), "/clubs/", p, &out); err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	if out.ID != 12 {
		t.Errorf("ID = %d, want 12", out.ID)
	}
}

func TestDelete_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	if err := c.Delete(context.Background(), "/countries/3/"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
}

func TestContextCancellation_AbortsRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(srv.URL, zap.NewNop())
	if err := c.Get(ctx, "/clubs/", nil, nil); err == nil {
		t.Fatal("expected error from canceled context")
	}
}
