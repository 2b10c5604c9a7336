package api

import (
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"
)

func TestPayload_ScalarCoercion(t *testing.T) {
	p := NewPayload()
	p.Set("name", "Ungdomsgården")
	p.Set("is_active", true)
	p.Set("capacity", 120)
	p.Set("points", int64(50))

	tests := []struct {
		field string
		want  string
	}{
		{"name", "Ungdomsgården"},
		{"is_active", "true"},
		{"capacity", "120"},
		{"points", "50"},
	}
	for _, tt := range tests {
		got := p.Values(tt.field)
		if len(got) != 1 || got[0] != tt.want {
			t.Errorf("Values(%q) = %v, want [%q]", tt.field, got, tt.want)
		}
	}
}

func TestPayload_SetReplaces(t *testing.T) {
	p := NewPayload()
	p.Set("status", "DRAFT")
	p.Set("status", "SCHEDULED")
	if got := p.Values("status"); len(got) != 1 || got[0] != "SCHEDULED" {
		t.Errorf("Values(status) = %v", got)
	}
}

func TestPayload_AddRepeats(t *testing.T) {
	p := NewPayload()
	p.Add("guardians", int64(8))
	p.Add("guardians", int64(3))
	if got := p.Values("guardians"); len(got) != 2 || got[0] != "8" || got[1] != "3" {
		t.Errorf("Values(guardians) = %v, want ordered repeats", got)
	}
}

func TestPayload_SetJSON(t *testing.T) {
	p := NewPayload()
	links := map[string]string{"facebook": "x"}
	if err := p.SetJSON("social_media", links); err != nil {
		t.Fatalf("SetJSON failed: %v", err)
	}
	got := p.Values("social_media")
	if len(got) != 1 || got[0] != `{"facebook":"x"}` {
		t.Errorf("Values(social_media) = %v", got)
	}
}

func TestPayload_FileFieldOmittedUnlessAttached(t *testing.T) {
	p := NewPayload()
	p.Set("first_name", "Anna")

	if p.Has("avatar") {
		t.Error("avatar should be absent before AttachFile")
	}

	body, ct, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	form := parseMultipart(t, body, ct)
	if _, ok := form.File["avatar"]; ok {
		t.Error("encoded payload must not contain an avatar part")
	}

	p.AttachFile("avatar", "me.jpg", "image/jpeg", []byte("jpeg-bytes"))
	if !p.Has("avatar") {
		t.Error("avatar should be present after AttachFile")
	}
}

func TestPayload_EncodeRoundTrip(t *testing.T) {
	p := NewPayload()
	p.Set("title", "Sommarfest")
	p.Add("target_groups", int64(2))
	p.Add("target_groups", int64(5))
	p.AttachFile("hero_image", "fest.png", "", []byte("png"))

	body, ct, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	form := parseMultipart(t, body, ct)

	if got := form.Value["title"]; len(got) != 1 || got[0] != "Sommarfest" {
		t.Errorf("title = %v", got)
	}
	if got := form.Value["target_groups"]; len(got) != 2 || got[0] != "2" || got[1] != "5" {
		t.Errorf("target_groups = %v", got)
	}

	files := form.File["hero_image"]
	if len(files) != 1 {
		t.Fatalf("hero_image parts = %d, want 1", len(files))
	}
	if files[0].Filename != "fest.png" {
		t.Errorf("filename = %q", files[0].Filename)
	}
	// Empty content type falls back to octet-stream.
	if got := files[0].Header.Get("Content-Type"); got != "application/octet-stream" {
		t.Errorf("Content-Type = %q", got)
	}
}

func parseMultipart(t *testing.T, body io.Reader, contentType string) *multipart.Form {
	t.Helper()
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		t.Fatalf("bad content type %q: %v", contentType, err)
	}
	mr := multipart.NewReader(body, params["boundary"])
	form, err := mr.ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("ReadForm failed: %v", err)
	}
	return form
}
