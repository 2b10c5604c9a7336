package media

import "testing"

func TestResolve(t *testing.T) {
	r := NewResolver("https://media.example.org/")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty stays empty", "", ""},
		{"absolute http passes through", "http://x/y.png", "http://x/y.png"},
		{"absolute https passes through", "https://cdn.example.org/a.jpg", "https://cdn.example.org/a.jpg"},
		{"relative without leading slash", "foo/bar.png", "https://media.example.org/foo/bar.png"},
		{"relative with leading slash", "/foo/bar.png", "https://media.example.org/foo/bar.png"},
		{"double leading slash collapsed", "//foo/bar.png", "https://media.example.org/foo/bar.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.in); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "?"},
		{"Anna", "A"},
		{"Anna Berg", "AB"},
		{"anna berg lund", "AB"},
		{"  spaced   out  ", "SO"},
	}
	for _, tt := range tests {
		if got := Initials(tt.in); got != tt.want {
			t.Errorf("Initials(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
