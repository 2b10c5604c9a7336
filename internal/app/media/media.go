// Package media resolves relative media paths from backend payloads
// (avatar, hero_image, cover_image, ...) into absolute URLs for rendering.
package media

import (
	"strings"
	"unicode"
)

// Resolver maps backend media paths to absolute URLs against a configured
// media host. Pure; never fails.
type Resolver struct {
	base string
}

// NewResolver builds a Resolver for the given media host
// (e.g. "https://media.example.org"). A trailing slash is tolerated.
func NewResolver(base string) *Resolver {
	return &Resolver{base: strings.TrimRight(base, "/")}
}

// Resolve returns the absolute URL for a media path. Empty input yields the
// empty string — the caller renders an initials badge or placeholder instead.
// Already-absolute URLs pass through unchanged. Anything else is prefixed
// with the media host with exactly one path separator in between.
func (r *Resolver) Resolve(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return r.base + "/" + strings.TrimLeft(path, "/")
}

// Initials derives a one- or two-letter badge from a display name, used in
// place of a missing avatar. Empty names yield "?".
func Initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				out = append(out, unicode.ToUpper(r))
			}
			break
		}
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}
