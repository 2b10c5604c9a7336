// Package filters implements URL-driven filter state for list pages.
//
// The URL query string is the single source of truth for a list's filters
// and current page. Each list page declares a typed descriptor (the ordered
// set of filter keys it understands); values are read from the request on
// every render and written back only by navigating to a URL produced by
// UpdateURL. Changing any filter other than "page" resets the page to 1, and
// empty values remove their key from the URL instead of serializing as "".
package filters

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// PageKey is the reserved pagination key; it is the one filter whose change
// does not reset pagination.
const PageKey = "page"

// Def declares one filter a list page understands.
type Def struct {
	Key     string
	Default string
}

// Set is the decoded filter state of one request.
type Set struct {
	defs   []Def
	values url.Values
	path   string
}

// FromRequest reads the declared filters from the request URL. Unknown query
// parameters are ignored; declared parameters are trimmed.
func FromRequest(r *http.Request, defs ...Def) Set {
	vals := url.Values{}
	q := r.URL.Query()
	for _, d := range defs {
		if v := strings.TrimSpace(q.Get(d.Key)); v != "" {
			vals.Set(d.Key, v)
		}
	}
	if v := strings.TrimSpace(q.Get(PageKey)); v != "" {
		vals.Set(PageKey, v)
	}
	return Set{defs: defs, values: vals, path: r.URL.Path}
}

// Get returns the filter's current value, or its declared default when the
// URL does not carry the key.
func (s Set) Get(key string) string {
	if v := s.values.Get(key); v != "" {
		return v
	}
	for _, d := range s.defs {
		if d.Key == key {
			return d.Default
		}
	}
	return ""
}

// Has reports whether the filter carries a non-default, non-empty value.
func (s Set) Has(key string) bool {
	return s.values.Get(key) != ""
}

// Query returns the non-empty filter values to forward to the backend list
// endpoint. The page key is excluded — pagination params are attached by the
// paged fetch itself.
func (s Set) Query() url.Values {
	out := url.Values{}
	for _, d := range s.defs {
		if v := s.values.Get(d.Key); v != "" {
			out.Set(d.Key, v)
		}
	}
	return out
}

// UpdateURL returns the list URL that results from changing one filter.
// An empty value removes the key rather than setting it to ""; changing any
// key other than "page" resets the page to 1. The result is a plain
// navigation target, so the back button restores the previous filter state.
func (s Set) UpdateURL(key, value string) string {
	next := url.Values{}
	for k, vs := range s.values {
		next[k] = append([]string(nil), vs...)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		next.Del(key)
	} else {
		next.Set(key, value)
	}
	if key != PageKey {
		next.Set(PageKey, "1")
	}

	if len(next) == 0 {
		return s.path
	}
	return s.path + "?" + next.Encode()
}

// PageURL returns the URL for a specific page with all other filters intact.
func (s Set) PageURL(page int) string {
	if page < 1 {
		page = 1
	}
	return s.UpdateURL(PageKey, strconv.Itoa(page))
}

// URL returns the current list URL including filter state. Handlers use it
// as the redirect target after a mutation so the user lands back on the same
// filtered page.
func (s Set) URL() string {
	if len(s.values) == 0 {
		return s.path
	}
	return s.path + "?" + s.values.Encode()
}
