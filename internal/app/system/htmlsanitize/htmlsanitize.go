// Package htmlsanitize strips unsafe markup from rich text the backend
// returns (event descriptions, club presentations edited in a third-party
// rich text editor). Backend-supplied HTML is never trusted into templates
// without passing through here first.
package htmlsanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	once   sync.Once
	policy *bluemonday.Policy
)

func getPolicy() *bluemonday.Policy {
	once.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowTables()
		p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
		policy = p
	})
	return policy
}

// Sanitize returns s with scripts, event handlers, and javascript: URLs
// removed. Safe formatting (paragraphs, emphasis, lists, tables, links) is
// preserved.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return getPolicy().Sanitize(s)
}
