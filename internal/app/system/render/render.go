// Package render is the seam between handlers and the template engine.
//
// Handlers render pages through Page instead of calling the engine
// directly, so tests can install a recording renderer and assert which
// template a branch rendered and with what view model, without booting
// the engine.
package render

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
)

// Renderer renders the named page template with the given view model.
type Renderer func(w http.ResponseWriter, r *http.Request, name string, data any)

var current Renderer = func(w http.ResponseWriter, r *http.Request, name string, data any) {
	templates.Render(w, r, name, data)
}

// Page renders a full page through the active renderer.
func Page(w http.ResponseWriter, r *http.Request, name string, data any) {
	current(w, r, name, data)
}

// SetRenderer replaces the active renderer and returns a func that
// restores the previous one. Test use only; handlers always go through
// Page.
func SetRenderer(f Renderer) (restore func()) {
	prev := current
	current = f
	return func() { current = prev }
}
