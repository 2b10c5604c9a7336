// internal/app/features/events/routes.go
package events

import (
	"github.com/go-chi/chi/v5"
	"github.com/klubbportal/klubbportal/internal/app/system/auth"
)

// Routes mounts all Event routes under /events. Every signed-in role works
// inside its own subtree; the backend enforces the actual scope.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)

	r.Get("/", h.ServeList)
	r.Get("/{id}/view", h.ServeView)
	r.Get("/new", h.ServeNew)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}/edit", h.ServeEdit)
	r.Post("/{id}/edit", h.HandleEdit)
	r.Post("/{id}/delete", h.HandleDelete)
	r.Post("/{id}/images/{imageID}/delete", h.HandleDeleteImage)
	r.Post("/{id}/documents/{documentID}/delete", h.HandleDeleteDocument)

	return r
}
