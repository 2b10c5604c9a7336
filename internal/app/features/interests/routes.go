// internal/app/features/interests/routes.go
package interests

import (
	"github.com/go-chi/chi/v5"
	"github.com/klubbportal/klubbportal/internal/app/system/auth"
)

// Routes mounts all Interest routes under /interests. Club admins can see
// the tag list (they assign tags to members and events); editing the shared
// vocabulary is for SUPER and municipality admins.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Get("/", h.ServeList)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole(auth.RoleSuper, auth.RoleMunicipality))

		pr.Get("/new", h.ServeNew)
		pr.Post("/", h.HandleCreate)
		pr.Get("/{id}/edit", h.ServeEdit)
		pr.Post("/{id}/edit", h.HandleEdit)
		pr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}
