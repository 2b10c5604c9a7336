// internal/app/features/clubs/routes.go
package clubs

import (
	"github.com/go-chi/chi/v5"
	"github.com/klubbportal/klubbportal/internal/app/system/auth"
)

// Routes mounts all Club routes under /clubs. Every signed-in role can
// browse; club admins can edit their own club; creating and deleting clubs
// is for SUPER and municipality admins.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)

		pr.Get("/", h.ServeList)
		pr.Get("/{id}/view", h.ServeView)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole(auth.RoleSuper, auth.RoleMunicipality, auth.RoleClub))

		pr.Get("/{id}/edit", h.ServeEdit)
		pr.Post("/{id}/edit", h.HandleEdit)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole(auth.RoleSuper, auth.RoleMunicipality))

		pr.Get("/new", h.ServeNew)
		pr.Post("/", h.HandleCreate)
		pr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}
