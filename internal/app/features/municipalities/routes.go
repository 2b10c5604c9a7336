// internal/app/features/municipalities/routes.go
package municipalities

import (
	"github.com/go-chi/chi/v5"
	"github.com/klubbportal/klubbportal/internal/app/system/auth"
)

// Routes mounts all Municipality routes under /municipalities.
// Municipality admins can view their own subtree; structural changes are
// SUPER-only.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole(auth.RoleSuper, auth.RoleMunicipality))

		pr.Get("/", h.ServeList)
		pr.Get("/{id}/view", h.ServeView)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole(auth.RoleSuper))

		pr.Get("/new", h.ServeNew)
		pr.Post("/", h.HandleCreate)
		pr.Get("/{id}/edit", h.ServeEdit)
		pr.Post("/{id}/edit", h.HandleEdit)
		pr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}
