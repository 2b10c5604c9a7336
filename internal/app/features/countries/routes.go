// internal/app/features/countries/routes.go
package countries

import (
	"github.com/go-chi/chi/v5"
	"github.com/klubbportal/klubbportal/internal/app/system/auth"
)

// Routes mounts all Country routes under /countries. Country records shape
// the whole hierarchy, so only platform admins manage them.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole(auth.RoleSuper))

		pr.Get("/", h.ServeList)
		pr.Get("/{id}/view", h.ServeView)

		pr.Get("/new", h.ServeNew)
		pr.Post("/", h.HandleCreate)

		pr.Get("/{id}/edit", h.ServeEdit)
		pr.Post("/{id}/edit", h.HandleEdit)

		pr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}
