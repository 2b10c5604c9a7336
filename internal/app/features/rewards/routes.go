// internal/app/features/rewards/routes.go
package rewards

import (
	"github.com/go-chi/chi/v5"
	"github.com/klubbportal/klubbportal/internal/app/system/auth"
)

// Routes mounts all Reward routes under /rewards. Read-only for every
// signed-in role.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)

	r.Get("/", h.ServeList)
	r.Get("/{id}/view", h.ServeView)

	return r
}
