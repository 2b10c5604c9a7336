package dashboard

import (
	"github.com/go-chi/chi/v5"
	"github.com/klubbportal/klubbportal/internal/app/system/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)
	r.Get("/", h.ServeDashboard)
	return r
}
