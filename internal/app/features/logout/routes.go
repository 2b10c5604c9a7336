package logout

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleLogout)
	// GET kept for old bookmarks; it signs out the same way.
	r.Get("/", h.HandleLogout)
	return r
}
