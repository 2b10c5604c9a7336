package home

import (
	"net/http"

	"github.com/klubbportal/klubbportal/internal/app/system/auth"
	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/render"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeRoot handles GET /. Signed-in admins land on their dashboard;
// everyone else sees the sign-in prompt.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	var data struct {
		formutil.Base
	}
	formutil.SetBase(&data.Base, w, r, "Welcome", "/")

	render.Page(w, r, "home", data)
}
