// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
)

// pageData is the basic view model for error pages.
type pageData struct {
	formutil.Base

	Message string
}

// Handler is the errors feature handler. It renders templates only;
// no backend calls are made.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Forbidden renders a friendly "access denied" page.
// GET /forbidden
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	RenderForbidden(w, r, "", "")
}

// Unauthorized renders a friendly "sign in required" page.
// GET /unauthorized
func (h *Handler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	RenderUnauthorized(w, r, "")
}

// NotFound renders the not-found panel for unmatched routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	RenderNotFound(w, r, "The page you are looking for does not exist.", "")
}
