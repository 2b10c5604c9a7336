// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/render"
)

func renderStatus(w http.ResponseWriter, r *http.Request, status int, tmpl, title, msg, backURL string) {
	data := pageData{Message: msg}
	formutil.SetBase(&data.Base, w, r, title, "/")
	if backURL != "" {
		data.BackURL = backURL
	}
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	render.Page(w, r, tmpl, data)
}

// RenderUnauthorized shows a friendly "sign in required" page.
// If backURL is empty, it defaults to /login.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request, backURL string) {
	if backURL == "" {
		backURL = "/login"
	}
	renderStatus(w, r, http.StatusOK, "error_forbidden", "Sign in required",
		"Please sign in to continue.", backURL)
}

// RenderForbidden shows a friendly access error page with a message.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "You don't have permission to view this page."
	}
	renderStatus(w, r, http.StatusOK, "error_forbidden", "Access denied", msg, backURL)
}

// RenderNotFound shows the not-found panel. Handlers call this whenever the
// backend reports 404 (or 403, which it uses for out-of-scope records) for
// a record the URL names.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "The record you are looking for does not exist."
	}
	renderStatus(w, r, http.StatusNotFound, "error_not_found", "Not found", msg, backURL)
}

// RenderServerError shows the generic error panel with a 500 status.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "Something went wrong. Please try again."
	}
	renderStatus(w, r, http.StatusInternalServerError, "error_server", "Something went wrong", msg, backURL)
}

// RenderBadRequest shows the generic error panel with a 400 status.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "The request could not be processed."
	}
	renderStatus(w, r, http.StatusBadRequest, "error_server", "Invalid request", msg, backURL)
}
