// Package formutil provides the shared view-model base for pages and forms.
//
// When a form submission fails, the form is re-rendered with the user's
// entered values echoed back, an error message, and the page chrome intact.
// Base carries the common fields; SetBase populates them from the request.
//
// Example:
//
//	type newClubData struct {
//		formutil.Base
//		Name string
//	}
//
//	data := newClubData{Name: name}
//	formutil.SetBase(&data.Base, w, r, "Add Club", "/clubs")
//	data.SetError("Name is required.")
//	render.Page(w, r, "club_new", data)
package formutil

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
	"github.com/klubbportal/klubbportal/internal/app/system/auth"
	"github.com/klubbportal/klubbportal/internal/app/system/flash"
)

// Base contains common fields for page view models; embed it in feature
// data structs.
type Base struct {
	Title       string
	IsLoggedIn  bool
	Role        string
	UserName    string
	BackURL     string
	CurrentPath string
	CSRFField   template.HTML
	Error       template.HTML

	// Toast is the pending flash notification, if any. Popping it here
	// means it renders exactly once.
	Toast    flash.Toast
	HasToast bool
}

// SetBase populates the common fields from the request context: user info,
// navigation, CSRF field, and any pending toast (which is consumed).
func SetBase(b *Base, w http.ResponseWriter, r *http.Request, title, backDefault string) {
	role, uname, _, signedIn := auth.UserCtx(r)
	b.Title = title
	b.IsLoggedIn = signedIn
	b.Role = role
	b.UserName = uname
	b.BackURL = httpnav.ResolveBackURL(r, backDefault)
	b.CurrentPath = httpnav.CurrentPath(r)
	b.CSRFField = csrf.TemplateField(r)
	b.Toast, b.HasToast = flash.Pop(w, r)
}

// SetError sets the inline error message shown above the form.
func (b *Base) SetError(msg string) {
	b.Error = template.HTML(template.HTMLEscapeString(msg))
}
