// internal/app/features/countries/new.go
package countries

import (
	"context"
	"net/http"
	"strings"

	"github.com/klubbportal/klubbportal/internal/app/api"
	"github.com/klubbportal/klubbportal/internal/app/system/flash"
	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/inputval"
	"github.com/klubbportal/klubbportal/internal/app/system/navigation"
	"github.com/klubbportal/klubbportal/internal/app/system/render"
	"github.com/klubbportal/klubbportal/internal/app/system/timeouts"
)

// countryInput defines validation rules for country forms.
type countryInput struct {
	Name string `validate:"required,max=100" label:"Country name"`
	Code string `validate:"max=3" label:"Country code"`
}

// ServeNew renders the "New Country" form. GET /countries/new
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := formData{SubmitURL: "/countries"}
	formutil.SetBase(&data.Base, w, r, "New Country", "/countries")

	render.Page(w, r, "country_form", data)
}

// HandleCreate processes the New Country form. POST /countries
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse country form failed", err, "Invalid form submission.", "/countries")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	code := strings.ToUpper(strings.TrimSpace(r.FormValue("code")))

	renderWithError := func(msg string) {
		data := formData{Name: name, Code: code, SubmitURL: "/countries"}
		formutil.SetBase(&data.Base, w, r, "New Country", "/countries")
		data.SetError(msg)
		render.Page(w, r, "country_form", data)
	}

	if result := inputval.Validate(countryInput{Name: name, Code: code}); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	payload := api.NewPayload()
	payload.Set("name", name)
	if code != "" {
		payload.Set("code", code)
	}

	if err := h.API.Post(ctx, "/countries/", payload, nil); err != nil {
		if api.ConflictOn(err, "name") {
			renderWithError("A country with that name already exists.")
			return
		}
		h.ErrLog.LogServerError(w, r, "create country failed", err, "Unable to create the country.", "/countries")
		return
	}

	flash.Success(w, r, "Country created.")
	ret := navigation.SafeBackURL(r, navigation.BackURLOptions{
		AllowedPrefix:    "/countries",
		ExcludedSubpaths: []string{"/new", "/edit", "/delete"},
		Fallback:         "/countries",
	})
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
