// internal/app/features/countries/edit.go
package countries

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/klubbportal/klubbportal/internal/app/api"
	"github.com/klubbportal/klubbportal/internal/app/system/flash"
	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/inputval"
	"github.com/klubbportal/klubbportal/internal/app/system/render"
	"github.com/klubbportal/klubbportal/internal/app/system/timeouts"
	"github.com/klubbportal/klubbportal/internal/domain/models"
)

// ServeEdit renders the "Edit Country" form. GET /countries/{id}/edit
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	country, err := api.GetOne[models.Country](ctx, h.API, "/countries/"+id+"/")
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load country failed", err, "Unable to load the country.", "/countries")
		return
	}

	data := formData{
		ID:        country.ID,
		Name:      country.Name,
		Code:      country.Code,
		SubmitURL: "/countries/" + id + "/edit",
		IsEdit:    true,
	}
	formutil.SetBase(&data.Base, w, r, "Edit Country", "/countries")

	render.Page(w, r, "country_form", data)
}

// HandleEdit processes the Edit Country form. POST /countries/{id}/edit
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse country form failed", err, "Invalid form submission.", "/countries")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	code := strings.ToUpper(strings.TrimSpace(r.FormValue("code")))

	renderWithError := func(msg string) {
		data := formData{
			Name:      name,
			Code:      code,
			SubmitURL: "/countries/" + id + "/edit",
			IsEdit:    true,
		}
		formutil.SetBase(&data.Base, w, r, "Edit Country", "/countries")
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
	payload.Set("code", code)

	if err := h.API.Patch(ctx, "/countries/"+id+"/", payload, nil); err != nil {
		if api.ConflictOn(err, "name") {
			renderWithError("A country with that name already exists.")
			return
		}
		h.ErrLog.LogAPIError(w, r, "update country failed", err, "Unable to update the country.", "/countries")
		return
	}

	flash.Success(w, r, "Country updated.")
	http.Redirect(w, r, "/countries", http.StatusSeeOther)
}
