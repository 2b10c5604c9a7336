// internal/app/features/municipalities/form.go
package municipalities

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/klubbportal/klubbportal/internal/app/api"
	"github.com/klubbportal/klubbportal/internal/app/system/flash"
	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/inputval"
	"github.com/klubbportal/klubbportal/internal/app/system/navigation"
	"github.com/klubbportal/klubbportal/internal/app/system/render"
	"github.com/klubbportal/klubbportal/internal/app/system/timeouts"
	"github.com/klubbportal/klubbportal/internal/domain/models"
)

// municipalityInput defines validation rules for municipality forms.
type municipalityInput struct {
	Name    string `validate:"required,max=100" label:"Municipality name"`
	Country string `validate:"required" label:"Country"`
}

// ServeNew renders the "New Municipality" form. GET /municipalities/new
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	countries, err := api.GetAll[models.Country](ctx, h.API, "/countries/", nil)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load country options failed", err, "Unable to load the form.", "/municipalities")
		return
	}

	data := formData{Countries: countries, SubmitURL: "/municipalities"}
	formutil.SetBase(&data.Base, w, r, "New Municipality", "/municipalities")

	render.Page(w, r, "municipality_form", data)
}

// HandleCreate processes the New Municipality form. POST /municipalities
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	h.handleSave(w, r, "", "New Municipality")
}

// ServeEdit renders the "Edit Municipality" form. GET /municipalities/{id}/edit
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	m, err := api.GetOne[models.Municipality](ctx, h.API, "/municipalities/"+id+"/")
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load municipality failed", err, "Unable to load the municipality.", "/municipalities")
		return
	}

	countries, err := api.GetAll[models.Country](ctx, h.API, "/countries/", nil)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load country options failed", err, "Unable to load the form.", "/municipalities")
		return
	}

	data := formData{
		ID:        m.ID,
		Name:      m.Name,
		CountryID: strconv.FormatInt(m.Country, 10),
		Countries: countries,
		SubmitURL: "/municipalities/" + id + "/edit",
		IsEdit:    true,
	}
	formutil.SetBase(&data.Base, w, r, "Edit Municipality", "/municipalities")

	render.Page(w, r, "municipality_form", data)
}

// HandleEdit processes the Edit Municipality form. POST /municipalities/{id}/edit
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	h.handleSave(w, r, chi.URLParam(r, "id"), "Edit Municipality")
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request, id, title string) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse municipality form failed", err, "Invalid form submission.", "/municipalities")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	country := strings.TrimSpace(r.FormValue("country"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	submitURL := "/municipalities"
	if id != "" {
		submitURL = "/municipalities/" + id + "/edit"
	}
	renderWithError := func(msg string) {
		countries, cerr := api.GetAll[models.Country](ctx, h.API, "/countries/", nil)
		if cerr != nil {
			h.ErrLog.LogServerError(w, r, "load country options failed", cerr, "Unable to load the form.", "/municipalities")
			return
		}
		data := formData{
			Name:      name,
			CountryID: country,
			Countries: countries,
			SubmitURL: submitURL,
			IsEdit:    id != "",
		}
		formutil.SetBase(&data.Base, w, r, title, "/municipalities")
		data.SetError(msg)
		render.Page(w, r, "municipality_form", data)
	}

	if result := inputval.Validate(municipalityInput{Name: name, Country: country}); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	payload := api.NewPayload()
	payload.Set("name", name)
	payload.Set("country", country)

	var err error
	if id == "" {
		err = h.API.Post(ctx, "/municipalities/", payload, nil)
	} else {
		err = h.API.Patch(ctx, "/municipalities/"+id+"/", payload, nil)
	}
	if err != nil {
		if api.ConflictOn(err, "name") {
			renderWithError("A municipality with that name already exists in this country.")
			return
		}
		h.ErrLog.LogAPIError(w, r, "save municipality failed", err, "Unable to save the municipality.", "/municipalities")
		return
	}

	if id == "" {
		flash.Success(w, r, "Municipality created.")
	} else {
		flash.Success(w, r, "Municipality updated.")
	}
	ret := navigation.SafeBackURL(r, navigation.BackURLOptions{
		AllowedPrefix:    "/municipalities",
		ExcludedSubpaths: []string{"/new", "/edit", "/delete"},
		Fallback:         "/municipalities",
	})
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
