// internal/app/features/countries/view.go
package countries

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/klubbportal/klubbportal/internal/app/api"
	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/render"
	"github.com/klubbportal/klubbportal/internal/app/system/timeouts"
	"github.com/klubbportal/klubbportal/internal/domain/models"
)

// ServeView renders the country detail page with its municipalities.
// GET /countries/{id}/view
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	country, err := api.GetOne[models.Country](ctx, h.API, "/countries/"+id+"/")
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load country failed", err, "Unable to load the country.", "/countries")
		return
	}

	params := url.Values{}
	params.Set("country", strconv.FormatInt(country.ID, 10))
	municipalities, err := api.GetAll[models.Municipality](ctx, h.API, "/municipalities/", params)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load country municipalities failed", err, "Unable to load the country.", "/countries")
		return
	}

	data := viewData{
		Country:        country,
		Municipalities: municipalities,
	}
	formutil.SetBase(&data.Base, w, r, country.Name, "/countries")

	render.Page(w, r, "country_view", data)
}
