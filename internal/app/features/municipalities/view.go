// internal/app/features/municipalities/view.go
package municipalities

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

// ServeView renders the municipality detail page with its clubs.
// GET /municipalities/{id}/view
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	m, err := api.GetOne[models.Municipality](ctx, h.API, "/municipalities/"+id+"/")
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load municipality failed", err, "Unable to load the municipality.", "/municipalities")
		return
	}

	params := url.Values{}
	params.Set("municipality", strconv.FormatInt(m.ID, 10))
	clubs, err := api.GetAll[models.Club](ctx, h.API, "/clubs/", params)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load municipality clubs failed", err, "Unable to load the municipality.", "/municipalities")
		return
	}

	data := viewData{
		Municipality: m,
		Clubs:        clubs,
	}
	formutil.SetBase(&data.Base, w, r, m.Name, "/municipalities")

	render.Page(w, r, "municipality_view", data)
}
