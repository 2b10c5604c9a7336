// internal/app/features/municipalities/list.go
package municipalities

import (
	"context"
	"net/http"

	"github.com/klubbportal/klubbportal/internal/app/api"
	"github.com/klubbportal/klubbportal/internal/app/system/filters"
	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/paging"
	"github.com/klubbportal/klubbportal/internal/app/system/render"
	"github.com/klubbportal/klubbportal/internal/app/system/timeouts"
	"github.com/klubbportal/klubbportal/internal/domain/models"
)

// ServeList handles GET /municipalities (?search=, ?country=).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	f := filters.FromRequest(r,
		filters.Def{Key: "search"},
		filters.Def{Key: "country"},
	)
	page := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := api.GetPaged[models.Municipality](ctx, h.API, "/municipalities/", f.Query(), page, paging.PageSize)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "list municipalities failed", err, "Unable to load municipalities.", "/")
		return
	}

	countries, err := api.GetAll[models.Country](ctx, h.API, "/countries/", nil)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load country options failed", err, "Unable to load municipalities.", "/")
		return
	}

	data := listData{
		Search:    f.Get("search"),
		CountryID: f.Get("country"),
		Countries: countries,
		Items:     res.Items,
		Filters:   f,
		Pager:     paging.Build(page, paging.PageSize, res.TotalCount, len(res.Items)),
	}
	formutil.SetBase(&data.Base, w, r, "Municipalities", "/dashboard")

	render.Page(w, r, "municipalities_list", data)
}
