// internal/app/features/countries/list.go
package countries

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

// ServeList handles GET /countries (with optional ?search=).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	f := filters.FromRequest(r, filters.Def{Key: "search"})
	page := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := api.GetPaged[models.Country](ctx, h.API, "/countries/", f.Query(), page, paging.PageSize)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "list countries failed", err, "Unable to load countries.", "/")
		return
	}

	data := listData{
		Search:  f.Get("search"),
		Items:   res.Items,
		Filters: f,
		Pager:   paging.Build(page, paging.PageSize, res.TotalCount, len(res.Items)),
	}
	formutil.SetBase(&data.Base, w, r, "Countries", "/dashboard")

	render.Page(w, r, "countries_list", data)
}
