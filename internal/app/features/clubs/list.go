// internal/app/features/clubs/list.go
package clubs

import (
	"context"
	"net/http"
	"net/url"

	"github.com/klubbportal/klubbportal/internal/app/api"
	"github.com/klubbportal/klubbportal/internal/app/media"
	"github.com/klubbportal/klubbportal/internal/app/system/auth"
	"github.com/klubbportal/klubbportal/internal/app/system/filters"
	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/paging"
	"github.com/klubbportal/klubbportal/internal/app/system/render"
	"github.com/klubbportal/klubbportal/internal/app/system/timeouts"
	"github.com/klubbportal/klubbportal/internal/domain/models"
)

// ServeList handles GET /clubs (?search=, ?country=, ?municipality=).
// The country filter narrows both the result set and the municipality
// options, so the two selects cascade.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	f := filters.FromRequest(r,
		filters.Def{Key: "search"},
		filters.Def{Key: "country"},
		filters.Def{Key: "municipality"},
	)
	page := paging.Parse(r)

	q := f.Query()
	if u != nil {
		// Scope keys win over URL filters so nobody widens their subtree
		// by editing the query string.
		for k, vs := range u.Scope() {
			q[k] = vs
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := api.GetPaged[models.Club](ctx, h.API, "/clubs/", q, page, paging.PageSize)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "list clubs failed", err, "Unable to load clubs.", "/")
		return
	}

	countries, err := api.GetAll[models.Country](ctx, h.API, "/countries/", nil)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load country options failed", err, "Unable to load clubs.", "/")
		return
	}

	var muniParams url.Values
	if c := f.Get("country"); c != "" {
		muniParams = url.Values{"country": {c}}
	}
	municipalities, err := api.GetAll[models.Municipality](ctx, h.API, "/municipalities/", muniParams)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load municipality options failed", err, "Unable to load clubs.", "/")
		return
	}

	items := make([]listItem, 0, len(res.Items))
	for _, c := range res.Items {
		items = append(items, listItem{
			ID:               c.ID,
			Name:             c.Name,
			MunicipalityName: c.MunicipalityName,
			City:             c.City,
			HeroImageURL:     h.Media.Resolve(c.HeroImage),
			Initials:         media.Initials(c.Name),
		})
	}

	data := listData{
		Search:         f.Get("search"),
		CountryID:      f.Get("country"),
		MunicipalityID: f.Get("municipality"),
		Countries:      countries,
		Municipalities: municipalities,
		Items:          items,
		Filters:        f,
		Pager:          paging.Build(page, paging.PageSize, res.TotalCount, len(res.Items)),
	}
	formutil.SetBase(&data.Base, w, r, "Clubs", "/dashboard")

	render.Page(w, r, "clubs_list", data)
}
