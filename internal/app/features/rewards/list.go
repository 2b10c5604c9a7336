// internal/app/features/rewards/list.go
package rewards

import (
	"context"
	"net/http"

	"github.com/klubbportal/klubbportal/internal/app/api"
	"github.com/klubbportal/klubbportal/internal/app/system/auth"
	"github.com/klubbportal/klubbportal/internal/app/system/filters"
	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/paging"
	"github.com/klubbportal/klubbportal/internal/app/system/render"
	"github.com/klubbportal/klubbportal/internal/app/system/timeouts"
	"github.com/klubbportal/klubbportal/internal/domain/models"
)

// ServeList handles GET /rewards (?search=, ?club=).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	f := filters.FromRequest(r,
		filters.Def{Key: "search"},
		filters.Def{Key: "club"},
	)
	page := paging.Parse(r)

	q := f.Query()
	var scope map[string][]string
	if u != nil {
		scope = u.Scope()
		for k, vs := range scope {
			q[k] = vs
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := api.GetPaged[models.Reward](ctx, h.API, "/rewards/", q, page, paging.PageSize)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "list rewards failed", err, "Unable to load rewards.", "/")
		return
	}

	clubs, err := api.GetAll[models.Club](ctx, h.API, "/clubs/", scope)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load club options failed", err, "Unable to load rewards.", "/")
		return
	}

	items := make([]listItem, 0, len(res.Items))
	for _, rw := range res.Items {
		items = append(items, listItem{
			ID:       rw.ID,
			Name:     rw.Name,
			Points:   rw.Points,
			ClubName: rw.ClubName,
			Status:   rw.Status,
			ImageURL: h.Media.Resolve(rw.Image),
		})
	}

	data := listData{
		Search:  f.Get("search"),
		ClubID:  f.Get("club"),
		Clubs:   clubs,
		Items:   items,
		Filters: f,
		Pager:   paging.Build(page, paging.PageSize, res.TotalCount, len(res.Items)),
	}
	formutil.SetBase(&data.Base, w, r, "Rewards", "/dashboard")

	render.Page(w, r, "rewards_list", data)
}
