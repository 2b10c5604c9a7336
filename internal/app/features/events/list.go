// internal/app/features/events/list.go
package events

import (
	"context"
	"net/http"

	"github.com/klubbportal/klubbportal/internal/app/api"
	"github.com/klubbportal/klubbportal/internal/app/system/auth"
	"github.com/klubbportal/klubbportal/internal/app/system/filters"
	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/normalize"
	"github.com/klubbportal/klubbportal/internal/app/system/paging"
	"github.com/klubbportal/klubbportal/internal/app/system/render"
	"github.com/klubbportal/klubbportal/internal/app/system/timeouts"
	"github.com/klubbportal/klubbportal/internal/domain/models"
)

// ServeList handles GET /events. Filters: search, status, club, date range.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	f := filters.FromRequest(r,
		filters.Def{Key: "search"},
		filters.Def{Key: "status"},
		filters.Def{Key: "club"},
		filters.Def{Key: "date_from"},
		filters.Def{Key: "date_to"},
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

	res, err := api.GetPaged[models.Event](ctx, h.API, "/events/", q, page, paging.PageSize)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "list events failed", err, "Unable to load events.", "/")
		return
	}

	clubs, err := api.GetAll[models.Club](ctx, h.API, "/clubs/", scope)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load club options failed", err, "Unable to load events.", "/")
		return
	}

	items := make([]listItem, 0, len(res.Items))
	for _, e := range res.Items {
		items = append(items, listItem{
			ID:        e.ID,
			Name:      e.Name,
			ClubName:  e.ClubName,
			Status:    normalize.Scalar(e.Status, h.Log),
			StartTime: e.StartTime,
			Location:  e.Location,
		})
	}

	data := listData{
		Search:   f.Get("search"),
		Status:   f.Get("status"),
		ClubID:   f.Get("club"),
		DateFrom: f.Get("date_from"),
		DateTo:   f.Get("date_to"),
		Clubs:    clubs,
		Statuses: eventStatuses,
		Items:    items,
		Filters:  f,
		Pager:    paging.Build(page, paging.PageSize, res.TotalCount, len(res.Items)),
	}
	formutil.SetBase(&data.Base, w, r, "Events", "/dashboard")

	render.Page(w, r, "events_list", data)
}
