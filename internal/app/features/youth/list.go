// internal/app/features/youth/list.go
package youth

import (
	"context"
	"net/http"

	"github.com/klubbportal/klubbportal/internal/app/api"
	"github.com/klubbportal/klubbportal/internal/app/media"
	"github.com/klubbportal/klubbportal/internal/app/system/auth"
	"github.com/klubbportal/klubbportal/internal/app/system/filters"
	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/normalize"
	"github.com/klubbportal/klubbportal/internal/app/system/paging"
	"github.com/klubbportal/klubbportal/internal/app/system/render"
	"github.com/klubbportal/klubbportal/internal/app/system/timeouts"
	"github.com/klubbportal/klubbportal/internal/domain/models"
)

// ServeList handles GET /youth. Filters: search, club, age and grade
// ranges, verification_status, legal_gender.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	f := filters.FromRequest(r,
		filters.Def{Key: "search"},
		filters.Def{Key: "club"},
		filters.Def{Key: "age_from"},
		filters.Def{Key: "age_to"},
		filters.Def{Key: "grade_from"},
		filters.Def{Key: "grade_to"},
		filters.Def{Key: "verification_status"},
		filters.Def{Key: "legal_gender"},
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

	res, err := api.GetPaged[models.Youth](ctx, h.API, "/users/", q, page, paging.PageSize)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "list youth failed", err, "Unable to load youth members.", "/")
		return
	}

	clubs, err := api.GetAll[models.Club](ctx, h.API, "/clubs/", scope)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load club options failed", err, "Unable to load youth members.", "/")
		return
	}

	items := make([]listItem, 0, len(res.Items))
	for _, y := range res.Items {
		items = append(items, listItem{
			ID:                 y.ID,
			Name:               y.FullName(),
			Age:                y.Age,
			Grade:              y.Grade,
			ClubName:           y.ClubName,
			VerificationStatus: normalize.Scalar(y.VerificationStatus, h.Log),
			AvatarURL:          h.Media.Resolve(y.Avatar),
			Initials:           media.Initials(y.FullName()),
		})
	}

	data := listData{
		Search:             f.Get("search"),
		ClubID:             f.Get("club"),
		AgeFrom:            f.Get("age_from"),
		AgeTo:              f.Get("age_to"),
		GradeFrom:          f.Get("grade_from"),
		GradeTo:            f.Get("grade_to"),
		VerificationStatus: f.Get("verification_status"),
		LegalGender:        f.Get("legal_gender"),
		Clubs:              clubs,
		Statuses:           verificationStatuses,
		Genders:            legalGenders,
		Items:              items,
		Filters:            f,
		Pager:              paging.Build(page, paging.PageSize, res.TotalCount, len(res.Items)),
	}
	formutil.SetBase(&data.Base, w, r, "Youth", "/dashboard")

	render.Page(w, r, "youth_list", data)
}
