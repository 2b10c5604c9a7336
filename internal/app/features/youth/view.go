// internal/app/features/youth/view.go
package youth

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/klubbportal/klubbportal/internal/app/api"
	"github.com/klubbportal/klubbportal/internal/app/media"
	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/normalize"
	"github.com/klubbportal/klubbportal/internal/app/system/render"
	"github.com/klubbportal/klubbportal/internal/app/system/timeouts"
	"github.com/klubbportal/klubbportal/internal/domain/models"
)

// ServeView renders a youth member's detail page. GET /youth/{id}/view
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	y, err := api.GetOne[models.Youth](ctx, h.API, "/users/"+id+"/")
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load youth failed", err, "Unable to load the youth member.", "/youth")
		return
	}

	data := viewData{
		Youth:              y,
		AvatarURL:          h.Media.Resolve(y.Avatar),
		Initials:           media.Initials(y.FullName()),
		VerificationStatus: normalize.Scalar(y.VerificationStatus, h.Log),
	}
	formutil.SetBase(&data.Base, w, r, y.FullName(), "/youth")

	render.Page(w, r, "youth_view", data)
}
