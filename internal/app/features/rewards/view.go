// internal/app/features/rewards/view.go
package rewards

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/klubbportal/klubbportal/internal/app/api"
	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/normalize"
	"github.com/klubbportal/klubbportal/internal/app/system/render"
	"github.com/klubbportal/klubbportal/internal/app/system/timeouts"
	"github.com/klubbportal/klubbportal/internal/domain/models"
)

// ServeView renders a reward's detail page with its claim history.
// GET /rewards/{id}/view
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	reward, err := api.GetOne[models.Reward](ctx, h.API, "/rewards/"+id+"/")
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load reward failed", err, "Unable to load the reward.", "/rewards")
		return
	}

	claims, err := api.GetAll[models.RewardClaim](ctx, h.API, "/rewards/"+id+"/history/", nil)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load reward history failed", err, "Unable to load the reward.", "/rewards")
		return
	}

	rows := make([]claimRow, 0, len(claims))
	for _, c := range claims {
		rows = append(rows, claimRow{
			ID:        c.ID,
			YouthID:   c.Youth,
			YouthName: c.YouthName,
			Status:    normalize.Scalar(c.Status, h.Log),
			ClaimedAt: c.ClaimedAt,
		})
	}

	data := viewData{
		Reward:   reward,
		ImageURL: h.Media.Resolve(reward.Image),
		Claims:   rows,
	}
	formutil.SetBase(&data.Base, w, r, reward.Name, "/rewards")

	render.Page(w, r, "reward_view", data)
}
