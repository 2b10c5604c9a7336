// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"net/http"
	"net/url"
	"time"

	uierrors "github.com/klubbportal/klubbportal/internal/app/features/errors"
	"github.com/klubbportal/klubbportal/internal/app/api"
	"github.com/klubbportal/klubbportal/internal/app/system/auth"
	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/render"
	"github.com/klubbportal/klubbportal/internal/app/system/timeouts"
	"github.com/klubbportal/klubbportal/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the role-scoped dashboard.
type Handler struct {
	API    *api.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(client *api.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{API: client, ErrLog: errLog, Log: logger}
}

type dashboardData struct {
	formutil.Base

	ClubCount          int
	YouthCount         int
	UpcomingEventCount int
	ScopeLabel         string
}

// ServeDashboard handles GET /dashboard. Counts come from the list
// endpoints with page_size=1; only the envelope count is used. The same
// scope parameters the backend enforces on writes narrow the counts here.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	scope := u.Scope()

	clubs, err := api.GetPaged[models.Club](ctx, h.API, "/clubs/", scope, 1, 1)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "dashboard: count clubs failed", err, "Unable to load the dashboard.", "/")
		return
	}

	youth, err := api.GetPaged[models.Youth](ctx, h.API, "/users/", scope, 1, 1)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "dashboard: count youth failed", err, "Unable to load the dashboard.", "/")
		return
	}

	eventParams := cloneValues(scope)
	eventParams.Set("date_from", time.Now().Format("2006-01-02"))
	events, err := api.GetPaged[models.Event](ctx, h.API, "/events/", eventParams, 1, 1)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "dashboard: count events failed", err, "Unable to load the dashboard.", "/")
		return
	}

	data := dashboardData{
		ClubCount:          clubs.TotalCount,
		YouthCount:         youth.TotalCount,
		UpcomingEventCount: events.TotalCount,
		ScopeLabel:         scopeLabel(u),
	}
	formutil.SetBase(&data.Base, w, r, "Dashboard", "/")

	render.Page(w, r, "dashboard", data)
}

func scopeLabel(u *auth.SessionUser) string {
	switch u.Role {
	case auth.RoleMunicipality:
		return "your municipality"
	case auth.RoleClub:
		return "your club"
	default:
		return "all municipalities"
	}
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v)+1)
	for k, vs := range v {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
