// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/klubbportal/klubbportal/internal/app/system/auth"
	"go.uber.org/zap"
)

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// HandleLogout clears the session and redirects home. POST /logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if u, ok := auth.CurrentUser(r); ok {
		h.Log.Info("admin signed out", zap.String("user_id", u.ID))
	}
	auth.SignOut(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
