// internal/app/features/youth/delete.go
package youth

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/klubbportal/klubbportal/internal/app/api"
	"github.com/klubbportal/klubbportal/internal/app/system/flash"
	"github.com/klubbportal/klubbportal/internal/app/system/navigation"
	"github.com/klubbportal/klubbportal/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleDelete deletes a youth member and redirects back to the list.
// Route: POST /youth/{id}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.API.Delete(ctx, "/users/"+id+"/"); err != nil {
		if api.IsNotFound(err) {
			flash.Set(w, r, flash.KindInfo, "The youth member was already removed.")
		} else {
			h.Log.Error("delete youth failed", zap.Error(err), zap.String("youth_id", id))
			flash.Error(w, r, "Unable to delete the youth member.")
		}
	} else {
		flash.Success(w, r, "Youth member deleted.")
	}

	ret := navigation.SafeBackURL(r, navigation.BackURLOptions{
		AllowedPrefix:    "/youth",
		ExcludedSubpaths: []string{"/new", "/edit", "/delete", "/view"},
		Fallback:         "/youth",
	})
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
