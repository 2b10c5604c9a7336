// internal/app/features/clubs/delete.go
package clubs

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

// HandleDelete deletes a club and redirects back to the list.
// Route: POST /clubs/{id}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// Delete failures never navigate away from the list; the outcome is a
	// toast either way.
	if err := h.API.Delete(ctx, "/clubs/"+id+"/"); err != nil {
		if api.IsNotFound(err) {
			flash.Set(w, r, flash.KindInfo, "The club was already removed.")
		} else {
			h.Log.Error("delete club failed", zap.Error(err), zap.String("club_id", id))
			flash.Error(w, r, "Unable to delete the club.")
		}
	} else {
		flash.Success(w, r, "Club deleted.")
	}

	ret := navigation.SafeBackURL(r, navigation.BackURLOptions{
		AllowedPrefix:    "/clubs",
		ExcludedSubpaths: []string{"/new", "/edit", "/delete", "/view"},
		Fallback:         "/clubs",
	})
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
