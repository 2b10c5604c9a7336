// internal/app/features/municipalities/delete.go
package municipalities

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

// HandleDelete deletes a municipality and redirects back to the list.
// Route: POST /municipalities/{id}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.API.Delete(ctx, "/municipalities/"+id+"/"); err != nil {
		if api.IsNotFound(err) {
			flash.Set(w, r, flash.KindInfo, "The municipality was already removed.")
		} else {
			h.Log.Error("delete municipality failed", zap.Error(err), zap.String("municipality_id", id))
			flash.Error(w, r, "Unable to delete the municipality.")
		}
	} else {
		flash.Success(w, r, "Municipality deleted.")
	}
	ret := navigation.SafeBackURL(r, navigation.BackURLOptions{
		AllowedPrefix:    "/municipalities",
		ExcludedSubpaths: []string{"/new", "/edit", "/delete", "/view"},
		Fallback:         "/municipalities",
	})
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
