// internal/app/features/countries/delete.go
package countries

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

// HandleDelete deletes a country and redirects back to the list.
// Route: POST /countries/{id}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.API.Delete(ctx, "/countries/"+id+"/"); err != nil {
		if api.IsNotFound(err) {
			// Already gone; deleting twice is not an error worth a panel.
			flash.Set(w, r, flash.KindInfo, "The country was already removed.")
		} else {
			h.Log.Error("delete country failed", zap.Error(err), zap.String("country_id", id))
			flash.Error(w, r, "Unable to delete the country.")
		}
	} else {
		flash.Success(w, r, "Country deleted.")
	}

	ret := navigation.SafeBackURL(r, navigation.BackURLOptions{
		AllowedPrefix:    "/countries",
		ExcludedSubpaths: []string{"/new", "/edit", "/delete", "/view"},
		Fallback:         "/countries",
	})
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
