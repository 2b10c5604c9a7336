// internal/app/features/events/delete.go
package events

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

// HandleDelete deletes an event and redirects back to the list.
// Route: POST /events/{id}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.API.Delete(ctx, "/events/"+id+"/"); err != nil {
		if api.IsNotFound(err) {
			flash.Set(w, r, flash.KindInfo, "The event was already removed.")
		} else {
			h.Log.Error("delete event failed", zap.Error(err), zap.String("event_id", id))
			flash.Error(w, r, "Unable to delete the event.")
		}
	} else {
		flash.Success(w, r, "Event deleted.")
	}

	ret := navigation.SafeBackURL(r, navigation.BackURLOptions{
		AllowedPrefix:    "/events",
		ExcludedSubpaths: []string{"/new", "/edit", "/delete", "/view"},
		Fallback:         "/events",
	})
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
