// internal/app/features/events/view.go
package events

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/klubbportal/klubbportal/internal/app/api"
	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/normalize"
	"github.com/klubbportal/klubbportal/internal/app/system/render"
	"github.com/klubbportal/klubbportal/internal/app/system/richtext"
	"github.com/klubbportal/klubbportal/internal/app/system/timeouts"
	"github.com/klubbportal/klubbportal/internal/domain/models"
)

// ServeView renders an event's detail page, including its registrations.
// GET /events/{id}/view
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	e, err := api.GetOne[models.Event](ctx, h.API, "/events/"+id+"/")
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load event failed", err, "Unable to load the event.", "/events")
		return
	}

	registrations, err := api.GetAll[models.Registration](ctx, h.API, "/registrations/", url.Values{"event": {id}})
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load registrations failed", err, "Unable to load the event.", "/events")
		return
	}

	images := make([]galleryImage, 0, len(e.Images))
	for _, img := range e.Images {
		images = append(images, galleryImage{ID: img.ID, URL: h.Media.Resolve(img.Image)})
	}
	documents := make([]documentLink, 0, len(e.Documents))
	for _, doc := range e.Documents {
		name := doc.Name
		if name == "" {
			name = "Document"
		}
		documents = append(documents, documentLink{ID: doc.ID, Name: name, URL: h.Media.Resolve(doc.Document)})
	}
	rows := make([]registrationRow, 0, len(registrations))
	for _, reg := range registrations {
		rows = append(rows, registrationRow{
			ID:        reg.ID,
			YouthID:   reg.Youth,
			YouthName: reg.YouthName,
			Status:    normalize.Scalar(reg.Status, h.Log),
			CreatedAt: reg.CreatedAt,
		})
	}

	data := viewData{
		Event:           e,
		Status:          normalize.Scalar(e.Status, h.Log),
		HeroImageURL:    h.Media.Resolve(e.HeroImage),
		DescriptionHTML: richtext.Render(e.Description),
		Images:          images,
		Documents:       documents,
		Registrations:   rows,
	}
	formutil.SetBase(&data.Base, w, r, e.Name, "/events")

	render.Page(w, r, "event_view", data)
}
