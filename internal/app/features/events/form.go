// internal/app/features/events/form.go
package events

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/klubbportal/klubbportal/internal/app/api"
	"github.com/klubbportal/klubbportal/internal/app/system/flash"
	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/inputval"
	"github.com/klubbportal/klubbportal/internal/app/system/navigation"
	"github.com/klubbportal/klubbportal/internal/app/system/normalize"
	"github.com/klubbportal/klubbportal/internal/app/system/render"
	"github.com/klubbportal/klubbportal/internal/app/system/timeouts"
	"github.com/klubbportal/klubbportal/internal/app/system/uploads"
	"github.com/klubbportal/klubbportal/internal/domain/models"
	"go.uber.org/zap"
)

// eventInput defines validation rules for event forms.
type eventInput struct {
	Name      string `validate:"required,max=200" label:"Event name"`
	Club      string `validate:"required" label:"Club"`
	StartTime string `validate:"required" label:"Start time"`
}

// formOptions are the option lists every event form render needs.
type formOptions struct {
	Clubs     []models.Club
	Groups    []models.Group
	Interests []models.Interest
}

func (h *Handler) loadFormOptions(ctx context.Context) (formOptions, error) {
	var opts formOptions
	var err error
	if opts.Clubs, err = api.GetAll[models.Club](ctx, h.API, "/clubs/", nil); err != nil {
		return opts, err
	}
	if opts.Groups, err = api.GetAll[models.Group](ctx, h.API, "/target-groups/", nil); err != nil {
		return opts, err
	}
	if opts.Interests, err = api.GetAll[models.Interest](ctx, h.API, "/interests/", nil); err != nil {
		return opts, err
	}
	return opts, nil
}

func selectedSet(ids []string) map[string]bool {
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out[id] = true
		}
	}
	return out
}

// ServeNew renders the "New Event" form. GET /events/new
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	opts, err := h.loadFormOptions(ctx)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load event form options failed", err, "Unable to load the form.", "/events")
		return
	}

	data := formData{
		SelectedGroups:    map[string]bool{},
		SelectedInterests: map[string]bool{},
		Clubs:             opts.Clubs,
		Groups:            opts.Groups,
		Interests:         opts.Interests,
		Statuses:          eventStatuses,
		SubmitURL:         "/events",
	}
	formutil.SetBase(&data.Base, w, r, "New Event", "/events")

	render.Page(w, r, "event_form", data)
}

// HandleCreate processes the New Event form. POST /events
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	h.handleSave(w, r, "", "New Event")
}

// ServeEdit renders the "Edit Event" form. GET /events/{id}/edit
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	e, err := api.GetOne[models.Event](ctx, h.API, "/events/"+id+"/")
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load event failed", err, "Unable to load the event.", "/events")
		return
	}

	opts, err := h.loadFormOptions(ctx)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load event form options failed", err, "Unable to load the form.", "/events")
		return
	}

	groups := make(map[string]bool, len(e.TargetGroups))
	for _, g := range e.TargetGroups {
		groups[strconv.FormatInt(g.ID, 10)] = true
	}
	interests := make(map[string]bool, len(e.Interests))
	for _, in := range e.Interests {
		interests[strconv.FormatInt(in.ID, 10)] = true
	}

	capacity := ""
	if e.Capacity != 0 {
		capacity = strconv.Itoa(e.Capacity)
	}

	images := make([]galleryImage, 0, len(e.Images))
	for _, img := range e.Images {
		images = append(images, galleryImage{ID: img.ID, URL: h.Media.Resolve(img.Image)})
	}

	data := formData{
		ID:                e.ID,
		Name:              e.Name,
		Description:       e.Description,
		ClubID:            strconv.FormatInt(e.Club, 10),
		Status:            normalize.Scalar(e.Status, h.Log),
		StartTime:         e.StartTime,
		EndTime:           e.EndTime,
		Location:          e.Location,
		Capacity:          capacity,
		HeroImageURL:      h.Media.Resolve(e.HeroImage),
		SelectedGroups:    groups,
		SelectedInterests: interests,
		Clubs:             opts.Clubs,
		Groups:            opts.Groups,
		Interests:         opts.Interests,
		Statuses:          eventStatuses,
		Images:            images,
		Documents:         e.Documents,
		SubmitURL:         "/events/" + id + "/edit",
		IsEdit:            true,
	}
	formutil.SetBase(&data.Base, w, r, "Edit Event", "/events")

	render.Page(w, r, "event_form", data)
}

// HandleEdit processes the Edit Event form. POST /events/{id}/edit
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	h.handleSave(w, r, chi.URLParam(r, "id"), "Edit Event")
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request, id, title string) {
	if err := r.ParseMultipartForm(h.UploadMaxBytes + 1<<20); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse event form failed", err, "Invalid form submission.", "/events")
		return
	}
	defer uploads.Cleanup(r)

	name := strings.TrimSpace(r.FormValue("name"))
	description := strings.TrimSpace(r.FormValue("description"))
	club := strings.TrimSpace(r.FormValue("club"))
	status := strings.TrimSpace(r.FormValue("status"))
	startTime := strings.TrimSpace(r.FormValue("start_time"))
	endTime := strings.TrimSpace(r.FormValue("end_time"))
	location := strings.TrimSpace(r.FormValue("location"))
	capacity := strings.TrimSpace(r.FormValue("capacity"))
	groupIDs := r.Form["target_groups"]
	interestIDs := r.Form["interests"]

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	submitURL := "/events"
	if id != "" {
		submitURL = "/events/" + id + "/edit"
	}
	renderWithError := func(msg string) {
		opts, oerr := h.loadFormOptions(ctx)
		if oerr != nil {
			h.ErrLog.LogServerError(w, r, "load event form options failed", oerr, "Unable to load the form.", "/events")
			return
		}
		data := formData{
			Name:              name,
			Description:       description,
			ClubID:            club,
			Status:            status,
			StartTime:         startTime,
			EndTime:           endTime,
			Location:          location,
			Capacity:          capacity,
			SelectedGroups:    selectedSet(groupIDs),
			SelectedInterests: selectedSet(interestIDs),
			Clubs:             opts.Clubs,
			Groups:            opts.Groups,
			Interests:         opts.Interests,
			Statuses:          eventStatuses,
			SubmitURL:         submitURL,
			IsEdit:            id != "",
		}
		formutil.SetBase(&data.Base, w, r, title, "/events")
		data.SetError(msg)
		render.Page(w, r, "event_form", data)
	}

	input := eventInput{Name: name, Club: club, StartTime: startTime}
	if result := inputval.Validate(input); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	hero, err := uploads.FromRequest(r, "hero_image", h.UploadMaxBytes)
	if err != nil {
		if errors.Is(err, uploads.ErrTooLarge) {
			renderWithError("The hero image is too large.")
			return
		}
		h.ErrLog.LogBadRequest(w, r, "read hero image failed", err, "Invalid form submission.", "/events")
		return
	}
	if hero != nil && !hero.IsImage() {
		renderWithError("The hero image must be an image file.")
		return
	}

	gallery, err := uploads.AllFromRequest(r, "gallery_images", h.UploadMaxBytes)
	if err != nil {
		if errors.Is(err, uploads.ErrTooLarge) {
			renderWithError("A gallery image is too large.")
			return
		}
		h.ErrLog.LogBadRequest(w, r, "read gallery images failed", err, "Invalid form submission.", "/events")
		return
	}
	for _, img := range gallery {
		if !img.IsImage() {
			renderWithError("Gallery uploads must be image files.")
			return
		}
	}

	documents, err := uploads.AllFromRequest(r, "documents", h.UploadMaxBytes)
	if err != nil {
		if errors.Is(err, uploads.ErrTooLarge) {
			renderWithError("A document is too large.")
			return
		}
		h.ErrLog.LogBadRequest(w, r, "read documents failed", err, "Invalid form submission.", "/events")
		return
	}
	for _, doc := range documents {
		if !doc.IsDocument() {
			renderWithError("Attachments must be PDF, Word, or plain text files.")
			return
		}
	}

	payload := api.NewPayload()
	payload.Set("name", name)
	payload.Set("description", description)
	payload.Set("club", club)
	payload.Set("status", status)
	payload.Set("start_time", startTime)
	payload.Set("end_time", endTime)
	payload.Set("location", location)
	payload.Set("capacity", capacity)
	for _, gid := range groupIDs {
		payload.Add("target_groups", gid)
	}
	for _, iid := range interestIDs {
		payload.Add("interests", iid)
	}
	if hero != nil {
		hero.Attach(payload, "hero_image")
	}

	eventID := id
	if id == "" {
		var created models.Event
		if err := h.API.Post(ctx, "/events/", payload, &created); err != nil {
			h.ErrLog.LogAPIError(w, r, "create event failed", err, "Unable to save the event.", "/events")
			return
		}
		eventID = strconv.FormatInt(created.ID, 10)
	} else {
		if err := h.API.Patch(ctx, "/events/"+id+"/", payload, nil); err != nil {
			h.ErrLog.LogAPIError(w, r, "update event failed", err, "Unable to save the event.", "/events")
			return
		}
	}

	// Gallery images and documents live behind their own endpoints; each
	// upload is a separate create against the saved event.
	for _, img := range gallery {
		p := api.NewPayload()
		p.Set("event", eventID)
		img.Attach(p, "image")
		if err := h.API.Post(ctx, "/event-images/", p, nil); err != nil {
			h.Log.Warn("attach gallery image failed",
				zap.String("event_id", eventID), zap.Error(err))
			flash.Set(w, r, flash.KindError, "The event was saved but some gallery images failed to upload.")
			http.Redirect(w, r, "/events/"+eventID+"/edit", http.StatusSeeOther)
			return
		}
	}
	for _, doc := range documents {
		p := api.NewPayload()
		p.Set("event", eventID)
		p.Set("name", doc.Filename)
		doc.Attach(p, "document")
		if err := h.API.Post(ctx, "/event-documents/", p, nil); err != nil {
			h.Log.Warn("attach document failed",
				zap.String("event_id", eventID), zap.Error(err))
			flash.Set(w, r, flash.KindError, "The event was saved but some documents failed to upload.")
			http.Redirect(w, r, "/events/"+eventID+"/edit", http.StatusSeeOther)
			return
		}
	}

	if id == "" {
		flash.Success(w, r, "Event created.")
	} else {
		flash.Success(w, r, "Event updated.")
	}
	ret := navigation.SafeBackURL(r, navigation.BackURLOptions{
		AllowedPrefix:    "/events",
		ExcludedSubpaths: []string{"/new", "/edit", "/delete"},
		Fallback:         "/events",
	})
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// HandleDeleteImage removes one gallery image.
// Route: POST /events/{id}/images/{imageID}/delete
func (h *Handler) HandleDeleteImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	imageID := chi.URLParam(r, "imageID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.API.Delete(ctx, "/event-images/"+imageID+"/"); err != nil && !api.IsNotFound(err) {
		h.ErrLog.LogAPIError(w, r, "delete event image failed", err, "Unable to remove the image.", "/events/"+id+"/edit")
		return
	}
	flash.Success(w, r, "Image removed.")
	http.Redirect(w, r, "/events/"+id+"/edit", http.StatusSeeOther)
}

// HandleDeleteDocument removes one attached document.
// Route: POST /events/{id}/documents/{documentID}/delete
func (h *Handler) HandleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	documentID := chi.URLParam(r, "documentID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.API.Delete(ctx, "/event-documents/"+documentID+"/"); err != nil && !api.IsNotFound(err) {
		h.ErrLog.LogAPIError(w, r, "delete event document failed", err, "Unable to remove the document.", "/events/"+id+"/edit")
		return
	}
	flash.Success(w, r, "Document removed.")
	http.Redirect(w, r, "/events/"+id+"/edit", http.StatusSeeOther)
}
