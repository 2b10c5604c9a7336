// internal/app/features/clubs/form.go
package clubs

import (
	"context"
	"errors"
	"fmt"
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
)

// clubInput defines validation rules for club forms.
type clubInput struct {
	Name         string `validate:"required,max=100" label:"Club name"`
	Municipality string `validate:"required" label:"Municipality"`
	Email        string `validate:"omitempty,email" label:"Email"`
}

// fullWeek spreads existing opening hours over a fixed Monday-to-Sunday
// slice so the form always renders seven rows.
func fullWeek(existing []models.OpeningHour) []models.OpeningHour {
	week := make([]models.OpeningHour, 7)
	for i := range week {
		week[i].Weekday = i
	}
	for _, hour := range existing {
		if hour.Weekday >= 0 && hour.Weekday < 7 {
			week[hour.Weekday] = hour
		}
	}
	return week
}

// openingHoursFromForm reads the seven weekday rows of the form. A row is
// kept when it is marked closed or carries both times; half-filled rows are
// dropped silently.
func openingHoursFromForm(r *http.Request) []models.OpeningHour {
	var hours []models.OpeningHour
	for day := 0; day < 7; day++ {
		closed := r.FormValue(fmt.Sprintf("closed_%d", day)) != ""
		opens := strings.TrimSpace(r.FormValue(fmt.Sprintf("opens_%d", day)))
		closes := strings.TrimSpace(r.FormValue(fmt.Sprintf("closes_%d", day)))
		if !closed && (opens == "" || closes == "") {
			continue
		}
		h := models.OpeningHour{Weekday: day, Closed: closed}
		if !closed {
			h.OpensAt = opens
			h.ClosesAt = closes
		}
		hours = append(hours, h)
	}
	return hours
}

// ServeNew renders the "New Club" form. GET /clubs/new
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	municipalities, err := api.GetAll[models.Municipality](ctx, h.API, "/municipalities/", nil)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load municipality options failed", err, "Unable to load the form.", "/clubs")
		return
	}

	data := formData{
		Municipalities: municipalities,
		OpeningHours:   fullWeek(nil),
		SubmitURL:      "/clubs",
	}
	formutil.SetBase(&data.Base, w, r, "New Club", "/clubs")

	render.Page(w, r, "club_form", data)
}

// HandleCreate processes the New Club form. POST /clubs
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	h.handleSave(w, r, "", "New Club")
}

// ServeEdit renders the "Edit Club" form. GET /clubs/{id}/edit
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	club, err := api.GetOne[models.Club](ctx, h.API, "/clubs/"+id+"/")
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load club failed", err, "Unable to load the club.", "/clubs")
		return
	}

	municipalities, err := api.GetAll[models.Municipality](ctx, h.API, "/municipalities/", nil)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load municipality options failed", err, "Unable to load the form.", "/clubs")
		return
	}

	social := normalize.DecodeSocialLinks(club.SocialMedia)

	data := formData{
		ID:             club.ID,
		Name:           club.Name,
		MunicipalityID: strconv.FormatInt(club.Municipality, 10),
		Email:          club.Email,
		Phone:          club.Phone,
		Address:        club.Address,
		PostalCode:     club.PostalCode,
		City:           club.City,
		Description:    club.Description,
		Facebook:       social.Facebook,
		Instagram:      social.Instagram,
		Latitude:       club.Latitude,
		Longitude:      club.Longitude,
		HeroImageURL:   h.Media.Resolve(club.HeroImage),
		OpeningHours:   fullWeek(club.OpeningHours),
		Municipalities: municipalities,
		SubmitURL:      "/clubs/" + id + "/edit",
		IsEdit:         true,
	}
	formutil.SetBase(&data.Base, w, r, "Edit Club", "/clubs")

	render.Page(w, r, "club_form", data)
}

// HandleEdit processes the Edit Club form. POST /clubs/{id}/edit
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	h.handleSave(w, r, chi.URLParam(r, "id"), "Edit Club")
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request, id, title string) {
	if err := r.ParseMultipartForm(h.UploadMaxBytes + 1<<20); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse club form failed", err, "Invalid form submission.", "/clubs")
		return
	}
	defer uploads.Cleanup(r)

	name := strings.TrimSpace(r.FormValue("name"))
	municipality := strings.TrimSpace(r.FormValue("municipality"))
	email := normalize.Email(r.FormValue("email"))
	phone := strings.TrimSpace(r.FormValue("phone"))
	address := strings.TrimSpace(r.FormValue("address"))
	postalCode := strings.TrimSpace(r.FormValue("postal_code"))
	city := strings.TrimSpace(r.FormValue("city"))
	description := strings.TrimSpace(r.FormValue("description"))
	latitude := strings.TrimSpace(r.FormValue("latitude"))
	longitude := strings.TrimSpace(r.FormValue("longitude"))
	social := normalize.SocialLinks{
		Facebook:  strings.TrimSpace(r.FormValue("facebook")),
		Instagram: strings.TrimSpace(r.FormValue("instagram")),
	}
	hours := openingHoursFromForm(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	submitURL := "/clubs"
	if id != "" {
		submitURL = "/clubs/" + id + "/edit"
	}
	renderWithError := func(msg string) {
		municipalities, merr := api.GetAll[models.Municipality](ctx, h.API, "/municipalities/", nil)
		if merr != nil {
			h.ErrLog.LogServerError(w, r, "load municipality options failed", merr, "Unable to load the form.", "/clubs")
			return
		}
		data := formData{
			Name:           name,
			MunicipalityID: municipality,
			Email:          email,
			Phone:          phone,
			Address:        address,
			PostalCode:     postalCode,
			City:           city,
			Description:    description,
			Facebook:       social.Facebook,
			Instagram:      social.Instagram,
			Latitude:       latitude,
			Longitude:      longitude,
			OpeningHours:   fullWeek(hours),
			Municipalities: municipalities,
			SubmitURL:      submitURL,
			IsEdit:         id != "",
		}
		formutil.SetBase(&data.Base, w, r, title, "/clubs")
		data.SetError(msg)
		render.Page(w, r, "club_form", data)
	}

	if result := inputval.Validate(clubInput{Name: name, Municipality: municipality, Email: email}); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	hero, err := uploads.FromRequest(r, "hero_image", h.UploadMaxBytes)
	if err != nil {
		if errors.Is(err, uploads.ErrTooLarge) {
			renderWithError("The hero image is too large.")
			return
		}
		h.ErrLog.LogBadRequest(w, r, "read hero image failed", err, "Invalid form submission.", "/clubs")
		return
	}
	if hero != nil && !hero.IsImage() {
		renderWithError("The hero image must be an image file.")
		return
	}

	payload := api.NewPayload()
	payload.Set("name", name)
	payload.Set("municipality", municipality)
	payload.Set("email", email)
	payload.Set("phone", phone)
	payload.Set("address", address)
	payload.Set("postal_code", postalCode)
	payload.Set("city", city)
	payload.Set("description", description)
	payload.Set("latitude", latitude)
	payload.Set("longitude", longitude)
	if err := payload.SetJSON("social_media", social); err != nil {
		h.ErrLog.LogServerError(w, r, "encode social links failed", err, "Unable to save the club.", "/clubs")
		return
	}
	if err := payload.SetJSON("opening_hours", hours); err != nil {
		h.ErrLog.LogServerError(w, r, "encode opening hours failed", err, "Unable to save the club.", "/clubs")
		return
	}
	if hero != nil {
		// Omitting the field on edit keeps the current image on the backend.
		hero.Attach(payload, "hero_image")
	}

	if id == "" {
		err = h.API.Post(ctx, "/clubs/", payload, nil)
	} else {
		err = h.API.Patch(ctx, "/clubs/"+id+"/", payload, nil)
	}
	if err != nil {
		if api.ConflictOn(err, "name") {
			renderWithError("A club with that name already exists in this municipality.")
			return
		}
		h.ErrLog.LogAPIError(w, r, "save club failed", err, "Unable to save the club.", "/clubs")
		return
	}

	if id == "" {
		flash.Success(w, r, "Club created.")
	} else {
		flash.Success(w, r, "Club updated.")
	}
	ret := navigation.SafeBackURL(r, navigation.BackURLOptions{
		AllowedPrefix:    "/clubs",
		ExcludedSubpaths: []string{"/new", "/edit", "/delete"},
		Fallback:         "/clubs",
	})
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
