// internal/app/features/youth/form.go
package youth

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
)

// youthInput defines validation rules for youth forms.
type youthInput struct {
	FirstName string `validate:"required,max=100" label:"First name"`
	LastName  string `validate:"required,max=100" label:"Last name"`
	Club      string `validate:"required" label:"Club"`
	Email     string `validate:"omitempty,email" label:"Email"`
}

// formOptions are the option lists every youth form render needs.
type formOptions struct {
	Clubs     []models.Club
	Guardians []models.Guardian
	Interests []models.Interest
}

func (h *Handler) loadFormOptions(ctx context.Context) (formOptions, error) {
	var opts formOptions
	var err error
	if opts.Clubs, err = api.GetAll[models.Club](ctx, h.API, "/clubs/", nil); err != nil {
		return opts, err
	}
	if opts.Guardians, err = api.GetAll[models.Guardian](ctx, h.API, "/guardians/", nil); err != nil {
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

// ServeNew renders the "New Youth" form. GET /youth/new
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	opts, err := h.loadFormOptions(ctx)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load youth form options failed", err, "Unable to load the form.", "/youth")
		return
	}

	data := formData{
		SelectedGuardians: map[string]bool{},
		SelectedInterests: map[string]bool{},
		Clubs:             opts.Clubs,
		Guardians:         opts.Guardians,
		Interests:         opts.Interests,
		Genders:           legalGenders,
		SubmitURL:         "/youth",
	}
	formutil.SetBase(&data.Base, w, r, "New Youth", "/youth")

	render.Page(w, r, "youth_form", data)
}

// HandleCreate processes the New Youth form. POST /youth
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	h.handleSave(w, r, "", "New Youth")
}

// ServeEdit renders the "Edit Youth" form. GET /youth/{id}/edit
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	y, err := api.GetOne[models.Youth](ctx, h.API, "/users/"+id+"/")
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load youth failed", err, "Unable to load the youth member.", "/youth")
		return
	}

	opts, err := h.loadFormOptions(ctx)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load youth form options failed", err, "Unable to load the form.", "/youth")
		return
	}

	guardians := make(map[string]bool, len(y.Guardians))
	for _, g := range y.Guardians {
		guardians[strconv.FormatInt(g.ID, 10)] = true
	}
	interests := make(map[string]bool, len(y.Interests))
	for _, in := range y.Interests {
		interests[strconv.FormatInt(in.ID, 10)] = true
	}

	grade := ""
	if y.Grade != 0 {
		grade = strconv.Itoa(y.Grade)
	}

	data := formData{
		ID:                y.ID,
		FirstName:         y.FirstName,
		LastName:          y.LastName,
		Email:             y.Email,
		Phone:             y.Phone,
		BirthDate:         y.BirthDate,
		Grade:             grade,
		LegalGender:       y.LegalGender,
		ClubID:            strconv.FormatInt(y.Club, 10),
		AvatarURL:         h.Media.Resolve(y.Avatar),
		SelectedGuardians: guardians,
		SelectedInterests: interests,
		Clubs:             opts.Clubs,
		Guardians:         opts.Guardians,
		Interests:         opts.Interests,
		Genders:           legalGenders,
		SubmitURL:         "/youth/" + id + "/edit",
		IsEdit:            true,
	}
	formutil.SetBase(&data.Base, w, r, "Edit Youth", "/youth")

	render.Page(w, r, "youth_form", data)
}

// HandleEdit processes the Edit Youth form. POST /youth/{id}/edit
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	h.handleSave(w, r, chi.URLParam(r, "id"), "Edit Youth")
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request, id, title string) {
	if err := r.ParseMultipartForm(h.UploadMaxBytes + 1<<20); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse youth form failed", err, "Invalid form submission.", "/youth")
		return
	}
	defer uploads.Cleanup(r)

	firstName := normalize.Name(r.FormValue("first_name"))
	lastName := normalize.Name(r.FormValue("last_name"))
	email := normalize.Email(r.FormValue("email"))
	phone := strings.TrimSpace(r.FormValue("phone"))
	birthDate := strings.TrimSpace(r.FormValue("birth_date"))
	grade := strings.TrimSpace(r.FormValue("grade"))
	legalGender := strings.TrimSpace(r.FormValue("legal_gender"))
	club := strings.TrimSpace(r.FormValue("club"))
	guardianIDs := r.Form["guardians"]
	interestIDs := r.Form["interests"]

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	submitURL := "/youth"
	if id != "" {
		submitURL = "/youth/" + id + "/edit"
	}
	renderWithError := func(msg string) {
		opts, oerr := h.loadFormOptions(ctx)
		if oerr != nil {
			h.ErrLog.LogServerError(w, r, "load youth form options failed", oerr, "Unable to load the form.", "/youth")
			return
		}
		data := formData{
			FirstName:         firstName,
			LastName:          lastName,
			Email:             email,
			Phone:             phone,
			BirthDate:         birthDate,
			Grade:             grade,
			LegalGender:       legalGender,
			ClubID:            club,
			SelectedGuardians: selectedSet(guardianIDs),
			SelectedInterests: selectedSet(interestIDs),
			Clubs:             opts.Clubs,
			Guardians:         opts.Guardians,
			Interests:         opts.Interests,
			Genders:           legalGenders,
			SubmitURL:         submitURL,
			IsEdit:            id != "",
		}
		formutil.SetBase(&data.Base, w, r, title, "/youth")
		data.SetError(msg)
		render.Page(w, r, "youth_form", data)
	}

	input := youthInput{FirstName: firstName, LastName: lastName, Club: club, Email: email}
	if result := inputval.Validate(input); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	avatar, err := uploads.FromRequest(r, "avatar", h.UploadMaxBytes)
	if err != nil {
		if errors.Is(err, uploads.ErrTooLarge) {
			renderWithError("The avatar image is too large.")
			return
		}
		h.ErrLog.LogBadRequest(w, r, "read avatar failed", err, "Invalid form submission.", "/youth")
		return
	}
	if avatar != nil && !avatar.IsImage() {
		renderWithError("The avatar must be an image file.")
		return
	}

	payload := api.NewPayload()
	payload.Set("first_name", firstName)
	payload.Set("last_name", lastName)
	payload.Set("email", email)
	payload.Set("phone", phone)
	payload.Set("birth_date", birthDate)
	payload.Set("grade", grade)
	payload.Set("legal_gender", legalGender)
	payload.Set("club", club)
	for _, gid := range guardianIDs {
		payload.Add("guardians", gid)
	}
	for _, iid := range interestIDs {
		payload.Add("interests", iid)
	}
	if avatar != nil {
		avatar.Attach(payload, "avatar")
	}

	if id == "" {
		err = h.API.Post(ctx, "/users/", payload, nil)
	} else {
		err = h.API.Patch(ctx, "/users/"+id+"/", payload, nil)
	}
	if err != nil {
		if api.ConflictOn(err, "email") {
			renderWithError("A youth member with that email already exists.")
			return
		}
		h.ErrLog.LogAPIError(w, r, "save youth failed", err, "Unable to save the youth member.", "/youth")
		return
	}

	if id == "" {
		flash.Success(w, r, "Youth member created.")
	} else {
		flash.Success(w, r, "Youth member updated.")
	}
	ret := navigation.SafeBackURL(r, navigation.BackURLOptions{
		AllowedPrefix:    "/youth",
		ExcludedSubpaths: []string{"/new", "/edit", "/delete"},
		Fallback:         "/youth",
	})
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
