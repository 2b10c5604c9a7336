// internal/app/features/interests/handler.go
package interests

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/klubbportal/klubbportal/internal/app/api"
	uierrors "github.com/klubbportal/klubbportal/internal/app/features/errors"
	"github.com/klubbportal/klubbportal/internal/app/system/filters"
	"github.com/klubbportal/klubbportal/internal/app/system/flash"
	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/inputval"
	"github.com/klubbportal/klubbportal/internal/app/system/paging"
	"github.com/klubbportal/klubbportal/internal/app/system/render"
	"github.com/klubbportal/klubbportal/internal/app/system/timeouts"
	"github.com/klubbportal/klubbportal/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the interest tag CRUD. Interests are name-only records,
// so the whole feature fits in one file.
type Handler struct {
	API    *api.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(client *api.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{API: client, ErrLog: errLog, Log: logger}
}

type listData struct {
	formutil.Base

	Search  string
	Items   []models.Interest
	Filters filters.Set
	Pager   paging.Pager
}

type formData struct {
	formutil.Base

	ID        int64
	Name      string
	SubmitURL string
	IsEdit    bool
}

type interestInput struct {
	Name string `validate:"required,max=100" label:"Interest name"`
}

// ServeList handles GET /interests (with optional ?search=).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	f := filters.FromRequest(r, filters.Def{Key: "search"})
	page := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := api.GetPaged[models.Interest](ctx, h.API, "/interests/", f.Query(), page, paging.PageSize)
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "list interests failed", err, "Unable to load interests.", "/")
		return
	}

	data := listData{
		Search:  f.Get("search"),
		Items:   res.Items,
		Filters: f,
		Pager:   paging.Build(page, paging.PageSize, res.TotalCount, len(res.Items)),
	}
	formutil.SetBase(&data.Base, w, r, "Interests", "/dashboard")

	render.Page(w, r, "interests_list", data)
}

// ServeNew renders the "New Interest" form. GET /interests/new
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := formData{SubmitURL: "/interests"}
	formutil.SetBase(&data.Base, w, r, "New Interest", "/interests")
	render.Page(w, r, "interest_form", data)
}

// HandleCreate processes the New Interest form. POST /interests
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	h.handleSave(w, r, "", "New Interest")
}

// ServeEdit renders the "Edit Interest" form. GET /interests/{id}/edit
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	interest, err := api.GetOne[models.Interest](ctx, h.API, "/interests/"+id+"/")
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load interest failed", err, "Unable to load the interest.", "/interests")
		return
	}

	data := formData{
		ID:        interest.ID,
		Name:      interest.Name,
		SubmitURL: "/interests/" + id + "/edit",
		IsEdit:    true,
	}
	formutil.SetBase(&data.Base, w, r, "Edit Interest", "/interests")
	render.Page(w, r, "interest_form", data)
}

// HandleEdit processes the Edit Interest form. POST /interests/{id}/edit
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	h.handleSave(w, r, chi.URLParam(r, "id"), "Edit Interest")
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request, id, title string) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse interest form failed", err, "Invalid form submission.", "/interests")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))

	submitURL := "/interests"
	if id != "" {
		submitURL = "/interests/" + id + "/edit"
	}
	renderWithError := func(msg string) {
		data := formData{Name: name, SubmitURL: submitURL, IsEdit: id != ""}
		formutil.SetBase(&data.Base, w, r, title, "/interests")
		data.SetError(msg)
		render.Page(w, r, "interest_form", data)
	}

	if result := inputval.Validate(interestInput{Name: name}); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	payload := api.NewPayload()
	payload.Set("name", name)

	var err error
	if id == "" {
		err = h.API.Post(ctx, "/interests/", payload, nil)
	} else {
		err = h.API.Patch(ctx, "/interests/"+id+"/", payload, nil)
	}
	if err != nil {
		if api.ConflictOn(err, "name") {
			renderWithError("An interest with that name already exists.")
			return
		}
		h.ErrLog.LogAPIError(w, r, "save interest failed", err, "Unable to save the interest.", "/interests")
		return
	}

	if id == "" {
		flash.Success(w, r, "Interest created.")
	} else {
		flash.Success(w, r, "Interest updated.")
	}
	http.Redirect(w, r, "/interests", http.StatusSeeOther)
}

// HandleDelete deletes an interest. POST /interests/{id}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.API.Delete(ctx, "/interests/"+id+"/"); err != nil {
		if api.IsNotFound(err) {
			flash.Set(w, r, flash.KindInfo, "The interest was already removed.")
		} else {
			h.Log.Error("delete interest failed", zap.Error(err), zap.String("interest_id", id))
			flash.Error(w, r, "Unable to delete the interest.")
		}
	} else {
		flash.Success(w, r, "Interest deleted.")
	}
	http.Redirect(w, r, "/interests", http.StatusSeeOther)
}
