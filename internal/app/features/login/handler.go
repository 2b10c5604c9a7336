// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/klubbportal/klubbportal/internal/app/api"
	uierrors "github.com/klubbportal/klubbportal/internal/app/features/errors"
	"github.com/klubbportal/klubbportal/internal/app/system/auth"
	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/inputval"
	"github.com/klubbportal/klubbportal/internal/app/system/normalize"
	"github.com/klubbportal/klubbportal/internal/app/system/ratelimit"
	"github.com/klubbportal/klubbportal/internal/app/system/render"
	"github.com/klubbportal/klubbportal/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type Handler struct {
	API     *api.Client
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
	Limiter *ratelimit.LoginLimiter
}

func NewHandler(client *api.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		API:     client,
		ErrLog:  errLog,
		Log:     logger,
		Limiter: ratelimit.NewLoginLimiter(),
	}
}

type loginFormData struct {
	formutil.Base

	Email     string
	ReturnURL string
}

type loginInput struct {
	Email    string `validate:"required,email,max=254" label:"Email"`
	Password string `validate:"required,max=200" label:"Password"`
}

// loginResult mirrors the backend's POST /auth/login/ response. Role can
// arrive wrapped (["SUPER"]) on some backend versions, so it stays untyped
// until unwrapped.
type loginResult struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         any    `json:"role"`
	Municipality any    `json:"municipality"`
	Club         any    `json:"club"`
}

// ServeLogin renders the sign-in form. GET /login
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := loginFormData{
		ReturnURL: urlutil.SafeReturn(query.Get(r, "return"), "", "/dashboard"),
	}
	formutil.SetBase(&data.Base, w, r, "Sign in", "/")

	render.Page(w, r, "login", data)
}

// HandleLogin posts credentials to the backend and, on success, stores the
// admin's identity and scope in the session. POST /login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse login form failed", err, "Invalid form submission.", "/login")
		return
	}

	email := normalize.Email(r.FormValue("email"))
	password := r.FormValue("password")
	returnURL := urlutil.SafeReturn(r.FormValue("return"), "", "/dashboard")

	renderWithError := func(msg string) {
		data := loginFormData{Email: email, ReturnURL: returnURL}
		formutil.SetBase(&data.Base, w, r, "Sign in", "/")
		data.SetError(msg)
		render.Page(w, r, "login", data)
	}

	if result := inputval.Validate(loginInput{Email: email, Password: password}); result.HasErrors() {
		renderWithError(result.First())
		return
	}

	if allowed, msg := h.Limiter.Check(r, email); !allowed {
		h.Log.Warn("login throttled",
			zap.String("email", email),
			zap.String("ip", ratelimit.ClientIP(r)),
		)
		renderWithError(msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var res loginResult
	err := h.API.Post(ctx, "/auth/login/", map[string]string{
		"email":    email,
		"password": password,
	}, &res)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && (apiErr.Status == http.StatusBadRequest || apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden) {
			h.Log.Info("login rejected", zap.String("email", email), zap.Int("status", apiErr.Status))
			renderWithError("Invalid email or password.")
			return
		}
		h.ErrLog.LogServerError(w, r, "login request failed", err, "Sign-in is unavailable right now. Please try again.", "/login")
		return
	}

	user := sessionUserFrom(&res, h.Log)
	if user.Role == "" {
		h.Log.Error("login response missing role", zap.String("email", email))
		renderWithError("Your account has no admin role. Contact a platform administrator.")
		return
	}

	if err := auth.SignIn(w, r, user); err != nil {
		h.ErrLog.LogServerError(w, r, "session write failed", err, "Sign-in failed. Please try again.", "/login")
		return
	}
	h.Limiter.ResetEmail(email)

	h.Log.Info("admin signed in",
		zap.String("user_id", user.ID),
		zap.String("role", user.Role),
	)
	http.Redirect(w, r, returnURL, http.StatusSeeOther)
}

func sessionUserFrom(res *loginResult, log *zap.Logger) *auth.SessionUser {
	name := strings.TrimSpace(res.Name)
	if name == "" {
		name = strings.TrimSpace(strings.TrimSpace(res.FirstName) + " " + strings.TrimSpace(res.LastName))
	}

	id := ""
	if res.ID != 0 {
		id = strconv.FormatInt(res.ID, 10)
	}

	return &auth.SessionUser{
		ID:             id,
		Name:           name,
		Email:          res.Email,
		Role:           strings.ToUpper(normalize.Scalar(res.Role, log)),
		MunicipalityID: normalize.Scalar(res.Municipality, log),
		ClubID:         normalize.Scalar(res.Club, log),
	}
}
