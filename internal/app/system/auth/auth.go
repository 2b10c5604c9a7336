// Package auth manages the admin session: who is signed in, their role, and
// the organizational scope their role is restricted to.
//
// The backend owns authentication and authorization; this app only stores
// what the backend said at login time. Role and scope are resolved once at
// the session boundary and carried as plain data — handlers never re-derive
// them.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// Admin roles, as reported by the backend.
const (
	RoleSuper        = "SUPER"
	RoleMunicipality = "MUNICIPALITY"
	RoleClub         = "CLUB"
)

const (
	isAuthKey         = "is_authenticated"
	userIDKey         = "user_id"
	userNameKey       = "user_name"
	userEmailKey      = "user_email"
	userRoleKey       = "user_role"
	municipalityIDKey = "municipality_id"
	clubIDKey         = "club_id"
)

// Store is initialised once via InitSessionStore.
var Store *sessions.CookieStore

// SessionName is set by InitSessionStore.
var SessionName = "klubbportal-session"

// SessionUser is what we cache in the session and inject into r.Context().
// MunicipalityID / ClubID carry the admin's scope: empty for SUPER, the
// assigned municipality for MUNICIPALITY admins, the assigned club for CLUB
// admins.
type SessionUser struct {
	ID             string
	Name           string
	Email          string
	Role           string
	MunicipalityID string
	ClubID         string
}

// Scope returns the query parameters that narrow a backend list to the
// user's organizational subtree. SUPER admins get no narrowing.
func (u *SessionUser) Scope() url.Values {
	v := url.Values{}
	switch u.Role {
	case RoleMunicipality:
		if u.MunicipalityID != "" {
			v.Set("municipality", u.MunicipalityID)
		}
	case RoleClub:
		if u.ClubID != "" {
			v.Set("club", u.ClubID)
		}
	}
	return v
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the signed-in user and a found flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// UserCtx is a convenience accessor for view models: role, display name,
// user id, and signed-in flag.
func UserCtx(r *http.Request) (role, name, id string, signedIn bool) {
	u, ok := CurrentUser(r)
	if !ok {
		return "", "", "", false
	}
	return u.Role, u.Name, u.ID, true
}

// LoadSessionUser injects the user into context if they are logged in.
// If the session store has not been initialized yet, it is a no-op.
func LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Store == nil {
			next.ServeHTTP(w, r)
			return
		}

		sess, _ := Store.Get(r, SessionName)
		if isAuth, _ := sess.Values[isAuthKey].(bool); isAuth {
			u := &SessionUser{
				ID:             getString(sess, userIDKey),
				Name:           getString(sess, userNameKey),
				Email:          getString(sess, userEmailKey),
				Role:           getString(sess, userRoleKey),
				MunicipalityID: getString(sess, municipalityIDKey),
				ClubID:         getString(sess, clubIDKey),
			}
			r = withUser(r, u)
		}
		next.ServeHTTP(w, r)
	})
}

// SignIn writes the user into the session cookie.
func SignIn(w http.ResponseWriter, r *http.Request, u *SessionUser) error {
	if Store == nil {
		return fmt.Errorf("session store not initialized")
	}
	sess, _ := Store.Get(r, SessionName)
	sess.Values[isAuthKey] = true
	sess.Values[userIDKey] = u.ID
	sess.Values[userNameKey] = u.Name
	sess.Values[userEmailKey] = u.Email
	sess.Values[userRoleKey] = u.Role
	sess.Values[municipalityIDKey] = u.MunicipalityID
	sess.Values[clubIDKey] = u.ClubID
	return sess.Save(r, w)
}

// SignOut clears the session.
func SignOut(w http.ResponseWriter, r *http.Request) {
	if Store == nil {
		return
	}
	sess, _ := Store.Get(r, SessionName)
	sess.Options.MaxAge = -1
	sess.Values = map[any]any{}
	_ = sess.Save(r, w)
}

// RequireSignedIn ensures there is a user in context (set by LoadSessionUser).
// Browsers get a 303 to /login with a return param; non-HTML callers a 401.
func RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}

		if wantsHTML(r) {
			ret := url.QueryEscape(currentURI(r))
			http.Redirect(w, r, "/login?return="+ret, http.StatusSeeOther)
			return
		}
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
}

// RequireRole ensures the signed-in user holds one of the allowed roles.
// Wrong role redirects HTML requests to /forbidden, others get a plain 403.
func RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToUpper(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok {
				if wantsHTML(r) {
					ret := url.QueryEscape(currentURI(r))
					http.Redirect(w, r, "/login?return="+ret, http.StatusSeeOther)
					return
				}
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			if _, has := set[strings.ToUpper(u.Role)]; !has {
				if wantsHTML(r) {
					http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
					return
				}
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// InitSessionStore initializes the global session Store. An empty session
// key is rejected in production; in dev a random key is generated (sessions
// then reset on every restart, which is acceptable locally).
func InitSessionStore(sessionKey, name, domain string, secure bool, logger *zap.Logger) error {
	key := []byte(sessionKey)
	if sessionKey == "" {
		if secure {
			return fmt.Errorf("session key is empty; provide >=32 random chars")
		}
		key = securecookie.GenerateRandomKey(32)
		logger.Warn("session key not configured; generated a volatile dev key")
	} else if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore(key)
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	store.Options = opts

	Store = store
	if name != "" {
		SessionName = name
	}

	logger.Info("session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain))
	return nil
}

// WithTestUser injects a user into the request context for handler tests.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func currentURI(r *http.Request) string {
	u := *r.URL
	return u.RequestURI()
}
