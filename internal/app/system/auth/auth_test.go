package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/klubbportal/klubbportal/internal/app/system/auth"
	"go.uber.org/zap"
)

func initStore(t *testing.T) {
	t.Helper()
	err := auth.InitSessionStore("0123456789abcdef0123456789abcdef", "klubbportal-test", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("InitSessionStore failed: %v", err)
	}
}

func TestSignInRoundTrip(t *testing.T) {
	initStore(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/login", nil)
	user := &auth.SessionUser{
		ID:             "42",
		Name:           "Kommun Admin",
		Email:          "admin@kommun.se",
		Role:           auth.RoleMunicipality,
		MunicipalityID: "3",
	}
	if err := auth.SignIn(w, r, user); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}

	// Next request carries the cookie through LoadSessionUser.
	r2 := httptest.NewRequest("GET", "/dashboard", nil)
	for _, c := range w.Result().Cookies() {
		r2.AddCookie(c)
	}

	var got *auth.SessionUser
	handler := auth.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.CurrentUser(r)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), r2)

	if got == nil {
		t.Fatal("expected a session user after SignIn")
	}
	if got.Role != auth.RoleMunicipality || got.MunicipalityID != "3" {
		t.Errorf("user = %+v", got)
	}
}

func TestScope(t *testing.T) {
	tests := []struct {
		name string
		user auth.SessionUser
		want map[string]string
	}{
		{"super sees all", auth.SessionUser{Role: auth.RoleSuper}, map[string]string{}},
		{"municipality scoped", auth.SessionUser{Role: auth.RoleMunicipality, MunicipalityID: "7"}, map[string]string{"municipality": "7"}},
		{"club scoped", auth.SessionUser{Role: auth.RoleClub, ClubID: "12"}, map[string]string{"club": "12"}},
		{"club admin without assignment", auth.SessionUser{Role: auth.RoleClub}, map[string]string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.user.Scope()
			if len(got) != len(tt.want) {
				t.Fatalf("Scope() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got.Get(k) != v {
					t.Errorf("Scope()[%s] = %q, want %q", k, got.Get(k), v)
				}
			}
		})
	}
}

func TestRequireSignedIn(t *testing.T) {
	initStore(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("browser redirected to login", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/clubs?page=2", nil)
		r.Header.Set("Accept", "text/html")
		w := httptest.NewRecorder()
		auth.RequireSignedIn(next).ServeHTTP(w, r)

		if w.Code != http.StatusSeeOther {
			t.Fatalf("code = %d, want 303", w.Code)
		}
		loc := w.Header().Get("Location")
		if !strings.HasPrefix(loc, "/login?return=") {
			t.Errorf("Location = %q", loc)
		}
	})

	t.Run("non-html gets 401", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/clubs", nil)
		w := httptest.NewRecorder()
		auth.RequireSignedIn(next).ServeHTTP(w, r)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("code = %d, want 401", w.Code)
		}
	})

	t.Run("signed-in passes through", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/clubs", nil)
		r = auth.WithTestUser(r, &auth.SessionUser{ID: "1", Role: auth.RoleSuper})
		w := httptest.NewRecorder()
		auth.RequireSignedIn(next).ServeHTTP(w, r)
		if w.Code != http.StatusOK {
			t.Errorf("code = %d, want 200", w.Code)
		}
	})
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mw := auth.RequireRole(auth.RoleSuper, auth.RoleMunicipality)

	tests := []struct {
		name     string
		role     string
		wantCode int
	}{
		{"super allowed", auth.RoleSuper, http.StatusOK},
		{"municipality allowed", auth.RoleMunicipality, http.StatusOK},
		{"club forbidden", auth.RoleClub, http.StatusForbidden},
		{"case-insensitive match", "super", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/countries", nil)
			r = auth.WithTestUser(r, &auth.SessionUser{ID: "1", Role: tt.role})
			w := httptest.NewRecorder()
			mw(next).ServeHTTP(w, r)
			if w.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", w.Code, tt.wantCode)
			}
		})
	}
}
