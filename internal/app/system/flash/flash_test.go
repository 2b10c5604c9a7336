package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
)

func initTestStore(t *testing.T) {
	t.Helper()
	s := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	Init(s, "klubbportal-test")
}

// carry copies the session cookie from a response onto a fresh request,
// simulating the redirect hop between Set and Pop.
func carry(t *testing.T, from *httptest.ResponseRecorder, target string) *http.Request {
	t.Helper()
	r := httptest.NewRequest("GET", target, nil)
	for _, c := range from.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestSetThenPop(t *testing.T) {
	initTestStore(t)

	w := httptest.NewRecorder()
	Success(w, httptest.NewRequest("POST", "/clubs/", nil), "Club created.")

	r := carry(t, w, "/clubs")
	w2 := httptest.NewRecorder()
	toast, ok := Pop(w2, r)
	if !ok {
		t.Fatal("expected a pending toast")
	}
	if toast.Kind != KindSuccess || toast.Message != "Club created." {
		t.Errorf("toast = %+v", toast)
	}

	// Popped once; a second render must not see it.
	r2 := carry(t, w2, "/clubs")
	if _, ok := Pop(httptest.NewRecorder(), r2); ok {
		t.Error("toast should be cleared after Pop")
	}
}

func TestSetReplacesPending(t *testing.T) {
	initTestStore(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/events/", nil)
	Error(w, r, "first")

	r2 := carry(t, w, "/events")
	w2 := httptest.NewRecorder()
	Set(w2, r2, KindWarning, "second")

	r3 := carry(t, w2, "/events")
	toast, ok := Pop(httptest.NewRecorder(), r3)
	if !ok {
		t.Fatal("expected a toast")
	}
	if toast.Message != "second" || toast.Kind != KindWarning {
		t.Errorf("toast = %+v, want the replacement (no queueing)", toast)
	}
}

func TestPop_NoToast(t *testing.T) {
	initTestStore(t)
	if _, ok := Pop(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil)); ok {
		t.Error("Pop on empty session should report none")
	}
}
