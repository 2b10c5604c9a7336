// Package flash implements the single-slot toast notification.
//
// A toast survives exactly one redirect hop in the session cookie: a handler
// sets it right before redirecting, and the next rendered page pops and
// displays it. One slot per session — a new Set replaces whatever was
// pending; there is no queueing and no persistence beyond the next render.
package flash

import (
	"net/http"

	"github.com/gorilla/sessions"
)

// Toast kinds.
const (
	KindSuccess = "success"
	KindError   = "error"
	KindInfo    = "info"
	KindWarning = "warning"
)

const (
	messageKey = "toast_message"
	kindKey    = "toast_kind"
)

// Toast is a transient notification shown once on the next page render.
type Toast struct {
	Message string
	Kind    string
}

var (
	store       *sessions.CookieStore
	sessionName string
)

// Init wires the flash package to the app's session store.
// Call once at startup, after the session store exists.
func Init(s *sessions.CookieStore, name string) {
	store = s
	sessionName = name
}

// Set stores a toast, replacing any pending one.
func Set(w http.ResponseWriter, r *http.Request, kind, message string) {
	if store == nil {
		return
	}
	sess, _ := store.Get(r, sessionName)
	sess.Values[messageKey] = message
	sess.Values[kindKey] = kind
	_ = sess.Save(r, w)
}

// Success is shorthand for Set with KindSuccess.
func Success(w http.ResponseWriter, r *http.Request, message string) {
	Set(w, r, KindSuccess, message)
}

// Error is shorthand for Set with KindError.
func Error(w http.ResponseWriter, r *http.Request, message string) {
	Set(w, r, KindError, message)
}

// Pop returns the pending toast, clearing it so it renders exactly once.
// The second return is false when no toast is pending.
func Pop(w http.ResponseWriter, r *http.Request) (Toast, bool) {
	if store == nil {
		return Toast{}, false
	}
	sess, _ := store.Get(r, sessionName)
	msg, ok := sess.Values[messageKey].(string)
	if !ok || msg == "" {
		return Toast{}, false
	}
	kind, _ := sess.Values[kindKey].(string)
	if kind == "" {
		kind = KindInfo
	}

	delete(sess.Values, messageKey)
	delete(sess.Values, kindKey)
	_ = sess.Save(r, w)

	return Toast{Message: msg, Kind: kind}, true
}
