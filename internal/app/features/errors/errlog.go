// internal/app/features/errors/errlog.go
package errors

import (
	"net/http"

	"github.com/klubbportal/klubbportal/internal/app/api"
	"go.uber.org/zap"
)

// ErrorLogger pairs a zap logger with the error page renderers so handlers
// can log a diagnostic and show the user a friendly panel in one call.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(log *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: log}
}

// LogServerError logs err at error level and renders the server error panel.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.Log.Error(logMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)
	RenderServerError(w, r, userMsg, backURL)
}

// LogBadRequest logs err at warn level and renders a 400 panel.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.Log.Warn(logMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)
	RenderBadRequest(w, r, userMsg, backURL)
}

// LogAPIError classifies a backend call failure. Missing or out-of-scope
// records (404/403) get the not-found panel; everything else is a server
// error.
func (e *ErrorLogger) LogAPIError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	if api.IsNotFound(err) {
		e.Log.Info(logMsg,
			zap.Error(err),
			zap.String("path", r.URL.Path),
		)
		RenderNotFound(w, r, "", backURL)
		return
	}
	e.LogServerError(w, r, logMsg, err, userMsg, backURL)
}
