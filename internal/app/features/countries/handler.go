// internal/app/features/countries/handler.go
package countries

import (
	uierrors "github.com/klubbportal/klubbportal/internal/app/features/errors"
	"github.com/klubbportal/klubbportal/internal/app/api"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Countries.
type Handler struct {
	API    *api.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a Countries handler bound to the API client.
func NewHandler(client *api.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		API:    client,
		ErrLog: errLog,
		Log:    logger,
	}
}
