// internal/app/features/municipalities/handler.go
package municipalities

import (
	uierrors "github.com/klubbportal/klubbportal/internal/app/features/errors"
	"github.com/klubbportal/klubbportal/internal/app/api"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Municipalities.
type Handler struct {
	API    *api.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a Municipalities handler bound to the API client.
func NewHandler(client *api.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		API:    client,
		ErrLog: errLog,
		Log:    logger,
	}
}
