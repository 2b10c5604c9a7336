// internal/app/features/events/handler.go
package events

import (
	"github.com/klubbportal/klubbportal/internal/app/api"
	uierrors "github.com/klubbportal/klubbportal/internal/app/features/errors"
	"github.com/klubbportal/klubbportal/internal/app/media"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Events.
type Handler struct {
	API            *api.Client
	Media          *media.Resolver
	ErrLog         *uierrors.ErrorLogger
	Log            *zap.Logger
	UploadMaxBytes int64
}

// NewHandler constructs an Events handler.
func NewHandler(client *api.Client, resolver *media.Resolver, errLog *uierrors.ErrorLogger, logger *zap.Logger, uploadMaxBytes int64) *Handler {
	return &Handler{
		API:            client,
		Media:          resolver,
		ErrLog:         errLog,
		Log:            logger,
		UploadMaxBytes: uploadMaxBytes,
	}
}
