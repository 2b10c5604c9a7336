// internal/app/features/clubs/handler.go
package clubs

import (
	"github.com/klubbportal/klubbportal/internal/app/api"
	uierrors "github.com/klubbportal/klubbportal/internal/app/features/errors"
	"github.com/klubbportal/klubbportal/internal/app/media"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Clubs.
type Handler struct {
	API    *api.Client
	Media  *media.Resolver
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger

	// MapsAPIKey enables the embedded map on the club view page. Blank
	// degrades to a plain "open in maps" link.
	MapsAPIKey     string
	UploadMaxBytes int64
}

// NewHandler constructs a Clubs handler.
func NewHandler(client *api.Client, resolver *media.Resolver, errLog *uierrors.ErrorLogger, logger *zap.Logger, mapsAPIKey string, uploadMaxBytes int64) *Handler {
	return &Handler{
		API:            client,
		Media:          resolver,
		ErrLog:         errLog,
		Log:            logger,
		MapsAPIKey:     mapsAPIKey,
		UploadMaxBytes: uploadMaxBytes,
	}
}
