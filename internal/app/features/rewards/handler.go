// internal/app/features/rewards/handler.go
package rewards

import (
	"github.com/klubbportal/klubbportal/internal/app/api"
	uierrors "github.com/klubbportal/klubbportal/internal/app/features/errors"
	"github.com/klubbportal/klubbportal/internal/app/media"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Rewards. Rewards are created
// by the backend's points engine; the portal browses them and their claim
// history.
type Handler struct {
	API    *api.Client
	Media  *media.Resolver
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a Rewards handler.
func NewHandler(client *api.Client, resolver *media.Resolver, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{API: client, Media: resolver, ErrLog: errLog, Log: logger}
}
