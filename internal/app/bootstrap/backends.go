// internal/app/bootstrap/backends.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/klubbportal/klubbportal/internal/app/api"
	"github.com/klubbportal/klubbportal/internal/app/media"
	"go.uber.org/zap"
)

// Backends holds the remote dependencies for the app. The portal keeps no
// database of its own; every record lives behind the platform REST API.
type Backends struct {
	API   *api.Client
	Media *media.Resolver
}

// ConnectDB builds the API client and media resolver. No connection is
// opened here; the client is plain HTTP and the first real call happens
// per request.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Backends, error) {
	return Backends{
		API:   api.New(appCfg.APIBaseURL, logger),
		Media: media.NewResolver(appCfg.MediaBaseURL),
	}, nil
}

// EnsureSchema probes the platform API once so an unreachable backend is
// visible in the logs at startup. The portal still starts; pages render
// the error panel until the API comes back.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Backends, logger *zap.Logger) error {
	var out map[string]any
	if err := deps.API.Get(ctx, "/health/", nil, &out); err != nil {
		logger.Warn("platform API not reachable at startup",
			zap.String("api_base_url", appCfg.APIBaseURL),
			zap.Error(err),
		)
		return nil
	}
	logger.Info("platform API reachable", zap.String("api_base_url", appCfg.APIBaseURL))
	return nil
}
