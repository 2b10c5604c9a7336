// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/klubbportal/klubbportal/internal/app/resources"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after backends are
// built, but before the HTTP handler. Shared templates are loaded here so
// feature template sets can reference the layout partials.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Backends, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	return nil
}
