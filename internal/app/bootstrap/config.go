// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for Klubbportal.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: api_base_url, session_name, etc.
//   - Environment variables: KLUBBPORTAL_API_BASE_URL, KLUBBPORTAL_SESSION_NAME, etc.
//   - Command-line flags: --api_base_url, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "api_base_url", Default: "http://localhost:8000", Desc: "Base URL of the platform REST API"},
	{Name: "media_base_url", Default: "", Desc: "Base URL for relative media paths (defaults to api_base_url)"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "klubbportal-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	{Name: "maps_api_key", Default: "", Desc: "Maps embed API key (blank disables embedded maps)"},

	{Name: "upload_max_bytes", Default: 10 << 20, Desc: "Max size of a single uploaded file in bytes"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// environment variables (WAFFLE_* for core, KLUBBPORTAL_* for app), and
// command-line flags, merging with precedence flags > env > files >
// defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "KLUBBPORTAL", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		APIBaseURL:   appValues.String("api_base_url"),
		MediaBaseURL: appValues.String("media_base_url"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		MapsAPIKey: appValues.String("maps_api_key"),

		UploadMaxBytes: int64(appValues.Int("upload_max_bytes")),
	}

	// Media is usually served by the same host as the API.
	if appCfg.MediaBaseURL == "" {
		appCfg.MediaBaseURL = appCfg.APIBaseURL
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The API base URL is validated here so a typo fails fast instead of
// producing a portal where every page shows the error panel.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if !urlutil.IsValidAbsHTTPURL(appCfg.APIBaseURL) {
		logger.Error("invalid API base URL", zap.String("api_base_url", appCfg.APIBaseURL))
		return fmt.Errorf("api_base_url must be an absolute http(s) URL, got %q", appCfg.APIBaseURL)
	}
	if !urlutil.IsValidAbsHTTPURL(appCfg.MediaBaseURL) {
		return fmt.Errorf("media_base_url must be an absolute http(s) URL, got %q", appCfg.MediaBaseURL)
	}
	if appCfg.UploadMaxBytes <= 0 {
		return fmt.Errorf("upload_max_bytes must be positive, got %d", appCfg.UploadMaxBytes)
	}
	return nil
}
