// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, log
// level). AppConfig is everything specific to this portal: where the
// platform API lives, how media URLs are resolved, and session settings.
type AppConfig struct {
	// Platform API configuration
	APIBaseURL   string // Base URL of the platform REST API (e.g., https://api.klubbportal.se)
	MediaBaseURL string // Base URL for resolving relative media paths (avatars, hero images)

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: klubbportal-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Optional integrations
	MapsAPIKey string // Maps embed key; blank degrades club maps to a plain link

	// Upload limits
	UploadMaxBytes int64 // Max size of a single uploaded file
}
