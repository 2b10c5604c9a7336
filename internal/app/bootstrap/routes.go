// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	clubsfeature "github.com/klubbportal/klubbportal/internal/app/features/clubs"
	countriesfeature "github.com/klubbportal/klubbportal/internal/app/features/countries"
	dashboardfeature "github.com/klubbportal/klubbportal/internal/app/features/dashboard"
	errorsfeature "github.com/klubbportal/klubbportal/internal/app/features/errors"
	eventsfeature "github.com/klubbportal/klubbportal/internal/app/features/events"
	healthfeature "github.com/klubbportal/klubbportal/internal/app/features/health"
	homefeature "github.com/klubbportal/klubbportal/internal/app/features/home"
	interestsfeature "github.com/klubbportal/klubbportal/internal/app/features/interests"
	loginfeature "github.com/klubbportal/klubbportal/internal/app/features/login"
	logoutfeature "github.com/klubbportal/klubbportal/internal/app/features/logout"
	municipalitiesfeature "github.com/klubbportal/klubbportal/internal/app/features/municipalities"
	rewardsfeature "github.com/klubbportal/klubbportal/internal/app/features/rewards"
	youthfeature "github.com/klubbportal/klubbportal/internal/app/features/youth"
	"github.com/klubbportal/klubbportal/internal/app/system/auth"
	"github.com/klubbportal/klubbportal/internal/app/system/flash"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend construction, and Startup
// have completed. It initializes the session store, boots the template
// engine, applies CSRF protection, and mounts one router per feature.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Backends, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"
	if err := auth.InitSessionStore(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger); err != nil {
		logger.Error("session store init failed", zap.Error(err))
		return nil, err
	}
	flash.Init(auth.Store, appCfg.SessionName)

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Loads SessionUser into context when signed in, for auth.CurrentUser.
	r.Use(auth.LoadSessionUser)
	r.Use(csrf.Protect(
		[]byte(appCfg.SessionKey),
		csrf.Secure(secure),
		csrf.Path("/"),
	))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.API, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(deps.API, errLog, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)
	r.NotFound(errorsHandler.NotFound)

	// Role-scoped dashboard
	dashboardHandler := dashboardfeature.NewHandler(deps.API, errLog, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

	// Reference data
	countriesHandler := countriesfeature.NewHandler(deps.API, errLog, logger)
	r.Mount("/countries", countriesfeature.Routes(countriesHandler))

	municipalitiesHandler := municipalitiesfeature.NewHandler(deps.API, errLog, logger)
	r.Mount("/municipalities", municipalitiesfeature.Routes(municipalitiesHandler))

	interestsHandler := interestsfeature.NewHandler(deps.API, errLog, logger)
	r.Mount("/interests", interestsfeature.Routes(interestsHandler))

	// Clubs, members, activities
	clubsHandler := clubsfeature.NewHandler(deps.API, deps.Media, errLog, logger, appCfg.MapsAPIKey, appCfg.UploadMaxBytes)
	r.Mount("/clubs", clubsfeature.Routes(clubsHandler))

	youthHandler := youthfeature.NewHandler(deps.API, deps.Media, errLog, logger, appCfg.UploadMaxBytes)
	r.Mount("/youth", youthfeature.Routes(youthHandler))

	eventsHandler := eventsfeature.NewHandler(deps.API, deps.Media, errLog, logger, appCfg.UploadMaxBytes)
	r.Mount("/events", eventsfeature.Routes(eventsHandler))

	rewardsHandler := rewardsfeature.NewHandler(deps.API, deps.Media, errLog, logger)
	r.Mount("/rewards", rewardsfeature.Routes(rewardsHandler))

	return r, nil
}
