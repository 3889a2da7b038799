package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"adminapi/internal/http/handlers"
	"adminapi/internal/infra"
	"adminapi/internal/middleware"
)

// NewRouter wires the report handlers behind the shared middleware stack.
// Everything under /admin requires a bearer token with the admin role.
func NewRouter(app *handlers.App, cfg *infra.Config, lookup middleware.CountryLookup) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.I18N(cfg.DefaultLocale, lookup),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
	)

	// Health
	r.Get("/v1/healthz", app.Health)

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.AuthJWT(cfg.JWTSecret), middleware.AdminOnly)

		r.Get("/users", app.ListUsers)
		r.Get("/users/{userID}", app.GetUserDetail)
		r.Get("/registrations", app.GetRegistrations)
		r.Get("/logins", app.GetLogins)
		r.Get("/online-duration", app.GetOnlineDuration)
		r.Get("/overview", app.GetOverview)
	})

	return r
}
