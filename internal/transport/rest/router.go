package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/karaoke-backend/internal/config"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/transport/middleware"
	"github.com/heartmarshall/karaoke-backend/internal/transport/problem"
)

// Deps holds everything the router mounts. Authenticate resolves bearer
// tokens; AuthenticateKey resolves legacy API keys.
type Deps struct {
	Logger    *slog.Logger
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig

	Authenticate    middleware.Middleware
	AuthenticateKey middleware.Middleware

	Health   *HealthHandler
	Auth     *AuthHandler
	Venues   *VenueHandler
	Systems  *SystemHandler
	Songs    *SongHandler
	Requests *RequestHandler
	Public   *PublicHandler
	APIKeys  *APIKeyHandler
	Audit    *AuditHandler
	Legacy   *LegacyHandler
	Live     http.Handler
	Metrics  http.Handler
}

// NewRouter builds the HTTP handler for the whole service.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(d.CORS))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		problem.Write(w, r, http.StatusNotFound, "resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		problem.Write(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}

	rl := d.RateLimit

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(d.Authenticate)
		r.Use(middleware.RateLimit(budget(rl, rl.RequestsPerMinute)))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(budget(rl, rl.AuthRequestsPerMinute)))
			r.Post("/auth/register", d.Auth.Register)
			r.Post("/auth/login", d.Auth.Login)
			r.Post("/auth/refresh", d.Auth.Refresh)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth())
			r.Post("/auth/logout", d.Auth.Logout)
			r.Get("/me", d.Auth.Me)
		})

		r.Route("/public/venues/{urlName}", func(r chi.Router) {
			r.Get("/", d.Public.GetVenue)
			r.Post("/requests", d.Public.CreateRequest)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(domain.UserRoleSinger))
			r.Get("/singer/history", d.Requests.History)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(domain.UserRoleCustomer))
			mountCustomer(r, d)
		})
	})

	r.Route("/api/legacy", func(r chi.Router) {
		r.Use(middleware.RateLimitByAPIKey(budget(rl, rl.LegacyRequestsPerMinute)))
		r.Use(d.AuthenticateKey)

		r.Get("/systems/{legacySystemId}/songs", d.Legacy.ListSongs)
		r.Post("/systems/{legacySystemId}/songs/sync", d.Legacy.SyncSongs)
		r.Get("/venues/{legacyVenueId}", d.Legacy.GetVenue)
		r.Get("/venues/{legacyVenueId}/requests", d.Legacy.ListRequests)
		r.Post("/venues/{legacyVenueId}/requests/{requestId}/process", d.Legacy.ProcessRequest)
	})

	return r
}

func mountCustomer(r chi.Router, d Deps) {
	r.Route("/venues", func(r chi.Router) {
		r.Get("/", d.Venues.List)
		r.Post("/", d.Venues.Create)

		r.Route("/{venueId}", func(r chi.Router) {
			r.Get("/", d.Venues.Get)
			r.Patch("/", d.Venues.Update)
			r.Delete("/", d.Venues.Delete)

			r.Get("/requests", d.Requests.List)
			r.Patch("/requests/{requestId}", d.Requests.Update)
			r.Delete("/requests/{requestId}", d.Requests.Delete)

			if d.Live != nil {
				r.Method(http.MethodGet, "/live", d.Live)
			}
		})
	})

	r.Route("/systems", func(r chi.Router) {
		r.Get("/", d.Systems.List)
		r.Post("/", d.Systems.Create)

		r.Route("/{systemId}", func(r chi.Router) {
			r.Get("/", d.Systems.Get)
			r.Patch("/", d.Systems.Rename)
			r.Delete("/", d.Systems.Delete)

			r.Get("/songs", d.Songs.SearchInSystem)
			r.Post("/songs", d.Songs.Create)
			r.Delete("/songs", d.Songs.Wipe)
			r.Post("/songs/import", d.Songs.Import)
			r.Get("/songs/export", d.Songs.Export)
		})
	})

	r.Get("/songs", d.Songs.Search)
	r.Delete("/songs/{songId}", d.Songs.Delete)

	r.Get("/api-keys", d.APIKeys.List)
	r.Post("/api-keys", d.APIKeys.Create)
	r.Delete("/api-keys/{keyId}", d.APIKeys.Revoke)

	r.Get("/audit-log", d.Audit.List)
}

// budget returns perMinute, or 0 (unlimited) when rate limiting is off.
func budget(cfg config.RateLimitConfig, perMinute int) int {
	if !cfg.Enabled {
		return 0
	}
	return perMinute
}
