package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"

	"github.com/heartmarshall/karaoke-backend/internal/config"
)

// CORS builds the go-chi/cors handler from configuration. A "*" origin with
// credentials enabled is served by echoing the request origin.
func CORS(cfg config.CORSConfig) Middleware {
	origins := splitCSV(cfg.AllowedOrigins)

	opts := cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   splitCSV(cfg.AllowedMethods),
		AllowedHeaders:   splitCSV(cfg.AllowedHeaders),
		ExposedHeaders:   []string{RequestIDHeader, "Retry-After"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if cfg.AllowCredentials && len(origins) == 1 && origins[0] == "*" {
		opts.AllowedOrigins = nil
		opts.AllowOriginFunc = func(_ *http.Request, _ string) bool { return true }
	}

	return cors.Handler(opts)
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
