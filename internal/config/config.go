package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Denylist  DenylistConfig  `yaml:"denylist"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Push      PushConfig      `yaml:"push"`
	Migrate   MigrateConfig   `yaml:"migrate"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-API-Key,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds session token and password settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"karaoke"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"15m"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"  env:"AUTH_REFRESH_TOKEN_TTL"  env-default:"720h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request budgets.
type RateLimitConfig struct {
	Enabled                 bool `yaml:"enabled"                    env:"RATE_LIMIT_ENABLED"                    env-default:"true"`
	RequestsPerMinute       int  `yaml:"requests_per_minute"        env:"RATE_LIMIT_REQUESTS_PER_MINUTE"        env-default:"300"`
	AuthRequestsPerMinute   int  `yaml:"auth_requests_per_minute"   env:"RATE_LIMIT_AUTH_REQUESTS_PER_MINUTE"   env-default:"20"`
	LegacyRequestsPerMinute int  `yaml:"legacy_requests_per_minute" env:"RATE_LIMIT_LEGACY_REQUESTS_PER_MINUTE" env-default:"120"`
}

// DenylistConfig configures the revoked-session store.
type DenylistConfig struct {
	Path     string `yaml:"path"      env:"DENYLIST_PATH"      env-default:"./data/denylist"`
	InMemory bool   `yaml:"in_memory" env:"DENYLIST_IN_MEMORY" env-default:"false"`
}

// CatalogConfig holds song catalog limits.
type CatalogConfig struct {
	ImportMaxItems  int `yaml:"import_max_items"  env:"CATALOG_IMPORT_MAX_ITEMS"  env-default:"10000"`
	ImportChunkSize int `yaml:"import_chunk_size" env:"CATALOG_IMPORT_CHUNK_SIZE" env-default:"500"`
	SearchMinQuery  int `yaml:"search_min_query"  env:"CATALOG_SEARCH_MIN_QUERY"  env-default:"2"`
}

// PushConfig holds live request feed settings.
type PushConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"PUSH_ALLOWED_ORIGINS" env-default:"*"`
	SendBuffer     int    `yaml:"send_buffer"     env:"PUSH_SEND_BUFFER"     env-default:"256"`
}

// MigrateConfig controls schema migrations at startup.
type MigrateConfig struct {
	RunOnStart bool `yaml:"run_on_start" env:"MIGRATE_RUN_ON_START" env-default:"false"`
}

// Origins splits the comma-separated origin list.
func (p PushConfig) Origins() []string {
	return splitList(p.AllowedOrigins)
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
