package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/karaoke-backend/internal/adapter/badgerkv"
	"github.com/heartmarshall/karaoke-backend/internal/adapter/postgres"
	apikeyrepo "github.com/heartmarshall/karaoke-backend/internal/adapter/postgres/apikey"
	auditrepo "github.com/heartmarshall/karaoke-backend/internal/adapter/postgres/audit"
	historyrepo "github.com/heartmarshall/karaoke-backend/internal/adapter/postgres/history"
	requestrepo "github.com/heartmarshall/karaoke-backend/internal/adapter/postgres/request"
	singerrepo "github.com/heartmarshall/karaoke-backend/internal/adapter/postgres/singer"
	songrepo "github.com/heartmarshall/karaoke-backend/internal/adapter/postgres/song"
	systemrepo "github.com/heartmarshall/karaoke-backend/internal/adapter/postgres/system"
	tenantrepo "github.com/heartmarshall/karaoke-backend/internal/adapter/postgres/tenant"
	tokenrepo "github.com/heartmarshall/karaoke-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/karaoke-backend/internal/adapter/postgres/user"
	venuerepo "github.com/heartmarshall/karaoke-backend/internal/adapter/postgres/venue"
	"github.com/heartmarshall/karaoke-backend/internal/auth"
	"github.com/heartmarshall/karaoke-backend/internal/config"
	"github.com/heartmarshall/karaoke-backend/internal/service/apikey"
	"github.com/heartmarshall/karaoke-backend/internal/service/audit"
	authsvc "github.com/heartmarshall/karaoke-backend/internal/service/auth"
	"github.com/heartmarshall/karaoke-backend/internal/service/catalog"
	"github.com/heartmarshall/karaoke-backend/internal/service/request"
	"github.com/heartmarshall/karaoke-backend/internal/service/system"
	"github.com/heartmarshall/karaoke-backend/internal/service/tenancy"
	"github.com/heartmarshall/karaoke-backend/internal/service/venue"
	"github.com/heartmarshall/karaoke-backend/internal/transport/middleware"
	"github.com/heartmarshall/karaoke-backend/internal/transport/rest"
	"github.com/heartmarshall/karaoke-backend/internal/transport/ws"
	"github.com/heartmarshall/karaoke-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires services and serves HTTP until ctx is cancelled, then
// shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Migrate.RunOnStart {
		if err := Migrate(ctx, pool, "up"); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	denylist, err := badgerkv.Open(cfg.Denylist.Path, cfg.Denylist.InMemory)
	if err != nil {
		return fmt.Errorf("open denylist: %w", err)
	}
	defer func() {
		if err := denylist.Close(); err != nil {
			logger.Error("close denylist", slog.String("error", err.Error()))
		}
	}()

	c := newContainer(pool, denylist, cfg, logger)
	defer c.hub.Close()
	defer c.apiKeys.Wait()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      c.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// container holds the wired dependency graph.
type container struct {
	router  http.Handler
	hub     *ws.Hub
	apiKeys *apikey.Service
}

func newContainer(pool *pgxpool.Pool, denylist *badgerkv.Denylist, cfg config.Config, logger *slog.Logger) *container {
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	tenants := tenantrepo.New(pool)
	singers := singerrepo.New(pool)
	tokens := tokenrepo.New(pool)
	venues := venuerepo.New(pool)
	systems := systemrepo.New(pool)
	songs := songrepo.New(pool)
	requests := requestrepo.New(pool)
	history := historyrepo.New(pool)
	keys := apikeyrepo.New(pool)
	auditLog := auditrepo.New(pool)

	guard := tenancy.NewGuard(logger, tenants, singers, venues, systems, songs, keys, requests)
	hub := ws.NewHub(logger)
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tenants, singers, tokens, txm, jwt, denylist, cfg.Auth)
	venueService := venue.NewService(logger, venues, tenants, guard, auditLog, txm)
	systemService := system.NewService(logger, systems, tenants, guard, auditLog, txm)
	catalogService := catalog.NewService(logger, songs, guard, auditLog, txm, cfg.Catalog)
	requestService := request.NewService(logger, requests, venues, history, guard, txm, hub)
	apiKeyService := apikey.NewService(logger, keys, guard, auditLog, txm)
	auditService := audit.NewService(logger, auditLog)

	router := rest.NewRouter(rest.Deps{
		Logger:          logger,
		CORS:            cfg.CORS,
		RateLimit:       cfg.RateLimit,
		Authenticate:    middleware.Auth(authService, guard, logger),
		AuthenticateKey: middleware.APIKey(apiKeyService),
		Health:          rest.NewHealthHandler(pool, hub, BuildVersion()),
		Auth:            rest.NewAuthHandler(authService, logger),
		Venues:          rest.NewVenueHandler(venueService, logger),
		Systems:         rest.NewSystemHandler(systemService, logger),
		Songs:           rest.NewSongHandler(catalogService, logger),
		Requests:        rest.NewRequestHandler(requestService, logger),
		Public:          rest.NewPublicHandler(venueService, requestService, logger),
		APIKeys:         rest.NewAPIKeyHandler(apiKeyService, logger),
		Audit:           rest.NewAuditHandler(auditService, logger),
		Legacy:          rest.NewLegacyHandler(catalogService, venueService, requestService, logger),
		Live:            ws.NewHandler(hub, venueService, cfg.Push, logger),
		Metrics:         promhttp.Handler(),
	})

	return &container{router: router, hub: hub, apiKeys: apiKeyService}
}

// Migrate runs a goose command ("up", "down" or "status") against the
// embedded migrations.
func Migrate(ctx context.Context, pool *pgxpool.Pool, command string) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := runGoose(ctx, db, command); err != nil {
		return fmt.Errorf("migrate %s: %w", command, err)
	}
	return nil
}

func runGoose(ctx context.Context, db *sql.DB, command string) error {
	switch command {
	case "up":
		return goose.UpContext(ctx, db, ".")
	case "down":
		return goose.DownContext(ctx, db, ".")
	case "status":
		return goose.StatusContext(ctx, db, ".")
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
