package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/shelfwatch-backend/internal/adapter/events"
	"github.com/heartmarshall/shelfwatch-backend/internal/adapter/postgres"
	alertrepo "github.com/heartmarshall/shelfwatch-backend/internal/adapter/postgres/alert"
	auditrepo "github.com/heartmarshall/shelfwatch-backend/internal/adapter/postgres/audit"
	camerarepo "github.com/heartmarshall/shelfwatch-backend/internal/adapter/postgres/camera"
	storerepo "github.com/heartmarshall/shelfwatch-backend/internal/adapter/postgres/store"
	userrepo "github.com/heartmarshall/shelfwatch-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/shelfwatch-backend/internal/auth"
	"github.com/heartmarshall/shelfwatch-backend/internal/config"
	"github.com/heartmarshall/shelfwatch-backend/internal/domain"
	"github.com/heartmarshall/shelfwatch-backend/internal/metrics"
	alertsvc "github.com/heartmarshall/shelfwatch-backend/internal/service/alert"
	authsvc "github.com/heartmarshall/shelfwatch-backend/internal/service/auth"
	camerasvc "github.com/heartmarshall/shelfwatch-backend/internal/service/camera"
	storesvc "github.com/heartmarshall/shelfwatch-backend/internal/service/store"
	"github.com/heartmarshall/shelfwatch-backend/internal/transport/ingest"
	"github.com/heartmarshall/shelfwatch-backend/internal/transport/middleware"
	"github.com/heartmarshall/shelfwatch-backend/internal/transport/rest"
)

type eventPublisher interface {
	PublishAlertEvent(ctx context.Context, event domain.AlertEvent) error
	Ping(ctx context.Context) error
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and the optional NATS/Redis collaborators, and serves the HTTP
// API until ctx is cancelled.
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

	if cfg.Database.MigrateOnStart {
		applied, err := postgres.Migrate(ctx, cfg.Database.DSN)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", slog.Int("count", len(applied)))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	m := metrics.New()
	var optional []rest.Dependency

	publisher := newEventPublisher(cfg.Redis, logger)
	if cfg.Redis.Enabled() {
		optional = append(optional, rest.Dependency{Name: "redis", Pinger: publisher})
	}

	svc := newServices(cfg, logger, pool, publisher, m)

	if cfg.NATS.Enabled() {
		handler := ingest.NewHandler(svc.alerts, svc.cameras, m, logger)
		sub, err := ingest.Connect(cfg.NATS, handler, logger)
		if err != nil {
			return err
		}
		defer sub.Shutdown()

		if err := sub.Start(ctx); err != nil {
			return err
		}
		optional = append(optional, rest.Dependency{Name: "nats", Pinger: sub})
	}

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	routes := rest.Routes{
		Alerts:     rest.NewAlertHandler(svc.alerts, logger),
		Stores:     rest.NewStoreHandler(svc.stores, logger),
		Cameras:    rest.NewCameraHandler(svc.cameras, logger),
		Auth:       rest.NewAuthHandler(svc.auth, logger),
		Health:     rest.NewHealthHandler(pool, BuildVersion(), optional...),
		LoginLimit: limiter.Limit(cfg.Server.LoginRateLimit),
	}
	var observe middleware.Middleware
	if cfg.Metrics.Enabled {
		routes.Metrics = m.Handler()
		routes.MetricsPath = cfg.Metrics.Path
		observe = middleware.Metrics(m)
	}

	// Metrics wraps the mux directly: it reads the matched pattern, which
	// the mux stores on the request it receives.
	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(svc.jwt),
		middleware.Logger(logger),
		observe,
	)(rest.NewRouter(routes))

	return serve(ctx, cfg.Server, handler, logger)
}

type services struct {
	alerts  *alertsvc.Service
	stores  *storesvc.Service
	cameras *camerasvc.Service
	auth    *authsvc.Service
	jwt     *auth.JWTManager
}

func newServices(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	publisher eventPublisher,
	m *metrics.Metrics,
) services {
	txm := postgres.NewTxManager(pool)
	audit := auditrepo.New(pool)
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	return services{
		alerts:  alertsvc.NewService(logger, alertrepo.New(pool), audit, txm, publisher, m, cfg.Alerts),
		stores:  storesvc.NewService(logger, storerepo.New(pool), audit, txm),
		cameras: camerasvc.NewService(logger, camerarepo.New(pool), audit, txm),
		auth:    authsvc.NewService(logger, userrepo.New(pool), jwt, cfg.Auth),
		jwt:     jwt,
	}
}

// newEventPublisher returns the Redis stream publisher, or a no-op when
// Redis is not configured.
func newEventPublisher(cfg config.RedisConfig, logger *slog.Logger) eventPublisher {
	if !cfg.Enabled() {
		logger.Info("redis not configured, alert events disabled")
		return events.Noop{}
	}
	return events.NewRedisPublisher(events.NewRedisClient(cfg), cfg)
}

// serve runs the HTTP server and shuts it down gracefully once ctx is done.
func serve(ctx context.Context, cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
