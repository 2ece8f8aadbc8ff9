package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/petmemorial-backend/internal/adapter/postgres"
	"github.com/heartmarshall/petmemorial-backend/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/petmemorial-backend/internal/adapter/postgres/ledger"
	"github.com/heartmarshall/petmemorial-backend/internal/adapter/postgres/pet"
	"github.com/heartmarshall/petmemorial-backend/internal/adapter/postgres/photo"
	"github.com/heartmarshall/petmemorial-backend/internal/adapter/postgres/placement"
	"github.com/heartmarshall/petmemorial-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/petmemorial-backend/internal/auth"
	"github.com/heartmarshall/petmemorial-backend/internal/config"
	"github.com/heartmarshall/petmemorial-backend/internal/metrics"
	authsvc "github.com/heartmarshall/petmemorial-backend/internal/service/auth"
	giftsvc "github.com/heartmarshall/petmemorial-backend/internal/service/gift"
	"github.com/heartmarshall/petmemorial-backend/internal/service/owner"
	petsvc "github.com/heartmarshall/petmemorial-backend/internal/service/pet"
	"github.com/heartmarshall/petmemorial-backend/internal/transport/middleware"
	"github.com/heartmarshall/petmemorial-backend/internal/transport/rest"
)

var errEmptyCatalog = errors.New("gift catalog is empty")

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, applies migrations when enabled, wires services, and serves
// HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	srv, cleanup := newServer(cfg, logger, Deps{
		Pool:    pool,
		Metrics: metrics.New(),
	})
	defer cleanup()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server started", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		logger.Info("http server stopped")
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Deps are the external resources the HTTP stack is built on.
type Deps struct {
	Pool    *pgxpool.Pool
	Metrics *metrics.Metrics
}

// newServer wires repositories, services and handlers into an *http.Server.
// The returned cleanup stops background goroutines owned by the stack.
func newServer(cfg *config.Config, logger *slog.Logger, deps Deps) (*http.Server, func()) {
	handler, cleanup := NewHandler(cfg, logger, deps)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
	return srv, cleanup
}

// NewHandler builds the complete HTTP handler. It is exported for the
// end-to-end tests, which serve it with httptest.
func NewHandler(cfg *config.Config, logger *slog.Logger, deps Deps) (http.Handler, func()) {
	pool := deps.Pool
	txm := postgres.NewTxManager(pool, postgres.WithTxAttempts(cfg.Database.TxAttempts))

	users := user.New(pool)
	pets := pet.New(pool)
	photos := photo.New(pool)
	gifts := catalog.New(pool)
	placements := placement.New(pool)
	coins := ledger.New(pool)

	owners := owner.NewService(logger, users, coins, txm, deps.Metrics, cfg.Gifts)
	giftService := giftsvc.NewService(logger, pets, gifts, placements, users, coins, owners, txm, deps.Metrics, cfg.Gifts)
	petService := petsvc.NewService(logger, pets, photos, txm, cfg.Gifts)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)

	var limiter *middleware.RateLimiter
	cleanup := func() {}
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit)
		cleanup = limiter.Stop
	}

	health := rest.NewHealthHandler(BuildVersion(),
		rest.HealthCheck{Name: "database", Critical: true, Probe: pool.Ping},
		rest.HealthCheck{Name: "catalog", Probe: func(ctx context.Context) error {
			items, err := giftService.ListCatalog(ctx)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				return errEmptyCatalog
			}
			return nil
		}},
	)

	router := NewRouter(RouterDeps{
		Config:  cfg,
		Logger:  logger,
		Tokens:  authService,
		Metrics: deps.Metrics,
		Limiter: limiter,
	}, Handlers{
		Gift:   rest.NewGiftHandler(giftService, logger),
		Pet:    rest.NewPetHandler(petService, logger),
		Wallet: rest.NewWalletHandler(owners, logger),
		Auth:   rest.NewAuthHandler(authService, logger),
		Health: health,
	})

	return router, cleanup
}
