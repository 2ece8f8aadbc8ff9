package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/petmemorial-backend/internal/config"
	"github.com/heartmarshall/petmemorial-backend/internal/metrics"
	"github.com/heartmarshall/petmemorial-backend/internal/transport/middleware"
	"github.com/heartmarshall/petmemorial-backend/internal/transport/rest"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Gift   *rest.GiftHandler
	Pet    *rest.PetHandler
	Wallet *rest.WalletHandler
	Auth   *rest.AuthHandler
	Health *rest.HealthHandler
}

// RouterDeps holds everything NewRouter needs besides the handlers.
type RouterDeps struct {
	Config  *config.Config
	Logger  *slog.Logger
	Tokens  middleware.TokenValidator
	Metrics *metrics.Metrics
	// Limiter may be nil when rate limiting is disabled.
	Limiter *middleware.RateLimiter
}

// NewRouter builds the HTTP routing tree.
//
// Global stack (outermost first): RequestID, Logger, Recovery, CORS, Metrics,
// Auth. Probes and /metrics are mounted outside it so scrapes do not flood
// the access log.
func NewRouter(deps RouterDeps, h Handlers) http.Handler {
	cfg := deps.Config

	root := chi.NewRouter()
	root.NotFound(rest.NotFound)
	root.MethodNotAllowed(rest.MethodNotAllowed)

	root.Get("/live", h.Health.Live)
	root.Get("/ready", h.Health.Ready)
	root.Get("/health", h.Health.Health)
	if cfg.Metrics.Enabled {
		root.Method(http.MethodGet, cfg.Metrics.Path, deps.Metrics.Handler())
	}

	root.Group(func(r chi.Router) {
		r.Use(middleware.Chain(
			middleware.RequestID(),
			middleware.Logger(deps.Logger),
			middleware.Recovery(deps.Logger, deps.Metrics),
			middleware.CORS(cfg.CORS),
			middleware.Metrics(deps.Metrics),
			middleware.Auth(deps.Tokens),
		))
		r.Use(chimw.RequestSize(cfg.Server.MaxBodyBytes))

		limited := r.With()
		if deps.Limiter != nil {
			limited = r.With(deps.Limiter.Limit())
		}
		authed := r.With(middleware.RequireUser)
		authedLimited := limited.With(middleware.RequireUser)

		r.Get("/gifts", h.Gift.ListCatalog)

		limited.Post("/auth/register", h.Auth.Register)
		limited.Post("/auth/login", h.Auth.Login)

		r.Get("/pets", h.Pet.List)
		authedLimited.Post("/pets", h.Pet.Create)
		r.Get("/pets/{petId}", h.Pet.Get)
		authed.Patch("/pets/{petId}", h.Pet.Update)

		r.Get("/pets/{petId}/gifts", h.Gift.ListPlacements)
		limited.Post("/pets/{petId}/gifts", h.Gift.Place)

		r.Get("/pets/{petId}/photos", h.Pet.ListPhotos)
		authedLimited.Post("/pets/{petId}/photos", h.Pet.AddPhoto)

		r.Get("/users/{userId}/wallet", h.Wallet.Get)
		authed.Post("/users/{userId}/wallet/topup", h.Wallet.TopUp)
	})

	return root
}
