// Package api boots the commerce HTTP API: observability, the shared store
// handle, and the six collection bindings.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/commercekit/commerce-api/internal/collections"
	platformmongo "github.com/commercekit/commerce-api/internal/platform/mongo"
	platformobservability "github.com/commercekit/commerce-api/internal/platform/observability"
	platformpostgres "github.com/commercekit/commerce-api/internal/platform/postgres"
	"github.com/commercekit/commerce-api/internal/resource/adapters/memory"
	"github.com/commercekit/commerce-api/internal/resource/adapters/observability"
	mongostore "github.com/commercekit/commerce-api/internal/resource/adapters/persistence/mongo"
	postgresstore "github.com/commercekit/commerce-api/internal/resource/adapters/persistence/postgres"
	"github.com/commercekit/commerce-api/internal/resource/adapters/rest"
	"github.com/commercekit/commerce-api/internal/resource/domain"
	"github.com/commercekit/commerce-api/internal/resource/ports"
)

const serviceName = "commerce-api"

// Run boots the HTTP API and blocks serving requests.
func Run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	store, cleanupStore := buildStore(ctx, cfg, logger)
	defer cleanupStore()

	instrument := func(schema domain.Schema, svc ports.Service) ports.Service {
		return observability.New(
			svc,
			schema.Name,
			observability.WithLogger(logger),
			observability.WithTracer(instruments.Tracer("internal.resource.application")),
			observability.WithMeter(instruments.Meter("internal.resource.application")),
		)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(serviceName))
	router.Use(rest.CORS())

	v1 := router.Group("/api/v1")
	v1.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	collections.Bind(v1, store, instrument)

	addr := ":" + cfg.Port
	logger.Info("commerce API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("commerce API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// buildStore picks the document-store backend: an explicit STORE_BACKEND
// wins; auto tries mongo, then postgres, then falls back to memory.
func buildStore(ctx context.Context, cfg Config, logger *slog.Logger) (ports.Store, func()) {
	tryMongo := cfg.StoreBackend == BackendMongo || (cfg.StoreBackend == BackendAuto && cfg.MongoURI != "")
	if tryMongo {
		if db, cleanup := platformmongo.ConnectFromEnv(ctx, logger); db != nil {
			logger.Info("document store configured with mongo")
			return mongostore.NewStore(db), cleanup
		}
		logger.Warn("mongo unavailable, falling back")
	}
	tryPostgres := cfg.StoreBackend == BackendPostgres || (cfg.StoreBackend == BackendAuto && cfg.PostgresDSN != "")
	if tryPostgres {
		if db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger); db != nil {
			logger.Info("document store configured with postgres")
			return postgresstore.NewStore(db), cleanup
		}
		logger.Warn("postgres unavailable, falling back")
	}
	logger.Warn("no database configured, using in-memory document store")
	return memory.NewStore(), func() {}
}
