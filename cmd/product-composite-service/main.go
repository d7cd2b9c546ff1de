// Command product-composite-service serves the aggregated product view on
// port 7000, backed by the product, recommendation and review services.
package main

import (
	"context"

	"github.com/storefront/backend/internal/application/composite"
	"github.com/storefront/backend/internal/bootstrap"
	"github.com/storefront/backend/internal/infrastructure/backend"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/telemetry"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	rt, err := bootstrap.Init(ctx, "product-composite-service", config.DefaultCompositePort)
	if err != nil {
		bootstrap.Exit(nil, "Failed to initialize", err)
	}

	if err := run(rt); err != nil {
		rt.Shutdown(ctx)
		bootstrap.Exit(rt.Logger, "Product composite service stopped", err)
	}
	rt.Shutdown(ctx)
}

func run(rt *bootstrap.Runtime) error {
	log := rt.Logger
	services := rt.Config.Services
	log.Info("Starting product composite service",
		zap.String("env", rt.Config.App.Env),
		zap.String("product_url", services.Product.BaseURL()),
		zap.String("recommendation_url", services.Recommendation.BaseURL()),
		zap.String("review_url", services.Review.BaseURL()),
	)

	metrics, err := telemetry.NewBackendMetrics(rt.Meter("backend.client"))
	if err != nil {
		return err
	}

	compositeService := composite.NewService(
		backend.NewProductClient(services.Product, log, backend.WithMetrics(metrics)),
		backend.NewRecommendationClient(services.Recommendation, log, backend.WithMetrics(metrics)),
		backend.NewReviewClient(services.Review, log, backend.WithMetrics(metrics)),
		rt.Address,
		log,
	)

	middleware.SetupValidator()
	engine := rt.NewEngine()
	router.NewRouter(engine).
		Register(handler.NewCompositeHandler(compositeService)).
		Register(handler.NewHealthHandler(rt.Config.App.Name)).
		Setup()

	return rt.Run(engine)
}
