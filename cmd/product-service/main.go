// Command product-service serves products over HTTP on port 7001.
package main

import (
	"context"

	catalogapp "github.com/storefront/backend/internal/application/catalog"
	"github.com/storefront/backend/internal/bootstrap"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/migration"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	rt, err := bootstrap.Init(ctx, "product-service", config.DefaultProductPort)
	if err != nil {
		bootstrap.Exit(nil, "Failed to initialize", err)
	}

	if err := run(ctx, rt); err != nil {
		rt.Shutdown(ctx)
		bootstrap.Exit(rt.Logger, "Product service stopped", err)
	}
	rt.Shutdown(ctx)
}

func run(ctx context.Context, rt *bootstrap.Runtime) error {
	log := rt.Logger
	log.Info("Starting product service", zap.String("env", rt.Config.App.Env))

	db, err := rt.OpenDatabase(ctx, migration.ServiceProduct)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	productRepo := persistence.NewGormProductRepository(db.DB)
	productService := catalogapp.NewProductService(productRepo, rt.Address, log)

	middleware.SetupValidator()
	engine := rt.NewEngine()
	router.NewRouter(engine).
		Register(handler.NewProductHandler(productService)).
		Register(handler.NewHealthHandler(rt.Config.App.Name, db)).
		Setup()

	return rt.Run(engine)
}
