package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Pos-api/internal/application/auth"
	appinventory "github.com/jhoicas/Pos-api/internal/application/inventory"
	"github.com/jhoicas/Pos-api/internal/application/purchasing"
	"github.com/jhoicas/Pos-api/internal/application/sales"
	"github.com/jhoicas/Pos-api/internal/application/usecase"
	"github.com/jhoicas/Pos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Pos-api/internal/interfaces/http"
	"github.com/jhoicas/Pos-api/pkg/config"
	"github.com/jhoicas/Pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockUC := appinventory.NewStockUseCase(movementRepo)
	registerMovementUC := appinventory.NewRegisterMovementUseCase(txRunner, productRepo)
	checkoutUC := sales.NewCheckoutUseCase(txRunner, productRepo, customerRepo)
	receiveUC := purchasing.NewReceiveUseCase(txRunner, orderRepo, supplierRepo, productRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.RegisterRoutes(app, httpRouter.RouterDeps{
		JWTSecret:  cfg.JWT.Secret,
		Auth:       httpRouter.NewAuthHandler(authUC),
		Products:   httpRouter.NewProductHandler(productUC),
		Customers:  httpRouter.NewCustomerHandler(customerUC),
		Suppliers:  httpRouter.NewSupplierHandler(supplierUC),
		Locations:  httpRouter.NewLocationHandler(locationUC),
		Inventory:  httpRouter.NewInventoryHandler(stockUC, registerMovementUC),
		Sales:      httpRouter.NewSalesHandler(checkoutUC),
		Purchasing: httpRouter.NewPurchasingHandler(receiveUC),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
