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

	"github.com/jhoicas/ecommerce-admin-api/internal/application/auth"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/catalog"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/identity"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/inventory"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/sales"
	infrapdf "github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/pdf"
	"github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/ecommerce-admin-api/internal/interfaces/http"
	"github.com/jhoicas/ecommerce-admin-api/pkg/config"
	"github.com/jhoicas/ecommerce-admin-api/pkg/logger"
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

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	invRepo := postgres.NewInventoryRepository(pool)
	histRepo := postgres.NewInventoryHistoryRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	userRoleRepo := postgres.NewUserRoleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	catalogUC := catalog.NewUseCase(categoryRepo, productRepo)
	inventoryUC := inventory.NewLedgerUseCase(txRunner, invRepo, histRepo, productRepo)

	// PDF: representación gráfica del reporte de ingresos por producto
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	salesUC := sales.NewAggregatorUseCase(saleRepo, productRepo, pdfGenerator)

	identityUC := identity.NewUseCase(userRepo, roleRepo, userRoleRepo)
	authUC := auth.NewUseCase(userRepo, userRoleRepo, auth.JWTConfig{
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
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ecommerce Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:   catalogUC,
		InventoryUC: inventoryUC,
		SalesUC:     salesUC,
		IdentityUC:  identityUC,
		AuthUC:      authUC,
		Users:       userRepo,
		JWTSecret:   cfg.JWT.Secret,
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
