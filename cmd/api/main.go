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

	"github.com/jhoicas/sioms-api/internal/application/auth"
	"github.com/jhoicas/sioms-api/internal/application/inventory"
	"github.com/jhoicas/sioms-api/internal/application/orders"
	"github.com/jhoicas/sioms-api/internal/application/reports"
	"github.com/jhoicas/sioms-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/sioms-api/internal/infrastructure/pdf"
	"github.com/jhoicas/sioms-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/sioms-api/internal/interfaces/http"
	"github.com/jhoicas/sioms-api/internal/scheduler"
	"github.com/jhoicas/sioms-api/pkg/config"
	"github.com/jhoicas/sioms-api/pkg/logger"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	alertRepo := postgres.NewLowStockAlertRepository(pool)
	poRepo := postgres.NewPurchaseOrderRepository(pool)
	soRepo := postgres.NewSalesOrderRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	reconcileUC := inventory.NewReconcileUseCase(txRunner)
	queryUC := inventory.NewQueryUseCase(movementRepo, productRepo)
	reconciliationUC := inventory.NewDailyReconciliationUseCase(txRunner)
	purchaseUC := orders.NewPurchaseOrderUseCase(txRunner, reconcileUC, poRepo, productRepo, supplierRepo)
	salesUC := orders.NewSalesOrderUseCase(txRunner, reconcileUC, soRepo, productRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	catalogUC := usecase.NewCatalogUseCase(categoryRepo, customerRepo)
	alertUC := usecase.NewAlertUseCase(alertRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo, alertRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	movementReportUC := reports.NewMovementReportUseCase(movementRepo, productRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SIOMS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      productUC,
		SupplierUC:     supplierUC,
		CatalogUC:      catalogUC,
		AlertUC:        alertUC,
		DashboardUC:    dashboardUC,
		Reconcile:      reconcileUC,
		Query:          queryUC,
		Reconciliation: reconciliationUC,
		PurchaseUC:     purchaseUC,
		SalesUC:        salesUC,
		MovementReport: movementReportUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	if cfg.Recon.Enabled {
		sched := scheduler.New(reconciliationUC, log, cfg.Recon.Hour, cfg.Recon.Timezone)
		go sched.Start(ctx)
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
