package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sioms-api/internal/application/auth"
	"github.com/jhoicas/sioms-api/internal/application/inventory"
	"github.com/jhoicas/sioms-api/internal/application/orders"
	"github.com/jhoicas/sioms-api/internal/application/reports"
	"github.com/jhoicas/sioms-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProductUC      *usecase.ProductUseCase
	SupplierUC     *usecase.SupplierUseCase
	CatalogUC      *usecase.CatalogUseCase
	AlertUC        *usecase.AlertUseCase
	DashboardUC    *usecase.DashboardUseCase
	Reconcile      *inventory.ReconcileUseCase
	Query          *inventory.QueryUseCase
	Reconciliation *inventory.DailyReconciliationUseCase
	PurchaseUC     *orders.PurchaseOrderUseCase
	SalesUC        *orders.SalesOrderUseCase
	MovementReport *reports.MovementReportUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Categorías y clientes (protegido)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	protected.Post("/categories", catalogHandler.CreateCategory)
	protected.Get("/categories", catalogHandler.ListCategories)
	protected.Post("/customers", catalogHandler.CreateCustomer)
	protected.Get("/customers", catalogHandler.ListCustomers)
	protected.Get("/customers/:id", catalogHandler.GetCustomer)

	// Stock movements (protegido)
	invGroup := protected.Group("/inventory")
	movementHandler := NewMovementHandler(deps.Reconcile, deps.Query)
	invGroup.Post("/movements", movementHandler.Create)
	invGroup.Get("/movements", movementHandler.List)
	invGroup.Get("/movements/summary", movementHandler.Summary)
	invGroup.Put("/movements/:id", movementHandler.Update)
	invGroup.Delete("/movements/:id", movementHandler.Delete)

	// Purchase orders (protegido)
	purchases := protected.Group("/purchase-orders")
	purchaseHandler := NewPurchaseOrderHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Put("/:id", purchaseHandler.Update)
	purchases.Delete("/:id", purchaseHandler.Delete)
	purchases.Post("/:id/receive", purchaseHandler.Receive)

	// Sales orders (protegido)
	sales := protected.Group("/sales-orders")
	salesHandler := NewSalesOrderHandler(deps.SalesUC)
	sales.Post("/", salesHandler.Create)
	sales.Get("/", salesHandler.List)
	sales.Get("/:id", salesHandler.GetByID)
	sales.Put("/:id", salesHandler.Update)
	sales.Delete("/:id", salesHandler.Delete)
	sales.Post("/:id/complete", salesHandler.Complete)
	sales.Post("/:id/cancel", salesHandler.Cancel)

	// Low stock alerts (protegido)
	alerts := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC)
	alerts.Get("/", alertHandler.ListUnresolved)
	alerts.Get("/history", alertHandler.ListHistory)
	alerts.Post("/:id/resolve", alertHandler.Resolve)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Get)

	// Reports + reconciliación manual (protegido)
	reportHandler := NewReportHandler(deps.MovementReport, deps.Reconciliation)
	protected.Get("/reports/movements", reportHandler.MovementsPDF)
	protected.Post("/reconciliation/run", reportHandler.RunReconciliation)
}
