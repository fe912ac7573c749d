package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/grocerflow/grocerflow-api/internal/application/auth"
	"github.com/grocerflow/grocerflow-api/internal/application/ledger"
	"github.com/grocerflow/grocerflow-api/internal/application/reporting"
	"github.com/grocerflow/grocerflow-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC  *usecase.CategoryUseCase
	SupplierUC  *usecase.SupplierUseCase
	ProductUC   *usecase.ProductUseCase
	ApplyTxUC   *ledger.ApplyTransactionUseCase
	DashboardUC *reporting.DashboardUseCase
	ExportUC    *reporting.ExportUseCase
	LowStockPDF *reporting.LowStockPDFUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público, con rate limit por IP en login)
	authHandler := NewAuthHandler(deps.AuthUC)
	loginLimiter := NewLoginRateLimiter()
	api.Post("/auth/login", loginLimiter.Middleware(), authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/change-password", authHandler.ChangePassword)
	protected.Post("/users", RequireAdmin(), authHandler.CreateUser)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Libro de movimientos (protegido)
	transactionHandler := NewTransactionHandler(deps.ApplyTxUC, deps.ExportUC)
	products.Post("/:id/transactions", transactionHandler.Apply)
	products.Get("/:id/transactions", transactionHandler.History)
	protected.Get("/transactions", transactionHandler.ListAll)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	// Exportaciones (protegido)
	exportHandler := NewExportHandler(deps.ExportUC, deps.LowStockPDF)
	exports := protected.Group("/export")
	exports.Get("/inventory.csv", exportHandler.InventoryCSV)
	exports.Get("/transactions.csv", exportHandler.TransactionsCSV)
	exports.Get("/low-stock.pdf", exportHandler.LowStockPDF)
}
