package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stocktrack-api/internal/application/auth"
	"github.com/jhoicas/stocktrack-api/internal/application/ledger"
	"github.com/jhoicas/stocktrack-api/internal/application/purchasing"
	"github.com/jhoicas/stocktrack-api/internal/application/usecase"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	SupplierUC *usecase.SupplierUseCase
	CategoryUC *usecase.CategoryUseCase
	LedgerUC   *ledger.LedgerUseCase
	PurchaseUC *purchasing.PurchaseOrderUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
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
	manager := RequireRole(entity.RoleAdmin, entity.RoleManager)

	// Products (protegido; escritura solo admin/manager)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", manager, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", manager, productHandler.Update)
	products.Delete("/:id", manager, productHandler.Deactivate)

	// Stock ledger (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.LedgerUC)
	invGroup.Post("/movements", inventoryHandler.RecordMovement)
	invGroup.Get("/movements/:id", inventoryHandler.History)
	invGroup.Get("/low-stock", inventoryHandler.ListLowStock)
	invGroup.Get("/reconcile/:id", inventoryHandler.Reconcile)

	// Purchase orders (protegido; mutaciones solo admin/manager)
	orders := protected.Group("/purchase-orders")
	orderHandler := NewPurchaseOrderHandler(deps.PurchaseUC)
	orders.Post("/", manager, orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.Get)
	orders.Post("/:id/send", manager, orderHandler.Send)
	orders.Post("/:id/confirm", manager, orderHandler.Confirm)
	orders.Post("/:id/receive", orderHandler.Receive)
	orders.Post("/:id/cancel", manager, orderHandler.Cancel)
	orders.Delete("/:id", manager, orderHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", manager, supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", manager, supplierHandler.Update)
	suppliers.Delete("/:id", manager, supplierHandler.Deactivate)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", manager, categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Delete("/:id", manager, categoryHandler.Delete)
}
