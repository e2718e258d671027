package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/veth14/hotel-backoffice-api/internal/application/auth"
	"github.com/veth14/hotel-backoffice-api/internal/application/inventory"
	"github.com/veth14/hotel-backoffice-api/internal/application/procurement"
	"github.com/veth14/hotel-backoffice-api/internal/application/requisition"
	"github.com/veth14/hotel-backoffice-api/internal/application/usecase"
	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC        *inventory.ItemUseCase
	OrderUC       *procurement.OrderUseCase
	OrderPDFUC    *procurement.PDFUseCase
	RequisitionUC *requisition.UseCase
	SupplierUC    *usecase.SupplierUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
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

	// Las transiciones de workflow y los borrados exigen manager o admin.
	managerOnly := RequireRole(entity.RoleAdmin, entity.RoleManager)

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Get("/stats", itemHandler.Stats)
	items.Get("/facets", itemHandler.Facets)
	items.Post("/", itemHandler.Create)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Patch("/:id/stock", itemHandler.AdjustStock)
	items.Get("/:id/transactions", itemHandler.Transactions)
	items.Delete("/:id", managerOnly, itemHandler.Delete)

	// Purchase orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.OrderPDFUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/pdf", orderHandler.DownloadPDF)
	orders.Post("/:id/transition", managerOnly, orderHandler.Transition)

	// Requisitions (protegido)
	requisitions := protected.Group("/requisitions")
	requisitionHandler := NewRequisitionHandler(deps.RequisitionUC)
	requisitions.Post("/", requisitionHandler.Create)
	requisitions.Get("/", requisitionHandler.List)
	requisitions.Get("/:id", requisitionHandler.GetByID)
	requisitions.Post("/:id/transition", managerOnly, requisitionHandler.Transition)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
}
