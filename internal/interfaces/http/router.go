package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/auth"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/catalog"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/identity"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/inventory"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/sales"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC   *catalog.UseCase
	InventoryUC *inventory.LedgerUseCase
	SalesUC     *sales.AggregatorUseCase
	IdentityUC  *identity.UseCase
	AuthUC      *auth.UseCase
	Users       UserResolver
	JWTSecret   string
}

// Router registra las rutas de la API. Las operaciones de escritura sensibles
// (ventas, gestión de usuarios y roles, mutación de inventario) exigen además
// el rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Users))

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CatalogUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Inventory (protegido; mutaciones solo admin)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Post("/", adminOnly, inventoryHandler.Create)
	invGroup.Get("/low-stock", inventoryHandler.ListLowStock)
	invGroup.Get("/history", inventoryHandler.History)
	invGroup.Get("/history/:product_id", inventoryHandler.HistoryByProduct)
	invGroup.Get("/:product_id", inventoryHandler.Get)
	invGroup.Put("/:product_id", adminOnly, inventoryHandler.Adjust)
	invGroup.Delete("/:product_id", adminOnly, inventoryHandler.Delete)

	// Sales (protegido; registrar ventas solo admin)
	salesGroup := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesUC)
	salesGroup.Post("/", adminOnly, salesHandler.Create)
	salesGroup.Get("/", salesHandler.List)
	salesGroup.Get("/:id", salesHandler.GetByID)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reports.Get("/revenue", salesHandler.RevenueByPeriod)
	reports.Get("/revenue/compare", salesHandler.RevenueComparison)
	reports.Get("/revenue/by-category", salesHandler.RevenueByCategory)
	reports.Get("/revenue/by-product/:product_id", salesHandler.RevenueByProduct)
	reports.Get("/products", salesHandler.ProductRevenueReport)
	reports.Get("/products/pdf", salesHandler.ProductRevenuePDF)

	// Users, roles y asignaciones (protegido; mutaciones solo admin)
	userHandler := NewUserHandler(deps.IdentityUC)

	users := protected.Group("/users")
	users.Post("/", adminOnly, userHandler.CreateUser)
	users.Get("/", userHandler.ListUsers)
	users.Get("/:id", userHandler.GetUser)
	users.Put("/:id", adminOnly, userHandler.UpdateUser)
	users.Delete("/:id", adminOnly, userHandler.DeleteUser)

	users.Get("/:user_id/roles", userHandler.ListUserRoles)
	users.Post("/:user_id/roles/:role_id", adminOnly, userHandler.AssignRole)
	users.Get("/:user_id/roles/:role_id", userHandler.GetUserRole)
	users.Put("/:user_id/roles/:role_id", adminOnly, userHandler.UpdateUserRole)
	users.Delete("/:user_id/roles/:role_id", adminOnly, userHandler.DeleteUserRole)

	roles := protected.Group("/roles")
	roles.Post("/", adminOnly, userHandler.CreateRole)
	roles.Get("/", userHandler.ListRoles)
	roles.Get("/:id", userHandler.GetRole)
	roles.Put("/:id", userHandler.UpdateRole)
	roles.Delete("/:id", adminOnly, userHandler.DeleteRole)
}
