package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pos-api/internal/domain/entity"
)

// RouterDeps agrupa los handlers y la configuración que necesita el router.
type RouterDeps struct {
	JWTSecret  string
	Auth       *AuthHandler
	Products   *ProductHandler
	Customers  *CustomerHandler
	Suppliers  *SupplierHandler
	Locations  *LocationHandler
	Inventory  *InventoryHandler
	Sales      *SalesHandler
	Purchasing *PurchasingHandler
}

// RegisterRoutes monta todas las rutas de la API. Auth es público; el resto
// requiere token, con roles por grupo: el cajero vende, el bodeguero mueve
// stock y recibe compras, el admin todo.
func RegisterRoutes(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", deps.Auth.Register)
	authGroup.Post("/login", deps.Auth.Login)

	protected := api.Group("", AuthMiddleware(deps.JWTSecret))

	products := protected.Group("/products")
	products.Get("/", deps.Products.List)
	products.Get("/:id", deps.Products.GetByID)
	products.Post("/", RequireRole(entity.RoleAdmin), deps.Products.Create)
	products.Put("/:id", RequireRole(entity.RoleAdmin), deps.Products.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), deps.Products.Delete)

	customers := protected.Group("/customers")
	customers.Get("/", deps.Customers.List)
	customers.Post("/", deps.Customers.Create)
	customers.Put("/:id", deps.Customers.Update)
	customers.Delete("/:id", RequireRole(entity.RoleAdmin), deps.Customers.Delete)

	suppliers := protected.Group("/suppliers", RequireRole(entity.RoleAdmin, entity.RoleBodeguero))
	suppliers.Get("/", deps.Suppliers.List)
	suppliers.Post("/", deps.Suppliers.Create)
	suppliers.Put("/:id", deps.Suppliers.Update)
	suppliers.Delete("/:id", RequireRole(entity.RoleAdmin), deps.Suppliers.Delete)

	locations := protected.Group("/locations")
	locations.Get("/", deps.Locations.List)
	locations.Post("/", RequireRole(entity.RoleAdmin), deps.Locations.Create)

	inv := protected.Group("/inventory")
	inv.Get("/stock/:productID", deps.Inventory.GetStock)
	inv.Get("/lots/:productID", deps.Inventory.GetLots)
	inv.Get("/movements", deps.Inventory.ListByReference)
	inv.Get("/movements/:productID", deps.Inventory.ListMovements)
	inv.Post("/movements", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), deps.Inventory.RegisterMovement)

	salesGroup := protected.Group("/sales", RequireRole(entity.RoleAdmin, entity.RoleCajero))
	salesGroup.Post("/", deps.Sales.Create)

	po := protected.Group("/purchase-orders", RequireRole(entity.RoleAdmin, entity.RoleBodeguero))
	po.Post("/", deps.Purchasing.Create)
	po.Post("/:id/receive", deps.Purchasing.Receive)
}
