package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"helpdesku_backend/internals/constants"
	productController "helpdesku_backend/internals/features/enrollment/products/controller"
	authMw "helpdesku_backend/internals/middlewares/auth"
)

func ProductRoutes(app *fiber.App, db *gorm.DB) {
	ctl := productController.NewProductController(db)

	products := app.Group("/api/products", authMw.AuthMiddleware())
	products.Get("/", ctl.List)
	products.Get("/:id", ctl.GetByID)

	staffOnly := authMw.OnlyRoles("Only staff can manage products", constants.RoleAdmin, constants.RoleAgent)
	products.Post("/", staffOnly, ctl.Create)
	products.Put("/:id", staffOnly, ctl.Update)
	products.Delete("/:id", authMw.OnlyRoles("Only admin can delete products", constants.RoleAdmin), ctl.Delete)
}
