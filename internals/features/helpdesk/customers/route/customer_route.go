// file: internals/features/helpdesk/customers/route/customer_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	customerController "helpdesku_backend/internals/features/helpdesk/customers/controller"
	authMw "helpdesku_backend/internals/middlewares/auth"
)

func CustomerRoutes(app *fiber.App, db *gorm.DB) {
	ctl := customerController.NewCustomerController(db)

	customers := app.Group("/api/customers", authMw.AuthMiddleware())
	customers.Get("/", ctl.List)
	customers.Get("/:id", ctl.GetByID)
	customers.Post("/", ctl.Create)
	customers.Put("/:id", ctl.Update)
}
