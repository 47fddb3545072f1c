// file: internals/features/helpdesk/tickets/route/ticket_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"helpdesku_backend/internals/constants"
	ticketController "helpdesku_backend/internals/features/helpdesk/tickets/controller"
	authMw "helpdesku_backend/internals/middlewares/auth"
)

func TicketRoutes(app *fiber.App, db *gorm.DB) {
	ctl := ticketController.NewTicketController(db)

	tickets := app.Group("/api/tickets", authMw.AuthMiddleware())
	tickets.Get("/", ctl.List)
	tickets.Get("/:id", ctl.GetByID)
	tickets.Post("/", ctl.Create)
	tickets.Put("/:id", ctl.Update)
	tickets.Delete("/:id", authMw.OnlyRoles("Only admin can delete tickets", constants.RoleAdmin), ctl.Delete)
}
