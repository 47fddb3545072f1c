// file: internals/features/helpdesk/attachments/route/attachment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"helpdesku_backend/internals/constants"
	attachmentController "helpdesku_backend/internals/features/helpdesk/attachments/controller"
	authMw "helpdesku_backend/internals/middlewares/auth"
)

func AttachmentRoutes(app *fiber.App, db *gorm.DB) {
	ctl := attachmentController.NewAttachmentController(db)

	attachments := app.Group("/api/attachments", authMw.AuthMiddleware())
	attachments.Get("/ticket/:ticketId", ctl.ListByTicket)
	attachments.Get("/:id/download", ctl.Download)
	attachments.Get("/:id", ctl.GetByID)
	attachments.Post("/", ctl.Upload)
	attachments.Delete("/:id", authMw.OnlyRoles("Only admin can delete attachments", constants.RoleAdmin), ctl.Delete)
}
