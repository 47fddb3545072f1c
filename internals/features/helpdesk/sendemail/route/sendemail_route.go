// file: internals/features/helpdesk/sendemail/route/sendemail_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sendEmailController "helpdesku_backend/internals/features/helpdesk/sendemail/controller"
	sendEmailService "helpdesku_backend/internals/features/helpdesk/sendemail/service"
	authMw "helpdesku_backend/internals/middlewares/auth"
)

func SendEmailRoutes(app *fiber.App, db *gorm.DB) {
	ctl := sendEmailController.NewSendEmailController(db, sendEmailService.NewSMTPMailer())

	sendemail := app.Group("/api/sendemail", authMw.AuthMiddleware())
	sendemail.Post("/", ctl.Send)
	sendemail.Get("/ticket/:ticketNumber", ctl.ListByTicket)
	sendemail.Get("/:id", ctl.GetByID)
}
