// file: internals/route/index.go
package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentRoute "helpdesku_backend/internals/features/enrollment/enrollments/route"
	paymentRoute "helpdesku_backend/internals/features/enrollment/payments/route"
	productRoute "helpdesku_backend/internals/features/enrollment/products/route"
	attachmentRoute "helpdesku_backend/internals/features/helpdesk/attachments/route"
	commentRoute "helpdesku_backend/internals/features/helpdesk/comments/route"
	customerRoute "helpdesku_backend/internals/features/helpdesk/customers/route"
	masterdataRoute "helpdesku_backend/internals/features/helpdesk/masterdata/route"
	sendEmailRoute "helpdesku_backend/internals/features/helpdesk/sendemail/route"
	ticketRoute "helpdesku_backend/internals/features/helpdesk/tickets/route"
	userRoute "helpdesku_backend/internals/features/users/route"
)

// SetupRoutes registers every feature group on the app.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] registering auth & user routes")
	userRoute.UserRoutes(app, db)

	log.Println("[INFO] registering helpdesk routes")
	masterdataRoute.MasterdataRoutes(app, db)
	customerRoute.CustomerRoutes(app, db)
	ticketRoute.TicketRoutes(app, db)
	commentRoute.CommentRoutes(app, db)
	attachmentRoute.AttachmentRoutes(app, db)
	sendEmailRoute.SendEmailRoutes(app, db)

	log.Println("[INFO] registering enrollment routes")
	productRoute.ProductRoutes(app, db)
	enrollmentRoute.EnrollmentRoutes(app, db)
	paymentRoute.PaymentRoutes(app, db)
}
