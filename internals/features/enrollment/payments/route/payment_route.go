package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "helpdesku_backend/internals/features/enrollment/payments/controller"
	authMw "helpdesku_backend/internals/middlewares/auth"
)

func PaymentRoutes(app *fiber.App, db *gorm.DB) {
	ctl := paymentController.NewPaymentController(db)

	payments := app.Group("/api/payments")

	// Provider notifications arrive unauthenticated; the signature check
	// inside the handler is the gate.
	payments.Post("/", ctl.Notification)
	payments.Post("/notification", ctl.Notification)

	payments.Post("/checkout", authMw.AuthMiddleware(), ctl.Checkout)

	payments.Get("/", authMw.AuthMiddleware(), ctl.List)
	payments.Get("/enrollment/:enrollmentId", authMw.AuthMiddleware(), ctl.GetByEnrollment)
	payments.Get("/:id", authMw.AuthMiddleware(), ctl.GetByID)
}
