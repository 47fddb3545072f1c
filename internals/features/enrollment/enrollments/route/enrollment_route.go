package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentController "helpdesku_backend/internals/features/enrollment/enrollments/controller"
	authMw "helpdesku_backend/internals/middlewares/auth"
)

func EnrollmentRoutes(app *fiber.App, db *gorm.DB) {
	ctl := enrollmentController.NewEnrollmentController(db)

	enrollments := app.Group("/api/enrollments")
	// Read projections match the legacy dashboard paths.
	enrollments.Get("/all", ctl.ListAll)
	enrollments.Get("/_enrolledNotCompletedNotPaid", ctl.ListOpenUnpaid)
	enrollments.Get("/_completedPaid", ctl.ListCompletedPaid)
	enrollments.Get("/_completedNotPaid", ctl.ListCompletedUnpaid)
	enrollments.Get("/_enrollmentsPaid", ctl.ListPaid)
	enrollments.Get("/", ctl.ListOpen)
	enrollments.Get("/:id", ctl.GetByID)

	enrollments.Post("/", authMw.AuthMiddleware(), ctl.Create)

	completions := app.Group("/api/completions", authMw.AuthMiddleware())
	completions.Post("/", ctl.Complete)
}
