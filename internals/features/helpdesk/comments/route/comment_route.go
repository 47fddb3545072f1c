// file: internals/features/helpdesk/comments/route/comment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	commentController "helpdesku_backend/internals/features/helpdesk/comments/controller"
	authMw "helpdesku_backend/internals/middlewares/auth"
)

func CommentRoutes(app *fiber.App, db *gorm.DB) {
	ctl := commentController.NewCommentController(db)

	comments := app.Group("/api/comments", authMw.AuthMiddleware())
	comments.Get("/ticket/:ticketId", ctl.ListByTicket)
	comments.Get("/:id", ctl.GetByID)
	comments.Post("/", ctl.Create)
	comments.Put("/:id", ctl.Update)
}
