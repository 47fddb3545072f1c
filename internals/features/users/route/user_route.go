package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "helpdesku_backend/internals/features/users/controller"
	"helpdesku_backend/internals/middlewares"
	authMw "helpdesku_backend/internals/middlewares/auth"
)

// UserRoutes: register/login are public (rate limited), everything else behind JWT
func UserRoutes(app *fiber.App, db *gorm.DB) {
	ctl := userController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)

	users := app.Group("/api/users")
	users.Post("/", middlewares.RegisterRateLimiter(), ctl.Register)
	users.Get("/me", authMw.AuthMiddleware(), ctl.Me)
}
