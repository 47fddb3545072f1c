package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"helpdesku_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the shared middleware stack in order.
func SetupMiddlewares(app *fiber.App, db *gorm.DB) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(DBMiddleware(db))
}
