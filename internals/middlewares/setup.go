package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares wires the app-wide middleware chain. Route-scoped ones
// (auth, role guards, login limiter) are attached in the route setup.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
