package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventhub_backend/internals/features/users/auth/controller"
	middlewares "eventhub_backend/internals/middlewares"
	authMiddleware "eventhub_backend/internals/middlewares/auth"
)

// AuthRoutes: public endpoints carry their own rate limiters; logout and me
// go through the JWT middleware.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
	auth.Post("/signup/student", middlewares.RegisterRateLimiter(), ctrl.SignupStudent)
	auth.Post("/signup/teacher", middlewares.RegisterRateLimiter(), ctrl.SignupTeacher)
	auth.Post("/signup/club", middlewares.RegisterRateLimiter(), ctrl.SignupClub)

	auth.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
	auth.Get("/me", authMiddleware.AuthMiddleware(db), ctrl.Me)
}
