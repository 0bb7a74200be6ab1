package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventhub_backend/internals/features/users/user/controller"
)

func UserRoutes(protected fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	u := protected.Group("/users")
	u.Get("/profile", ctrl.Profile)
	u.Post("/profile-picture", ctrl.UploadProfilePicture)
	u.Delete("/profile-picture", ctrl.DeleteProfilePicture)
}
