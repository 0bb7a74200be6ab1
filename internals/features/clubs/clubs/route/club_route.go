package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventhub_backend/internals/constants"
	clubController "eventhub_backend/internals/features/clubs/clubs/controller"
	subscriptionController "eventhub_backend/internals/features/clubs/subscriptions/controller"
	authMiddleware "eventhub_backend/internals/middlewares/auth"
)

func ClubRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := clubController.NewClubController(db)
	subCtrl := subscriptionController.NewSubscriptionController(db)

	clubs := api.Group("/clubs")
	clubs.Get("/", ctrl.Index)
	clubs.Get("/subscribed",
		authMiddleware.OnlyRoles(constants.ErrOnlyStudentsCanAccess, constants.RoleStudent),
		subCtrl.Subscribed)
	clubs.Post("/subscribe/:club_id",
		authMiddleware.OnlyRoles(constants.ErrOnlyStudentsCanAccess, constants.RoleStudent),
		subCtrl.Toggle)
	clubs.Get("/subscribe/:club_id",
		authMiddleware.OnlyRoles(constants.ErrOnlyStudentsCanAccess, constants.RoleStudent),
		subCtrl.IsSubscribed)
	clubs.Get("/:id", ctrl.Show)
}
