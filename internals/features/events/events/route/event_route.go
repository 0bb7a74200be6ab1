package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventhub_backend/internals/constants"
	"eventhub_backend/internals/features/events/events/controller"
	authMiddleware "eventhub_backend/internals/middlewares/auth"
)

func EventRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventController(db)

	events := api.Group("/events")
	events.Post("/create",
		authMiddleware.OnlyRoles(constants.ErrOnlyClubsCanAccess, constants.RoleClub),
		ctrl.Store)
	events.Get("/upcoming", ctrl.Upcoming)
	events.Get("/mine",
		authMiddleware.OnlyRoles(constants.ErrOnlyClubsCanAccess, constants.RoleClub),
		ctrl.Mine)
	events.Get("/club/:club_id", ctrl.ByClub)
	events.Get("/:id", ctrl.Show)
}
