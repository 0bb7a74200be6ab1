package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventhub_backend/internals/constants"
	"eventhub_backend/internals/features/admin/controller"
	authMiddleware "eventhub_backend/internals/middlewares/auth"
)

// AdminRoutes mounts the admin surface behind a role guard. The parent group
// already authenticated the caller.
func AdminRoutes(protected fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminController(db)

	admin := protected.Group("/admin",
		authMiddleware.OnlyRoles(constants.ErrOnlyAdminsCanAccess, constants.RoleAdmin))

	admin.Get("/clubs/pending", ctrl.PendingClubs)
	admin.Patch("/clubs/:id/approve", ctrl.ApproveClub)
	admin.Patch("/clubs/:id/reject", ctrl.RejectClub)
	admin.Get("/clubs", ctrl.AllClubs)
	admin.Delete("/clubs/:id", ctrl.DeleteClub)

	admin.Get("/events", ctrl.AllEvents)
	admin.Delete("/events/:id", ctrl.DeleteEvent)

	admin.Get("/stats", ctrl.Stats)
}
