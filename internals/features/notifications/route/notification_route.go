package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventhub_backend/internals/features/notifications/controller"
)

// NotificationRoutes mounts the inbox endpoints. The parent group already
// carries the JWT middleware.
func NotificationRoutes(protected fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	n := protected.Group("/notifications")
	n.Get("/", ctrl.Index)
	n.Get("/unread-count", ctrl.UnreadCount)
	n.Patch("/read-all", ctrl.MarkAllRead)
	n.Patch("/:id/read", ctrl.MarkRead)
	n.Delete("/:id", ctrl.Destroy)
}
