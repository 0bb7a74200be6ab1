package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "eventhub_backend/internals/features/admin/route"
	clubRoute "eventhub_backend/internals/features/clubs/clubs/route"
	attendanceRoute "eventhub_backend/internals/features/events/attendance/route"
	eventRoute "eventhub_backend/internals/features/events/events/route"
	notificationRoute "eventhub_backend/internals/features/notifications/route"
	authRoute "eventhub_backend/internals/features/users/auth/route"
	userRoute "eventhub_backend/internals/features/users/user/route"
	authMiddleware "eventhub_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the whole API under /api. Auth endpoints manage their
// own guards; everything else sits behind the JWT middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	authRoute.AuthRoutes(api, db)

	protected := api.Group("", authMiddleware.AuthMiddleware(db))

	clubRoute.ClubRoutes(protected, db)
	eventRoute.EventRoutes(protected, db)
	attendanceRoute.AttendanceRoutes(protected, db)
	notificationRoute.NotificationRoutes(protected, db)
	userRoute.UserRoutes(protected, db)
	adminRoute.AdminRoutes(protected, db)
}
