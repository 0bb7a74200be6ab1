package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventhub_backend/internals/constants"
	"eventhub_backend/internals/features/events/attendance/controller"
	authMiddleware "eventhub_backend/internals/middlewares/auth"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	attendance := api.Group("/attendance")
	attendance.Get("/qr/:event_id",
		authMiddleware.OnlyRoles(constants.ErrOnlyClubsCanAccess, constants.RoleClub),
		ctrl.GenerateQR)
	attendance.Post("/mark",
		authMiddleware.OnlyRoles(constants.ErrOnlyStudentsCanAccess, constants.RoleStudent),
		ctrl.MarkAttendance)
	attendance.Get("/live/:event_id", ctrl.LiveAttendance)
	attendance.Get("/status/:event_id",
		authMiddleware.OnlyRoles(constants.ErrOnlyStudentsCanAccess, constants.RoleStudent),
		ctrl.GetEventAttendance)
}
