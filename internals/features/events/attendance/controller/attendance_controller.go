package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventhub_backend/internals/features/events/attendance/dto"
	"eventhub_backend/internals/features/events/attendance/service"
	helper "eventhub_backend/internals/helpers"
	authMiddleware "eventhub_backend/internals/middlewares/auth"
)

type AttendanceController struct{ DB *gorm.DB }

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

var validateAttendance = validator.New()

// GenerateQR issues a fresh token for the event's rotating QR code.
// GET /api/attendance/qr/:event_id  (club only, must own the event)
func (ctrl *AttendanceController) GenerateQR(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("event_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}
	userID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	payload, err := service.IssueToken(ctrl.DB, eventID, userID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		case errors.Is(err, service.ErrNotEventOwner):
			return helper.JsonError(c, fiber.StatusForbidden, "Unauthorized")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate token")
		}
	}
	return helper.JsonOK(c, "Token generated", payload)
}

// MarkAttendance validates a scanned QR payload and records presence.
// POST /api/attendance/mark  (student only)
func (ctrl *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validateAttendance.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	userID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	result, err := service.MarkAttendance(ctrl.DB, userID, req, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoStudentProfile):
			return helper.JsonError(c, fiber.StatusNotFound, "Student profile not found")
		case errors.Is(err, service.ErrInvalidToken):
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid token")
		case errors.Is(err, service.ErrExpiredToken):
			return helper.JsonError(c, fiber.StatusBadRequest, "Token expired")
		case errors.Is(err, service.ErrEventNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		case errors.Is(err, service.ErrNotSubscribed):
			return helper.JsonError(c, fiber.StatusForbidden, "You must be subscribed to the club to mark attendance")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark attendance")
		}
	}
	return helper.JsonOK(c, result.Message, result)
}

// LiveAttendance returns the roster for near-real-time display; the club
// dashboard polls this every few seconds.
// GET /api/attendance/live/:event_id
func (ctrl *AttendanceController) LiveAttendance(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("event_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	roster, err := service.LiveRoster(ctrl.DB, eventID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load roster")
	}
	return helper.JsonOK(c, "Live attendance", roster)
}

// GetEventAttendance reports the calling student's own status for an event.
// GET /api/attendance/status/:event_id  (student only)
func (ctrl *AttendanceController) GetEventAttendance(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("event_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}
	userID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	status, err := service.OwnStatus(ctrl.DB, eventID, userID)
	if err != nil {
		if errors.Is(err, service.ErrNoStudentProfile) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attendance status")
	}
	return helper.JsonOK(c, "Attendance status", status)
}
