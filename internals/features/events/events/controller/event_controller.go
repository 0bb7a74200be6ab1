package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventhub_backend/internals/constants"
	clubModel "eventhub_backend/internals/features/clubs/clubs/model"
	"eventhub_backend/internals/features/events/events/dto"
	"eventhub_backend/internals/features/events/events/model"
	notificationService "eventhub_backend/internals/features/notifications/service"
	userModel "eventhub_backend/internals/features/users/user/model"
	helper "eventhub_backend/internals/helpers"
	authMiddleware "eventhub_backend/internals/middlewares/auth"
)

type EventController struct{ DB *gorm.DB }

func NewEventController(db *gorm.DB) *EventController { return &EventController{DB: db} }

var validateEvent = validator.New()

// Store creates an event for the caller's club. Pending/rejected clubs are
// turned away here even though the role guard already passed.
// POST /api/events/create  (club only)
func (ctrl *EventController) Store(c *fiber.Ctx) error {
	userID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if user.Status != constants.StatusApproved {
		return helper.JsonError(c, fiber.StatusForbidden,
			"Your club registration is pending admin approval. You cannot create events yet.")
	}

	var club clubModel.ClubModel
	if err := ctrl.DB.First(&club, "club_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Club profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load club")
	}

	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validateEvent.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	event := req.ToModel(club.ClubID)
	if err := ctrl.DB.Create(event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}

	notificationService.NotifyEventCreated(ctrl.DB, &club, event)

	return helper.JsonCreated(c, "Event created successfully", event)
}

// Upcoming lists future events across all clubs, soonest first.
// GET /api/events/upcoming
func (ctrl *EventController) Upcoming(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	now := time.Now()
	base := func() *gorm.DB {
		return ctrl.DB.Table("events AS e").
			Joins("JOIN clubs cl ON cl.club_id = e.event_club_id").
			Where("e.event_start_time >= ?", now)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}

	var events []dto.EventWithClub
	if err := base().
		Select("e.*, cl.club_name").
		Order("e.event_start_time ASC").
		Limit(p.Limit).Offset(p.Offset).
		Scan(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}

	return helper.JsonList(c, "Upcoming events", events,
		helper.BuildPagination(total, p.Page, p.PerPage, len(events)))
}

// Show returns one event with its club name.
// GET /api/events/:id
func (ctrl *EventController) Show(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event dto.EventWithClub
	err = ctrl.DB.Table("events AS e").
		Select("e.*, cl.club_name").
		Joins("JOIN clubs cl ON cl.club_id = e.event_club_id").
		Where("e.event_id = ?", eventID).
		Take(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event")
	}
	return helper.JsonOK(c, "Event detail", event)
}

// Mine lists the calling club's own events, newest start first.
// GET /api/events/mine  (club only)
func (ctrl *EventController) Mine(c *fiber.Ctx) error {
	userID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var club clubModel.ClubModel
	if err := ctrl.DB.First(&club, "club_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Club profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load club")
	}

	var events []model.EventModel
	if err := ctrl.DB.
		Where("event_club_id = ?", club.ClubID).
		Order("event_start_time DESC").
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}
	return helper.JsonOK(c, "Club events", events)
}

// ByClub lists all events of one club.
// GET /api/events/club/:club_id
func (ctrl *EventController) ByClub(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("club_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid club id")
	}

	var events []model.EventModel
	if err := ctrl.DB.
		Where("event_club_id = ?", clubID).
		Order("event_start_time DESC").
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}
	return helper.JsonOK(c, "Club events", events)
}
