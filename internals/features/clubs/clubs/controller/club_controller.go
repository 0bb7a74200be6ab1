package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventhub_backend/internals/constants"
	"eventhub_backend/internals/features/clubs/clubs/model"
	eventModel "eventhub_backend/internals/features/events/events/model"
	helper "eventhub_backend/internals/helpers"
)

type ClubController struct{ DB *gorm.DB }

func NewClubController(db *gorm.DB) *ClubController { return &ClubController{DB: db} }

// Index lists every approved club.
// GET /api/clubs
func (ctrl *ClubController) Index(c *fiber.Ctx) error {
	var clubs []model.ClubModel
	if err := ctrl.DB.Table("clubs").
		Select("clubs.*").
		Joins("JOIN users u ON u.id = clubs.club_user_id").
		Where("u.status = ? AND u.is_active", constants.StatusApproved).
		Order("clubs.club_name ASC").
		Find(&clubs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load clubs")
	}
	return helper.JsonOK(c, "Clubs", clubs)
}

// Show returns one club plus its events.
// GET /api/clubs/:id
func (ctrl *ClubController) Show(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid club id")
	}

	var club model.ClubModel
	if err := ctrl.DB.First(&club, "club_id = ?", clubID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Club not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load club")
	}

	var events []eventModel.EventModel
	if err := ctrl.DB.
		Where("event_club_id = ?", club.ClubID).
		Order("event_start_time DESC").
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load club events")
	}

	return helper.JsonOK(c, "Club detail", fiber.Map{
		"club":   club,
		"events": events,
	})
}
