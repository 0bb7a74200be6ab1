package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventhub_backend/internals/constants"
	"eventhub_backend/internals/features/admin/dto"
	clubModel "eventhub_backend/internals/features/clubs/clubs/model"
	subscriptionModel "eventhub_backend/internals/features/clubs/subscriptions/model"
	attendanceModel "eventhub_backend/internals/features/events/attendance/model"
	eventModel "eventhub_backend/internals/features/events/events/model"
	userModel "eventhub_backend/internals/features/users/user/model"
	helper "eventhub_backend/internals/helpers"
)

type AdminController struct{ DB *gorm.DB }

func NewAdminController(db *gorm.DB) *AdminController { return &AdminController{DB: db} }

// PendingClubs lists club accounts waiting for approval, oldest first.
// GET /api/admin/clubs/pending
func (ctrl *AdminController) PendingClubs(c *fiber.Ctx) error {
	var rows []dto.PendingClub
	err := ctrl.DB.Table("clubs").
		Select("users.id AS user_id, users.email, users.status, clubs.club_id, clubs.club_name, clubs.club_code, clubs.club_email, clubs.club_created_at").
		Joins("JOIN users ON users.id = clubs.club_user_id").
		Where("users.role = ? AND users.status = ?", constants.RoleClub, constants.StatusPending).
		Order("clubs.club_created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch pending clubs")
	}
	return helper.JsonOK(c, "Pending clubs", rows)
}

// ApproveClub flips a pending club account to approved.
// PATCH /api/admin/clubs/:id/approve
func (ctrl *AdminController) ApproveClub(c *fiber.Ctx) error {
	return ctrl.setClubStatus(c, constants.StatusApproved, "Club approved")
}

// RejectClub marks a pending club account rejected. The account stays but
// cannot create events.
// PATCH /api/admin/clubs/:id/reject
func (ctrl *AdminController) RejectClub(c *fiber.Ctx) error {
	return ctrl.setClubStatus(c, constants.StatusRejected, "Club rejected")
}

func (ctrl *AdminController) setClubStatus(c *fiber.Ctx, status, okMessage string) error {
	clubID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid club ID")
	}

	var club clubModel.ClubModel
	if err := ctrl.DB.First(&club, "club_id = ?", clubID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Club not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch club")
	}

	res := ctrl.DB.Model(&userModel.UserModel{}).
		Where("id = ? AND role = ?", club.ClubUserID, constants.RoleClub).
		Update("status", status)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update club status")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Club account not found")
	}
	return helper.JsonUpdated(c, okMessage, fiber.Map{
		"club_id": club.ClubID,
		"status":  status,
	})
}

// AllClubs lists every club with event and subscriber counts.
// GET /api/admin/clubs
func (ctrl *AdminController) AllClubs(c *fiber.Ctx) error {
	var rows []dto.ClubOverview
	err := ctrl.DB.Table("clubs").
		Select(`clubs.club_id, clubs.club_name, clubs.club_code, clubs.club_tags, users.status,
			(SELECT COUNT(*) FROM events WHERE events.event_club_id = clubs.club_id) AS event_count,
			(SELECT COUNT(*) FROM subscriptions WHERE subscriptions.subscription_club_id = clubs.club_id) AS subscriber_count`).
		Joins("JOIN users ON users.id = clubs.club_user_id").
		Order("clubs.club_name ASC").
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch clubs")
	}
	return helper.JsonOK(c, "Clubs", rows)
}

// AllEvents lists every event with its club name, paginated, newest first.
// GET /api/admin/events
func (ctrl *AdminController) AllEvents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := func() *gorm.DB {
		return ctrl.DB.Table("events").
			Joins("JOIN clubs ON clubs.club_id = events.event_club_id")
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count events")
	}

	var rows []struct {
		eventModel.EventModel
		ClubName string `gorm:"column:club_name" json:"club_name"`
	}
	err := base().
		Select("events.*, clubs.club_name").
		Order("events.event_start_time DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	return helper.JsonList(c, "Events", rows,
		helper.BuildPagination(total, paging.Page, paging.PerPage, len(rows)))
}

// Stats returns the dashboard counters in one round of counts.
// GET /api/admin/stats
func (ctrl *AdminController) Stats(c *fiber.Ctx) error {
	stats := fiber.Map{}
	counts := []struct {
		key   string
		query *gorm.DB
	}{
		{"students", ctrl.DB.Model(&userModel.StudentModel{})},
		{"teachers", ctrl.DB.Model(&userModel.TeacherModel{})},
		{"clubs", ctrl.DB.Model(&clubModel.ClubModel{})},
		{"pending_clubs", ctrl.DB.Model(&userModel.UserModel{}).
			Where("role = ? AND status = ?", constants.RoleClub, constants.StatusPending)},
		{"events", ctrl.DB.Model(&eventModel.EventModel{})},
		{"subscriptions", ctrl.DB.Model(&subscriptionModel.SubscriptionModel{})},
		{"attendances", ctrl.DB.Model(&attendanceModel.AttendanceModel{})},
	}
	for _, item := range counts {
		var n int64
		if err := item.query.Count(&n).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
		}
		stats[item.key] = n
	}
	return helper.JsonOK(c, "Stats", stats)
}

// DeleteClub removes a club and everything hanging off it: events (with
// their tokens and attendance), subscriptions, the profile row and the user
// account. One transaction, child tables first.
// DELETE /api/admin/clubs/:id
func (ctrl *AdminController) DeleteClub(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid club ID")
	}

	var club clubModel.ClubModel
	if err := ctrl.DB.First(&club, "club_id = ?", clubID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Club not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch club")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var eventIDs []uuid.UUID
		if err := tx.Model(&eventModel.EventModel{}).
			Where("event_club_id = ?", clubID).
			Pluck("event_id", &eventIDs).Error; err != nil {
			return err
		}
		if len(eventIDs) > 0 {
			if err := tx.Where("attendance_event_id IN ?", eventIDs).
				Delete(&attendanceModel.AttendanceModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("attendance_token_event_id IN ?", eventIDs).
				Delete(&attendanceModel.AttendanceTokenModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("event_club_id = ?", clubID).
				Delete(&eventModel.EventModel{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("subscription_club_id = ?", clubID).
			Delete(&subscriptionModel.SubscriptionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&club).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", club.ClubUserID).
			Delete(&userModel.UserModel{}).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete club")
	}

	return helper.JsonDeleted(c, "Club and all related data deleted", fiber.Map{"club_id": clubID})
}

// DeleteEvent removes one event with its tokens and attendance rows.
// DELETE /api/admin/events/:id
func (ctrl *AdminController) DeleteEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
	}

	var event eventModel.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch event")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attendance_event_id = ?", eventID).
			Delete(&attendanceModel.AttendanceModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("attendance_token_event_id = ?", eventID).
			Delete(&attendanceModel.AttendanceTokenModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&event).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}

	return helper.JsonDeleted(c, "Event deleted", fiber.Map{"event_id": eventID})
}
