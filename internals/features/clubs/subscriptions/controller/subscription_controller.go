package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	clubModel "eventhub_backend/internals/features/clubs/clubs/model"
	"eventhub_backend/internals/features/clubs/subscriptions/model"
	userModel "eventhub_backend/internals/features/users/user/model"
	helper "eventhub_backend/internals/helpers"
	authMiddleware "eventhub_backend/internals/middlewares/auth"
)

type SubscriptionController struct{ DB *gorm.DB }

func NewSubscriptionController(db *gorm.DB) *SubscriptionController {
	return &SubscriptionController{DB: db}
}

func (ctrl *SubscriptionController) resolveStudent(c *fiber.Ctx) (*userModel.StudentModel, error) {
	userID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	var student userModel.StudentModel
	if err := ctrl.DB.First(&student, "student_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student profile not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load student")
	}
	return &student, nil
}

// Toggle subscribes the calling student to a club, or unsubscribes if the
// pair already exists (one endpoint, mirror of the subscribe button).
// POST /api/clubs/subscribe/:club_id  (student only)
func (ctrl *SubscriptionController) Toggle(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("club_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid club id")
	}

	student, ferr := ctrl.resolveStudent(c)
	if ferr != nil {
		fe := ferr.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var club clubModel.ClubModel
	if err := ctrl.DB.First(&club, "club_id = ?", clubID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Club not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load club")
	}

	var existing model.SubscriptionModel
	err = ctrl.DB.First(&existing,
		"subscription_student_id = ? AND subscription_club_id = ?",
		student.StudentID, club.ClubID,
	).Error
	switch {
	case err == nil:
		if err := ctrl.DB.Delete(&model.SubscriptionModel{},
			"subscription_student_id = ? AND subscription_club_id = ?",
			student.StudentID, club.ClubID,
		).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to unsubscribe")
		}
		return helper.JsonOK(c, "Unsubscribed successfully", fiber.Map{"subscribed": false})
	case errors.Is(err, gorm.ErrRecordNotFound):
		sub := model.SubscriptionModel{
			SubscriptionStudentID: student.StudentID,
			SubscriptionClubID:    club.ClubID,
		}
		if err := ctrl.DB.Create(&sub).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to subscribe")
		}
		return helper.JsonCreated(c, "Subscribed successfully", fiber.Map{"subscribed": true})
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check subscription")
	}
}

// IsSubscribed reports whether the calling student follows a club.
// GET /api/clubs/subscribe/:club_id  (student only)
func (ctrl *SubscriptionController) IsSubscribed(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("club_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid club id")
	}

	student, ferr := ctrl.resolveStudent(c)
	if ferr != nil {
		fe := ferr.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var count int64
	if err := ctrl.DB.Model(&model.SubscriptionModel{}).
		Where("subscription_student_id = ? AND subscription_club_id = ?", student.StudentID, clubID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check subscription")
	}
	return helper.JsonOK(c, "Subscription status", fiber.Map{"subscribed": count > 0})
}

// Subscribed lists the clubs the calling student follows, most recent
// subscription first.
// GET /api/clubs/subscribed  (student only)
func (ctrl *SubscriptionController) Subscribed(c *fiber.Ctx) error {
	student, ferr := ctrl.resolveStudent(c)
	if ferr != nil {
		fe := ferr.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	type Result struct {
		clubModel.ClubModel
		SubscriptionCreatedAt string `json:"subscription_created_at" gorm:"column:subscription_created_at"`
	}
	var results []Result
	if err := ctrl.DB.
		Table("subscriptions AS sub").
		Select("cl.*, sub.subscription_created_at").
		Joins("JOIN clubs cl ON cl.club_id = sub.subscription_club_id").
		Where("sub.subscription_student_id = ?", student.StudentID).
		Order("sub.subscription_created_at DESC").
		Scan(&results).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load subscribed clubs")
	}
	return helper.JsonOK(c, "Subscribed clubs", results)
}
