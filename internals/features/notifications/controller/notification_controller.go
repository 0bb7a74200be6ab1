package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventhub_backend/internals/features/notifications/model"
	helper "eventhub_backend/internals/helpers"
	authMiddleware "eventhub_backend/internals/middlewares/auth"
)

type NotificationController struct{ DB *gorm.DB }

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// Index returns the caller's latest notifications, newest first.
// GET /api/notifications
func (ctrl *NotificationController) Index(c *fiber.Ctx) error {
	userID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var rows []model.NotificationModel
	if err := ctrl.DB.
		Where("notification_user_id = ?", userID).
		Order("notification_created_at DESC").
		Limit(50).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	var unread int64
	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = false", userID).
		Count(&unread).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}

	return helper.JsonOK(c, "Notifications", fiber.Map{
		"notifications": rows,
		"unread_count":  unread,
	})
}

// UnreadCount is a cheap badge endpoint for polling clients.
// GET /api/notifications/unread-count
func (ctrl *NotificationController) UnreadCount(c *fiber.Ctx) error {
	userID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var unread int64
	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = false", userID).
		Count(&unread).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}
	return helper.JsonOK(c, "Unread count", fiber.Map{"unread_count": unread})
}

// MarkRead flips one of the caller's notifications to read.
// PATCH /api/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification ID")
	}

	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ?", notifID, userID).
		Update("notification_is_read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notification")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
	}
	return helper.JsonUpdated(c, "Notification marked as read", nil)
}

// MarkAllRead flips everything unread for the caller.
// PATCH /api/notifications/read-all
func (ctrl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = false", userID).
		Update("notification_is_read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notifications")
	}
	return helper.JsonUpdated(c, "All notifications marked as read", fiber.Map{
		"updated": res.RowsAffected,
	})
}

// Destroy removes one of the caller's notifications.
// DELETE /api/notifications/:id
func (ctrl *NotificationController) Destroy(c *fiber.Ctx) error {
	userID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification ID")
	}

	res := ctrl.DB.
		Where("notification_id = ? AND notification_user_id = ?", notifID, userID).
		Delete(&model.NotificationModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete notification")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
	}
	return helper.JsonDeleted(c, "Notification deleted", nil)
}
