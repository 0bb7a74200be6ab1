package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventhub_backend/internals/constants"
	clubModel "eventhub_backend/internals/features/clubs/clubs/model"
	userModel "eventhub_backend/internals/features/users/user/model"
	helper "eventhub_backend/internals/helpers"
	authMiddleware "eventhub_backend/internals/middlewares/auth"
)

type UserController struct{ DB *gorm.DB }

func NewUserController(db *gorm.DB) *UserController { return &UserController{DB: db} }

// Profile returns the user row plus its role-specific profile row.
// GET /api/users/profile
func (ctrl *UserController) Profile(c *fiber.Ctx) error {
	userID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	resp := fiber.Map{"user": user}
	switch user.Role {
	case constants.RoleStudent:
		var student userModel.StudentModel
		if err := ctrl.DB.First(&student, "student_user_id = ?", userID).Error; err == nil {
			resp["student"] = student
		}
	case constants.RoleTeacher:
		var teacher userModel.TeacherModel
		if err := ctrl.DB.First(&teacher, "teacher_user_id = ?", userID).Error; err == nil {
			resp["teacher"] = teacher
		}
	case constants.RoleClub:
		var club clubModel.ClubModel
		if err := ctrl.DB.First(&club, "club_user_id = ?", userID).Error; err == nil {
			resp["club"] = club
		}
	}
	return helper.JsonOK(c, "Profile", resp)
}

// UploadProfilePicture replaces the caller's picture. The file is re-encoded
// to webp, so clients can send jpeg/png/gif as they like.
// POST /api/users/profile-picture  (multipart field "image")
func (ctrl *UserController) UploadProfilePicture(c *fiber.Ctx) error {
	userID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Image file is required (field: image)")
	}
	if fileHeader.Size > 5*1024*1024 {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "Image must be under 5MB")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	url, err := helper.SaveProfileImage(fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Could not process image")
	}

	old := user.ProfilePicture
	if err := ctrl.DB.Model(&user).Update("profile_picture", url).Error; err != nil {
		helper.DeleteProfileImage(url)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save profile picture")
	}
	if old != nil {
		helper.DeleteProfileImage(*old)
	}

	return helper.JsonUpdated(c, "Profile picture updated", fiber.Map{"profile_picture": url})
}

// DeleteProfilePicture clears the caller's picture and removes the file.
// DELETE /api/users/profile-picture
func (ctrl *UserController) DeleteProfilePicture(c *fiber.Ctx) error {
	userID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}
	if user.ProfilePicture == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No profile picture set")
	}

	old := *user.ProfilePicture
	if err := ctrl.DB.Model(&user).Update("profile_picture", nil).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove profile picture")
	}
	helper.DeleteProfileImage(old)

	return helper.JsonDeleted(c, "Profile picture removed", nil)
}
