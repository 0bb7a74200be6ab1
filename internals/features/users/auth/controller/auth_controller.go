package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"eventhub_backend/internals/constants"
	clubModel "eventhub_backend/internals/features/clubs/clubs/model"
	"eventhub_backend/internals/features/users/auth/dto"
	authHelper "eventhub_backend/internals/features/users/auth/helper"
	"eventhub_backend/internals/features/users/auth/service"
	userModel "eventhub_backend/internals/features/users/user/model"
	helper "eventhub_backend/internals/helpers"
	authMiddleware "eventhub_backend/internals/middlewares/auth"
)

type AuthController struct{ DB *gorm.DB }

func NewAuthController(db *gorm.DB) *AuthController { return &AuthController{DB: db} }

var validateAuth = validator.New()

// Login authenticates by email + password and returns an access token.
// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := service.FindUserByEmail(ctrl.DB, req.Email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err := authHelper.CheckPasswordHash(user.Password, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	token, err := service.IssueAccessToken(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		AccessToken: token,
		User:        user,
	})
}

// GoogleLogin verifies a Google ID token and signs the caller in, creating
// a student-role account on first contact.
// POST /api/auth/google
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	googleID, email, name, err := service.VerifyGoogleIDToken(req.IDToken)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}

	user, err := service.UpsertGoogleUser(ctrl.DB, googleID, email, name)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign in with Google")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	token, err := service.IssueAccessToken(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		AccessToken: token,
		User:        user,
	})
}

// Logout blacklists the current access token.
// POST /api/auth/logout  (authenticated)
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No token provided")
	}
	if err := service.BlacklistToken(ctrl.DB, raw); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to logout")
	}
	return helper.JsonOK(c, "Logged out", nil)
}

// Me returns the authenticated user row.
// GET /api/auth/me  (authenticated)
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := authMiddleware.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	user, err := service.FindUserByID(ctrl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonOK(c, "Profile", user)
}

// SignupStudent creates a student user + profile in one transaction.
// POST /api/auth/signup/student
func (ctrl *AuthController) SignupStudent(c *fiber.Ctx) error {
	var req dto.StudentSignupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(req.UserName),
		Email:    strings.TrimSpace(req.Email),
		Password: hashed,
		Role:     constants.RoleStudent,
		Status:   constants.StatusApproved,
		IsActive: true,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		student := userModel.StudentModel{
			StudentUserID:    user.ID,
			StudentName:      strings.TrimSpace(req.Name),
			StudentQID:       strings.TrimSpace(req.QID),
			StudentCourse:    strings.TrimSpace(req.Course),
			StudentSection:   strings.TrimSpace(req.Section),
			StudentProgramme: strings.TrimSpace(req.Programme),
		}
		return tx.Create(&student).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email or student ID already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	return helper.JsonCreated(c, "Student account created", user)
}

// SignupTeacher creates a teacher user + profile.
// POST /api/auth/signup/teacher
func (ctrl *AuthController) SignupTeacher(c *fiber.Ctx) error {
	var req dto.TeacherSignupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(req.UserName),
		Email:    strings.TrimSpace(req.Email),
		Password: hashed,
		Role:     constants.RoleTeacher,
		Status:   constants.StatusApproved,
		IsActive: true,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		teacher := userModel.TeacherModel{
			TeacherUserID:     user.ID,
			TeacherName:       strings.TrimSpace(req.Name),
			TeacherCode:       strings.TrimSpace(req.Code),
			TeacherDepartment: strings.TrimSpace(req.Department),
		}
		return tx.Create(&teacher).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email or teacher code already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	return helper.JsonCreated(c, "Teacher account created", user)
}

// SignupClub creates a club user (status pending until an admin approves)
// plus the club profile.
// POST /api/auth/signup/club
func (ctrl *AuthController) SignupClub(c *fiber.Ctx) error {
	var req dto.ClubSignupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(req.UserName),
		Email:    strings.TrimSpace(req.Email),
		Password: hashed,
		Role:     constants.RoleClub,
		Status:   constants.StatusPending,
		IsActive: true,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		club := clubModel.ClubModel{
			ClubUserID:          user.ID,
			ClubName:            strings.TrimSpace(req.ClubName),
			ClubCode:            strings.TrimSpace(req.ClubCode),
			ClubEmail:           strings.TrimSpace(req.ClubEmail),
			ClubFacultyIncharge: strings.TrimSpace(req.FacultyIncharge),
			ClubTags:            pq.StringArray(req.Tags),
		}
		return tx.Create(&club).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email, club code or club email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	return helper.JsonCreated(c, "Club account created, awaiting admin approval", user)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key")
}
