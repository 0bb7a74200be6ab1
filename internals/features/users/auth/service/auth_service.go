package service

import (
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventhub_backend/internals/configs"
	"eventhub_backend/internals/constants"
	authModel "eventhub_backend/internals/features/users/auth/model"
	userModel "eventhub_backend/internals/features/users/user/model"
)

const accessTTLDefault = 24 * time.Hour

// IssueAccessToken signs the access JWT with the caller's identity and role
// baked in; the middleware reads exactly these claims back.
func IssueAccessToken(user *userModel.UserModel) (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// BlacklistToken revokes an access token at logout. Expiry mirrors the
// access TTL so the sweeper can prune the row once it is dead anyway.
func BlacklistToken(db *gorm.DB, rawToken string) error {
	if strings.TrimSpace(rawToken) == "" {
		return nil
	}
	row := authModel.TokenBlacklist{
		Token:     rawToken,
		ExpiredAt: time.Now().Add(accessTTLDefault),
	}
	err := db.Create(&row).Error
	if err != nil && strings.Contains(err.Error(), "duplicate") {
		return nil // already revoked
	}
	return err
}

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	err := db.First(&user, "LOWER(email) = LOWER(?)", strings.TrimSpace(email)).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// VerifyGoogleIDToken checks the Google ID token against our client id and
// returns (googleID, email, name).
func VerifyGoogleIDToken(idToken string) (string, string, string, error) {
	clientID := strings.TrimSpace(configs.GoogleClientID)
	if clientID == "" {
		return "", "", "", fiber.NewError(fiber.StatusInternalServerError, "Google sign-in is not configured")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{clientID}); err != nil {
		return "", "", "", fiber.NewError(fiber.StatusUnauthorized, "Invalid Google token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return "", "", "", fiber.NewError(fiber.StatusUnauthorized, "Invalid Google token")
	}
	return claimSet.Sub, claimSet.Email, claimSet.Name, nil
}

// UpsertGoogleUser finds the account behind a verified Google identity, by
// google_id first and email second, creating a bare student-role user when
// neither matches. Student profile completion happens later in-app.
func UpsertGoogleUser(db *gorm.DB, googleID, email, name string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	err := db.First(&user, "google_id = ?", googleID).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = db.First(&user, "LOWER(email) = LOWER(?)", email).Error
	if err == nil {
		if user.GoogleID == nil {
			if err := db.Model(&user).Update("google_id", googleID).Error; err != nil {
				return nil, err
			}
			user.GoogleID = &googleID
		}
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = userModel.UserModel{
		UserName: name,
		Email:    email,
		Password: "!google-login", // never matches a bcrypt hash
		GoogleID: &googleID,
		Role:     constants.RoleStudent,
		Status:   constants.StatusApproved,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
