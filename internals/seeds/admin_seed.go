package seeds

import (
	"errors"
	"log"
	"os"

	"gorm.io/gorm"

	"eventhub_backend/internals/constants"
	authHelper "eventhub_backend/internals/features/users/auth/helper"
	userModel "eventhub_backend/internals/features/users/user/model"
)

// SeedAdminUser creates the bootstrap admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Idempotent: an existing row with that email wins.
func SeedAdminUser(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("[SEED] ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing userModel.UserModel
	err := db.First(&existing, "LOWER(email) = LOWER(?)", email).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[SEED ERROR] checking admin user: %v", err)
		return
	}

	hashed, err := authHelper.HashPassword(password)
	if err != nil {
		log.Printf("[SEED ERROR] hashing admin password: %v", err)
		return
	}

	admin := userModel.UserModel{
		UserName: "admin",
		Email:    email,
		Password: hashed,
		Role:     constants.RoleAdmin,
		Status:   constants.StatusApproved,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[SEED ERROR] creating admin user: %v", err)
		return
	}
	log.Printf("✅ [SEED] admin user created (%s)", email)
}
