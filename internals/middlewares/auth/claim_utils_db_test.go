package auth

import (
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"eventhub_backend/internals/constants"
	userModel "eventhub_backend/internals/features/users/user/model"
)

func openAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: gormLogger.Discard})
	require.NoError(t, err)

	require.NoError(t, db.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error)
	require.NoError(t, db.AutoMigrate(&userModel.UserModel{}))

	tx := db.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() { tx.Rollback() })
	return tx
}

func createAuthTestUser(t *testing.T, tx *gorm.DB, active bool) userModel.UserModel {
	t.Helper()
	suffix := uuid.NewString()[:8]
	u := userModel.UserModel{
		UserName: "user-" + suffix,
		Email:    "user-" + suffix + "@test.local",
		Password: "x",
		Role:     constants.RoleStudent,
		Status:   constants.StatusApproved,
		IsActive: true,
	}
	require.NoError(t, tx.Create(&u).Error)
	if !active {
		// false is the zero value, so flip after create to dodge the
		// column default
		require.NoError(t, tx.Model(&u).Update("is_active", false).Error)
		u.IsActive = false
	}
	return u
}

func TestEnsureUserActive(t *testing.T) {
	tx := openAuthTestDB(t)

	active := createAuthTestUser(t, tx, true)
	assert.NoError(t, ensureUserActive(tx, active.ID))

	inactive := createAuthTestUser(t, tx, false)
	err := ensureUserActive(tx, inactive.ID)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestEnsureUserActiveMissingUserIsNotFound(t *testing.T) {
	tx := openAuthTestDB(t)

	// a deleted user must hit the not-found branch (401), never the
	// deactivated branch (403)
	err := ensureUserActive(tx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
