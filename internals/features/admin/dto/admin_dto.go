package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PendingClub is the approval-queue row: club profile joined with its user
// account.
type PendingClub struct {
	UserID        uuid.UUID `gorm:"column:user_id" json:"user_id"`
	Email         string    `gorm:"column:email" json:"email"`
	Status        string    `gorm:"column:status" json:"status"`
	ClubID        uuid.UUID `gorm:"column:club_id" json:"club_id"`
	ClubName      string    `gorm:"column:club_name" json:"club_name"`
	ClubCode      string    `gorm:"column:club_code" json:"club_code"`
	ClubEmail     string    `gorm:"column:club_email" json:"club_email"`
	ClubCreatedAt time.Time `gorm:"column:club_created_at" json:"club_created_at"`
}

// ClubOverview adds aggregate counts for the admin dashboard list.
type ClubOverview struct {
	ClubID          uuid.UUID      `gorm:"column:club_id" json:"club_id"`
	ClubName        string         `gorm:"column:club_name" json:"club_name"`
	ClubCode        string         `gorm:"column:club_code" json:"club_code"`
	ClubTags        pq.StringArray `gorm:"column:club_tags;type:text[]" json:"club_tags,omitempty"`
	Status          string         `gorm:"column:status" json:"status"`
	EventCount      int64          `gorm:"column:event_count" json:"event_count"`
	SubscriberCount int64          `gorm:"column:subscriber_count" json:"subscriber_count"`
}
