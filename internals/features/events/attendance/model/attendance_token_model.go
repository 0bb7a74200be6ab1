package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceTokenModel is a short-lived shared secret scoped to one event.
// Rows are write-once: issuing a fresh token never touches older ones, they
// simply age out past attendance_token_expires_at. Several unexpired tokens
// may therefore coexist for the same event and all of them validate.
type AttendanceTokenModel struct {
	AttendanceTokenID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_token_id" json:"attendance_token_id"`
	AttendanceTokenEventID   uuid.UUID `gorm:"type:uuid;not null;index:idx_attendance_token_event_value;column:attendance_token_event_id" json:"attendance_token_event_id"`
	AttendanceTokenValue     string    `gorm:"size:64;not null;index:idx_attendance_token_event_value;column:attendance_token_value" json:"attendance_token_value"`
	AttendanceTokenExpiresAt time.Time `gorm:"not null;index:idx_attendance_token_expires;column:attendance_token_expires_at" json:"attendance_token_expires_at"`
	AttendanceTokenCreatedAt time.Time `gorm:"autoCreateTime;column:attendance_token_created_at" json:"attendance_token_created_at"`
}

func (AttendanceTokenModel) TableName() string {
	return "attendance_tokens"
}
