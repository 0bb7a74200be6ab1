package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel is an in-app inbox row. NotificationData carries the
// type-specific payload (event_id, club_id, ...) as JSONB.
type NotificationModel struct {
	NotificationID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:notification_id" json:"notification_id"`
	NotificationUserID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_notification_user;column:notification_user_id" json:"notification_user_id"`
	NotificationType      string         `gorm:"size:50;not null;column:notification_type" json:"notification_type"`
	NotificationTitle     string         `gorm:"size:200;not null;column:notification_title" json:"notification_title"`
	NotificationMessage   string         `gorm:"type:text;column:notification_message" json:"notification_message"`
	NotificationData      datatypes.JSON `gorm:"column:notification_data" json:"notification_data,omitempty"`
	NotificationIsRead    bool           `gorm:"not null;default:false;column:notification_is_read" json:"notification_is_read"`
	NotificationCreatedAt time.Time      `gorm:"autoCreateTime;column:notification_created_at" json:"notification_created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
