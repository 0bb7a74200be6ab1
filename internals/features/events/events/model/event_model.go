package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel belongs to one club. Events are immutable after creation;
// admins may delete them, there is no update/cancel flow.
type EventModel struct {
	EventID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:event_id" json:"event_id"`
	EventClubID      uuid.UUID `gorm:"type:uuid;not null;index:idx_event_club;column:event_club_id" json:"event_club_id"`
	EventTitle       string    `gorm:"size:200;not null;column:event_title" json:"event_title"`
	EventDescription string    `gorm:"type:text;column:event_description" json:"event_description"`
	EventVenue       string    `gorm:"size:200;not null;column:event_venue" json:"event_venue"`
	EventStartTime   time.Time `gorm:"not null;index:idx_event_start;column:event_start_time" json:"event_start_time"`
	EventEndTime     time.Time `gorm:"not null;column:event_end_time" json:"event_end_time"`
	EventCreatedAt   time.Time `gorm:"autoCreateTime;column:event_created_at" json:"event_created_at"`
	EventUpdatedAt   time.Time `gorm:"autoUpdateTime;column:event_updated_at" json:"event_updated_at"`
}

func (EventModel) TableName() string {
	return "events"
}
