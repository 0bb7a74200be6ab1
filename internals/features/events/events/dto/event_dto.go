package dto

import (
	"strings"
	"time"

	"eventhub_backend/internals/features/events/events/model"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"omitempty"`
	Venue       string    `json:"venue" validate:"required,max=200"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
}

func (in *CreateEventRequest) ToModel(clubID uuid.UUID) *model.EventModel {
	return &model.EventModel{
		EventClubID:      clubID,
		EventTitle:       strings.TrimSpace(in.Title),
		EventDescription: strings.TrimSpace(in.Description),
		EventVenue:       strings.TrimSpace(in.Venue),
		EventStartTime:   in.StartTime,
		EventEndTime:     in.EndTime,
	}
}

// EventWithClub is the read shape for listings: event columns plus the
// owning club's display name.
type EventWithClub struct {
	model.EventModel
	ClubName string `json:"club_name" gorm:"column:club_name"`
}
