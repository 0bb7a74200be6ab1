package service

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	clubModel "eventhub_backend/internals/features/clubs/clubs/model"
	eventModel "eventhub_backend/internals/features/events/events/model"
	"eventhub_backend/internals/features/notifications/model"
)

// NotifyEventCreated fans an in-app notification out to every user whose
// student profile subscribes to the club. Fan-out failures are logged, not
// surfaced: the event itself was already created.
func NotifyEventCreated(db *gorm.DB, club *clubModel.ClubModel, event *eventModel.EventModel) {
	var userIDs []uuid.UUID
	err := db.Table("subscriptions AS sub").
		Select("s.student_user_id").
		Joins("JOIN students s ON s.student_id = sub.subscription_student_id").
		Where("sub.subscription_club_id = ?", club.ClubID).
		Scan(&userIDs).Error
	if err != nil {
		log.Printf("[ERROR] event notification fan-out query: %v", err)
		return
	}
	if len(userIDs) == 0 {
		return
	}

	payload, err := json.Marshal(map[string]any{
		"event_id": event.EventID,
		"club_id":  club.ClubID,
	})
	if err != nil {
		log.Printf("[ERROR] event notification payload: %v", err)
		return
	}

	rows := make([]model.NotificationModel, 0, len(userIDs))
	for _, uid := range userIDs {
		rows = append(rows, model.NotificationModel{
			NotificationUserID:  uid,
			NotificationType:    "event_created",
			NotificationTitle:   "New Event from " + club.ClubName,
			NotificationMessage: event.EventTitle + " at " + event.EventVenue + " on " + event.EventStartTime.Format("Jan 02, 2006"),
			NotificationData:    datatypes.JSON(payload),
		})
	}
	if err := db.CreateInBatches(&rows, 200).Error; err != nil {
		log.Printf("[ERROR] event notification insert: %v", err)
	}
}
