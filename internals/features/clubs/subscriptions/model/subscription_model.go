package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel joins students to clubs. Composite PK keeps the
// (student, club) pair unique at the database level.
type SubscriptionModel struct {
	SubscriptionStudentID uuid.UUID `gorm:"type:uuid;not null;primaryKey;column:subscription_student_id" json:"subscription_student_id"`
	SubscriptionClubID    uuid.UUID `gorm:"type:uuid;not null;primaryKey;column:subscription_club_id" json:"subscription_club_id"`
	SubscriptionCreatedAt time.Time `gorm:"autoCreateTime;column:subscription_created_at" json:"subscription_created_at"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
