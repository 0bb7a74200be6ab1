package database

import (
	"log"

	clubModel "eventhub_backend/internals/features/clubs/clubs/model"
	subscriptionModel "eventhub_backend/internals/features/clubs/subscriptions/model"
	attendanceModel "eventhub_backend/internals/features/events/attendance/model"
	eventModel "eventhub_backend/internals/features/events/events/model"
	notificationModel "eventhub_backend/internals/features/notifications/model"
	authModel "eventhub_backend/internals/features/users/auth/model"
	userModel "eventhub_backend/internals/features/users/user/model"
)

// Migrate keeps the schema in sync at boot. Order matters for the FK chain
// users -> students/teachers/clubs -> events -> tokens/attendance.
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&userModel.StudentModel{},
		&userModel.TeacherModel{},
		&clubModel.ClubModel{},
		&subscriptionModel.SubscriptionModel{},
		&eventModel.EventModel{},
		&attendanceModel.AttendanceTokenModel{},
		&attendanceModel.AttendanceModel{},
		&notificationModel.NotificationModel{},
		&authModel.TokenBlacklist{},
	); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Migration done.")
}
