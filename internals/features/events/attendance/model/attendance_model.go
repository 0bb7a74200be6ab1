package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
)

// AttendanceModel records one student's presence at one event. The unique
// index over (event, student) is what makes concurrent duplicate scans safe:
// inserts go through ON CONFLICT DO NOTHING and either racer may win.
type AttendanceModel struct {
	AttendanceID           uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`
	AttendanceEventID      uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_event_student;column:attendance_event_id" json:"attendance_event_id"`
	AttendanceStudentID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_event_student;column:attendance_student_id" json:"attendance_student_id"`
	AttendanceScannedToken string           `gorm:"size:64;not null;column:attendance_scanned_token" json:"attendance_scanned_token"`
	AttendanceStatus       AttendanceStatus `gorm:"type:varchar(16);not null;default:present;column:attendance_status" json:"attendance_status"`
	AttendanceCreatedAt    time.Time        `gorm:"autoCreateTime;column:attendance_created_at" json:"attendance_created_at"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}
