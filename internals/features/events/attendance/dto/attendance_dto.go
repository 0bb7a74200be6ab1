package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TokenPayload is the issuer response; the club client renders it as a QR
// and re-fetches on its own rotation interval.
type TokenPayload struct {
	EventID   uuid.UUID `json:"event_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// QRPayload is the compact JSON actually embedded in the QR image. The
// scanning client decodes it and posts the fields to /attendance/mark.
type QRPayload struct {
	EventID uuid.UUID `json:"event_id"`
	Token   string    `json:"token"`
}

func (p QRPayload) Encode() (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func DecodeQRPayload(raw string) (QRPayload, error) {
	var p QRPayload
	err := json.Unmarshal([]byte(raw), &p)
	return p, err
}

type MarkAttendanceRequest struct {
	EventID uuid.UUID `json:"event_id" validate:"required"`
	Token   string    `json:"token" validate:"required"`
}

// MarkAttendanceResponse distinguishes a fresh mark from the idempotent
// repeat; both are HTTP 200.
type MarkAttendanceResponse struct {
	Status  string `json:"status"` // "success" | "already_marked"
	Message string `json:"message"`
}

// RosterEntry is one live-roster row: attendance joined to the student
// profile, numbered newest-first.
type RosterEntry struct {
	AttendanceID uuid.UUID `json:"id" gorm:"column:attendance_id"`
	SNo          int       `json:"s_no" gorm:"-"`
	Name         string    `json:"name" gorm:"column:student_name"`
	QID          string    `json:"qid" gorm:"column:student_qid"`
	Course       string    `json:"course" gorm:"column:student_course"`
	Section      string    `json:"section" gorm:"column:student_section"`
	Programme    string    `json:"programme" gorm:"column:student_programme"`
	Status       string    `json:"status" gorm:"column:attendance_status"`
	Timestamp    time.Time `json:"timestamp" gorm:"column:attendance_created_at"`
}

type OwnAttendanceResponse struct {
	Status   string     `json:"status"` // "not_marked" | "present"
	MarkedAt *time.Time `json:"marked_at,omitempty"`
}
