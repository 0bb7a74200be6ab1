package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	clubModel "eventhub_backend/internals/features/clubs/clubs/model"
	subscriptionModel "eventhub_backend/internals/features/clubs/subscriptions/model"
	"eventhub_backend/internals/features/events/attendance/dto"
	"eventhub_backend/internals/features/events/attendance/model"
	eventModel "eventhub_backend/internals/features/events/events/model"
	userModel "eventhub_backend/internals/features/users/user/model"
	helper "eventhub_backend/internals/helpers"
)

const (
	// TokenTTL is the validity window of an issued token. The presenting
	// client rotates every RotateHint, the extra 5s absorbs clock and
	// network skew between display and scan.
	TokenTTL   = 20 * time.Second
	RotateHint = 15 * time.Second

	tokenLength = 32
)

// Tagged failures. Controllers map these to HTTP statuses; everything else
// bubbles up as a 500.
var (
	ErrEventNotFound    = errors.New("event not found")
	ErrNotEventOwner    = errors.New("caller's club does not own this event")
	ErrNoStudentProfile = errors.New("student profile not found")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token expired")
	ErrNotSubscribed    = errors.New("student is not subscribed to the event's club")
)

// TokenExpired reports whether a token with the given expiry is stale at
// `now`. The window is [issued_at, expires_at]; strictly-after is expired.
func TokenExpired(expiresAt, now time.Time) bool {
	return now.After(expiresAt)
}

// assertEventOwner resolves the event and checks the caller's club owns it.
// Ownership is an explicit predicate (event -> club -> user), evaluated
// before any mutation.
func assertEventOwner(db *gorm.DB, eventID, callerUserID uuid.UUID) (*eventModel.EventModel, error) {
	var event eventModel.EventModel
	if err := db.First(&event, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	var club clubModel.ClubModel
	if err := db.First(&club, "club_user_id = ?", callerUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotEventOwner
		}
		return nil, err
	}
	if club.ClubID != event.EventClubID {
		return nil, ErrNotEventOwner
	}
	return &event, nil
}

// IssueToken mints a fresh random token for the event and persists it with
// expires_at = now + TokenTTL. Older tokens are deliberately left alone:
// replay exposure is bounded by TTL, not by revocation, so any still
// unexpired token keeps validating until it ages out.
func IssueToken(db *gorm.DB, eventID, callerUserID uuid.UUID, now time.Time) (*dto.TokenPayload, error) {
	event, err := assertEventOwner(db, eventID, callerUserID)
	if err != nil {
		return nil, err
	}

	row := model.AttendanceTokenModel{
		AttendanceTokenEventID:   event.EventID,
		AttendanceTokenValue:     helper.RandomToken(tokenLength),
		AttendanceTokenExpiresAt: now.Add(TokenTTL),
	}
	if err := db.Create(&row).Error; err != nil {
		return nil, err
	}

	return &dto.TokenPayload{
		EventID:   event.EventID,
		Token:     row.AttendanceTokenValue,
		ExpiresAt: row.AttendanceTokenExpiresAt,
	}, nil
}

// MarkAttendance validates a scanned token for a student and records
// presence. Check order is part of the contract: role (caller), token
// existence, token expiry and subscription all run before the duplicate
// check, so an unsubscribed or stale scan is rejected the same way whether
// or not the student already attended. A repeat scan is an idempotent
// success.
func MarkAttendance(db *gorm.DB, studentUserID uuid.UUID, req dto.MarkAttendanceRequest, now time.Time) (*dto.MarkAttendanceResponse, error) {
	var student userModel.StudentModel
	if err := db.First(&student, "student_user_id = ?", studentUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoStudentProfile
		}
		return nil, err
	}

	// 1. Token lookup: exact (event, value) match. Any unexpired row
	// counts, not just the newest one.
	var token model.AttendanceTokenModel
	err := db.First(&token,
		"attendance_token_event_id = ? AND attendance_token_value = ?",
		req.EventID, req.Token,
	).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	// 2. Expiry. The row stays in place; it is just refused.
	if TokenExpired(token.AttendanceTokenExpiresAt, now) {
		return nil, ErrExpiredToken
	}

	// 3. Subscription to the owning club, as of scan time.
	var event eventModel.EventModel
	if err := db.First(&event, "event_id = ?", req.EventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	var subCount int64
	if err := db.Model(&subscriptionModel.SubscriptionModel{}).
		Where("subscription_student_id = ? AND subscription_club_id = ?", student.StudentID, event.EventClubID).
		Count(&subCount).Error; err != nil {
		return nil, err
	}
	if subCount == 0 {
		return nil, ErrNotSubscribed
	}

	// 4. Insert-or-ignore on the (event, student) unique index. Under a
	// concurrent duplicate scan either request wins the insert; both
	// report success and exactly one row persists.
	row := model.AttendanceModel{
		AttendanceEventID:      event.EventID,
		AttendanceStudentID:    student.StudentID,
		AttendanceScannedToken: req.Token,
		AttendanceStatus:       model.AttendancePresent,
	}
	res := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_event_id"},
			{Name: "attendance_student_id"},
		},
		DoNothing: true,
	}).Create(&row)
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		return &dto.MarkAttendanceResponse{
			Status:  "already_marked",
			Message: "Attendance already marked",
		}, nil
	}
	return &dto.MarkAttendanceResponse{
		Status:  "success",
		Message: "Attendance marked",
	}, nil
}

// LiveRoster returns the attendance list for an event joined with student
// profile fields, newest scan first, numbered 1..N. Read-only and safe to
// poll.
func LiveRoster(db *gorm.DB, eventID uuid.UUID) ([]dto.RosterEntry, error) {
	var rows []dto.RosterEntry
	err := db.Table("attendances AS a").
		Select(`a.attendance_id, a.attendance_status, a.attendance_created_at,
			s.student_name, s.student_qid, s.student_course, s.student_section, s.student_programme`).
		Joins("JOIN students s ON s.student_id = a.attendance_student_id").
		Where("a.attendance_event_id = ?", eventID).
		Order("a.attendance_created_at DESC, a.attendance_id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return NumberRoster(rows), nil
}

// NumberRoster stamps 1-based sequence numbers onto an already ordered
// roster slice.
func NumberRoster(rows []dto.RosterEntry) []dto.RosterEntry {
	for i := range rows {
		rows[i].SNo = i + 1
	}
	return rows
}

// OwnStatus reports the calling student's attendance state for one event.
func OwnStatus(db *gorm.DB, eventID, studentUserID uuid.UUID) (*dto.OwnAttendanceResponse, error) {
	var student userModel.StudentModel
	if err := db.First(&student, "student_user_id = ?", studentUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoStudentProfile
		}
		return nil, err
	}

	var att model.AttendanceModel
	err := db.First(&att,
		"attendance_event_id = ? AND attendance_student_id = ?",
		eventID, student.StudentID,
	).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.OwnAttendanceResponse{Status: "not_marked"}, nil
		}
		return nil, err
	}

	return &dto.OwnAttendanceResponse{
		Status:   string(att.AttendanceStatus),
		MarkedAt: &att.AttendanceCreatedAt,
	}, nil
}
