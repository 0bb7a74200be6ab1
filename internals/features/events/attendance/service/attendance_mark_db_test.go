package service

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"eventhub_backend/internals/constants"
	clubModel "eventhub_backend/internals/features/clubs/clubs/model"
	subscriptionModel "eventhub_backend/internals/features/clubs/subscriptions/model"
	"eventhub_backend/internals/features/events/attendance/dto"
	"eventhub_backend/internals/features/events/attendance/model"
	eventModel "eventhub_backend/internals/features/events/events/model"
	userModel "eventhub_backend/internals/features/users/user/model"
)

// openTestDB connects to the database named by TEST_DATABASE_DSN and hands
// back a transaction that is rolled back when the test ends, so runs leave
// no rows behind. Tests are skipped when the DSN is not set.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: gormLogger.Discard})
	require.NoError(t, err)

	require.NoError(t, db.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&userModel.StudentModel{},
		&clubModel.ClubModel{},
		&subscriptionModel.SubscriptionModel{},
		&eventModel.EventModel{},
		&model.AttendanceTokenModel{},
		&model.AttendanceModel{},
	))

	tx := db.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() { tx.Rollback() })
	return tx
}

type markFixture struct {
	clubUser    userModel.UserModel
	club        clubModel.ClubModel
	event       eventModel.EventModel
	studentUser userModel.UserModel
	student     userModel.StudentModel
}

func newMarkFixture(t *testing.T, tx *gorm.DB, subscribed bool) markFixture {
	t.Helper()
	suffix := uuid.NewString()[:8]

	f := markFixture{
		clubUser: userModel.UserModel{
			UserName: "club-" + suffix,
			Email:    "club-" + suffix + "@test.local",
			Password: "x",
			Role:     constants.RoleClub,
			Status:   constants.StatusApproved,
			IsActive: true,
		},
		studentUser: userModel.UserModel{
			UserName: "student-" + suffix,
			Email:    "student-" + suffix + "@test.local",
			Password: "x",
			Role:     constants.RoleStudent,
			Status:   constants.StatusApproved,
			IsActive: true,
		},
	}
	require.NoError(t, tx.Create(&f.clubUser).Error)
	require.NoError(t, tx.Create(&f.studentUser).Error)

	f.club = clubModel.ClubModel{
		ClubUserID: f.clubUser.ID,
		ClubName:   "Club " + suffix,
		ClubCode:   "C" + suffix,
		ClubEmail:  "club-" + suffix + "@clubs.test.local",
	}
	require.NoError(t, tx.Create(&f.club).Error)

	f.event = eventModel.EventModel{
		EventClubID:    f.club.ClubID,
		EventTitle:     "Event " + suffix,
		EventVenue:     "Hall A",
		EventStartTime: time.Now().Add(time.Hour),
		EventEndTime:   time.Now().Add(2 * time.Hour),
	}
	require.NoError(t, tx.Create(&f.event).Error)

	f.student = userModel.StudentModel{
		StudentUserID: f.studentUser.ID,
		StudentName:   "Student " + suffix,
		StudentQID:    "Q" + suffix,
	}
	require.NoError(t, tx.Create(&f.student).Error)

	if subscribed {
		require.NoError(t, tx.Create(&subscriptionModel.SubscriptionModel{
			SubscriptionStudentID: f.student.StudentID,
			SubscriptionClubID:    f.club.ClubID,
		}).Error)
	}
	return f
}

func (f markFixture) freshToken(t *testing.T, tx *gorm.DB, expiresAt time.Time) model.AttendanceTokenModel {
	t.Helper()
	row := model.AttendanceTokenModel{
		AttendanceTokenEventID:   f.event.EventID,
		AttendanceTokenValue:     "tok-" + uuid.NewString(),
		AttendanceTokenExpiresAt: expiresAt,
	}
	require.NoError(t, tx.Create(&row).Error)
	return row
}

func (f markFixture) attendanceCount(t *testing.T, tx *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, tx.Model(&model.AttendanceModel{}).
		Where("attendance_event_id = ? AND attendance_student_id = ?", f.event.EventID, f.student.StudentID).
		Count(&n).Error)
	return n
}

func TestMarkAttendanceRepeatScanIsIdempotent(t *testing.T) {
	tx := openTestDB(t)
	f := newMarkFixture(t, tx, true)
	now := time.Now()
	token := f.freshToken(t, tx, now.Add(TokenTTL))

	req := dto.MarkAttendanceRequest{EventID: f.event.EventID, Token: token.AttendanceTokenValue}

	first, err := MarkAttendance(tx, f.studentUser.ID, req, now)
	require.NoError(t, err)
	assert.Equal(t, "success", first.Status)

	second, err := MarkAttendance(tx, f.studentUser.ID, req, now)
	require.NoError(t, err)
	assert.Equal(t, "already_marked", second.Status)

	assert.Equal(t, int64(1), f.attendanceCount(t, tx))
}

func TestMarkAttendanceUnsubscribedRejectedDespiteValidToken(t *testing.T) {
	tx := openTestDB(t)
	f := newMarkFixture(t, tx, false)
	now := time.Now()
	token := f.freshToken(t, tx, now.Add(TokenTTL))

	req := dto.MarkAttendanceRequest{EventID: f.event.EventID, Token: token.AttendanceTokenValue}

	_, err := MarkAttendance(tx, f.studentUser.ID, req, now)
	assert.ErrorIs(t, err, ErrNotSubscribed)
	assert.Equal(t, int64(0), f.attendanceCount(t, tx))
}

func TestMarkAttendanceExpiredTokenRejectedBeforeDuplicateCheck(t *testing.T) {
	tx := openTestDB(t)
	f := newMarkFixture(t, tx, true)
	now := time.Now()

	valid := f.freshToken(t, tx, now.Add(TokenTTL))
	first, err := MarkAttendance(tx, f.studentUser.ID,
		dto.MarkAttendanceRequest{EventID: f.event.EventID, Token: valid.AttendanceTokenValue}, now)
	require.NoError(t, err)
	require.Equal(t, "success", first.Status)

	// a stale token from an earlier rotation must fail on expiry, not fall
	// through to the idempotent already-marked answer
	stale := f.freshToken(t, tx, now.Add(-time.Minute))
	_, err = MarkAttendance(tx, f.studentUser.ID,
		dto.MarkAttendanceRequest{EventID: f.event.EventID, Token: stale.AttendanceTokenValue}, now)
	assert.ErrorIs(t, err, ErrExpiredToken)

	// same for a token that never existed
	_, err = MarkAttendance(tx, f.studentUser.ID,
		dto.MarkAttendanceRequest{EventID: f.event.EventID, Token: "no-such-token"}, now)
	assert.ErrorIs(t, err, ErrInvalidToken)

	assert.Equal(t, int64(1), f.attendanceCount(t, tx))
}

func TestLiveRosterNewestFirstWithSequenceNumbers(t *testing.T) {
	tx := openTestDB(t)
	f := newMarkFixture(t, tx, true)
	now := time.Now()

	second := userModel.StudentModel{
		StudentUserID: f.clubUser.ID, // any distinct user works for a profile row
		StudentName:   "Second " + f.student.StudentQID,
		StudentQID:    "Q2" + f.student.StudentQID,
	}
	require.NoError(t, tx.Create(&second).Error)

	earlier := model.AttendanceModel{
		AttendanceEventID:      f.event.EventID,
		AttendanceStudentID:    f.student.StudentID,
		AttendanceScannedToken: "t1",
		AttendanceStatus:       model.AttendancePresent,
		AttendanceCreatedAt:    now.Add(-2 * time.Minute),
	}
	later := model.AttendanceModel{
		AttendanceEventID:      f.event.EventID,
		AttendanceStudentID:    second.StudentID,
		AttendanceScannedToken: "t2",
		AttendanceStatus:       model.AttendancePresent,
		AttendanceCreatedAt:    now.Add(-1 * time.Minute),
	}
	require.NoError(t, tx.Create(&earlier).Error)
	require.NoError(t, tx.Create(&later).Error)

	roster, err := LiveRoster(tx, f.event.EventID)
	require.NoError(t, err)
	require.Len(t, roster, 2)

	assert.Equal(t, second.StudentName, roster[0].Name)
	assert.Equal(t, f.student.StudentName, roster[1].Name)
	assert.Equal(t, 1, roster[0].SNo)
	assert.Equal(t, 2, roster[1].SNo)
}

func TestIssueTokenOwnershipAndTTL(t *testing.T) {
	tx := openTestDB(t)
	f := newMarkFixture(t, tx, false)
	now := time.Now()

	payload, err := IssueToken(tx, f.event.EventID, f.clubUser.ID, now)
	require.NoError(t, err)
	assert.Len(t, payload.Token, 32)
	assert.WithinDuration(t, now.Add(TokenTTL), payload.ExpiresAt, time.Second)

	// a different club's user must not issue for this event
	other := newMarkFixture(t, tx, false)
	_, err = IssueToken(tx, f.event.EventID, other.clubUser.ID, now)
	assert.ErrorIs(t, err, ErrNotEventOwner)

	_, err = IssueToken(tx, uuid.New(), f.clubUser.ID, now)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestIssueTokenLeavesOlderTokensValid(t *testing.T) {
	tx := openTestDB(t)
	f := newMarkFixture(t, tx, true)
	now := time.Now()

	older, err := IssueToken(tx, f.event.EventID, f.clubUser.ID, now)
	require.NoError(t, err)
	_, err = IssueToken(tx, f.event.EventID, f.clubUser.ID, now.Add(RotateHint))
	require.NoError(t, err)

	// the pre-rotation token still validates until it ages out
	resp, err := MarkAttendance(tx, f.studentUser.ID,
		dto.MarkAttendanceRequest{EventID: f.event.EventID, Token: older.Token},
		now.Add(RotateHint+time.Second))
	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
}
