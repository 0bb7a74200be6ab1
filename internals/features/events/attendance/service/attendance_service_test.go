package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"eventhub_backend/internals/features/events/attendance/dto"
)

func TestTokenExpired(t *testing.T) {
	issued := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	expires := issued.Add(TokenTTL)

	tests := []struct {
		name    string
		now     time.Time
		expired bool
	}{
		{"at issue", issued, false},
		{"mid window", issued.Add(10 * time.Second), false},
		{"exactly at expiry", expires, false},
		{"one ns past expiry", expires.Add(time.Nanosecond), true},
		{"long past expiry", expires.Add(time.Hour), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, TokenExpired(expires, tt.now))
		})
	}
}

func TestRotateHintInsideTTL(t *testing.T) {
	// clients rotate before the old token dies, so there is never a gap
	// where no token on screen validates
	assert.Less(t, RotateHint, TokenTTL)
}

func TestNumberRoster(t *testing.T) {
	rows := []dto.RosterEntry{
		{AttendanceID: uuid.New(), Name: "Newest"},
		{AttendanceID: uuid.New(), Name: "Middle"},
		{AttendanceID: uuid.New(), Name: "Oldest"},
	}

	numbered := NumberRoster(rows)

	assert.Len(t, numbered, 3)
	for i, row := range numbered {
		assert.Equal(t, i+1, row.SNo)
	}
	assert.Equal(t, "Newest", numbered[0].Name)
}

func TestNumberRosterEmpty(t *testing.T) {
	assert.Empty(t, NumberRoster(nil))
	assert.Empty(t, NumberRoster([]dto.RosterEntry{}))
}
