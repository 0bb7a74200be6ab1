package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ClubModel is the organization profile behind a club user. Approval state
// lives on the user row (users.status), not here.
type ClubModel struct {
	ClubID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:club_id" json:"club_id"`
	ClubUserID         uuid.UUID      `gorm:"type:uuid;not null;unique;column:club_user_id" json:"club_user_id"`
	ClubName           string         `gorm:"size:150;not null;column:club_name" json:"club_name"`
	ClubCode           string         `gorm:"size:32;not null;unique;column:club_code" json:"club_code"`
	ClubEmail          string         `gorm:"size:255;not null;unique;column:club_email" json:"club_email"`
	ClubFacultyIncharge string        `gorm:"size:100;column:club_faculty_incharge" json:"club_faculty_incharge"`
	ClubTags           pq.StringArray `gorm:"type:text[];column:club_tags" json:"club_tags,omitempty"`
	ClubCreatedAt      time.Time      `gorm:"autoCreateTime;column:club_created_at" json:"club_created_at"`
	ClubUpdatedAt      time.Time      `gorm:"autoUpdateTime;column:club_updated_at" json:"club_updated_at"`
}

func (ClubModel) TableName() string {
	return "clubs"
}
