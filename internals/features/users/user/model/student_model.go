package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentModel is the academic profile behind a student user.
type StudentModel struct {
	StudentID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentUserID    uuid.UUID `gorm:"type:uuid;not null;unique;column:student_user_id" json:"student_user_id"`
	StudentName      string    `gorm:"size:100;not null;column:student_name" json:"student_name"`
	StudentQID       string    `gorm:"size:32;not null;unique;column:student_qid" json:"student_qid"`
	StudentCourse    string    `gorm:"size:100;column:student_course" json:"student_course"`
	StudentSection   string    `gorm:"size:32;column:student_section" json:"student_section"`
	StudentProgramme string    `gorm:"size:100;column:student_programme" json:"student_programme"`
	StudentCreatedAt time.Time `gorm:"autoCreateTime;column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"autoUpdateTime;column:student_updated_at" json:"student_updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}
