package model

import (
	"time"

	"github.com/google/uuid"
)

type TeacherModel struct {
	TeacherID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_id" json:"teacher_id"`
	TeacherUserID     uuid.UUID `gorm:"type:uuid;not null;unique;column:teacher_user_id" json:"teacher_user_id"`
	TeacherName       string    `gorm:"size:100;not null;column:teacher_name" json:"teacher_name"`
	TeacherCode       string    `gorm:"size:32;not null;unique;column:teacher_code" json:"teacher_code"`
	TeacherDepartment string    `gorm:"size:100;column:teacher_department" json:"teacher_department"`
	TeacherCreatedAt  time.Time `gorm:"autoCreateTime;column:teacher_created_at" json:"teacher_created_at"`
	TeacherUpdatedAt  time.Time `gorm:"autoUpdateTime;column:teacher_updated_at" json:"teacher_updated_at"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
