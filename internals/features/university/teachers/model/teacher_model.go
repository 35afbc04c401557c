// file: internals/features/university/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   TeacherModel — map ke tabel teachers
   Natural key: teacher_email (resolusi saat booking & timetable)
   ======================================================= */

type TeacherModel struct {
	TeacherID        uuid.UUID `json:"teacher_id" gorm:"type:uuid;primaryKey;column:teacher_id;default:gen_random_uuid()"`
	TeacherFirstName string    `json:"teacher_first_name" gorm:"type:varchar(100);not null;column:teacher_first_name"`
	TeacherLastName  string    `json:"teacher_last_name" gorm:"type:varchar(100);not null;column:teacher_last_name"`
	TeacherEmail     string    `json:"teacher_email" gorm:"type:varchar(255);not null;uniqueIndex:uq_teachers_email;column:teacher_email"`

	TeacherCreatedAt time.Time      `json:"teacher_created_at" gorm:"column:teacher_created_at;not null;autoCreateTime"`
	TeacherUpdatedAt time.Time      `json:"teacher_updated_at" gorm:"column:teacher_updated_at;not null;autoUpdateTime"`
	TeacherDeletedAt gorm.DeletedAt `json:"teacher_deleted_at" gorm:"column:teacher_deleted_at;index"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
