// file: internals/features/university/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   CourseModel — map ke tabel courses
   Natural key: course_name (resolusi saat booking lesson)
   ======================================================= */

type CourseModel struct {
	CourseID   uuid.UUID `json:"course_id" gorm:"type:uuid;primaryKey;column:course_id;default:gen_random_uuid()"`
	CourseName string    `json:"course_name" gorm:"type:varchar(100);not null;uniqueIndex:uq_courses_name;column:course_name"`

	CourseCreatedAt time.Time      `json:"course_created_at" gorm:"column:course_created_at;not null;autoCreateTime"`
	CourseUpdatedAt time.Time      `json:"course_updated_at" gorm:"column:course_updated_at;not null;autoUpdateTime"`
	CourseDeletedAt gorm.DeletedAt `json:"course_deleted_at" gorm:"column:course_deleted_at;index"`
}

func (CourseModel) TableName() string {
	return "courses"
}
