// file: internals/features/university/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   StudentModel — map ke tabel students
   student_group_id nullable: student boleh belum punya group.
   ======================================================= */

type StudentModel struct {
	StudentID        uuid.UUID  `json:"student_id" gorm:"type:uuid;primaryKey;column:student_id;default:gen_random_uuid()"`
	StudentFirstName string     `json:"student_first_name" gorm:"type:varchar(100);not null;column:student_first_name"`
	StudentLastName  string     `json:"student_last_name" gorm:"type:varchar(100);not null;column:student_last_name"`
	StudentEmail     string     `json:"student_email" gorm:"type:varchar(255);not null;uniqueIndex:uq_students_email;column:student_email"`
	StudentGroupID   *uuid.UUID `json:"student_group_id,omitempty" gorm:"type:uuid;column:student_group_id;index:idx_students_group"`

	StudentCreatedAt time.Time      `json:"student_created_at" gorm:"column:student_created_at;not null;autoCreateTime"`
	StudentUpdatedAt time.Time      `json:"student_updated_at" gorm:"column:student_updated_at;not null;autoUpdateTime"`
	StudentDeletedAt gorm.DeletedAt `json:"student_deleted_at" gorm:"column:student_deleted_at;index"`
}

func (StudentModel) TableName() string {
	return "students"
}
