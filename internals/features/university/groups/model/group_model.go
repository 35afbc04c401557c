// file: internals/features/university/groups/model/group_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "universityku_backend/internals/features/university/students/model"
)

/* =======================================================
   GroupModel — map ke tabel groups
   Nama group wajib pola AA-11 (dua huruf besar, strip, dua digit).
   Ukuran group = jumlah student aktif; dipakai cek kapasitas ruangan.
   ======================================================= */

type GroupModel struct {
	GroupID   uuid.UUID `json:"group_id" gorm:"type:uuid;primaryKey;column:group_id;default:gen_random_uuid()"`
	GroupName string    `json:"group_name" gorm:"type:varchar(5);not null;uniqueIndex:uq_groups_name;column:group_name"`

	// Relasi enrolment (dibaca hanya untuk listing; cek kapasitas pakai COUNT)
	Students []studentModel.StudentModel `json:"students,omitempty" gorm:"foreignKey:StudentGroupID;references:GroupID"`

	GroupCreatedAt time.Time      `json:"group_created_at" gorm:"column:group_created_at;not null;autoCreateTime"`
	GroupUpdatedAt time.Time      `json:"group_updated_at" gorm:"column:group_updated_at;not null;autoUpdateTime"`
	GroupDeletedAt gorm.DeletedAt `json:"group_deleted_at" gorm:"column:group_deleted_at;index"`
}

func (GroupModel) TableName() string {
	return "groups"
}
