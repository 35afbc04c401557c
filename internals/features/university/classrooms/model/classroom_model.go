// file: internals/features/university/classrooms/model/classroom_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   ClassroomModel — map ke tabel classrooms
   Natural key: classroom_number (resolusi saat booking lesson).
   classroom_capacity = plafon keras jumlah student group dalam ruangan.
   ======================================================= */

type ClassroomModel struct {
	ClassroomID       uuid.UUID `json:"classroom_id" gorm:"type:uuid;primaryKey;column:classroom_id;default:gen_random_uuid()"`
	ClassroomNumber   int       `json:"classroom_number" gorm:"type:int;not null;uniqueIndex:uq_classrooms_number;column:classroom_number"`
	ClassroomAddress  string    `json:"classroom_address" gorm:"type:varchar(100);not null;column:classroom_address"`
	ClassroomCapacity int       `json:"classroom_capacity" gorm:"type:int;not null;column:classroom_capacity"`

	// Fasilitas bebas bentuk, contoh: ["projector","whiteboard"]
	ClassroomFacilities datatypes.JSON `json:"classroom_facilities,omitempty" gorm:"column:classroom_facilities"`

	ClassroomCreatedAt time.Time      `json:"classroom_created_at" gorm:"column:classroom_created_at;not null;autoCreateTime"`
	ClassroomUpdatedAt time.Time      `json:"classroom_updated_at" gorm:"column:classroom_updated_at;not null;autoUpdateTime"`
	ClassroomDeletedAt gorm.DeletedAt `json:"classroom_deleted_at" gorm:"column:classroom_deleted_at;index"`
}

func (ClassroomModel) TableName() string {
	return "classrooms"
}
