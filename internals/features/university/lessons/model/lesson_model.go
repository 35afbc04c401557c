// file: internals/features/university/lessons/model/lesson_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	classroomModel "universityku_backend/internals/features/university/classrooms/model"
	courseModel "universityku_backend/internals/features/university/courses/model"
	groupModel "universityku_backend/internals/features/university/groups/model"
	teacherModel "universityku_backend/internals/features/university/teachers/model"
)

/* =======================================================
   LessonModel — map ke tabel lessons

   Unique composite (teacher,start) / (group,start) / (classroom,start)
   jadi backstop race double-booking di level DB; cek overlap interval
   tetap jalan lebih dulu di service dalam satu transaksi.

   Lesson sengaja TANPA soft delete: row terhapus tidak boleh terus
   menahan slot di unique index.
   ======================================================= */

type LessonModel struct {
	LessonID uuid.UUID `json:"lesson_id" gorm:"type:uuid;primaryKey;column:lesson_id;default:gen_random_uuid()"`

	// FK referensi
	LessonCourseID    uuid.UUID `json:"lesson_course_id" gorm:"type:uuid;not null;column:lesson_course_id;index:idx_lessons_course"`
	LessonTeacherID   uuid.UUID `json:"lesson_teacher_id" gorm:"type:uuid;not null;column:lesson_teacher_id;uniqueIndex:uq_lessons_teacher_start"`
	LessonGroupID     uuid.UUID `json:"lesson_group_id" gorm:"type:uuid;not null;column:lesson_group_id;uniqueIndex:uq_lessons_group_start"`
	LessonClassroomID uuid.UUID `json:"lesson_classroom_id" gorm:"type:uuid;not null;column:lesson_classroom_id;uniqueIndex:uq_lessons_classroom_start"`

	// Interval; invariant start < end dijaga service
	LessonStartAt time.Time `json:"lesson_start_at" gorm:"type:timestamptz;not null;column:lesson_start_at;index:idx_lessons_start_at;uniqueIndex:uq_lessons_teacher_start;uniqueIndex:uq_lessons_group_start;uniqueIndex:uq_lessons_classroom_start"`
	LessonEndAt   time.Time `json:"lesson_end_at" gorm:"type:timestamptz;not null;column:lesson_end_at"`

	// Online: link wajib terisi (5..100 char) saat true
	LessonIsOnline   bool    `json:"lesson_is_online" gorm:"type:boolean;not null;default:false;column:lesson_is_online"`
	LessonOnlineLink *string `json:"lesson_online_link,omitempty" gorm:"type:varchar(100);column:lesson_online_link"`

	// Relasi (preload untuk response timetable)
	LessonCourse    courseModel.CourseModel       `json:"course,omitempty" gorm:"foreignKey:LessonCourseID;references:CourseID"`
	LessonTeacher   teacherModel.TeacherModel     `json:"teacher,omitempty" gorm:"foreignKey:LessonTeacherID;references:TeacherID"`
	LessonGroup     groupModel.GroupModel         `json:"group,omitempty" gorm:"foreignKey:LessonGroupID;references:GroupID"`
	LessonClassroom classroomModel.ClassroomModel `json:"classroom,omitempty" gorm:"foreignKey:LessonClassroomID;references:ClassroomID"`

	LessonCreatedAt time.Time `json:"lesson_created_at" gorm:"column:lesson_created_at;not null;autoCreateTime"`
	LessonUpdatedAt time.Time `json:"lesson_updated_at" gorm:"column:lesson_updated_at;not null;autoUpdateTime"`
}

func (LessonModel) TableName() string {
	return "lessons"
}
