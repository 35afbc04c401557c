package database

import (
	"log"

	classroomModel "universityku_backend/internals/features/university/classrooms/model"
	courseModel "universityku_backend/internals/features/university/courses/model"
	groupModel "universityku_backend/internals/features/university/groups/model"
	lessonModel "universityku_backend/internals/features/university/lessons/model"
	studentModel "universityku_backend/internals/features/university/students/model"
	teacherModel "universityku_backend/internals/features/university/teachers/model"
)

// MigrateAll menjalankan AutoMigrate untuk semua tabel fitur.
// Urutan penting: entitas referensi dulu, lessons terakhir (FK).
func MigrateAll() {
	if err := DB.AutoMigrate(
		&courseModel.CourseModel{},
		&teacherModel.TeacherModel{},
		&groupModel.GroupModel{},
		&studentModel.StudentModel{},
		&classroomModel.ClassroomModel{},
		&lessonModel.LessonModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}
