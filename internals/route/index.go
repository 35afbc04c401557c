// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"universityku_backend/internals/configs"
	authMiddleware "universityku_backend/internals/middlewares/auth"

	classroomRoute "universityku_backend/internals/features/university/classrooms/route"
	courseRoute "universityku_backend/internals/features/university/courses/route"
	groupRoute "universityku_backend/internals/features/university/groups/route"
	lessonRoute "universityku_backend/internals/features/university/lessons/route"
	studentRoute "universityku_backend/internals/features/university/students/route"
	teacherRoute "universityku_backend/internals/features/university/teachers/route"
	timetableRoute "universityku_backend/internals/features/university/timetable/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== PUBLIC =====================
	// Timetable dibaca mahasiswa/dosen tanpa login.
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/u")
	timetableRoute.TimetableUserRoutes(public, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (AuthJWT)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	log.Println("[INFO] Mounting Lesson routes...")
	lessonRoute.LessonAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Master-data routes...")
	courseRoute.CourseAdminRoutes(admin, db)
	teacherRoute.TeacherAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
	groupRoute.GroupAdminRoutes(admin, db)
	classroomRoute.ClassroomAdminRoutes(admin, db)
}
