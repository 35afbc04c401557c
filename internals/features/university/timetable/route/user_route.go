// file: internals/features/university/timetable/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"universityku_backend/internals/configs"
	database "universityku_backend/internals/databases"
	"universityku_backend/internals/features/university/timetable/controller"
	svc "universityku_backend/internals/features/university/timetable/service"
)

// TimetableUserRoutes: read-only, tanpa auth (dipasang di group public).
func TimetableUserRoutes(r fiber.Router, db *gorm.DB) {
	service := svc.NewTimetableService(db, database.Redis, configs.AppLocation)
	ctl := controller.NewTimetableController(service)

	tt := r.Group("/timetables")
	tt.Get("/day/:date", ctl.Day)

	tt.Get("/teacher/:email/day/:date", ctl.TeacherDay)
	tt.Get("/teacher/:email/week/:date", ctl.TeacherWeek)
	tt.Get("/teacher/:email/month/:date", ctl.TeacherMonth)

	tt.Get("/group/:name/day/:date", ctl.GroupDay)
	tt.Get("/group/:name/week/:date", ctl.GroupWeek)
	tt.Get("/group/:name/month/:date", ctl.GroupMonth)
}
