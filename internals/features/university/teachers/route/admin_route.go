// file: internals/features/university/teachers/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"universityku_backend/internals/features/university/teachers/controller"
)

func TeacherAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewTeacherController(db, nil)

	teachers := r.Group("/teachers")
	teachers.Get("/", ctl.List)
	teachers.Get("/:id", ctl.GetByID)
	teachers.Post("/", ctl.Create)
	teachers.Put("/:id", ctl.Update)
	teachers.Delete("/:id", ctl.Delete)
}
