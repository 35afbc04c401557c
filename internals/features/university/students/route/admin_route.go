// file: internals/features/university/students/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"universityku_backend/internals/features/university/students/controller"
)

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentController(db, nil)

	students := r.Group("/students")
	students.Get("/", ctl.List)
	students.Get("/:id", ctl.GetByID)
	students.Post("/", ctl.Create)
	students.Put("/:id", ctl.Update)
	students.Patch("/:id/group", ctl.AssignGroup)
	students.Delete("/:id", ctl.Delete)
}
