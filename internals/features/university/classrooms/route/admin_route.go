// file: internals/features/university/classrooms/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"universityku_backend/internals/features/university/classrooms/controller"
)

func ClassroomAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassroomController(db, nil)

	classrooms := r.Group("/classrooms")
	classrooms.Get("/", ctl.List)
	classrooms.Get("/:id", ctl.GetByID)
	classrooms.Post("/", ctl.Create)
	classrooms.Put("/:id", ctl.Update)
	classrooms.Delete("/:id", ctl.Delete)
}
