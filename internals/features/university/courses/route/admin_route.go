// file: internals/features/university/courses/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"universityku_backend/internals/features/university/courses/controller"
)

func CourseAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCourseController(db, nil)

	courses := r.Group("/courses")
	courses.Get("/", ctl.List)
	courses.Get("/:id", ctl.GetByID)
	courses.Post("/", ctl.Create)
	courses.Put("/:id", ctl.Update)
	courses.Delete("/:id", ctl.Delete)
}
