// file: internals/features/university/lessons/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"universityku_backend/internals/configs"
	database "universityku_backend/internals/databases"
	"universityku_backend/internals/features/university/lessons/controller"
	svc "universityku_backend/internals/features/university/lessons/service"
	"universityku_backend/internals/middlewares"
)

// LessonAdminRoutes: mutasi jadwal, hanya lewat group admin ber-JWT.
func LessonAdminRoutes(r fiber.Router, db *gorm.DB) {
	service := svc.NewLessonService(db, database.Redis, configs.AppLocation)
	ctl := controller.NewLessonController(service, nil)

	lessons := r.Group("/lessons", middlewares.MutationRateLimiter())
	lessons.Post("/", ctl.Create)
	lessons.Put("/:id", ctl.Update)
	lessons.Delete("/:id", ctl.Delete)
}
