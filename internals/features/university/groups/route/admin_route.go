// file: internals/features/university/groups/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"universityku_backend/internals/features/university/groups/controller"
)

func GroupAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewGroupController(db, nil)

	groups := r.Group("/groups")
	groups.Get("/", ctl.List)
	groups.Get("/:id", ctl.GetByID)
	groups.Post("/", ctl.Create)
	groups.Delete("/:id", ctl.Delete)
}
