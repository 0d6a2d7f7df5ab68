// file: internals/features/training/class_groups/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupCtrl "kursusku_backend/internals/features/training/class_groups/controller"
)

func ClassGroupAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := groupCtrl.NewClassGroupController(db)

	g := r.Group("/class-groups")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}

func ClassGroupUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := groupCtrl.NewClassGroupController(db)

	g := r.Group("/class-groups")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}
