// file: internals/features/training/schedules/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schedCtrl "kursusku_backend/internals/features/training/schedules/controller"
)

func ClassScheduleAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := schedCtrl.NewClassScheduleController(db)

	g := r.Group("/class-schedules")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}

func ClassScheduleUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := schedCtrl.NewClassScheduleController(db)

	g := r.Group("/class-schedules")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}
