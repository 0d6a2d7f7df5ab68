// file: internals/features/training/rooms/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	roomCtrl "kursusku_backend/internals/features/training/rooms/controller"
)

func ClassRoomAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := roomCtrl.NewClassRoomController(db)

	g := r.Group("/class-rooms")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}

func ClassRoomUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := roomCtrl.NewClassRoomController(db)

	g := r.Group("/class-rooms")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}
