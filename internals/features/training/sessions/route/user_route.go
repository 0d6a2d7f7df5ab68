// file: internals/features/training/sessions/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionCtrl "kursusku_backend/internals/features/training/sessions/controller"
)

// Rute user: baca-saja (jadwal sesi untuk peserta).
func ClassSessionUserRoutes(r fiber.Router, db *gorm.DB) {
	crud := sessionCtrl.NewClassSessionController(db)

	g := r.Group("/class-sessions")
	g.Get("/", crud.List)
	g.Get("/:id", crud.GetByID)
}
