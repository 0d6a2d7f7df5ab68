// file: internals/features/training/sessions/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionCtrl "kursusku_backend/internals/features/training/sessions/controller"
	"kursusku_backend/internals/features/training/sessions/service"
	"kursusku_backend/internals/middlewares"
)

func ClassSessionAdminRoutes(r fiber.Router, db *gorm.DB) {
	policy := service.LifecyclePolicyFromEnv()

	crud := sessionCtrl.NewClassSessionController(db)
	life := sessionCtrl.NewSessionLifecycleController(db, policy)
	gen := sessionCtrl.NewSessionGenerateController(db)

	g := r.Group("/class-sessions")

	// generate digas terpisah: operasi berat, jangan bisa di-spam
	g.Post("/generate", middlewares.GenerateRateLimiter(), gen.Generate)
	g.Post("/generate/preview", middlewares.GenerateRateLimiter(), gen.Preview)

	g.Post("/", crud.Create)
	g.Get("/", crud.List)
	g.Get("/:id", crud.GetByID)
	g.Delete("/:id", crud.Delete)

	g.Post("/:id/start", life.Start)
	g.Post("/:id/complete", life.Complete)
	g.Post("/:id/cancel", life.Cancel)
	g.Post("/:id/postpone", life.Postpone)
	g.Post("/:id/change-mode", life.ChangeMode)
}
