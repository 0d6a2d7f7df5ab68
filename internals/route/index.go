// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupRoute "kursusku_backend/internals/features/training/class_groups/route"
	roomRoute "kursusku_backend/internals/features/training/rooms/route"
	scheduleRoute "kursusku_backend/internals/features/training/schedules/route"
	sessionRoute "kursusku_backend/internals/features/training/sessions/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== GROUPS =====================
	// /api/u: baca-saja untuk peserta; /api/a: operasi admin.
	// Autentikasi dipasang di depan (gateway) — lihat catatan deploy.
	private := app.Group("/api/u")
	admin := app.Group("/api/a")

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Room routes...")
	roomRoute.ClassRoomAdminRoutes(admin, db)
	roomRoute.ClassRoomUserRoutes(private, db)

	log.Println("[INFO] Mounting ClassGroup routes...")
	groupRoute.ClassGroupAdminRoutes(admin, db)
	groupRoute.ClassGroupUserRoutes(private, db)

	log.Println("[INFO] Mounting Schedule routes...")
	scheduleRoute.ClassScheduleAdminRoutes(admin, db)
	scheduleRoute.ClassScheduleUserRoutes(private, db)

	log.Println("[INFO] Mounting Session routes...")
	sessionRoute.ClassSessionAdminRoutes(admin, db)
	sessionRoute.ClassSessionUserRoutes(private, db)
}
