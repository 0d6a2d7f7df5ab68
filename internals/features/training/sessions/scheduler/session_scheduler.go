// file: internals/features/training/sessions/scheduler/session_scheduler.go
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"kursusku_backend/internals/configs"
	groupModel "kursusku_backend/internals/features/training/class_groups/model"
	sessionModel "kursusku_backend/internals/features/training/sessions/model"
	"kursusku_backend/internals/features/training/sessions/service"
)

/*
=========================================================

	Cron harian:
	1) generate sesi untuk semua rombel aktif sejauh horizon ke depan
	2) tandai (log) sesi scheduled yang sudah lewat jadwalnya
	=========================================================
*/

// ── ENTRYPOINT: panggil dari main.go
func StartSessionSchedulerCron(db *gorm.DB) {
	schedule := configs.GetEnvOr("SESSION_CRON_SCHEDULE", "30 1 * * *")
	horizon := configs.GetEnvInt("SESSION_GENERATE_HORIZON_DAYS", 14)

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
		defer cancel()

		if err := runHorizonGenerate(ctx, db, horizon); err != nil {
			log.Printf("[SESSION-CRON] generate error: %v", err)
		}
		if err := runOverdueSweep(ctx, db); err != nil {
			log.Printf("[SESSION-CRON] overdue sweep error: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("[SESSION-CRON] add cron gagal: %v", err)
	}
	log.Printf("[SESSION-CRON] started schedule=%q horizon=%dd", schedule, horizon)
	c.Start()
}

// runHorizonGenerate meng-expand pola semua rombel aktif dari hari ini
// sampai hari ini + horizon. Generator idempotent, jadi aman dijalankan harian.
func runHorizonGenerate(ctx context.Context, db *gorm.DB, horizonDays int) error {
	from := time.Now()
	to := from.AddDate(0, 0, horizonDays)

	var groups []groupModel.ClassGroupModel
	if err := db.WithContext(ctx).
		Where("class_groups_is_active = ?", true).
		Find(&groups).Error; err != nil {
		return err
	}

	gen := service.NewGenerator(db)
	totalCreated := 0
	for _, g := range groups {
		created, err := gen.Generate(ctx, g.ClassGroupID, from, to)
		if err != nil {
			log.Printf("[SESSION-CRON] rombel %s: generate gagal: %v", g.ClassGroupID, err)
			continue
		}
		totalCreated += len(created)
	}
	log.Printf("[SESSION-CRON] generate selesai: %d rombel, %d sesi baru", len(groups), totalCreated)
	return nil
}

// runOverdueSweep melaporkan sesi scheduled yang jam selesainya sudah lewat
// tapi tidak pernah dimulai. Tidak mengubah status: keputusan cancel/postpone
// tetap di tangan admin.
func runOverdueSweep(ctx context.Context, db *gorm.DB) error {
	var overdue []sessionModel.ClassSessionModel
	if err := db.WithContext(ctx).
		Where("class_sessions_status = ?", sessionModel.SessionScheduled).
		Where("class_sessions_ends_at < ?", time.Now()).
		Order("class_sessions_ends_at asc").
		Limit(200).
		Find(&overdue).Error; err != nil {
		return err
	}

	if len(overdue) == 0 {
		return nil
	}
	for _, s := range overdue {
		log.Printf("[SESSION-CRON] ⚠️ sesi %s masih scheduled padahal berakhir %s",
			s.ClassSessionID, s.ClassSessionEndsAt.Format(time.RFC3339))
	}
	log.Printf("[SESSION-CRON] overdue sweep: %d sesi perlu tindakan admin", len(overdue))
	return nil
}
