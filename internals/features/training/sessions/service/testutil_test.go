// file: internals/features/training/sessions/service/testutil_test.go
package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	groupModel "kursusku_backend/internals/features/training/class_groups/model"
	roomModel "kursusku_backend/internals/features/training/rooms/model"
	schedModel "kursusku_backend/internals/features/training/schedules/model"
	model "kursusku_backend/internals/features/training/sessions/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&roomModel.ClassRoomModel{},
		&groupModel.ClassGroupModel{},
		&schedModel.ClassScheduleModel{},
		&model.ClassSessionModel{},
	))
	return db
}

func seedRoom(t *testing.T, db *gorm.DB, virtual bool) roomModel.ClassRoomModel {
	t.Helper()
	r := roomModel.ClassRoomModel{
		ClassRoomName:      "Ruang Tes",
		ClassRoomIsVirtual: virtual,
		ClassRoomIsActive:  true,
	}
	require.NoError(t, db.Create(&r).Error)
	return r
}

func seedGroup(t *testing.T, db *gorm.DB) groupModel.ClassGroupModel {
	t.Helper()
	g := groupModel.ClassGroupModel{
		ClassGroupName:     "Rombel Tes",
		ClassGroupIsActive: true,
	}
	require.NoError(t, db.Create(&g).Error)
	return g
}

// seedSession: sesi onsite scheduled dengan default masuk akal; override lewat mut.
func seedSession(t *testing.T, db *gorm.DB, mut func(*model.ClassSessionModel)) model.ClassSessionModel {
	t.Helper()
	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	s := model.ClassSessionModel{
		ClassSessionTeacherID: uuid.New(),
		ClassSessionType:      model.SessionTypeExtra,
		ClassSessionStartsAt:  start,
		ClassSessionEndsAt:    start.Add(2 * time.Hour),
		ClassSessionMode:      model.SessionModeOnline,
		ClassSessionStatus:    model.SessionScheduled,
	}
	url := "https://meet.example.com/tes"
	s.ClassSessionRemoteMeetingURL = &url
	if mut != nil {
		mut(&s)
	}
	require.NoError(t, db.Create(&s).Error)
	return s
}

func strPtr(s string) *string { return &s }
