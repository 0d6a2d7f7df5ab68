// file: internals/features/training/sessions/service/generator_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	schedModel "kursusku_backend/internals/features/training/schedules/model"
	model "kursusku_backend/internals/features/training/sessions/model"
)

func seedSchedule(t *testing.T, db *gorm.DB, groupID uuid.UUID, mut func(*schedModel.ClassScheduleModel)) schedModel.ClassScheduleModel {
	t.Helper()
	p := schedModel.ClassScheduleModel{
		ClassScheduleGroupID:   groupID,
		ClassScheduleTeacherID: uuid.New(),
		ClassScheduleDayOfWeek: 1, // Senin
		ClassScheduleStartTime: "10:00",
		ClassScheduleEndTime:   "12:00",
		ClassScheduleStartDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		ClassScheduleEndDate:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		ClassScheduleIsActive:  true,
	}
	url := "https://meet.example.com/kelas"
	p.ClassScheduleRemoteMeetingURL = &url
	if mut != nil {
		mut(&p)
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func newUTCGenerator(db *gorm.DB) *Generator {
	g := NewGenerator(db)
	g.Loc = time.UTC
	return g
}

// September 2026: Selasa 1, Senin pertama = 7.
var (
	septFrom = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	septTo   = time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
)

func TestGenerator_ExpandWeekly(t *testing.T) {
	db := newTestDB(t)
	gen := newUTCGenerator(db)
	group := seedGroup(t, db)
	pattern := seedSchedule(t, db, group.ClassGroupID, nil) // online, tiap Senin

	created, err := gen.Generate(context.Background(), group.ClassGroupID, septFrom, septTo)
	require.NoError(t, err)
	require.Len(t, created, 4) // Senin 7, 14, 21, 28

	first := created[0]
	assert.Equal(t, model.SessionTypeRegular, first.ClassSessionType)
	assert.Equal(t, model.SessionScheduled, first.ClassSessionStatus)
	assert.Equal(t, model.SessionModeOnline, first.ClassSessionMode)
	require.NotNil(t, first.ClassSessionScheduleID)
	assert.Equal(t, pattern.ClassScheduleID, *first.ClassSessionScheduleID)
	assert.Equal(t, pattern.ClassScheduleTeacherID, first.ClassSessionTeacherID)
	assert.Equal(t, time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC), first.ClassSessionStartsAt.UTC())
	assert.Equal(t, time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC), first.ClassSessionEndsAt.UTC())

	// tersimpan di DB
	var cnt int64
	require.NoError(t, db.Model(&model.ClassSessionModel{}).Count(&cnt).Error)
	assert.EqualValues(t, 4, cnt)
}

func TestGenerator_Idempotent(t *testing.T) {
	db := newTestDB(t)
	gen := newUTCGenerator(db)
	group := seedGroup(t, db)
	seedSchedule(t, db, group.ClassGroupID, nil)

	first, err := gen.Generate(context.Background(), group.ClassGroupID, septFrom, septTo)
	require.NoError(t, err)
	require.Len(t, first, 4)

	// run kedua rentang sama: nol sesi baru
	second, err := gen.Generate(context.Background(), group.ClassGroupID, septFrom, septTo)
	require.NoError(t, err)
	assert.Empty(t, second)

	// rentang diperluas: hanya tanggal baru yang dibuat
	extended, err := gen.Generate(context.Background(), group.ClassGroupID, septFrom,
		time.Date(2026, 10, 7, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, extended, 1) // Senin 5 Oktober
}

func TestGenerator_PreviewDoesNotPersist(t *testing.T) {
	db := newTestDB(t)
	gen := newUTCGenerator(db)
	group := seedGroup(t, db)
	seedSchedule(t, db, group.ClassGroupID, nil)

	items, err := gen.Preview(context.Background(), group.ClassGroupID, septFrom, septTo)
	require.NoError(t, err)
	assert.Len(t, items, 4)

	var cnt int64
	require.NoError(t, db.Model(&model.ClassSessionModel{}).Count(&cnt).Error)
	assert.Zero(t, cnt)
}

func TestGenerator_EdgeCases(t *testing.T) {
	db := newTestDB(t)
	gen := newUTCGenerator(db)
	group := seedGroup(t, db)

	t.Run("rombel tanpa pola", func(t *testing.T) {
		items, err := gen.Generate(context.Background(), group.ClassGroupID, septFrom, septTo)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("rombel tidak dikenal", func(t *testing.T) {
		_, err := gen.Generate(context.Background(), uuid.New(), septFrom, septTo)
		var nf *model.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "class_group", nf.Entity)
	})

	t.Run("rentang terbalik", func(t *testing.T) {
		_, err := gen.Generate(context.Background(), group.ClassGroupID, septTo, septFrom)
		var ve *model.ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("pola nonaktif dilewati", func(t *testing.T) {
		p := seedSchedule(t, db, group.ClassGroupID, func(p *schedModel.ClassScheduleModel) {
			p.ClassScheduleIsActive = false
		})

		// false harus benar-benar tersimpan, bukan tertimpa default kolom
		var reload schedModel.ClassScheduleModel
		require.NoError(t, db.First(&reload, "class_schedules_id = ?", p.ClassScheduleID).Error)
		require.False(t, reload.ClassScheduleIsActive)

		items, err := gen.Generate(context.Background(), group.ClassGroupID, septFrom, septTo)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("jendela berlaku pola menggunting rentang", func(t *testing.T) {
		seedSchedule(t, db, group.ClassGroupID, func(p *schedModel.ClassScheduleModel) {
			p.ClassScheduleDayOfWeek = 2 // Selasa
			p.ClassScheduleEndDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
		})
		items, err := gen.Generate(context.Background(), group.ClassGroupID, septFrom, septTo)
		require.NoError(t, err)
		assert.Len(t, items, 3) // Selasa 1, 8, 15
	})
}

func TestGenerator_ModeInference(t *testing.T) {
	db := newTestDB(t)
	gen := newUTCGenerator(db)
	group := seedGroup(t, db)

	physical := seedRoom(t, db, false)
	virtual := seedRoom(t, db, true)

	mkPattern := func(dow int, mut func(*schedModel.ClassScheduleModel)) {
		seedSchedule(t, db, group.ClassGroupID, func(p *schedModel.ClassScheduleModel) {
			p.ClassScheduleDayOfWeek = dow
			mut(p)
		})
	}

	// Senin: ruangan fisik tanpa meeting → onsite
	mkPattern(1, func(p *schedModel.ClassScheduleModel) {
		p.ClassScheduleRoomID = &physical.ClassRoomID
		p.ClassScheduleRemoteMeetingURL = nil
	})
	// Selasa: ruangan fisik + meeting → hybrid
	mkPattern(2, func(p *schedModel.ClassScheduleModel) {
		p.ClassScheduleRoomID = &physical.ClassRoomID
	})
	// Rabu: ruangan virtual → online
	mkPattern(3, func(p *schedModel.ClassScheduleModel) {
		p.ClassScheduleRoomID = &virtual.ClassRoomID
	})

	week := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC) // Senin–Minggu
	items, err := gen.Preview(context.Background(), group.ClassGroupID, week, week.AddDate(0, 0, 6))
	require.NoError(t, err)
	require.Len(t, items, 3)

	byMode := map[model.SessionMode]model.ClassSessionModel{}
	for _, it := range items {
		byMode[it.ClassSessionMode] = it
	}

	onsite := byMode[model.SessionModeOnsite]
	require.NotNil(t, onsite.ClassSessionRoomID)
	assert.Nil(t, onsite.ClassSessionRemoteMeetingURL)

	hybrid := byMode[model.SessionModeHybrid]
	require.NotNil(t, hybrid.ClassSessionRoomID)
	require.NotNil(t, hybrid.ClassSessionRemoteMeetingURL)

	online := byMode[model.SessionModeOnline]
	require.NotNil(t, online.ClassSessionRoomID)
	assert.Equal(t, virtual.ClassRoomID, *online.ClassSessionRoomID)
}
