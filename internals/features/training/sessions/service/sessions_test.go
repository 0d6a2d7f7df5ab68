// file: internals/features/training/sessions/service/sessions_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "kursusku_backend/internals/features/training/sessions/model"
)

func extraSession(teacher uuid.UUID, start time.Time) *model.ClassSessionModel {
	url := "https://meet.example.com/tambahan"
	return &model.ClassSessionModel{
		ClassSessionTeacherID:        teacher,
		ClassSessionType:             model.SessionTypeExtra,
		ClassSessionStartsAt:         start,
		ClassSessionEndsAt:           start.Add(2 * time.Hour),
		ClassSessionMode:             model.SessionModeOnline,
		ClassSessionRemoteMeetingURL: &url,
		ClassSessionStatus:           model.SessionScheduled,
	}
}

func TestSessionsCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessions(db)
	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)

	t.Run("extra session valid", func(t *testing.T) {
		m := extraSession(uuid.New(), start)
		require.NoError(t, svc.Create(context.Background(), m))
		assert.NotEqual(t, uuid.Nil, m.ClassSessionID)
		// Date diturunkan dari StartsAt
		assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), m.ClassSessionDate.UTC())
	})

	t.Run("invariant entity dicek duluan", func(t *testing.T) {
		m := extraSession(uuid.New(), start)
		m.ClassSessionEndsAt = m.ClassSessionStartsAt
		var ve *model.ValidationError
		require.ErrorAs(t, svc.Create(context.Background(), m), &ve)
	})

	t.Run("rombel tidak dikenal", func(t *testing.T) {
		m := extraSession(uuid.New(), start)
		ghost := uuid.New()
		m.ClassSessionGroupID = &ghost
		var nf *model.NotFoundError
		require.ErrorAs(t, svc.Create(context.Background(), m), &nf)
		assert.Equal(t, "class_group", nf.Entity)
	})

	t.Run("bentrok pengajar ditolak", func(t *testing.T) {
		teacher := uuid.New()
		require.NoError(t, svc.Create(context.Background(), extraSession(teacher, start)))

		m := extraSession(teacher, start.Add(time.Hour))
		var cf *model.ConflictError
		require.ErrorAs(t, svc.Create(context.Background(), m), &cf)
		assert.Equal(t, "teacher", cf.Resource)
	})

	t.Run("bentrok ruangan ditolak", func(t *testing.T) {
		room := seedRoom(t, db, false)
		a := extraSession(uuid.New(), start)
		a.ClassSessionMode = model.SessionModeOnsite
		a.ClassSessionRoomID = &room.ClassRoomID
		a.ClassSessionRemoteMeetingURL = nil
		require.NoError(t, svc.Create(context.Background(), a))

		b := extraSession(uuid.New(), start.Add(time.Hour))
		b.ClassSessionMode = model.SessionModeOnsite
		b.ClassSessionRoomID = &room.ClassRoomID
		b.ClassSessionRemoteMeetingURL = nil
		var cf *model.ConflictError
		require.ErrorAs(t, svc.Create(context.Background(), b), &cf)
		assert.Equal(t, "room", cf.Resource)
	})

	t.Run("ruangan virtual ditolak untuk mode onsite", func(t *testing.T) {
		room := seedRoom(t, db, true)
		m := extraSession(uuid.New(), start.AddDate(0, 0, 10))
		m.ClassSessionMode = model.SessionModeOnsite
		m.ClassSessionRoomID = &room.ClassRoomID
		m.ClassSessionRemoteMeetingURL = nil
		var ve *model.ValidationError
		require.ErrorAs(t, svc.Create(context.Background(), m), &ve)
		assert.Equal(t, "physical_room_required", ve.Rule)
	})
}

func TestSessionsCreate_RecoveryChain(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessions(db)
	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)

	t.Run("target harus postponed atau canceled", func(t *testing.T) {
		target := seedSession(t, db, nil) // scheduled
		m := extraSession(uuid.New(), start.AddDate(0, 0, 1))
		m.ClassSessionType = model.SessionTypeRecovery
		m.ClassSessionRecoveryForSessionID = &target.ClassSessionID

		var ve *model.ValidationError
		require.ErrorAs(t, svc.Create(context.Background(), m), &ve)
		assert.Equal(t, "target_status", ve.Rule)
	})

	t.Run("recovery untuk sesi postponed diterima", func(t *testing.T) {
		target := seedSession(t, db, func(s *model.ClassSessionModel) {
			s.ClassSessionStatus = model.SessionPostponed
		})
		m := extraSession(uuid.New(), start.AddDate(0, 0, 2))
		m.ClassSessionType = model.SessionTypeRecovery
		m.ClassSessionRecoveryForSessionID = &target.ClassSessionID
		require.NoError(t, svc.Create(context.Background(), m))
	})

	t.Run("target tidak ada", func(t *testing.T) {
		m := extraSession(uuid.New(), start.AddDate(0, 0, 3))
		m.ClassSessionType = model.SessionTypeRecovery
		ghost := uuid.New()
		m.ClassSessionRecoveryForSessionID = &ghost
		var nf *model.NotFoundError
		require.ErrorAs(t, svc.Create(context.Background(), m), &nf)
	})

	t.Run("siklus terdeteksi", func(t *testing.T) {
		// a ↔ b saling menunjuk (keadaan korup yang disimulasikan langsung di DB)
		a := seedSession(t, db, func(s *model.ClassSessionModel) {
			s.ClassSessionStatus = model.SessionPostponed
		})
		b := seedSession(t, db, func(s *model.ClassSessionModel) {
			s.ClassSessionStatus = model.SessionPostponed
			s.ClassSessionRecoveryForSessionID = &a.ClassSessionID
		})
		require.NoError(t, db.Model(&model.ClassSessionModel{}).
			Where("class_sessions_id = ?", a.ClassSessionID).
			Update("class_sessions_recovery_for_session_id", b.ClassSessionID).Error)

		m := extraSession(uuid.New(), start.AddDate(0, 0, 4))
		m.ClassSessionType = model.SessionTypeRecovery
		m.ClassSessionRecoveryForSessionID = &a.ClassSessionID
		var ve *model.ValidationError
		require.ErrorAs(t, svc.Create(context.Background(), m), &ve)
		assert.Equal(t, "recovery_cycle", ve.Rule)
	})
}

func TestSessionsList(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessions(db)

	teacher := uuid.New()
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		d := day.AddDate(0, 0, i)
		seedSession(t, db, func(s *model.ClassSessionModel) {
			s.ClassSessionStartsAt = d.Add(10 * time.Hour)
			s.ClassSessionEndsAt = d.Add(12 * time.Hour)
			if i%2 == 0 {
				s.ClassSessionTeacherID = teacher
			}
			if i == 4 {
				s.ClassSessionStatus = model.SessionCanceled
			}
		})
	}

	t.Run("tanpa filter", func(t *testing.T) {
		items, total, err := svc.List(context.Background(), ListFilter{})
		require.NoError(t, err)
		assert.EqualValues(t, 5, total)
		assert.Len(t, items, 5)
		// urut naik berdasarkan waktu mulai
		for i := 1; i < len(items); i++ {
			assert.True(t, !items[i].ClassSessionStartsAt.Before(items[i-1].ClassSessionStartsAt))
		}
	})

	t.Run("filter pengajar", func(t *testing.T) {
		items, total, err := svc.List(context.Background(), ListFilter{TeacherID: &teacher})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Len(t, items, 3)
	})

	t.Run("filter status", func(t *testing.T) {
		st := model.SessionCanceled
		_, total, err := svc.List(context.Background(), ListFilter{Status: &st})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
	})

	t.Run("paging", func(t *testing.T) {
		items, total, err := svc.List(context.Background(), ListFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.EqualValues(t, 5, total)
		assert.Len(t, items, 2)
	})
}

func TestSessionsGetByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessions(db)

	s := seedSession(t, db, nil)
	got, err := svc.GetByID(context.Background(), s.ClassSessionID)
	require.NoError(t, err)
	assert.Equal(t, s.ClassSessionID, got.ClassSessionID)

	// kolom timestamp harus pulang-pergi utuh lewat driver apa pun
	assert.True(t, got.ClassSessionStartsAt.Equal(s.ClassSessionStartsAt))
	assert.True(t, got.ClassSessionEndsAt.Equal(s.ClassSessionEndsAt))

	_, err = svc.GetByID(context.Background(), uuid.New())
	var nf *model.NotFoundError
	require.ErrorAs(t, err, &nf)
}
