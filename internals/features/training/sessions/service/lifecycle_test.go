// file: internals/features/training/sessions/service/lifecycle_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "kursusku_backend/internals/features/training/sessions/model"
)

func baseSession(status model.SessionStatus, start time.Time) *model.ClassSessionModel {
	url := "https://meet.example.com/tes"
	return &model.ClassSessionModel{
		ClassSessionType:             model.SessionTypeExtra,
		ClassSessionStartsAt:         start,
		ClassSessionEndsAt:           start.Add(2 * time.Hour),
		ClassSessionMode:             model.SessionModeOnline,
		ClassSessionRemoteMeetingURL: &url,
		ClassSessionStatus:           status,
	}
}

func TestApplyTransition_AllowedFrom(t *testing.T) {
	p := DefaultLifecyclePolicy()
	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	longText := "pembahasan bab tujuh sampai sembilan"

	cases := []struct {
		name string
		from model.SessionStatus
		op   Op
		in   TransitionInput
		now  time.Time
		ok   bool
	}{
		{"start dari scheduled", model.SessionScheduled, OpStart, TransitionInput{}, start, true},
		{"start dari ongoing ditolak", model.SessionOngoing, OpStart, TransitionInput{}, start, false},
		{"start dari completed ditolak", model.SessionCompleted, OpStart, TransitionInput{}, start, false},
		{"complete dari ongoing", model.SessionOngoing, OpComplete, TransitionInput{TopicsCovered: longText}, start.Add(time.Hour), true},
		{"complete dari scheduled ditolak", model.SessionScheduled, OpComplete, TransitionInput{TopicsCovered: longText}, start, false},
		{"cancel dari scheduled", model.SessionScheduled, OpCancel, TransitionInput{Reason: longText}, start, true},
		{"cancel dari ongoing ditolak", model.SessionOngoing, OpCancel, TransitionInput{Reason: longText}, start, false},
		{"cancel dari canceled ditolak", model.SessionCanceled, OpCancel, TransitionInput{Reason: longText}, start, false},
		{"postpone dari scheduled", model.SessionScheduled, OpPostpone, TransitionInput{Reason: longText}, start.Add(-3 * time.Hour), true},
		{"postpone dari postponed ditolak", model.SessionPostponed, OpPostpone, TransitionInput{Reason: longText}, start.Add(-3 * time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := baseSession(tc.from, start)
			err := ApplyTransition(s, tc.op, tc.in, tc.now, p)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			var it *model.InvalidTransitionError
			require.ErrorAs(t, err, &it)
			assert.Equal(t, tc.from, it.From)
		})
	}
}

func TestApplyTransition_StartWindow(t *testing.T) {
	p := DefaultLifecyclePolicy() // StartEarlyWindow = 30m
	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)

	t.Run("terlalu dini ditolak", func(t *testing.T) {
		s := baseSession(model.SessionScheduled, start)
		err := ApplyTransition(s, OpStart, TransitionInput{}, start.Add(-31*time.Minute), p)
		var tw *model.TimingWindowError
		require.ErrorAs(t, err, &tw)
		assert.Equal(t, string(OpStart), tw.Op)
	})

	t.Run("tepat di batas awal boleh", func(t *testing.T) {
		s := baseSession(model.SessionScheduled, start)
		now := start.Add(-30 * time.Minute)
		require.NoError(t, ApplyTransition(s, OpStart, TransitionInput{}, now, p))
		assert.Equal(t, model.SessionOngoing, s.ClassSessionStatus)
		require.NotNil(t, s.ClassSessionActualStartsAt)
		assert.Equal(t, now, *s.ClassSessionActualStartsAt)
	})

	t.Run("telat tetap boleh, tidak jadi error", func(t *testing.T) {
		s := baseSession(model.SessionScheduled, start)
		require.NoError(t, ApplyTransition(s, OpStart, TransitionInput{}, start.Add(20*time.Minute), p))
		assert.Equal(t, model.SessionOngoing, s.ClassSessionStatus)
	})
}

func TestApplyTransition_CompleteTopics(t *testing.T) {
	p := DefaultLifecyclePolicy() // MinTopicsLength = 10
	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)

	t.Run("9 karakter ditolak", func(t *testing.T) {
		s := baseSession(model.SessionOngoing, start)
		err := ApplyTransition(s, OpComplete, TransitionInput{TopicsCovered: "bab tujuh"}, start, p)
		var ve *model.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "min_length", ve.Rule)
	})

	t.Run("10 karakter diterima", func(t *testing.T) {
		s := baseSession(model.SessionOngoing, start)
		now := start.Add(2 * time.Hour)
		require.NoError(t, ApplyTransition(s, OpComplete, TransitionInput{TopicsCovered: "bab 7 dan8"}, now, p))
		assert.Equal(t, model.SessionCompleted, s.ClassSessionStatus)
		require.NotNil(t, s.ClassSessionTopicsCovered)
		assert.Equal(t, "bab 7 dan8", *s.ClassSessionTopicsCovered)
		require.NotNil(t, s.ClassSessionActualEndsAt)
	})

	t.Run("whitespace tidak dihitung", func(t *testing.T) {
		s := baseSession(model.SessionOngoing, start)
		err := ApplyTransition(s, OpComplete, TransitionInput{TopicsCovered: "   bab 7    "}, start, p)
		var ve *model.ValidationError
		require.ErrorAs(t, err, &ve)
	})
}

func TestApplyTransition_PostponeCutoff(t *testing.T) {
	p := DefaultLifecyclePolicy() // ModificationCutoff = 2h
	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	reason := "kelas dipindah karena renovasi gedung"

	t.Run("lebih dari cutoff sebelum mulai boleh", func(t *testing.T) {
		s := baseSession(model.SessionScheduled, start)
		require.NoError(t, ApplyTransition(s, OpPostpone, TransitionInput{Reason: reason}, start.Add(-2*time.Hour-time.Minute), p))
		assert.Equal(t, model.SessionPostponed, s.ClassSessionStatus)
		require.NotNil(t, s.ClassSessionPostponementReason)
		assert.Equal(t, reason, *s.ClassSessionPostponementReason)
	})

	t.Run("tepat di deadline ditolak", func(t *testing.T) {
		s := baseSession(model.SessionScheduled, start)
		err := ApplyTransition(s, OpPostpone, TransitionInput{Reason: reason}, start.Add(-2*time.Hour), p)
		var tw *model.TimingWindowError
		require.ErrorAs(t, err, &tw)
	})

	t.Run("cancel tidak kena cutoff", func(t *testing.T) {
		s := baseSession(model.SessionScheduled, start)
		require.NoError(t, ApplyTransition(s, OpCancel, TransitionInput{Reason: reason}, start.Add(-time.Minute), p))
		assert.Equal(t, model.SessionCanceled, s.ClassSessionStatus)
	})

	t.Run("alasan pendek ditolak sebelum cek jendela", func(t *testing.T) {
		s := baseSession(model.SessionScheduled, start)
		err := ApplyTransition(s, OpPostpone, TransitionInput{Reason: "mendadak"}, start.Add(-5*time.Hour), p)
		var ve *model.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "class_sessions_postponement_reason", ve.Field)
	})
}

func TestApplyTransition_ChangeMode(t *testing.T) {
	p := DefaultLifecyclePolicy()
	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)

	t.Run("online ke onsite tanpa ruangan ditolak", func(t *testing.T) {
		s := baseSession(model.SessionScheduled, start)
		err := ApplyTransition(s, OpChangeMode, TransitionInput{NewMode: model.SessionModeOnsite},
			start.Add(-3*time.Hour), p)
		var ve *model.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "class_sessions_room_id", ve.Field)
		// entity tidak berubah saat guard gagal
		assert.Equal(t, model.SessionModeOnline, s.ClassSessionMode)
	})

	t.Run("lewat cutoff ditolak", func(t *testing.T) {
		s := baseSession(model.SessionScheduled, start)
		err := ApplyTransition(s, OpChangeMode, TransitionInput{
			NewMode:       model.SessionModeOnline,
			NewMeetingURL: strPtr("https://meet.example.com/b"),
		}, start.Add(-time.Hour), p)
		var tw *model.TimingWindowError
		require.ErrorAs(t, err, &tw)
	})
}

func TestLifecycle_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	l := NewLifecycle(db, DefaultLifecyclePolicy())

	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	s := seedSession(t, db, nil)

	// jam disuntik supaya deterministik
	l.Now = func() time.Time { return start.Add(5 * time.Minute) }

	got, err := l.Start(context.Background(), s.ClassSessionID)
	require.NoError(t, err)
	assert.Equal(t, model.SessionOngoing, got.ClassSessionStatus)

	l.Now = func() time.Time { return start.Add(2 * time.Hour) }
	got, err = l.Complete(context.Background(), s.ClassSessionID, "ulasan materi pertemuan tujuh")
	require.NoError(t, err)
	assert.Equal(t, model.SessionCompleted, got.ClassSessionStatus)

	// status tersimpan benar-benar di DB
	var reload model.ClassSessionModel
	require.NoError(t, db.First(&reload, "class_sessions_id = ?", s.ClassSessionID).Error)
	assert.Equal(t, model.SessionCompleted, reload.ClassSessionStatus)
	require.NotNil(t, reload.ClassSessionTopicsCovered)

	// status terminal menolak operasi lanjutan
	_, err = l.Cancel(context.Background(), s.ClassSessionID, "alasan yang cukup panjang")
	var it *model.InvalidTransitionError
	require.ErrorAs(t, err, &it)
}

func TestLifecycle_ChangeModeRoomCheck(t *testing.T) {
	db := newTestDB(t)
	l := NewLifecycle(db, DefaultLifecyclePolicy())

	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	l.Now = func() time.Time { return start.Add(-3 * time.Hour) }

	room := seedRoom(t, db, false)

	// penghuni ruangan di jendela yang sama
	seedSession(t, db, func(s *model.ClassSessionModel) {
		s.ClassSessionMode = model.SessionModeOnsite
		s.ClassSessionRoomID = &room.ClassRoomID
		s.ClassSessionRemoteMeetingURL = nil
	})

	t.Run("pindah ke ruangan terisi ditolak", func(t *testing.T) {
		s := seedSession(t, db, nil) // online, jendela sama
		_, err := l.ChangeMode(context.Background(), s.ClassSessionID, TransitionInput{
			NewMode:   model.SessionModeOnsite,
			NewRoomID: &room.ClassRoomID,
		})
		var cf *model.ConflictError
		require.ErrorAs(t, err, &cf)
		assert.Equal(t, "room", cf.Resource)

		// gagal → sesi tidak berubah di DB
		var reload model.ClassSessionModel
		require.NoError(t, db.First(&reload, "class_sessions_id = ?", s.ClassSessionID).Error)
		assert.Equal(t, model.SessionModeOnline, reload.ClassSessionMode)
		assert.Nil(t, reload.ClassSessionRoomID)
	})

	t.Run("ruangan sendiri tidak dihitung bentrok", func(t *testing.T) {
		room2 := seedRoom(t, db, false)
		s := seedSession(t, db, func(s *model.ClassSessionModel) {
			s.ClassSessionMode = model.SessionModeOnsite
			s.ClassSessionRoomID = &room2.ClassRoomID
			s.ClassSessionRemoteMeetingURL = nil
		})
		got, err := l.ChangeMode(context.Background(), s.ClassSessionID, TransitionInput{
			NewMode:       model.SessionModeHybrid,
			NewRoomID:     &room2.ClassRoomID,
			NewMeetingURL: strPtr("https://meet.example.com/h"),
		})
		require.NoError(t, err)
		assert.Equal(t, model.SessionModeHybrid, got.ClassSessionMode)
	})

	t.Run("ruangan virtual ditolak untuk mode onsite", func(t *testing.T) {
		v := seedRoom(t, db, true)
		s := seedSession(t, db, nil)
		_, err := l.ChangeMode(context.Background(), s.ClassSessionID, TransitionInput{
			NewMode:   model.SessionModeOnsite,
			NewRoomID: &v.ClassRoomID,
		})
		var ve *model.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "physical_room_required", ve.Rule)
	})
}

func TestLifecycle_NotFound(t *testing.T) {
	db := newTestDB(t)
	l := NewLifecycle(db, DefaultLifecyclePolicy())

	_, err := l.Start(context.Background(), seedGroup(t, db).ClassGroupID)
	var nf *model.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "class_session", nf.Entity)
}
