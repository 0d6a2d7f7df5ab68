// file: internals/features/training/sessions/service/lifecycle.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "kursusku_backend/internals/features/training/sessions/model"
)

/*
=========================================================

	Operasi & tabel transisi
	Satu tabel eksplisit (status × operasi → guard + efek),
	bukan if-chain tersebar. Menambah state/transisi = satu entry.
	=========================================================
*/
type Op string

const (
	OpStart      Op = "start"
	OpComplete   Op = "complete"
	OpCancel     Op = "cancel"
	OpPostpone   Op = "postpone"
	OpChangeMode Op = "change_mode"
)

// TransitionInput membawa input per operasi; field yang tidak relevan diabaikan.
type TransitionInput struct {
	Reason        string
	TopicsCovered string

	NewMode       model.SessionMode
	NewRoomID     *uuid.UUID
	NewMeetingURL *string
}

type transitionRule struct {
	allowedFrom map[model.SessionStatus]bool
	guard       func(s *model.ClassSessionModel, in TransitionInput, now time.Time, p LifecyclePolicy) error
	apply       func(s *model.ClassSessionModel, in TransitionInput, now time.Time)
}

func runeLen(s string) int { return utf8.RuneCountInString(strings.TrimSpace(s)) }

func requireMinLen(field, value string, min int) error {
	if runeLen(value) < min {
		return &model.ValidationError{
			Field:   field,
			Rule:    "min_length",
			Message: fmt.Sprintf("minimal %d karakter", min),
		}
	}
	return nil
}

var transitionTable = map[Op]transitionRule{
	OpStart: {
		allowedFrom: map[model.SessionStatus]bool{model.SessionScheduled: true},
		guard: func(s *model.ClassSessionModel, _ TransitionInput, now time.Time, p LifecyclePolicy) error {
			earliest := s.ClassSessionStartsAt.Add(-p.StartEarlyWindow)
			if now.Before(earliest) {
				return &model.TimingWindowError{Op: string(OpStart), Deadline: earliest, Now: now}
			}
			return nil
		},
		apply: func(s *model.ClassSessionModel, _ TransitionInput, now time.Time) {
			s.ClassSessionStatus = model.SessionOngoing
			t := now
			s.ClassSessionActualStartsAt = &t
		},
	},
	OpComplete: {
		allowedFrom: map[model.SessionStatus]bool{model.SessionOngoing: true},
		guard: func(_ *model.ClassSessionModel, in TransitionInput, _ time.Time, p LifecyclePolicy) error {
			return requireMinLen("class_sessions_topics_covered", in.TopicsCovered, p.MinTopicsLength)
		},
		apply: func(s *model.ClassSessionModel, in TransitionInput, now time.Time) {
			s.ClassSessionStatus = model.SessionCompleted
			t := now
			s.ClassSessionActualEndsAt = &t
			topics := strings.TrimSpace(in.TopicsCovered)
			s.ClassSessionTopicsCovered = &topics
		},
	},
	OpCancel: {
		allowedFrom: map[model.SessionStatus]bool{model.SessionScheduled: true},
		guard: func(_ *model.ClassSessionModel, in TransitionInput, _ time.Time, p LifecyclePolicy) error {
			// cancel tidak punya jendela waktu
			return requireMinLen("class_sessions_cancellation_reason", in.Reason, p.MinReasonLength)
		},
		apply: func(s *model.ClassSessionModel, in TransitionInput, _ time.Time) {
			s.ClassSessionStatus = model.SessionCanceled
			reason := strings.TrimSpace(in.Reason)
			s.ClassSessionCancellationReason = &reason
		},
	},
	OpPostpone: {
		allowedFrom: map[model.SessionStatus]bool{model.SessionScheduled: true},
		guard: func(s *model.ClassSessionModel, in TransitionInput, now time.Time, p LifecyclePolicy) error {
			if err := requireMinLen("class_sessions_postponement_reason", in.Reason, p.MinReasonLength); err != nil {
				return err
			}
			deadline := s.ClassSessionStartsAt.Add(-p.ModificationCutoff)
			if !now.Before(deadline) {
				return &model.TimingWindowError{Op: string(OpPostpone), Deadline: deadline, Now: now}
			}
			return nil
		},
		apply: func(s *model.ClassSessionModel, in TransitionInput, _ time.Time) {
			s.ClassSessionStatus = model.SessionPostponed
			reason := strings.TrimSpace(in.Reason)
			s.ClassSessionPostponementReason = &reason
		},
	},
	OpChangeMode: {
		allowedFrom: map[model.SessionStatus]bool{
			model.SessionScheduled: true,
			model.SessionOngoing:   true,
		},
		guard: func(s *model.ClassSessionModel, in TransitionInput, now time.Time, p LifecyclePolicy) error {
			deadline := s.ClassSessionStartsAt.Add(-p.ModificationCutoff)
			if !now.Before(deadline) {
				return &model.TimingWindowError{Op: string(OpChangeMode), Deadline: deadline, Now: now}
			}
			// kebutuhan mode baru dicek pada salinan entity
			tmp := *s
			tmp.ClassSessionMode = in.NewMode
			tmp.ClassSessionRoomID = in.NewRoomID
			tmp.ClassSessionRemoteMeetingURL = in.NewMeetingURL
			return tmp.ValidateDelivery()
		},
		apply: func(s *model.ClassSessionModel, in TransitionInput, _ time.Time) {
			s.ClassSessionMode = in.NewMode
			s.ClassSessionRoomID = in.NewRoomID
			s.ClassSessionRemoteMeetingURL = in.NewMeetingURL
		},
	},
}

// ApplyTransition memutuskan dan memutasi entity, tanpa menyentuh DB.
func ApplyTransition(s *model.ClassSessionModel, op Op, in TransitionInput, now time.Time, p LifecyclePolicy) error {
	rule, ok := transitionTable[op]
	if !ok {
		return fmt.Errorf("operasi lifecycle tidak dikenal: %s", op)
	}
	if !rule.allowedFrom[s.ClassSessionStatus] {
		return &model.InvalidTransitionError{Op: string(op), From: s.ClassSessionStatus}
	}
	if rule.guard != nil {
		if err := rule.guard(s, in, now, p); err != nil {
			return err
		}
	}
	rule.apply(s, in, now)
	return nil
}

/*
=========================================================

	Lifecycle service (transaksi per operasi)
	=========================================================
*/
type Lifecycle struct {
	DB        *gorm.DB
	Policy    LifecyclePolicy
	Conflicts *ConflictValidator
	Now       func() time.Time
}

func NewLifecycle(db *gorm.DB, policy LifecyclePolicy) *Lifecycle {
	return &Lifecycle{
		DB:        db,
		Policy:    policy,
		Conflicts: NewConflictValidator(db),
		Now:       time.Now,
	}
}

func (l *Lifecycle) load(tx *gorm.DB, id uuid.UUID) (*model.ClassSessionModel, error) {
	var s model.ClassSessionModel
	if err := tx.First(&s, "class_sessions_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &model.NotFoundError{Entity: "class_session", ID: id}
		}
		return nil, err
	}
	return &s, nil
}

func (l *Lifecycle) transition(ctx context.Context, id uuid.UUID, op Op, in TransitionInput) (*model.ClassSessionModel, error) {
	var out *model.ClassSessionModel
	err := l.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s, err := l.load(tx, id)
		if err != nil {
			return err
		}
		if err := ApplyTransition(s, op, in, l.Now(), l.Policy); err != nil {
			return err
		}
		if err := tx.Save(s).Error; err != nil {
			return translatePGError(err)
		}
		out = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Start menandai sesi berjalan. Telat melewati ambang → warning log, bukan error.
func (l *Lifecycle) Start(ctx context.Context, id uuid.UUID) (*model.ClassSessionModel, error) {
	s, err := l.transition(ctx, id, OpStart, TransitionInput{})
	if err != nil {
		return nil, err
	}
	if late := l.Now().Sub(s.ClassSessionStartsAt); late > l.Policy.LateStartWarnAfter {
		log.Printf("[SESSION] ⚠️ sesi %s dimulai telat %s dari jadwal", s.ClassSessionID, late.Round(time.Minute))
	}
	return s, nil
}

func (l *Lifecycle) Complete(ctx context.Context, id uuid.UUID, topicsCovered string) (*model.ClassSessionModel, error) {
	return l.transition(ctx, id, OpComplete, TransitionInput{TopicsCovered: topicsCovered})
}

func (l *Lifecycle) Cancel(ctx context.Context, id uuid.UUID, reason string) (*model.ClassSessionModel, error) {
	return l.transition(ctx, id, OpCancel, TransitionInput{Reason: reason})
}

func (l *Lifecycle) Postpone(ctx context.Context, id uuid.UUID, reason string) (*model.ClassSessionModel, error) {
	return l.transition(ctx, id, OpPostpone, TransitionInput{Reason: reason})
}

// ChangeMode mengganti mode penyelenggaraan. Jika mode baru butuh ruangan fisik,
// ketersediaan ruangan dicek ulang untuk jendela waktu sesi (exclude diri sendiri).
func (l *Lifecycle) ChangeMode(ctx context.Context, id uuid.UUID, in TransitionInput) (*model.ClassSessionModel, error) {
	var out *model.ClassSessionModel
	err := l.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s, err := l.load(tx, id)
		if err != nil {
			return err
		}
		if in.NewMode.RequiresRoom() && in.NewRoomID != nil {
			if err := l.Conflicts.CheckRoomPhysical(tx, *in.NewRoomID); err != nil {
				return err
			}
			if err := l.Conflicts.CheckRoomAvailable(tx, *in.NewRoomID,
				s.ClassSessionStartsAt, s.ClassSessionEndsAt, &s.ClassSessionID); err != nil {
				return err
			}
		}
		if err := ApplyTransition(s, OpChangeMode, in, l.Now(), l.Policy); err != nil {
			return err
		}
		if err := tx.Save(s).Error; err != nil {
			return translatePGError(err)
		}
		out = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
