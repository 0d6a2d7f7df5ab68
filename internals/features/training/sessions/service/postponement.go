// file: internals/features/training/sessions/service/postponement.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "kursusku_backend/internals/features/training/sessions/model"
)

/*
=========================================================

	Postponement (tunda + jadwal pengganti dalam satu transaksi)
	=========================================================
*/
type Postponement struct {
	DB        *gorm.DB
	Policy    LifecyclePolicy
	Conflicts *ConflictValidator
	Now       func() time.Time
}

func NewPostponement(db *gorm.DB, policy LifecyclePolicy) *Postponement {
	return &Postponement{
		DB:        db,
		Policy:    policy,
		Conflicts: NewConflictValidator(db),
		Now:       time.Now,
	}
}

// RescheduleInput adalah slot pengganti. Field opsional nil = warisi dari sesi asal.
type RescheduleInput struct {
	StartsAt time.Time
	EndsAt   time.Time

	TeacherID  *uuid.UUID
	Mode       *model.SessionMode
	RoomID     *uuid.UUID
	MeetingURL *string
}

// PostponeAndReschedule menunda sesi DAN membuat sesi pengganti sekaligus.
// Keduanya dalam satu transaksi: gagal salah satu → tidak ada yang berubah.
// Sesi pengganti lahir bertipe recovery, berstatus scheduled, dan menunjuk
// balik ke sesi asalnya.
func (p *Postponement) PostponeAndReschedule(ctx context.Context, id uuid.UUID, reason string, slot RescheduleInput) (*model.ClassSessionModel, *model.ClassSessionModel, error) {
	var orig, recovery *model.ClassSessionModel

	err := p.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var s model.ClassSessionModel
		if err := tx.First(&s, "class_sessions_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &model.NotFoundError{Entity: "class_session", ID: id}
			}
			return err
		}

		if err := ApplyTransition(&s, OpPostpone, TransitionInput{Reason: reason}, p.Now(), p.Policy); err != nil {
			return err
		}
		if err := tx.Save(&s).Error; err != nil {
			return translatePGError(err)
		}

		// rantai recovery tidak boleh siklik / terlalu panjang
		if err := checkRecoveryTarget(tx, s.ClassSessionID); err != nil {
			return err
		}

		r := p.buildRecovery(&s, slot)
		if err := r.Validate(); err != nil {
			return err
		}
		if r.ClassSessionMode.RequiresRoom() && r.ClassSessionRoomID != nil {
			if err := p.Conflicts.CheckRoomPhysical(tx, *r.ClassSessionRoomID); err != nil {
				return err
			}
			if err := p.Conflicts.CheckRoomAvailable(tx, *r.ClassSessionRoomID,
				r.ClassSessionStartsAt, r.ClassSessionEndsAt, nil); err != nil {
				return err
			}
		}
		if err := p.Conflicts.CheckTeacherAvailable(tx, r.ClassSessionTeacherID,
			r.ClassSessionStartsAt, r.ClassSessionEndsAt, nil); err != nil {
			return err
		}
		if err := tx.Create(r).Error; err != nil {
			return translatePGError(err)
		}

		orig, recovery = &s, r
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return orig, recovery, nil
}

func (p *Postponement) buildRecovery(orig *model.ClassSessionModel, slot RescheduleInput) *model.ClassSessionModel {
	r := &model.ClassSessionModel{
		ClassSessionGroupID:              orig.ClassSessionGroupID,
		ClassSessionTeacherID:            orig.ClassSessionTeacherID,
		ClassSessionType:                 model.SessionTypeRecovery,
		ClassSessionStartsAt:             slot.StartsAt,
		ClassSessionEndsAt:               slot.EndsAt,
		ClassSessionMode:                 orig.ClassSessionMode,
		ClassSessionRoomID:               orig.ClassSessionRoomID,
		ClassSessionRemoteMeetingURL:     orig.ClassSessionRemoteMeetingURL,
		ClassSessionStatus:               model.SessionScheduled,
		ClassSessionOriginalSessionID:    &orig.ClassSessionID,
		ClassSessionRecoveryForSessionID: &orig.ClassSessionID,
	}
	if slot.TeacherID != nil {
		r.ClassSessionTeacherID = *slot.TeacherID
	}
	if slot.Mode != nil {
		r.ClassSessionMode = *slot.Mode
		r.ClassSessionRoomID = slot.RoomID
	} else if slot.RoomID != nil {
		r.ClassSessionRoomID = slot.RoomID
	}
	if slot.MeetingURL != nil {
		r.ClassSessionRemoteMeetingURL = slot.MeetingURL
	}
	return r
}
