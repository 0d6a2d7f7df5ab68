// file: internals/features/training/sessions/service/conflict_validator.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	roomModel "kursusku_backend/internals/features/training/rooms/model"
	model "kursusku_backend/internals/features/training/sessions/model"
)

// ConflictValidator menjawab satu pertanyaan: apakah rentang [start,end)
// masih kosong untuk ruangan/pengajar tertentu. Aturan overlap satu-satunya:
// s1 < e2 && s2 < e1 (half-open, sesi yang bersebelahan TIDAK bentrok).
type ConflictValidator struct {
	DB *gorm.DB
}

func NewConflictValidator(db *gorm.DB) *ConflictValidator {
	return &ConflictValidator{DB: db}
}

// status yang menduduki slot; status terminal membebaskan slot
var blockingStatuses = []model.SessionStatus{model.SessionScheduled, model.SessionOngoing}

func (v *ConflictValidator) db(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return v.DB
}

// CheckRoomAvailable mengembalikan *model.ConflictError jika ruangan terpakai.
// Ruangan virtual kapasitasnya tak terbatas → selalu tersedia.
// exclude dipakai update/ganti-mode supaya sesi tidak bentrok dengan dirinya.
func (v *ConflictValidator) CheckRoomAvailable(tx *gorm.DB, roomID uuid.UUID, start, end time.Time, exclude *uuid.UUID) error {
	db := v.db(tx)

	var room roomModel.ClassRoomModel
	if err := db.First(&room, "class_rooms_id = ?", roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.NotFoundError{Entity: "class_room", ID: roomID}
		}
		return err
	}
	if room.ClassRoomIsVirtual {
		return nil
	}

	q := db.Model(&model.ClassSessionModel{}).
		Where("class_sessions_room_id = ?", roomID).
		Where("class_sessions_status IN ?", blockingStatuses).
		Where("class_sessions_mode IN ?", []model.SessionMode{model.SessionModeOnsite, model.SessionModeHybrid}).
		Where("class_sessions_starts_at < ? AND ? < class_sessions_ends_at", end, start)
	if exclude != nil {
		q = q.Where("class_sessions_id <> ?", *exclude)
	}

	var clash model.ClassSessionModel
	err := q.Order("class_sessions_starts_at asc").Take(&clash).Error
	if err == nil {
		return &model.ConflictError{
			Resource:  "room",
			SessionID: clash.ClassSessionID,
			StartsAt:  clash.ClassSessionStartsAt,
			EndsAt:    clash.ClassSessionEndsAt,
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

// CheckRoomPhysical memastikan roomID menunjuk ruangan fisik. Mode onsite/hybrid
// menduduki ruangan; sesi ber-ruangan-virtual tidak pernah ikut cek bentrok,
// jadi pasangan mode-ruangan seperti itu ditolak di depan, bukan dibiarkan
// jatuh ke exclusion constraint DB yang aturannya berbeda.
func (v *ConflictValidator) CheckRoomPhysical(tx *gorm.DB, roomID uuid.UUID) error {
	db := v.db(tx)

	var room roomModel.ClassRoomModel
	if err := db.First(&room, "class_rooms_id = ?", roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.NotFoundError{Entity: "class_room", ID: roomID}
		}
		return err
	}
	if room.ClassRoomIsVirtual {
		return &model.ValidationError{
			Field:   "class_sessions_room_id",
			Rule:    "physical_room_required",
			Message: "mode onsite/hybrid butuh ruangan fisik, bukan virtual",
		}
	}
	return nil
}

// CheckTeacherAvailable: pengajar tidak boleh mengajar dua sesi overlap,
// apa pun mode-nya.
func (v *ConflictValidator) CheckTeacherAvailable(tx *gorm.DB, teacherID uuid.UUID, start, end time.Time, exclude *uuid.UUID) error {
	db := v.db(tx)

	q := db.Model(&model.ClassSessionModel{}).
		Where("class_sessions_teacher_id = ?", teacherID).
		Where("class_sessions_status IN ?", blockingStatuses).
		Where("class_sessions_starts_at < ? AND ? < class_sessions_ends_at", end, start)
	if exclude != nil {
		q = q.Where("class_sessions_id <> ?", *exclude)
	}

	var clash model.ClassSessionModel
	err := q.Order("class_sessions_starts_at asc").Take(&clash).Error
	if err == nil {
		return &model.ConflictError{
			Resource:  "teacher",
			SessionID: clash.ClassSessionID,
			StartsAt:  clash.ClassSessionStartsAt,
			EndsAt:    clash.ClassSessionEndsAt,
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
