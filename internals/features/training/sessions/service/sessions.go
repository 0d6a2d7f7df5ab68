// file: internals/features/training/sessions/service/sessions.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	groupModel "kursusku_backend/internals/features/training/class_groups/model"
	model "kursusku_backend/internals/features/training/sessions/model"
)

// Sessions menangani pembuatan manual (recovery/extra/regular ad hoc) dan query.
// Pembuatan manual SELALU lewat ConflictValidator; generator tidak (pola
// dianggap tervalidasi saat dibuat).
type Sessions struct {
	DB        *gorm.DB
	Conflicts *ConflictValidator
}

func NewSessions(db *gorm.DB) *Sessions {
	return &Sessions{DB: db, Conflicts: NewConflictValidator(db)}
}

// translatePGError memetakan pelanggaran constraint Postgres menjadi error domain.
// 23P01 = exclusion violation (penulis kedua dari dua request balapan kalah di
// commit), 23505 = unique violation (balapan idempotensi generator).
func translatePGError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23P01":
			resource := "room"
			if strings.Contains(pgErr.ConstraintName, "teacher") {
				resource = "teacher"
			}
			return &model.ConflictError{Resource: resource}
		case "23505":
			return &model.ConflictError{Resource: "session"}
		}
	}
	return err
}

// maxRecoveryChain membatasi panjang rantai penundaan yang diikuti cek siklus.
const maxRecoveryChain = 16

// checkRecoveryTarget memastikan target recovery ada, berstatus postponed/canceled,
// dan rantainya tidak membentuk siklus.
func checkRecoveryTarget(tx *gorm.DB, targetID uuid.UUID) error {
	seen := map[uuid.UUID]bool{}
	id := targetID
	for hop := 0; hop < maxRecoveryChain; hop++ {
		if seen[id] {
			return &model.ValidationError{
				Field:   "class_sessions_recovery_for_session_id",
				Rule:    "recovery_cycle",
				Message: "rantai penundaan membentuk siklus",
			}
		}
		seen[id] = true

		var target model.ClassSessionModel
		if err := tx.First(&target, "class_sessions_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &model.NotFoundError{Entity: "class_session", ID: id}
			}
			return err
		}
		if hop == 0 {
			switch target.ClassSessionStatus {
			case model.SessionPostponed, model.SessionCanceled:
				// ok
			default:
				return &model.ValidationError{
					Field:   "class_sessions_recovery_for_session_id",
					Rule:    "target_status",
					Message: "sesi yang dipulihkan harus berstatus postponed atau canceled",
				}
			}
		}
		if target.ClassSessionRecoveryForSessionID == nil {
			return nil
		}
		id = *target.ClassSessionRecoveryForSessionID
	}
	return &model.ValidationError{
		Field:   "class_sessions_recovery_for_session_id",
		Rule:    "recovery_chain_too_long",
		Message: "rantai penundaan terlalu panjang",
	}
}

// Create memvalidasi invariant entity, referensi, lalu cek bentrok di dalam
// satu transaksi dengan insert. Balapan check-then-insert ditangkap constraint
// DB dan dipetakan kembali ke ConflictError.
func (s *Sessions) Create(ctx context.Context, m *model.ClassSessionModel) error {
	if err := m.Validate(); err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if m.ClassSessionGroupID != nil {
			var cnt int64
			if err := tx.Model(&groupModel.ClassGroupModel{}).
				Where("class_groups_id = ?", *m.ClassSessionGroupID).
				Count(&cnt).Error; err != nil {
				return err
			}
			if cnt == 0 {
				return &model.NotFoundError{Entity: "class_group", ID: *m.ClassSessionGroupID}
			}
		}

		if m.ClassSessionType == model.SessionTypeRecovery {
			if err := checkRecoveryTarget(tx, *m.ClassSessionRecoveryForSessionID); err != nil {
				return err
			}
		}

		if m.ClassSessionMode.RequiresRoom() {
			if err := s.Conflicts.CheckRoomPhysical(tx, *m.ClassSessionRoomID); err != nil {
				return err
			}
			if err := s.Conflicts.CheckRoomAvailable(tx, *m.ClassSessionRoomID,
				m.ClassSessionStartsAt, m.ClassSessionEndsAt, nil); err != nil {
				return err
			}
		}
		if err := s.Conflicts.CheckTeacherAvailable(tx, m.ClassSessionTeacherID,
			m.ClassSessionStartsAt, m.ClassSessionEndsAt, nil); err != nil {
			return err
		}

		if err := tx.Create(m).Error; err != nil {
			return translatePGError(err)
		}
		return nil
	})
}

func (s *Sessions) GetByID(ctx context.Context, id uuid.UUID) (*model.ClassSessionModel, error) {
	var m model.ClassSessionModel
	if err := s.DB.WithContext(ctx).
		First(&m, "class_sessions_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &model.NotFoundError{Entity: "class_session", ID: id}
		}
		return nil, err
	}
	return &m, nil
}

// ListFilter: semua field opsional, dikombinasikan dengan AND.
type ListFilter struct {
	GroupID   *uuid.UUID
	TeacherID *uuid.UUID
	Status    *model.SessionStatus
	DateFrom  *time.Time
	DateTo    *time.Time
	Limit     int
	Offset    int
}

func (s *Sessions) List(ctx context.Context, f ListFilter) ([]model.ClassSessionModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&model.ClassSessionModel{})
	if f.GroupID != nil {
		q = q.Where("class_sessions_group_id = ?", *f.GroupID)
	}
	if f.TeacherID != nil {
		q = q.Where("class_sessions_teacher_id = ?", *f.TeacherID)
	}
	if f.Status != nil {
		q = q.Where("class_sessions_status = ?", *f.Status)
	}
	if f.DateFrom != nil {
		q = q.Where("class_sessions_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("class_sessions_date <= ?", *f.DateTo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []model.ClassSessionModel
	query := q.Order("class_sessions_starts_at asc")
	if f.Limit > 0 {
		query = query.Limit(f.Limit).Offset(f.Offset)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
