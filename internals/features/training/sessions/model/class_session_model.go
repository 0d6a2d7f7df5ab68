// file: internals/features/training/sessions/model/class_session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
=========================================================

	Enums (mirror dari enum di DB)
	=========================================================
*/
type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionOngoing   SessionStatus = "ongoing"
	SessionCompleted SessionStatus = "completed"
	SessionPostponed SessionStatus = "postponed"
	SessionCanceled  SessionStatus = "canceled"
)

func (s SessionStatus) Valid() bool {
	switch s {
	case SessionScheduled, SessionOngoing, SessionCompleted, SessionPostponed, SessionCanceled:
		return true
	}
	return false
}

// IsTerminal: tidak ada transisi keluar dari status ini.
func (s SessionStatus) IsTerminal() bool {
	switch s {
	case SessionCompleted, SessionPostponed, SessionCanceled:
		return true
	}
	return false
}

type SessionType string

const (
	SessionTypeRegular  SessionType = "regular"
	SessionTypeRecovery SessionType = "recovery"
	SessionTypeExtra    SessionType = "extra"
)

type SessionMode string

const (
	SessionModeOnsite SessionMode = "onsite"
	SessionModeHybrid SessionMode = "hybrid"
	SessionModeOnline SessionMode = "online"
)

// RequiresRoom: mode yang memakai ruangan fisik.
func (m SessionMode) RequiresRoom() bool {
	return m == SessionModeOnsite || m == SessionModeHybrid
}

// RequiresMeeting: mode yang memakai remote meeting.
func (m SessionMode) RequiresMeeting() bool {
	return m == SessionModeOnline || m == SessionModeHybrid
}

/*
=========================================================

	Model
	=========================================================
*/
type ClassSessionModel struct {
	// PK
	ClassSessionID uuid.UUID `gorm:"type:uuid;primaryKey;column:class_sessions_id" json:"class_sessions_id"`

	// Asal-usul
	ClassSessionGroupID    *uuid.UUID `gorm:"type:uuid;column:class_sessions_group_id" json:"class_sessions_group_id,omitempty"`
	ClassSessionScheduleID *uuid.UUID `gorm:"type:uuid;column:class_sessions_schedule_id" json:"class_sessions_schedule_id,omitempty"` // link logis ke pola; pola boleh berubah/hilang
	ClassSessionTeacherID  uuid.UUID  `gorm:"type:uuid;not null;column:class_sessions_teacher_id" json:"class_sessions_teacher_id"`

	ClassSessionType SessionType `gorm:"type:session_type_enum;not null;default:'regular';column:class_sessions_type" json:"class_sessions_type"`

	// Waktu
	ClassSessionDate           time.Time  `gorm:"type:date;not null;column:class_sessions_date" json:"class_sessions_date"`
	ClassSessionStartsAt       time.Time  `gorm:"not null;column:class_sessions_starts_at" json:"class_sessions_starts_at"`
	ClassSessionEndsAt         time.Time  `gorm:"not null;column:class_sessions_ends_at" json:"class_sessions_ends_at"`
	ClassSessionActualStartsAt *time.Time `gorm:"column:class_sessions_actual_starts_at" json:"class_sessions_actual_starts_at,omitempty"`
	ClassSessionActualEndsAt   *time.Time `gorm:"column:class_sessions_actual_ends_at" json:"class_sessions_actual_ends_at,omitempty"`

	// Penyelenggaraan
	ClassSessionMode             SessionMode `gorm:"type:session_mode_enum;not null;default:'onsite';column:class_sessions_mode" json:"class_sessions_mode"`
	ClassSessionRoomID           *uuid.UUID  `gorm:"type:uuid;column:class_sessions_room_id" json:"class_sessions_room_id,omitempty"`
	ClassSessionRemoteMeetingURL *string     `gorm:"type:text;column:class_sessions_remote_meeting_url" json:"class_sessions_remote_meeting_url,omitempty"`

	// Lifecycle
	ClassSessionStatus SessionStatus `gorm:"type:session_status_enum;not null;default:'scheduled';column:class_sessions_status" json:"class_sessions_status"`

	// Rantai penundaan (plain identifier, bukan object reference)
	ClassSessionOriginalSessionID    *uuid.UUID `gorm:"type:uuid;column:class_sessions_original_session_id" json:"class_sessions_original_session_id,omitempty"`
	ClassSessionRecoveryForSessionID *uuid.UUID `gorm:"type:uuid;column:class_sessions_recovery_for_session_id" json:"class_sessions_recovery_for_session_id,omitempty"`

	// Naratif
	ClassSessionCancellationReason *string `gorm:"type:text;column:class_sessions_cancellation_reason" json:"class_sessions_cancellation_reason,omitempty"`
	ClassSessionPostponementReason *string `gorm:"type:text;column:class_sessions_postponement_reason" json:"class_sessions_postponement_reason,omitempty"`
	ClassSessionNotes              *string `gorm:"type:text;column:class_sessions_notes" json:"class_sessions_notes,omitempty"`
	ClassSessionTopicsCovered      *string `gorm:"type:text;column:class_sessions_topics_covered" json:"class_sessions_topics_covered,omitempty"`

	// Audit & soft delete
	ClassSessionCreatedAt time.Time      `gorm:"not null;autoCreateTime;column:class_sessions_created_at" json:"class_sessions_created_at"`
	ClassSessionUpdatedAt time.Time      `gorm:"not null;autoUpdateTime;column:class_sessions_updated_at" json:"class_sessions_updated_at"`
	ClassSessionDeletedAt gorm.DeletedAt `gorm:"column:class_sessions_deleted_at;index" json:"class_sessions_deleted_at,omitempty"`
}

func (ClassSessionModel) TableName() string { return "class_sessions" }

func (s *ClassSessionModel) BeforeCreate(tx *gorm.DB) error {
	if s.ClassSessionID == uuid.Nil {
		s.ClassSessionID = uuid.New()
	}
	if s.ClassSessionDate.IsZero() {
		d := s.ClassSessionStartsAt
		s.ClassSessionDate = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}
	return nil
}

/*
=========================================================

	Invariant checks lokal entity (tanpa lookup eksternal)
	=========================================================
*/

// MinSessionDuration: durasi sesi paling pendek yang diterima.
const MinSessionDuration = 30 * time.Minute

// ValidateTiming: rentang waktu valid & durasi minimal.
func (s *ClassSessionModel) ValidateTiming() error {
	if !s.ClassSessionEndsAt.After(s.ClassSessionStartsAt) {
		return &ValidationError{
			Field:   "class_sessions_ends_at",
			Rule:    "after_start",
			Message: "waktu selesai harus setelah waktu mulai",
		}
	}
	if s.ClassSessionEndsAt.Sub(s.ClassSessionStartsAt) < MinSessionDuration {
		return &ValidationError{
			Field:   "class_sessions_ends_at",
			Rule:    "min_duration",
			Message: "durasi sesi minimal 30 menit",
		}
	}
	return nil
}

// ValidateDelivery: kebutuhan ruangan/meeting sesuai mode.
func (s *ClassSessionModel) ValidateDelivery() error {
	if s.ClassSessionMode.RequiresRoom() && s.ClassSessionRoomID == nil {
		return &ValidationError{
			Field:   "class_sessions_room_id",
			Rule:    "required_for_mode",
			Message: "mode " + string(s.ClassSessionMode) + " butuh ruangan fisik",
		}
	}
	if s.ClassSessionMode.RequiresMeeting() &&
		(s.ClassSessionRemoteMeetingURL == nil || *s.ClassSessionRemoteMeetingURL == "") {
		return &ValidationError{
			Field:   "class_sessions_remote_meeting_url",
			Rule:    "required_for_mode",
			Message: "mode " + string(s.ClassSessionMode) + " butuh remote meeting",
		}
	}
	return nil
}

// ValidateLinkage: kewajiban link per tipe sesi.
func (s *ClassSessionModel) ValidateLinkage() error {
	switch s.ClassSessionType {
	case SessionTypeRegular:
		if s.ClassSessionScheduleID == nil {
			return &ValidationError{
				Field:   "class_sessions_schedule_id",
				Rule:    "required_for_type",
				Message: "sesi regular wajib punya pola asal",
			}
		}
	case SessionTypeRecovery:
		if s.ClassSessionRecoveryForSessionID == nil {
			return &ValidationError{
				Field:   "class_sessions_recovery_for_session_id",
				Rule:    "required_for_type",
				Message: "sesi recovery wajib menunjuk sesi yang dipulihkan",
			}
		}
	}
	return nil
}

// Validate menjalankan seluruh invariant lokal entity.
func (s *ClassSessionModel) Validate() error {
	if err := s.ValidateTiming(); err != nil {
		return err
	}
	if err := s.ValidateDelivery(); err != nil {
		return err
	}
	return s.ValidateLinkage()
}
