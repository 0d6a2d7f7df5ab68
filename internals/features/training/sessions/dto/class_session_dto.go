// file: internals/features/training/sessions/dto/class_session_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "kursusku_backend/internals/features/training/sessions/model"
	"kursusku_backend/internals/features/training/sessions/service"
)

/* =========================================================
   Helpers
   ========================================================= */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func parseUUIDPtr(s *string) *uuid.UUID {
	if s == nil {
		return nil
	}
	if id, err := uuid.Parse(strings.TrimSpace(*s)); err == nil {
		return &id
	}
	return nil
}

/* =========================================================
   1) CREATE (sesi manual: extra / recovery / regular lepas-pola)
   ========================================================= */

type CreateClassSessionRequest struct {
	ClassSessionGroupID    *string `json:"class_sessions_group_id" validate:"omitempty,uuid"`
	ClassSessionScheduleID *string `json:"class_sessions_schedule_id" validate:"omitempty,uuid"`
	ClassSessionTeacherID  string  `json:"class_sessions_teacher_id" validate:"required,uuid"`

	ClassSessionType string `json:"class_sessions_type" validate:"required,oneof=regular recovery extra"`

	ClassSessionStartsAt time.Time `json:"class_sessions_starts_at" validate:"required"`
	ClassSessionEndsAt   time.Time `json:"class_sessions_ends_at" validate:"required"`

	ClassSessionMode             string  `json:"class_sessions_mode" validate:"required,oneof=onsite hybrid online"`
	ClassSessionRoomID           *string `json:"class_sessions_room_id" validate:"omitempty,uuid"`
	ClassSessionRemoteMeetingURL *string `json:"class_sessions_remote_meeting_url" validate:"omitempty,url"`

	ClassSessionRecoveryForSessionID *string `json:"class_sessions_recovery_for_session_id" validate:"omitempty,uuid"`
	ClassSessionNotes                *string `json:"class_sessions_notes" validate:"omitempty,max=2000"`
}

func (r CreateClassSessionRequest) ToModel() model.ClassSessionModel {
	teacherID, _ := uuid.Parse(strings.TrimSpace(r.ClassSessionTeacherID))

	m := model.ClassSessionModel{
		ClassSessionGroupID:              parseUUIDPtr(r.ClassSessionGroupID),
		ClassSessionScheduleID:           parseUUIDPtr(r.ClassSessionScheduleID),
		ClassSessionTeacherID:            teacherID,
		ClassSessionType:                 model.SessionType(r.ClassSessionType),
		ClassSessionStartsAt:             r.ClassSessionStartsAt,
		ClassSessionEndsAt:               r.ClassSessionEndsAt,
		ClassSessionMode:                 model.SessionMode(r.ClassSessionMode),
		ClassSessionRoomID:               parseUUIDPtr(r.ClassSessionRoomID),
		ClassSessionRemoteMeetingURL:     trimPtr(r.ClassSessionRemoteMeetingURL),
		ClassSessionStatus:               model.SessionScheduled,
		ClassSessionRecoveryForSessionID: parseUUIDPtr(r.ClassSessionRecoveryForSessionID),
		ClassSessionNotes:                trimPtr(r.ClassSessionNotes),
	}
	if m.ClassSessionRecoveryForSessionID != nil {
		m.ClassSessionOriginalSessionID = m.ClassSessionRecoveryForSessionID
	}
	return m
}

/* =========================================================
   2) LIFECYCLE
   ========================================================= */

type CompleteClassSessionRequest struct {
	ClassSessionTopicsCovered string `json:"class_sessions_topics_covered" validate:"required,min=10"`
}

type CancelClassSessionRequest struct {
	Reason string `json:"reason" validate:"required,min=10"`
}

// RescheduleBlock: slot pengganti opsional saat menunda.
type RescheduleBlock struct {
	StartsAt time.Time `json:"starts_at" validate:"required"`
	EndsAt   time.Time `json:"ends_at" validate:"required"`

	TeacherID        *string `json:"teacher_id" validate:"omitempty,uuid"`
	Mode             *string `json:"mode" validate:"omitempty,oneof=onsite hybrid online"`
	RoomID           *string `json:"room_id" validate:"omitempty,uuid"`
	RemoteMeetingURL *string `json:"remote_meeting_url" validate:"omitempty,url"`
}

type PostponeClassSessionRequest struct {
	Reason     string           `json:"reason" validate:"required,min=10"`
	Reschedule *RescheduleBlock `json:"reschedule" validate:"omitempty"`
}

func (b *RescheduleBlock) ToSlot() service.RescheduleInput {
	slot := service.RescheduleInput{
		StartsAt:   b.StartsAt,
		EndsAt:     b.EndsAt,
		TeacherID:  parseUUIDPtr(b.TeacherID),
		RoomID:     parseUUIDPtr(b.RoomID),
		MeetingURL: trimPtr(b.RemoteMeetingURL),
	}
	if b.Mode != nil {
		m := model.SessionMode(strings.TrimSpace(*b.Mode))
		slot.Mode = &m
	}
	return slot
}

type ChangeModeClassSessionRequest struct {
	Mode             string  `json:"mode" validate:"required,oneof=onsite hybrid online"`
	RoomID           *string `json:"room_id" validate:"omitempty,uuid"`
	RemoteMeetingURL *string `json:"remote_meeting_url" validate:"omitempty,url"`
}

func (r ChangeModeClassSessionRequest) ToInput() service.TransitionInput {
	return service.TransitionInput{
		NewMode:       model.SessionMode(strings.TrimSpace(r.Mode)),
		NewRoomID:     parseUUIDPtr(r.RoomID),
		NewMeetingURL: trimPtr(r.RemoteMeetingURL),
	}
}

/* =========================================================
   3) GENERATE
   ========================================================= */

type GenerateClassSessionsRequest struct {
	ClassGroupID string `json:"class_group_id" validate:"required,uuid"`
	DateFrom     string `json:"date_from" validate:"required,datetime=2006-01-02"`
	DateTo       string `json:"date_to" validate:"required,datetime=2006-01-02"`
	DryRun       bool   `json:"dry_run"`
}

func (r GenerateClassSessionsRequest) Range() (uuid.UUID, time.Time, time.Time) {
	groupID, _ := uuid.Parse(strings.TrimSpace(r.ClassGroupID))
	from, _ := time.Parse("2006-01-02", strings.TrimSpace(r.DateFrom))
	to, _ := time.Parse("2006-01-02", strings.TrimSpace(r.DateTo))
	return groupID, from, to
}
