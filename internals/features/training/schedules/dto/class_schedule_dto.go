// file: internals/features/training/schedules/dto/class_schedule_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "kursusku_backend/internals/features/training/schedules/model"
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

func parseDateYYYYMMDD(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
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
   1) REQUESTS
   ========================================================= */

type CreateClassScheduleRequest struct {
	ClassScheduleGroupID   string  `json:"class_schedules_group_id" validate:"required,uuid"`
	ClassScheduleTeacherID string  `json:"class_schedules_teacher_id" validate:"required,uuid"`
	ClassScheduleRoomID    *string `json:"class_schedules_room_id" validate:"omitempty,uuid"`

	ClassScheduleRemoteMeetingURL *string `json:"class_schedules_remote_meeting_url" validate:"omitempty,url"`

	ClassScheduleDayOfWeek int    `json:"class_schedules_day_of_week" validate:"required,min=1,max=7"`
	ClassScheduleStartTime string `json:"class_schedules_start_time" validate:"required,datetime=15:04"`
	ClassScheduleEndTime   string `json:"class_schedules_end_time" validate:"required,datetime=15:04"`

	ClassScheduleStartDate string `json:"class_schedules_start_date" validate:"required,datetime=2006-01-02"`
	ClassScheduleEndDate   string `json:"class_schedules_end_date" validate:"required,datetime=2006-01-02"`
}

func (r CreateClassScheduleRequest) ToModel() model.ClassScheduleModel {
	groupID, _ := uuid.Parse(strings.TrimSpace(r.ClassScheduleGroupID))
	teacherID, _ := uuid.Parse(strings.TrimSpace(r.ClassScheduleTeacherID))
	start, _ := parseDateYYYYMMDD(r.ClassScheduleStartDate)
	end, _ := parseDateYYYYMMDD(r.ClassScheduleEndDate)

	return model.ClassScheduleModel{
		ClassScheduleGroupID:          groupID,
		ClassScheduleTeacherID:        teacherID,
		ClassScheduleRoomID:           parseUUIDPtr(r.ClassScheduleRoomID),
		ClassScheduleRemoteMeetingURL: trimPtr(r.ClassScheduleRemoteMeetingURL),
		ClassScheduleDayOfWeek:        r.ClassScheduleDayOfWeek,
		ClassScheduleStartTime:        strings.TrimSpace(r.ClassScheduleStartTime),
		ClassScheduleEndTime:          strings.TrimSpace(r.ClassScheduleEndTime),
		ClassScheduleStartDate:        start,
		ClassScheduleEndDate:          end,
		ClassScheduleIsActive:         true,
	}
}

// Update (partial)
type UpdateClassScheduleRequest struct {
	ClassScheduleTeacherID        *string `json:"class_schedules_teacher_id" validate:"omitempty,uuid"`
	ClassScheduleRoomID           *string `json:"class_schedules_room_id" validate:"omitempty,uuid"`
	ClassScheduleRemoteMeetingURL *string `json:"class_schedules_remote_meeting_url" validate:"omitempty,url"`
	ClassScheduleDayOfWeek        *int    `json:"class_schedules_day_of_week" validate:"omitempty,min=1,max=7"`
	ClassScheduleStartTime        *string `json:"class_schedules_start_time" validate:"omitempty,datetime=15:04"`
	ClassScheduleEndTime          *string `json:"class_schedules_end_time" validate:"omitempty,datetime=15:04"`
	ClassScheduleStartDate        *string `json:"class_schedules_start_date" validate:"omitempty,datetime=2006-01-02"`
	ClassScheduleEndDate          *string `json:"class_schedules_end_date" validate:"omitempty,datetime=2006-01-02"`
	ClassScheduleIsActive         *bool   `json:"class_schedules_is_active" validate:"omitempty"`
}

func (r UpdateClassScheduleRequest) Apply(m *model.ClassScheduleModel) {
	if v := parseUUIDPtr(r.ClassScheduleTeacherID); v != nil {
		m.ClassScheduleTeacherID = *v
	}
	if r.ClassScheduleRoomID != nil {
		m.ClassScheduleRoomID = parseUUIDPtr(r.ClassScheduleRoomID)
	}
	if r.ClassScheduleRemoteMeetingURL != nil {
		m.ClassScheduleRemoteMeetingURL = trimPtr(r.ClassScheduleRemoteMeetingURL)
	}
	if r.ClassScheduleDayOfWeek != nil {
		m.ClassScheduleDayOfWeek = *r.ClassScheduleDayOfWeek
	}
	if r.ClassScheduleStartTime != nil {
		m.ClassScheduleStartTime = strings.TrimSpace(*r.ClassScheduleStartTime)
	}
	if r.ClassScheduleEndTime != nil {
		m.ClassScheduleEndTime = strings.TrimSpace(*r.ClassScheduleEndTime)
	}
	if r.ClassScheduleStartDate != nil {
		if t, ok := parseDateYYYYMMDD(*r.ClassScheduleStartDate); ok {
			m.ClassScheduleStartDate = t
		}
	}
	if r.ClassScheduleEndDate != nil {
		if t, ok := parseDateYYYYMMDD(*r.ClassScheduleEndDate); ok {
			m.ClassScheduleEndDate = t
		}
	}
	if r.ClassScheduleIsActive != nil {
		m.ClassScheduleIsActive = *r.ClassScheduleIsActive
	}
}
