// file: internals/features/training/class_groups/dto/class_group_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "kursusku_backend/internals/features/training/class_groups/model"
)

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

type CreateClassGroupRequest struct {
	ClassGroupName      string  `json:"class_groups_name" validate:"required,max=160"`
	ClassGroupCode      *string `json:"class_groups_code" validate:"omitempty,max=50"`
	ClassGroupTeacherID *string `json:"class_groups_teacher_id" validate:"omitempty,uuid"`
}

func (r CreateClassGroupRequest) ToModel() model.ClassGroupModel {
	var teacherID *uuid.UUID
	if r.ClassGroupTeacherID != nil {
		if id, err := uuid.Parse(strings.TrimSpace(*r.ClassGroupTeacherID)); err == nil {
			teacherID = &id
		}
	}
	return model.ClassGroupModel{
		ClassGroupName:      strings.TrimSpace(r.ClassGroupName),
		ClassGroupCode:      trimPtr(r.ClassGroupCode),
		ClassGroupTeacherID: teacherID,
		ClassGroupIsActive:  true,
	}
}

// Update (partial)
type UpdateClassGroupRequest struct {
	ClassGroupName      *string `json:"class_groups_name" validate:"omitempty,max=160"`
	ClassGroupCode      *string `json:"class_groups_code" validate:"omitempty,max=50"`
	ClassGroupTeacherID *string `json:"class_groups_teacher_id" validate:"omitempty,uuid"`
	ClassGroupIsActive  *bool   `json:"class_groups_is_active" validate:"omitempty"`
}

func (r UpdateClassGroupRequest) Apply(m *model.ClassGroupModel) {
	if r.ClassGroupName != nil {
		if v := strings.TrimSpace(*r.ClassGroupName); v != "" {
			m.ClassGroupName = v
		}
	}
	if r.ClassGroupCode != nil {
		m.ClassGroupCode = trimPtr(r.ClassGroupCode)
	}
	if r.ClassGroupTeacherID != nil {
		if id, err := uuid.Parse(strings.TrimSpace(*r.ClassGroupTeacherID)); err == nil {
			m.ClassGroupTeacherID = &id
		}
	}
	if r.ClassGroupIsActive != nil {
		m.ClassGroupIsActive = *r.ClassGroupIsActive
	}
}
