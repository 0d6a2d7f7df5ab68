// file: internals/features/training/rooms/dto/class_room_dto.go
package dto

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"

	model "kursusku_backend/internals/features/training/rooms/model"
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

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateClassRoomRequest struct {
	ClassRoomName        string  `json:"class_rooms_name" validate:"required,max=160"`
	ClassRoomCode        *string `json:"class_rooms_code" validate:"omitempty,max=50"`
	ClassRoomLocation    *string `json:"class_rooms_location" validate:"omitempty,max=200"`
	ClassRoomCapacity    *int    `json:"class_rooms_capacity" validate:"omitempty,min=1"`
	ClassRoomDescription *string `json:"class_rooms_description" validate:"omitempty"`
	ClassRoomIsVirtual   *bool   `json:"class_rooms_is_virtual" validate:"omitempty"`
	ClassRoomFeatures    []string `json:"class_rooms_features" validate:"omitempty,dive,max=60"`
}

func (r CreateClassRoomRequest) ToModel() model.ClassRoomModel {
	isVirtual := false
	if r.ClassRoomIsVirtual != nil {
		isVirtual = *r.ClassRoomIsVirtual
	}

	features := datatypes.JSON([]byte("[]"))
	if len(r.ClassRoomFeatures) > 0 {
		b, _ := json.Marshal(r.ClassRoomFeatures)
		features = datatypes.JSON(b)
	}

	return model.ClassRoomModel{
		ClassRoomName:        strings.TrimSpace(r.ClassRoomName),
		ClassRoomCode:        trimPtr(r.ClassRoomCode),
		ClassRoomLocation:    trimPtr(r.ClassRoomLocation),
		ClassRoomCapacity:    r.ClassRoomCapacity,
		ClassRoomDescription: trimPtr(r.ClassRoomDescription),
		ClassRoomIsVirtual:   isVirtual,
		ClassRoomIsActive:    true,
		ClassRoomFeatures:    features,
	}
}

// Update (partial)
type UpdateClassRoomRequest struct {
	ClassRoomName        *string  `json:"class_rooms_name" validate:"omitempty,max=160"`
	ClassRoomCode        *string  `json:"class_rooms_code" validate:"omitempty,max=50"`
	ClassRoomLocation    *string  `json:"class_rooms_location" validate:"omitempty,max=200"`
	ClassRoomCapacity    *int     `json:"class_rooms_capacity" validate:"omitempty,min=1"`
	ClassRoomDescription *string  `json:"class_rooms_description" validate:"omitempty"`
	ClassRoomIsActive    *bool    `json:"class_rooms_is_active" validate:"omitempty"`
	ClassRoomFeatures    []string `json:"class_rooms_features" validate:"omitempty,dive,max=60"`
}

func (r UpdateClassRoomRequest) Apply(m *model.ClassRoomModel) {
	if r.ClassRoomName != nil {
		if v := strings.TrimSpace(*r.ClassRoomName); v != "" {
			m.ClassRoomName = v
		}
	}
	if r.ClassRoomCode != nil {
		m.ClassRoomCode = trimPtr(r.ClassRoomCode)
	}
	if r.ClassRoomLocation != nil {
		m.ClassRoomLocation = trimPtr(r.ClassRoomLocation)
	}
	if r.ClassRoomCapacity != nil {
		m.ClassRoomCapacity = r.ClassRoomCapacity
	}
	if r.ClassRoomDescription != nil {
		m.ClassRoomDescription = trimPtr(r.ClassRoomDescription)
	}
	if r.ClassRoomIsActive != nil {
		m.ClassRoomIsActive = *r.ClassRoomIsActive
	}
	if r.ClassRoomFeatures != nil {
		b, _ := json.Marshal(r.ClassRoomFeatures)
		m.ClassRoomFeatures = datatypes.JSON(b)
	}
}
