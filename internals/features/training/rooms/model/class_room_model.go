// file: internals/features/training/rooms/model/class_room_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ClassRoomModel merepresentasikan tabel class_rooms.
// Ruangan virtual kapasitasnya tak terbatas: tidak pernah ikut cek bentrok.
type ClassRoomModel struct {
	ClassRoomID uuid.UUID `json:"class_rooms_id" gorm:"type:uuid;primaryKey;column:class_rooms_id"`

	ClassRoomName        string  `json:"class_rooms_name" gorm:"type:text;not null;column:class_rooms_name"`
	ClassRoomCode        *string `json:"class_rooms_code,omitempty" gorm:"type:text;column:class_rooms_code"`
	ClassRoomLocation    *string `json:"class_rooms_location,omitempty" gorm:"type:text;column:class_rooms_location"`
	ClassRoomCapacity    *int    `json:"class_rooms_capacity,omitempty" gorm:"column:class_rooms_capacity"`
	ClassRoomDescription *string `json:"class_rooms_description,omitempty" gorm:"type:text;column:class_rooms_description"`

	ClassRoomIsVirtual bool `json:"class_rooms_is_virtual" gorm:"not null;default:false;column:class_rooms_is_virtual"`
	// is_active tanpa tag default: false adalah zero value, gorm akan
	// men-skip-nya dari INSERT kalau ada tag default. Default ada di DDL.
	ClassRoomIsActive bool `json:"class_rooms_is_active" gorm:"not null;column:class_rooms_is_active"`

	ClassRoomFeatures datatypes.JSON `json:"class_rooms_features" gorm:"type:jsonb;column:class_rooms_features"`

	ClassRoomCreatedAt time.Time      `json:"class_rooms_created_at" gorm:"column:class_rooms_created_at;autoCreateTime"`
	ClassRoomUpdatedAt time.Time      `json:"class_rooms_updated_at" gorm:"column:class_rooms_updated_at;autoUpdateTime"`
	ClassRoomDeletedAt gorm.DeletedAt `json:"class_rooms_deleted_at,omitempty" gorm:"column:class_rooms_deleted_at;index"`
}

func (ClassRoomModel) TableName() string { return "class_rooms" }

func (r *ClassRoomModel) BeforeCreate(tx *gorm.DB) error {
	if r.ClassRoomID == uuid.Nil {
		r.ClassRoomID = uuid.New()
	}
	return nil
}
