// file: internals/features/training/class_groups/model/class_group_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassGroupModel merepresentasikan tabel class_groups (rombongan belajar).
type ClassGroupModel struct {
	ClassGroupID uuid.UUID `json:"class_groups_id" gorm:"type:uuid;primaryKey;column:class_groups_id"`

	ClassGroupName      string     `json:"class_groups_name" gorm:"type:text;not null;column:class_groups_name"`
	ClassGroupCode      *string    `json:"class_groups_code,omitempty" gorm:"type:text;column:class_groups_code"`
	ClassGroupTeacherID *uuid.UUID `json:"class_groups_teacher_id,omitempty" gorm:"type:uuid;column:class_groups_teacher_id"`
	// is_active tanpa tag default supaya false tetap masuk INSERT
	// (gorm men-skip zero value pada field ber-default). Default ada di DDL.
	ClassGroupIsActive bool `json:"class_groups_is_active" gorm:"not null;column:class_groups_is_active"`

	ClassGroupCreatedAt time.Time      `json:"class_groups_created_at" gorm:"column:class_groups_created_at;autoCreateTime"`
	ClassGroupUpdatedAt time.Time      `json:"class_groups_updated_at" gorm:"column:class_groups_updated_at;autoUpdateTime"`
	ClassGroupDeletedAt gorm.DeletedAt `json:"class_groups_deleted_at,omitempty" gorm:"column:class_groups_deleted_at;index"`
}

func (ClassGroupModel) TableName() string { return "class_groups" }

func (g *ClassGroupModel) BeforeCreate(tx *gorm.DB) error {
	if g.ClassGroupID == uuid.Nil {
		g.ClassGroupID = uuid.New()
	}
	return nil
}
