// file: internals/features/training/schedules/model/class_schedule_model.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: ClassScheduleModel
========================= */

// ClassScheduleModel adalah pola mingguan (template) yang di-expand
// generator menjadi class_sessions bertanggal.
type ClassScheduleModel struct {
	ClassScheduleID uuid.UUID `json:"class_schedules_id" gorm:"type:uuid;primaryKey;column:class_schedules_id"`

	ClassScheduleGroupID   uuid.UUID  `json:"class_schedules_group_id" gorm:"type:uuid;not null;column:class_schedules_group_id;index"`
	ClassScheduleTeacherID uuid.UUID  `json:"class_schedules_teacher_id" gorm:"type:uuid;not null;column:class_schedules_teacher_id"`
	ClassScheduleRoomID    *uuid.UUID `json:"class_schedules_room_id,omitempty" gorm:"type:uuid;column:class_schedules_room_id"`

	ClassScheduleRemoteMeetingURL *string `json:"class_schedules_remote_meeting_url,omitempty" gorm:"type:text;column:class_schedules_remote_meeting_url"`

	// Pola berulang: 1=Senin .. 7=Minggu (ISO), jam "HH:MM"
	ClassScheduleDayOfWeek int    `json:"class_schedules_day_of_week" gorm:"not null;column:class_schedules_day_of_week"`
	ClassScheduleStartTime string `json:"class_schedules_start_time" gorm:"type:varchar(5);not null;column:class_schedules_start_time"`
	ClassScheduleEndTime   string `json:"class_schedules_end_time" gorm:"type:varchar(5);not null;column:class_schedules_end_time"`

	// Batas berlaku pola
	ClassScheduleStartDate time.Time `json:"class_schedules_start_date" gorm:"type:date;not null;column:class_schedules_start_date"`
	ClassScheduleEndDate   time.Time `json:"class_schedules_end_date" gorm:"type:date;not null;column:class_schedules_end_date"`

	// Tanpa tag default: gorm men-skip field ber-default saat nilainya zero,
	// sehingga false tidak pernah sampai ke INSERT. Default ada di DDL.
	ClassScheduleIsActive bool `json:"class_schedules_is_active" gorm:"not null;column:class_schedules_is_active"`

	ClassScheduleCreatedAt time.Time      `json:"class_schedules_created_at" gorm:"column:class_schedules_created_at;autoCreateTime"`
	ClassScheduleUpdatedAt time.Time      `json:"class_schedules_updated_at" gorm:"column:class_schedules_updated_at;autoUpdateTime"`
	ClassScheduleDeletedAt gorm.DeletedAt `json:"class_schedules_deleted_at,omitempty" gorm:"column:class_schedules_deleted_at;index"`
}

func (ClassScheduleModel) TableName() string { return "class_schedules" }

func (cs *ClassScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if cs.ClassScheduleID == uuid.Nil {
		cs.ClassScheduleID = uuid.New()
	}
	return nil
}

/* =========================
   Occurrence helpers
========================= */

// ParseClock mengurai "HH:MM" (24 jam).
func ParseClock(s string) (h, m int, err error) {
	if _, err := time.Parse("15:04", s); err != nil {
		return 0, 0, fmt.Errorf("jam tidak valid (HH:MM): %q", s)
	}
	fmt.Sscanf(s, "%d:%d", &h, &m)
	return h, m, nil
}

// OccursOn melaporkan apakah pola jatuh pada tanggal tsb
// (dalam jendela berlaku dan hari yang cocok).
func (cs *ClassScheduleModel) OccursOn(date time.Time) bool {
	dow := int(date.Weekday())
	if dow == 0 {
		dow = 7 // Minggu → ISO 7
	}
	if dow != cs.ClassScheduleDayOfWeek {
		return false
	}
	day := DateOnly(date)
	return !day.Before(DateOnly(cs.ClassScheduleStartDate)) && !day.After(DateOnly(cs.ClassScheduleEndDate))
}

// DateOnly membuang komponen jam & zona (anchor midnight UTC) supaya
// perbandingan tanggal konsisten apa pun sumbernya.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WindowOn membangun [starts_at, ends_at) konkret untuk tanggal tsb.
func (cs *ClassScheduleModel) WindowOn(date time.Time, loc *time.Location) (start, end time.Time, err error) {
	sh, sm, err := ParseClock(cs.ClassScheduleStartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	eh, em, err := ParseClock(cs.ClassScheduleEndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start = time.Date(date.Year(), date.Month(), date.Day(), sh, sm, 0, 0, loc)
	end = time.Date(date.Year(), date.Month(), date.Day(), eh, em, 0, 0, loc)
	return start, end, nil
}
