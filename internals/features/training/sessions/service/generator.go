// file: internals/features/training/sessions/service/generator.go
package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	groupModel "kursusku_backend/internals/features/training/class_groups/model"
	roomModel "kursusku_backend/internals/features/training/rooms/model"
	schedModel "kursusku_backend/internals/features/training/schedules/model"
	model "kursusku_backend/internals/features/training/sessions/model"
)

// Generator meng-expand pola mingguan sebuah rombel menjadi class_sessions
// bertanggal. Idempotent: tanggal yang sudah punya sesi untuk (pola, tanggal)
// dilewati, jadi generate ulang rentang yang sama menghasilkan nol sesi baru.
//
// Generator TIDAK menjalankan ConflictValidator per sesi: pola sudah
// divalidasi bentrok saat dibuat. Pembuatan manual-lah yang selalu dicek.
type Generator struct {
	DB  *gorm.DB
	Loc *time.Location
}

func NewGenerator(db *gorm.DB) *Generator {
	return &Generator{DB: db, Loc: time.Local}
}

// Generate membuat dan menyimpan sesi baru untuk rentang [from, to] (inklusif).
func (g *Generator) Generate(ctx context.Context, groupID uuid.UUID, from, to time.Time) ([]model.ClassSessionModel, error) {
	var created []model.ClassSessionModel
	err := g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sessions, err := g.expand(tx, groupID, from, to)
		if err != nil {
			return err
		}
		for i := range sessions {
			if err := tx.Create(&sessions[i]).Error; err != nil {
				return translatePGError(err)
			}
		}
		created = sessions
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Preview menghitung sesi yang AKAN dibuat, tanpa menyimpan apa pun.
func (g *Generator) Preview(ctx context.Context, groupID uuid.UUID, from, to time.Time) ([]model.ClassSessionModel, error) {
	return g.expand(g.DB.WithContext(ctx), groupID, from, to)
}

func (g *Generator) expand(db *gorm.DB, groupID uuid.UUID, from, to time.Time) ([]model.ClassSessionModel, error) {
	from = schedModel.DateOnly(from)
	to = schedModel.DateOnly(to)
	if to.Before(from) {
		return nil, &model.ValidationError{
			Field:   "date_to",
			Rule:    "after_from",
			Message: "date_to harus >= date_from",
		}
	}

	// rombel wajib ada
	var cnt int64
	if err := db.Model(&groupModel.ClassGroupModel{}).
		Where("class_groups_id = ?", groupID).
		Count(&cnt).Error; err != nil {
		return nil, err
	}
	if cnt == 0 {
		return nil, &model.NotFoundError{Entity: "class_group", ID: groupID}
	}

	// pola aktif yang jendela berlakunya menyentuh rentang
	var patterns []schedModel.ClassScheduleModel
	if err := db.
		Where("class_schedules_group_id = ?", groupID).
		Where("class_schedules_is_active = ?", true).
		Where("class_schedules_start_date <= ? AND class_schedules_end_date >= ?", to, from).
		Find(&patterns).Error; err != nil {
		return nil, err
	}
	if len(patterns) == 0 {
		// rombel tanpa pola bukan error
		return []model.ClassSessionModel{}, nil
	}

	patternIDs := make([]uuid.UUID, 0, len(patterns))
	roomIDs := make([]uuid.UUID, 0, len(patterns))
	for _, p := range patterns {
		patternIDs = append(patternIDs, p.ClassScheduleID)
		if p.ClassScheduleRoomID != nil {
			roomIDs = append(roomIDs, *p.ClassScheduleRoomID)
		}
	}

	// sesi yang sudah ada untuk (pola, tanggal) di rentang ini → skip
	var existing []model.ClassSessionModel
	if err := db.
		Select("class_sessions_schedule_id, class_sessions_date").
		Where("class_sessions_schedule_id IN ?", patternIDs).
		Where("class_sessions_date >= ? AND class_sessions_date <= ?", from, to).
		Find(&existing).Error; err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(existing))
	for _, e := range existing {
		if e.ClassSessionScheduleID != nil {
			taken[occKey(*e.ClassSessionScheduleID, e.ClassSessionDate)] = true
		}
	}

	// peta ruangan untuk inferensi mode
	virtual := map[uuid.UUID]bool{}
	if len(roomIDs) > 0 {
		var rooms []roomModel.ClassRoomModel
		if err := db.Where("class_rooms_id IN ?", roomIDs).Find(&rooms).Error; err != nil {
			return nil, err
		}
		for _, r := range rooms {
			virtual[r.ClassRoomID] = r.ClassRoomIsVirtual
		}
	}

	var out []model.ClassSessionModel
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		for i := range patterns {
			p := &patterns[i]
			if !p.OccursOn(d) {
				continue
			}
			if taken[occKey(p.ClassScheduleID, d)] {
				continue
			}

			start, end, err := p.WindowOn(d, g.Loc)
			if err != nil {
				log.Printf("[GENERATOR] ⚠️ pola %s dilewati: %v", p.ClassScheduleID, err)
				continue
			}

			mode, roomID, meeting := inferMode(p, virtual)
			pid := p.ClassScheduleID
			gid := groupID
			out = append(out, model.ClassSessionModel{
				ClassSessionGroupID:          &gid,
				ClassSessionScheduleID:       &pid,
				ClassSessionTeacherID:        p.ClassScheduleTeacherID,
				ClassSessionType:             model.SessionTypeRegular,
				ClassSessionDate:             d,
				ClassSessionStartsAt:         start,
				ClassSessionEndsAt:           end,
				ClassSessionMode:             mode,
				ClassSessionRoomID:           roomID,
				ClassSessionRemoteMeetingURL: meeting,
				ClassSessionStatus:           model.SessionScheduled,
			})
		}
	}
	return out, nil
}

func occKey(patternID uuid.UUID, date time.Time) string {
	return patternID.String() + "|" + date.Format("2006-01-02")
}

// inferMode: ruangan fisik → onsite; ruangan virtual → online;
// konfigurasi lain (fisik + meeting, atau tanpa ruangan) → hybrid/online.
func inferMode(p *schedModel.ClassScheduleModel, virtual map[uuid.UUID]bool) (model.SessionMode, *uuid.UUID, *string) {
	meeting := p.ClassScheduleRemoteMeetingURL

	if p.ClassScheduleRoomID != nil {
		roomID := p.ClassScheduleRoomID
		if virtual[*roomID] {
			return model.SessionModeOnline, roomID, meeting
		}
		if meeting != nil && *meeting != "" {
			return model.SessionModeHybrid, roomID, meeting
		}
		return model.SessionModeOnsite, roomID, nil
	}
	return model.SessionModeOnline, nil, meeting
}
