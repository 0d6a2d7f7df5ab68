// file: internals/features/training/schedules/controller/class_schedules_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	groupModel "kursusku_backend/internals/features/training/class_groups/model"
	roomModel "kursusku_backend/internals/features/training/rooms/model"
	dto "kursusku_backend/internals/features/training/schedules/dto"
	model "kursusku_backend/internals/features/training/schedules/model"
	helper "kursusku_backend/internals/helpers"
)

type ClassScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassScheduleController(db *gorm.DB) *ClassScheduleController {
	return &ClassScheduleController{DB: db, Validate: validator.New()}
}

/* =========================================================
   Semantic checks (di luar tag validator)
========================================================= */

// validateSemantics: jam & tanggal konsisten, kebutuhan meeting URL terpenuhi.
// Cek bentrok pola-vs-pola dilakukan di sini karena generator
// mempercayai pola yang sudah tersimpan.
func (ctl *ClassScheduleController) validateSemantics(c *fiber.Ctx, m *model.ClassScheduleModel) error {
	if m.ClassScheduleEndTime <= m.ClassScheduleStartTime {
		return fiber.NewError(fiber.StatusBadRequest, "Jam selesai harus setelah jam mulai")
	}
	if m.ClassScheduleEndDate.Before(m.ClassScheduleStartDate) {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal selesai harus >= tanggal mulai")
	}

	// group wajib ada
	var cnt int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&groupModel.ClassGroupModel{}).
		Where("class_groups_id = ?", m.ClassScheduleGroupID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal validasi rombel")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Rombel tidak ditemukan")
	}

	// ruangan (jika ada) wajib ada; pola tanpa ruangan fisik wajib punya meeting URL
	needMeeting := m.ClassScheduleRoomID == nil
	if m.ClassScheduleRoomID != nil {
		var room roomModel.ClassRoomModel
		if err := ctl.DB.WithContext(c.UserContext()).
			First(&room, "class_rooms_id = ?", *m.ClassScheduleRoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Ruangan tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal validasi ruangan")
		}
		if room.ClassRoomIsVirtual {
			needMeeting = true
		}
	}
	if needMeeting && m.ClassScheduleRemoteMeetingURL == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Pola tanpa ruangan fisik wajib punya remote meeting URL")
	}

	// bentrok pola-vs-pola: hari sama, jam overlap, jendela tanggal overlap,
	// ruangan fisik sama ATAU pengajar sama
	q := ctl.DB.WithContext(c.UserContext()).
		Model(&model.ClassScheduleModel{}).
		Where("class_schedules_id <> ?", m.ClassScheduleID).
		Where("class_schedules_is_active").
		Where("class_schedules_day_of_week = ?", m.ClassScheduleDayOfWeek).
		Where("class_schedules_start_time < ? AND ? < class_schedules_end_time",
			m.ClassScheduleEndTime, m.ClassScheduleStartTime).
		Where("class_schedules_start_date <= ? AND ? <= class_schedules_end_date",
			m.ClassScheduleEndDate, m.ClassScheduleStartDate)

	if m.ClassScheduleRoomID != nil {
		q = q.Where("class_schedules_room_id = ? OR class_schedules_teacher_id = ?",
			*m.ClassScheduleRoomID, m.ClassScheduleTeacherID)
	} else {
		q = q.Where("class_schedules_teacher_id = ?", m.ClassScheduleTeacherID)
	}

	var clash model.ClassScheduleModel
	err := q.Take(&clash).Error
	if err == nil {
		return fiber.NewError(fiber.StatusConflict,
			"Pola bentrok dengan pola lain: "+clash.ClassScheduleID.String())
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek bentrok pola")
	}
	return nil
}

/* =========================================================
   CRUD
========================================================= */

// POST /class-schedules
func (ctl *ClassScheduleController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.validateSemantics(c, &m); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pola jadwal")
	}
	return helper.JsonCreated(c, "Pola jadwal berhasil dibuat", m)
}

// GET /class-schedules/:id
func (ctl *ClassScheduleController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var m model.ClassScheduleModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "class_schedules_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pola jadwal tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pola jadwal")
	}
	return helper.JsonOK(c, "OK", m)
}

// GET /class-schedules?group_id=&teacher_id=&day_of_week=&is_active=
func (ctl *ClassScheduleController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.ClassScheduleModel{})
	if v := strings.TrimSpace(c.Query("group_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "group_id tidak valid")
		}
		q = q.Where("class_schedules_group_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("teacher_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
		}
		q = q.Where("class_schedules_teacher_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("day_of_week")); v != "" {
		q = q.Where("class_schedules_day_of_week = ?", v)
	}
	if v := strings.TrimSpace(c.Query("is_active")); v != "" {
		q = q.Where("class_schedules_is_active = ?", v == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pola jadwal")
	}

	var items []model.ClassScheduleModel
	if err := q.Order("class_schedules_day_of_week asc, class_schedules_start_time asc").
		Limit(p.Limit).Offset(p.Offset).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar pola jadwal")
	}

	return helper.JsonList(c, "OK", items, helper.BuildPagination(p, total, len(items)))
}

// PATCH /class-schedules/:id
func (ctl *ClassScheduleController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var req dto.UpdateClassScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.ClassScheduleModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "class_schedules_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pola jadwal tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pola jadwal")
	}

	req.Apply(&m)
	if err := ctl.validateSemantics(c, &m); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pola jadwal")
	}
	return helper.JsonOK(c, "Pola jadwal berhasil diperbarui", m)
}

// DELETE /class-schedules/:id (soft delete; sesi yang sudah digenerate tetap hidup)
func (ctl *ClassScheduleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.ClassScheduleModel{}, "class_schedules_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pola jadwal")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pola jadwal tidak ditemukan")
	}
	return helper.JsonOK(c, "Pola jadwal berhasil dihapus", fiber.Map{"class_schedules_id": id})
}
