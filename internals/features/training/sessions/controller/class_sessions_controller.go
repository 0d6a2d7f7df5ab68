// file: internals/features/training/sessions/controller/class_sessions_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "kursusku_backend/internals/features/training/sessions/dto"
	model "kursusku_backend/internals/features/training/sessions/model"
	"kursusku_backend/internals/features/training/sessions/service"
	helper "kursusku_backend/internals/helpers"
)

type ClassSessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.Sessions
}

func NewClassSessionController(db *gorm.DB) *ClassSessionController {
	return &ClassSessionController{
		DB:       db,
		Validate: validator.New(),
		Service:  service.NewSessions(db),
	}
}

// POST /class-sessions (sesi manual: extra, recovery, atau regular lepas-pola)
func (ctl *ClassSessionController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.Service.Create(c.UserContext(), &m); err != nil {
		return jsonDomainError(c, err, "Gagal membuat sesi")
	}
	return helper.JsonCreated(c, "Sesi berhasil dibuat", m)
}

// GET /class-sessions/:id
func (ctl *ClassSessionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	m, err := ctl.Service.GetByID(c.UserContext(), id)
	if err != nil {
		return jsonDomainError(c, err, "Gagal mengambil sesi")
	}
	return helper.JsonOK(c, "OK", m)
}

// GET /class-sessions?group_id=&teacher_id=&status=&date_from=&date_to=
func (ctl *ClassSessionController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	f := service.ListFilter{Limit: p.Limit, Offset: p.Offset}
	if v := strings.TrimSpace(c.Query("group_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "group_id tidak valid")
		}
		f.GroupID = &id
	}
	if v := strings.TrimSpace(c.Query("teacher_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
		}
		f.TeacherID = &id
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		st := model.SessionStatus(v)
		if !st.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "status tidak valid")
		}
		f.Status = &st
	}
	if v := strings.TrimSpace(c.Query("date_from")); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_from tidak valid")
		}
		f.DateFrom = &t
	}
	if v := strings.TrimSpace(c.Query("date_to")); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_to tidak valid")
		}
		f.DateTo = &t
	}

	items, total, err := ctl.Service.List(c.UserContext(), f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar sesi")
	}
	return helper.JsonList(c, "OK", items, helper.BuildPagination(p, total, len(items)))
}

// DELETE /class-sessions/:id (soft delete; hanya sesi yang belum berjalan)
func (ctl *ClassSessionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var m model.ClassSessionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "class_sessions_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sesi")
	}
	if m.ClassSessionStatus != model.SessionScheduled {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Hanya sesi berstatus scheduled yang bisa dihapus; gunakan cancel untuk sisanya")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus sesi")
	}
	return helper.JsonOK(c, "Sesi berhasil dihapus", fiber.Map{"class_sessions_id": id})
}
