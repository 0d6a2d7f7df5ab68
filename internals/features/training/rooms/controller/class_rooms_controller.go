// file: internals/features/training/rooms/controller/class_rooms_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "kursusku_backend/internals/features/training/rooms/dto"
	model "kursusku_backend/internals/features/training/rooms/model"
	helper "kursusku_backend/internals/helpers"
)

type ClassRoomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassRoomController(db *gorm.DB) *ClassRoomController {
	return &ClassRoomController{DB: db, Validate: validator.New()}
}

// POST /class-rooms
func (ctl *ClassRoomController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat ruangan")
	}
	return helper.JsonCreated(c, "Ruangan berhasil dibuat", m)
}

// GET /class-rooms/:id
func (ctl *ClassRoomController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var m model.ClassRoomModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "class_rooms_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ruangan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil ruangan")
	}
	return helper.JsonOK(c, "OK", m)
}

// GET /class-rooms?is_virtual=&is_active=&q=
func (ctl *ClassRoomController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.ClassRoomModel{})
	if v := strings.TrimSpace(c.Query("is_virtual")); v != "" {
		q = q.Where("class_rooms_is_virtual = ?", v == "true")
	}
	if v := strings.TrimSpace(c.Query("is_active")); v != "" {
		q = q.Where("class_rooms_is_active = ?", v == "true")
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		q = q.Where("class_rooms_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung ruangan")
	}

	var rooms []model.ClassRoomModel
	if err := q.Order("class_rooms_name asc").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rooms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar ruangan")
	}

	return helper.JsonList(c, "OK", rooms, helper.BuildPagination(p, total, len(rooms)))
}

// PATCH /class-rooms/:id
func (ctl *ClassRoomController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var req dto.UpdateClassRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.ClassRoomModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "class_rooms_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ruangan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil ruangan")
	}

	req.Apply(&m)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui ruangan")
	}
	return helper.JsonOK(c, "Ruangan berhasil diperbarui", m)
}

// DELETE /class-rooms/:id (soft delete)
func (ctl *ClassRoomController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.ClassRoomModel{}, "class_rooms_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus ruangan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Ruangan tidak ditemukan")
	}
	return helper.JsonOK(c, "Ruangan berhasil dihapus", fiber.Map{"class_rooms_id": id})
}
