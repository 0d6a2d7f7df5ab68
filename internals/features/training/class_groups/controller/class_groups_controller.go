// file: internals/features/training/class_groups/controller/class_groups_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "kursusku_backend/internals/features/training/class_groups/dto"
	model "kursusku_backend/internals/features/training/class_groups/model"
	helper "kursusku_backend/internals/helpers"
)

type ClassGroupController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassGroupController(db *gorm.DB) *ClassGroupController {
	return &ClassGroupController{DB: db, Validate: validator.New()}
}

// POST /class-groups
func (ctl *ClassGroupController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat rombel")
	}
	return helper.JsonCreated(c, "Rombel berhasil dibuat", m)
}

// GET /class-groups/:id
func (ctl *ClassGroupController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var m model.ClassGroupModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "class_groups_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Rombel tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil rombel")
	}
	return helper.JsonOK(c, "OK", m)
}

// GET /class-groups
func (ctl *ClassGroupController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.ClassGroupModel{})
	if v := strings.TrimSpace(c.Query("is_active")); v != "" {
		q = q.Where("class_groups_is_active = ?", v == "true")
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		q = q.Where("class_groups_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung rombel")
	}

	var groups []model.ClassGroupModel
	if err := q.Order("class_groups_name asc").
		Limit(p.Limit).Offset(p.Offset).
		Find(&groups).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar rombel")
	}

	return helper.JsonList(c, "OK", groups, helper.BuildPagination(p, total, len(groups)))
}

// PATCH /class-groups/:id
func (ctl *ClassGroupController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var req dto.UpdateClassGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.ClassGroupModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "class_groups_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Rombel tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil rombel")
	}

	req.Apply(&m)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui rombel")
	}
	return helper.JsonOK(c, "Rombel berhasil diperbarui", m)
}

// DELETE /class-groups/:id (soft delete)
func (ctl *ClassGroupController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.ClassGroupModel{}, "class_groups_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus rombel")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Rombel tidak ditemukan")
	}
	return helper.JsonOK(c, "Rombel berhasil dihapus", fiber.Map{"class_groups_id": id})
}
