// file: internals/features/training/sessions/controller/session_generate_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "kursusku_backend/internals/features/training/sessions/dto"
	"kursusku_backend/internals/features/training/sessions/service"
	helper "kursusku_backend/internals/helpers"
)

type SessionGenerateController struct {
	Validate  *validator.Validate
	Generator *service.Generator
}

func NewSessionGenerateController(db *gorm.DB) *SessionGenerateController {
	return &SessionGenerateController{
		Validate:  validator.New(),
		Generator: service.NewGenerator(db),
	}
}

func (ctl *SessionGenerateController) parseRequest(c *fiber.Ctx) (*dto.GenerateClassSessionsRequest, error) {
	var req dto.GenerateClassSessionsRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return nil, helper.JsonValidationError(c, err)
	}
	return &req, nil
}

// POST /class-sessions/generate
// dry_run=true → sama dengan /generate/preview.
func (ctl *SessionGenerateController) Generate(c *fiber.Ctx) error {
	req, err := ctl.parseRequest(c)
	if err != nil {
		return err
	}
	if req.DryRun {
		return ctl.preview(c, req)
	}

	groupID, from, to := req.Range()
	items, err := ctl.Generator.Generate(c.UserContext(), groupID, from, to)
	if err != nil {
		return jsonDomainError(c, err, "Gagal generate sesi")
	}
	return helper.JsonCreated(c, "Sesi berhasil digenerate", fiber.Map{
		"count": len(items),
		"items": items,
	})
}

// POST /class-sessions/generate/preview — hitung tanpa menyimpan.
func (ctl *SessionGenerateController) Preview(c *fiber.Ctx) error {
	req, err := ctl.parseRequest(c)
	if err != nil {
		return err
	}
	return ctl.preview(c, req)
}

func (ctl *SessionGenerateController) preview(c *fiber.Ctx, req *dto.GenerateClassSessionsRequest) error {
	groupID, from, to := req.Range()
	items, err := ctl.Generator.Preview(c.UserContext(), groupID, from, to)
	if err != nil {
		return jsonDomainError(c, err, "Gagal pratinjau generate sesi")
	}
	return helper.JsonOK(c, "Pratinjau generate sesi", fiber.Map{
		"count": len(items),
		"items": items,
	})
}
