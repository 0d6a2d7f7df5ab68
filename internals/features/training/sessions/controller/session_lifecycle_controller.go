// file: internals/features/training/sessions/controller/session_lifecycle_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "kursusku_backend/internals/features/training/sessions/dto"
	"kursusku_backend/internals/features/training/sessions/service"
	helper "kursusku_backend/internals/helpers"
)

/*
=========================================================

	Lifecycle endpoints: start / complete / cancel /
	postpone (± reschedule) / change-mode
	=========================================================
*/
type SessionLifecycleController struct {
	Validate   *validator.Validate
	Lifecycle  *service.Lifecycle
	Postponing *service.Postponement
}

func NewSessionLifecycleController(db *gorm.DB, policy service.LifecyclePolicy) *SessionLifecycleController {
	return &SessionLifecycleController{
		Validate:   validator.New(),
		Lifecycle:  service.NewLifecycle(db, policy),
		Postponing: service.NewPostponement(db, policy),
	}
}

func (ctl *SessionLifecycleController) sessionID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params("id")))
}

// POST /class-sessions/:id/start
func (ctl *SessionLifecycleController) Start(c *fiber.Ctx) error {
	id, err := ctl.sessionID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	s, err := ctl.Lifecycle.Start(c.UserContext(), id)
	if err != nil {
		return jsonDomainError(c, err, "Gagal memulai sesi")
	}
	return helper.JsonOK(c, "Sesi dimulai", s)
}

// POST /class-sessions/:id/complete
func (ctl *SessionLifecycleController) Complete(c *fiber.Ctx) error {
	id, err := ctl.sessionID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var req dto.CompleteClassSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	s, err := ctl.Lifecycle.Complete(c.UserContext(), id, req.ClassSessionTopicsCovered)
	if err != nil {
		return jsonDomainError(c, err, "Gagal menyelesaikan sesi")
	}
	return helper.JsonOK(c, "Sesi selesai", s)
}

// POST /class-sessions/:id/cancel
func (ctl *SessionLifecycleController) Cancel(c *fiber.Ctx) error {
	id, err := ctl.sessionID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var req dto.CancelClassSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	s, err := ctl.Lifecycle.Cancel(c.UserContext(), id, req.Reason)
	if err != nil {
		return jsonDomainError(c, err, "Gagal membatalkan sesi")
	}
	return helper.JsonOK(c, "Sesi dibatalkan", s)
}

// POST /class-sessions/:id/postpone
// Tanpa blok reschedule: hanya menunda. Dengan blok: tunda + buat sesi pengganti
// dalam satu transaksi.
func (ctl *SessionLifecycleController) Postpone(c *fiber.Ctx) error {
	id, err := ctl.sessionID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var req dto.PostponeClassSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.Reschedule == nil {
		s, err := ctl.Lifecycle.Postpone(c.UserContext(), id, req.Reason)
		if err != nil {
			return jsonDomainError(c, err, "Gagal menunda sesi")
		}
		return helper.JsonOK(c, "Sesi ditunda", s)
	}

	orig, recovery, err := ctl.Postponing.PostponeAndReschedule(
		c.UserContext(), id, req.Reason, req.Reschedule.ToSlot())
	if err != nil {
		return jsonDomainError(c, err, "Gagal menunda dan menjadwalkan ulang sesi")
	}
	return helper.JsonOK(c, "Sesi ditunda dan dijadwalkan ulang", fiber.Map{
		"postponed": orig,
		"recovery":  recovery,
	})
}

// POST /class-sessions/:id/change-mode
func (ctl *SessionLifecycleController) ChangeMode(c *fiber.Ctx) error {
	id, err := ctl.sessionID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	var req dto.ChangeModeClassSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	s, err := ctl.Lifecycle.ChangeMode(c.UserContext(), id, req.ToInput())
	if err != nil {
		return jsonDomainError(c, err, "Gagal mengganti mode sesi")
	}
	return helper.JsonOK(c, "Mode sesi diperbarui", s)
}
