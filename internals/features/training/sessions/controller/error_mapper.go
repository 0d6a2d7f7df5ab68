// file: internals/features/training/sessions/controller/error_mapper.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	model "kursusku_backend/internals/features/training/sessions/model"
	helper "kursusku_backend/internals/helpers"
)

// jsonDomainError memetakan error domain sesi ke respons HTTP.
// Error yang tidak dikenali dianggap kegagalan server.
func jsonDomainError(c *fiber.Ctx, err error, fallback string) error {
	var nf *model.NotFoundError
	if errors.As(err, &nf) {
		return helper.JsonError(c, fiber.StatusNotFound, nf.Error())
	}

	var it *model.InvalidTransitionError
	if errors.As(err, &it) {
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest, "Transisi status tidak diizinkan", fiber.Map{
			"op":   it.Op,
			"from": it.From,
		})
	}

	var tw *model.TimingWindowError
	if errors.As(err, &tw) {
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest, "Di luar jendela waktu yang diizinkan", fiber.Map{
			"op":       tw.Op,
			"deadline": tw.Deadline,
			"now":      tw.Now,
		})
	}

	var ve *model.ValidationError
	if errors.As(err, &ve) {
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest, ve.Message, fiber.Map{
			"field": ve.Field,
			"rule":  ve.Rule,
		})
	}

	var cf *model.ConflictError
	if errors.As(err, &cf) {
		return helper.JsonErrorWithDetails(c, fiber.StatusConflict, "Jadwal bentrok", fiber.Map{
			"resource":   cf.Resource,
			"session_id": cf.SessionID,
			"starts_at":  cf.StartsAt,
			"ends_at":    cf.EndsAt,
		})
	}

	return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
}
