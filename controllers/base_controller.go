package controllers

import (
	apperrors "erp-tools-backend/lib/utils/app-errors"
	"erp-tools-backend/middleware"
	apimodels "erp-tools-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("не указан идентификатор записи")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("user_id", middleware.GetUserID(ctx)).
		WithField("path", ctx.Path())
}

// SendError бизнес-ошибки уходят клиенту с кодом 4xx и своим текстом,
// прочие скрываются за сообщением по умолчанию
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, defaultMsg string) error {
	switch apperrors.GetKind(err) {
	case apperrors.KindInvalidTransition, apperrors.KindValidation, apperrors.KindEmptyPlan:
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	case apperrors.KindNotFound:
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case apperrors.KindPermissionDenied:
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	}
	logger.WithError(err).Error(defaultMsg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(defaultMsg))
}
