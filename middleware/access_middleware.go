package middleware

import (
	"erp-tools-backend/lib/access"
	"erp-tools-backend/models"
	apimodels "erp-tools-backend/models/api"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// AccessRequired пропускает запрос, если итоговый уровень доступа
// пользователя к модулю не ниже требуемого
func AccessRequired(module models.Module, minLevel models.AccessLevel) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := GetUserID(ctx)
		if userID == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		level, err := access.Instance.Resolve(userID, module)
		if err != nil {
			log.
				WithField("user_id", userID).
				WithField("module", module).
				WithError(err).
				Error("ошибка получения уровня доступа")
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		if !level.AtLeast(minLevel) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}
