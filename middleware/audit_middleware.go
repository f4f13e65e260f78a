package middleware

import (
	"strings"

	audithandler "erp-tools-backend/lib/audit"
	dbmodels "erp-tools-backend/models/db"

	"github.com/gofiber/fiber/v2"
)

var auditActions = map[string]string{
	fiber.MethodPost:   "create",
	fiber.MethodPut:    "update",
	fiber.MethodPatch:  "update",
	fiber.MethodDelete: "delete",
}

// AuditLog журналирует успешные модифицирующие запросы.
// Запись выполняется после обработчика, ошибки журнала ответ не меняют.
func AuditLog() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		action, mutating := auditActions[ctx.Method()]
		err := ctx.Next()
		if err != nil || !mutating {
			return err
		}
		status := ctx.Response().StatusCode()
		if status < fiber.StatusOK || status >= fiber.StatusMultipleChoices {
			return nil
		}
		module, entityType, entityID := parsePath(ctx.Path())
		audithandler.Instance.Log(dbmodels.ActivityLog{
			UserID:     GetUserID(ctx),
			Action:     action,
			Module:     module,
			EntityType: entityType,
			EntityID:   entityID,
			ClientIP:   ctx.IP(),
			Details:    ctx.Method() + " " + ctx.Path(),
		})
		return nil
	}
}

// parsePath модулем считается первый сегмент после /api/v1
func parsePath(path string) (module, entityType, entityID string) {
	path = strings.TrimPrefix(path, "/api/v1/")
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) > 0 {
		module = segments[0]
	}
	if len(segments) > 1 {
		entityType = segments[1]
	}
	if len(segments) > 2 {
		entityID = segments[2]
	}
	return module, entityType, entityID
}
