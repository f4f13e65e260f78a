package apiv1

import (
	"erp-tools-backend/controllers"
	audithandler "erp-tools-backend/lib/audit"
	"erp-tools-backend/middleware"
	"erp-tools-backend/models"
	apimodels "erp-tools-backend/models/api"
	auditapimodels "erp-tools-backend/models/api/audit"

	"github.com/gofiber/fiber/v2"
)

type auditApiController struct {
	controllers.BaseAPIController
}

func InitAuditApiRouters(app *fiber.App) {
	controller := auditApiController{}
	app.Route("audit", func(router fiber.Router) {
		router.Use(middleware.AccessRequired(models.CoreModule, models.AccessAdmin))
		router.Post("list", controller.list)
	})
}

// @Summary Журнал действий
// @Tags Аудит
// @Description Журнал действий пользователей
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 auditapimodels.AuditFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]auditapimodels.AuditView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/audit/list [post]
func (c *auditApiController) list(ctx *fiber.Ctx) error {
	var payload auditapimodels.AuditFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := audithandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения журнала действий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}
