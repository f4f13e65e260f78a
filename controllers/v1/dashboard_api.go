package apiv1

import (
	"erp-tools-backend/controllers"
	dashboardhandler "erp-tools-backend/lib/dashboard"
	"erp-tools-backend/middleware"
	"erp-tools-backend/models"
	apimodels "erp-tools-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type dashboardApiController struct {
	controllers.BaseAPIController
}

func InitDashboardApiRouters(app *fiber.App) {
	controller := dashboardApiController{}
	app.Route("dashboard", func(router fiber.Router) {
		router.Use(middleware.AccessRequired(models.AnalyticsModule, models.AccessRead))
		router.Get("", controller.get)
		router.Get("skill_coverage/xls", controller.exportSkillCoverage)
	})
}

// @Summary Сводная панель
// @Tags Аналитика
// @Description Сводные показатели по сотрудникам, командировкам и обучению
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.DashboardView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard [get]
func (c *dashboardApiController) get(ctx *fiber.Ctx) error {
	view, err := dashboardhandler.Instance.GetDashboard()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения сводной панели")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Выгрузка покрытия навыков
// @Tags Аналитика
// @Description Выгрузка покрытия навыков по должностям в формате XLSX
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {file} file
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/skill_coverage/xls [get]
func (c *dashboardApiController) exportSkillCoverage(ctx *fiber.Ctx) error {
	file, err := dashboardhandler.Instance.ExportSkillCoverage()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки покрытия навыков")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="skill_coverage.xlsx"`)
	return ctx.Status(fiber.StatusOK).SendStream(file)
}
