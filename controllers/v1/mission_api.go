package apiv1

import (
	"fmt"

	"erp-tools-backend/controllers"
	missionhandler "erp-tools-backend/lib/mission"
	"erp-tools-backend/middleware"
	"erp-tools-backend/models"
	apimodels "erp-tools-backend/models/api"
	missionapimodels "erp-tools-backend/models/api/mission"

	"github.com/gofiber/fiber/v2"
)

type missionApiController struct {
	controllers.BaseAPIController
}

func InitMissionApiRouters(app *fiber.App) {
	controller := missionApiController{}
	app.Route("missions", func(router fiber.Router) {
		router.Post("list", middleware.AccessRequired(models.HrModule, models.AccessRead), controller.list)
		router.Post("", middleware.AccessRequired(models.HrModule, models.AccessCreate), controller.create)
		router.Put("bulk_approve_manager", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.bulkApproveManager)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", middleware.AccessRequired(models.HrModule, models.AccessRead), controller.get)
			idRoute.Put("", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.update)
			idRoute.Delete("", middleware.AccessRequired(models.HrModule, models.AccessDelete), controller.delete)
			idRoute.Put("submit", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.submit)
			idRoute.Put("approve_manager", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.approveManager)
			idRoute.Put("approve_hr", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.approveHr)
			idRoute.Put("approve_finance", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.approveFinance)
			idRoute.Put("reject", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.reject)
			idRoute.Put("cancel", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.cancel)
			idRoute.Put("report", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.submitReport)
			idRoute.Post("order", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.generateOrder)
			idRoute.Get("order", middleware.AccessRequired(models.HrModule, models.AccessRead), controller.downloadOrder)
		})
	})
}

// @Summary Список командировок
// @Tags Командировки
// @Description Список командировок
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 missionapimodels.MissionFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]missionapimodels.MissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/missions/list [post]
func (c *missionApiController) list(ctx *fiber.Ctx) error {
	var payload missionapimodels.MissionFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := missionhandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка командировок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Создание командировки
// @Tags Командировки
// @Description Создание командировки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 missionapimodels.MissionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/missions [post]
func (c *missionApiController) create(ctx *fiber.Ctx) error {
	var payload missionapimodels.MissionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := missionhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания командировки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Получение командировки
// @Tags Командировки
// @Description Получение командировки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=missionapimodels.MissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/missions/{id} [get]
func (c *missionApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := missionhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения командировки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Изменение командировки
// @Tags Командировки
// @Description Изменение командировки в статусе черновика
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 missionapimodels.MissionData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/missions/{id} [put]
func (c *missionApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload missionapimodels.MissionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = missionhandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения командировки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление командировки
// @Tags Командировки
// @Description Удаление командировки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/missions/{id} [delete]
func (c *missionApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = missionhandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления командировки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отправка на согласование
// @Tags Командировки
// @Description Отправка командировки на согласование
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/missions/{id}/submit [put]
func (c *missionApiController) submit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = missionhandler.Instance.Submit(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отправки на согласование")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Согласование руководителем
// @Tags Командировки
// @Description Согласование командировки руководителем
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 missionapimodels.ApproveData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/missions/{id}/approve_manager [put]
func (c *missionApiController) approveManager(ctx *fiber.Ctx) error {
	return c.approve(ctx, missionhandler.Instance.ApproveManager)
}

// @Summary Согласование HR
// @Tags Командировки
// @Description Согласование командировки HR-службой
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 missionapimodels.ApproveData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/missions/{id}/approve_hr [put]
func (c *missionApiController) approveHr(ctx *fiber.Ctx) error {
	return c.approve(ctx, missionhandler.Instance.ApproveHr)
}

// @Summary Согласование финансами
// @Tags Командировки
// @Description Согласование командировки финансовой службой
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 missionapimodels.ApproveData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/missions/{id}/approve_finance [put]
func (c *missionApiController) approveFinance(ctx *fiber.Ctx) error {
	return c.approve(ctx, missionhandler.Instance.ApproveFinance)
}

func (c *missionApiController) approve(ctx *fiber.Ctx, handler func(id string, data missionapimodels.ApproveData) error) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload missionapimodels.ApproveData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = handler(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка согласования командировки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Массовое согласование
// @Tags Командировки
// @Description Массовое согласование командировок руководителем
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 missionapimodels.BulkData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/missions/bulk_approve_manager [put]
func (c *missionApiController) bulkApproveManager(ctx *fiber.Ctx) error {
	var payload missionapimodels.BulkData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	approved, err := missionhandler.Instance.BulkApproveManager(payload.IDs)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка массового согласования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(approved))
}

// @Summary Отклонение командировки
// @Tags Командировки
// @Description Отклонение командировки с указанием причины
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 missionapimodels.RejectData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/missions/{id}/reject [put]
func (c *missionApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload missionapimodels.RejectData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = missionhandler.Instance.Reject(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отклонения командировки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отмена командировки
// @Tags Командировки
// @Description Отмена командировки инициатором
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/missions/{id}/cancel [put]
func (c *missionApiController) cancel(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = missionhandler.Instance.Cancel(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отмены командировки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отчет по командировке
// @Tags Командировки
// @Description Отправка отчета по результатам командировки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 missionapimodels.ReportData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/missions/{id}/report [put]
func (c *missionApiController) submitReport(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload missionapimodels.ReportData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = missionhandler.Instance.SubmitReport(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отправки отчета")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Формирование приказа
// @Tags Командировки
// @Description Формирование PDF-приказа по согласованной командировке
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/missions/{id}/order [post]
func (c *missionApiController) generateOrder(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileKey, err := missionhandler.Instance.GenerateOrder(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования приказа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fileKey))
}

// @Summary Скачивание приказа
// @Tags Командировки
// @Description Скачивание PDF-приказа по командировке
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/missions/{id}/order [get]
func (c *missionApiController) downloadOrder(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, fileName, err := missionhandler.Instance.DownloadOrder(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка скачивания приказа")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return ctx.Status(fiber.StatusOK).Send(body)
}
