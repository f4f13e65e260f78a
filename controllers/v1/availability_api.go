package apiv1

import (
	"erp-tools-backend/controllers"
	availabilityhandler "erp-tools-backend/lib/availability"
	"erp-tools-backend/middleware"
	"erp-tools-backend/models"
	apimodels "erp-tools-backend/models/api"
	availabilityapimodels "erp-tools-backend/models/api/availability"

	"github.com/gofiber/fiber/v2"
)

type availabilityApiController struct {
	controllers.BaseAPIController
}

func InitAvailabilityApiRouters(app *fiber.App) {
	controller := availabilityApiController{}
	app.Route("availability", func(router fiber.Router) {
		router.Post("list", middleware.AccessRequired(models.HrModule, models.AccessRead), controller.list)
		router.Post("", middleware.AccessRequired(models.HrModule, models.AccessCreate), controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", middleware.AccessRequired(models.HrModule, models.AccessRead), controller.get)
			idRoute.Put("approve_manager", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.approveManager)
			idRoute.Put("approve_hr", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.approveHr)
			idRoute.Put("reject", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.reject)
			idRoute.Put("cancel", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.cancel)
		})
	})
}

// @Summary Список заявок на отсутствие
// @Tags Отсутствия
// @Description Список заявок на отсутствие
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 availabilityapimodels.AvailabilityFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]availabilityapimodels.AvailabilityView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/availability/list [post]
func (c *availabilityApiController) list(ctx *fiber.Ctx) error {
	var payload availabilityapimodels.AvailabilityFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := availabilityhandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заявок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Создание заявки на отсутствие
// @Tags Отсутствия
// @Description Создание заявки на отсутствие
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 availabilityapimodels.AvailabilityData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/availability [post]
func (c *availabilityApiController) create(ctx *fiber.Ctx) error {
	var payload availabilityapimodels.AvailabilityData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := availabilityhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Получение заявки на отсутствие
// @Tags Отсутствия
// @Description Получение заявки на отсутствие
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=availabilityapimodels.AvailabilityView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/availability/{id} [get]
func (c *availabilityApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := availabilityhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Согласование руководителем
// @Tags Отсутствия
// @Description Согласование заявки руководителем
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 availabilityapimodels.ApproveData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/availability/{id}/approve_manager [put]
func (c *availabilityApiController) approveManager(ctx *fiber.Ctx) error {
	return c.approve(ctx, availabilityhandler.Instance.ApproveManager)
}

// @Summary Согласование HR
// @Tags Отсутствия
// @Description Согласование заявки HR-службой
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 availabilityapimodels.ApproveData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/availability/{id}/approve_hr [put]
func (c *availabilityApiController) approveHr(ctx *fiber.Ctx) error {
	return c.approve(ctx, availabilityhandler.Instance.ApproveHr)
}

func (c *availabilityApiController) approve(ctx *fiber.Ctx, handler func(id string, data availabilityapimodels.ApproveData) error) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload availabilityapimodels.ApproveData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = handler(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка согласования заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отклонение заявки
// @Tags Отсутствия
// @Description Отклонение заявки на отсутствие
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 availabilityapimodels.RejectData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/availability/{id}/reject [put]
func (c *availabilityApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload availabilityapimodels.RejectData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = availabilityhandler.Instance.Reject(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отклонения заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отмена заявки
// @Tags Отсутствия
// @Description Отмена заявки инициатором
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/availability/{id}/cancel [put]
func (c *availabilityApiController) cancel(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = availabilityhandler.Instance.Cancel(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отмены заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
