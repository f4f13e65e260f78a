package apiv1

import (
	"erp-tools-backend/controllers"
	interviewhandler "erp-tools-backend/lib/interview"
	"erp-tools-backend/middleware"
	"erp-tools-backend/models"
	apimodels "erp-tools-backend/models/api"
	interviewapimodels "erp-tools-backend/models/api/interview"

	"github.com/gofiber/fiber/v2"
)

type interviewApiController struct {
	controllers.BaseAPIController
}

type completeInterviewRequest struct {
	Notes string `json:"notes"`
}

func InitInterviewApiRouters(app *fiber.App) {
	controller := interviewApiController{}
	app.Route("interviews", func(router fiber.Router) {
		router.Post("list", middleware.AccessRequired(models.RecruitmentModule, models.AccessRead), controller.list)
		router.Post("", middleware.AccessRequired(models.RecruitmentModule, models.AccessCreate), controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", middleware.AccessRequired(models.RecruitmentModule, models.AccessRead), controller.get)
			idRoute.Put("", middleware.AccessRequired(models.RecruitmentModule, models.AccessUpdate), controller.update)
			idRoute.Delete("", middleware.AccessRequired(models.RecruitmentModule, models.AccessDelete), controller.delete)
			idRoute.Put("complete", middleware.AccessRequired(models.RecruitmentModule, models.AccessUpdate), controller.complete)
			idRoute.Put("cancel", middleware.AccessRequired(models.RecruitmentModule, models.AccessUpdate), controller.cancel)
		})
	})
}

// @Summary Список собеседований
// @Tags Собеседования
// @Description Список собеседований
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 interviewapimodels.InterviewFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/list [post]
func (c *interviewApiController) list(ctx *fiber.Ctx) error {
	var payload interviewapimodels.InterviewFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := interviewhandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка собеседований")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Создание собеседования
// @Tags Собеседования
// @Description Планирование собеседования
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 interviewapimodels.InterviewData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews [post]
func (c *interviewApiController) create(ctx *fiber.Ctx) error {
	var payload interviewapimodels.InterviewData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := interviewhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания собеседования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Получение собеседования
// @Tags Собеседования
// @Description Получение собеседования
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id} [get]
func (c *interviewApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := interviewhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения собеседования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Изменение собеседования
// @Tags Собеседования
// @Description Изменение запланированного собеседования
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 interviewapimodels.InterviewData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id} [put]
func (c *interviewApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload interviewapimodels.InterviewData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = interviewhandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения собеседования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление собеседования
// @Tags Собеседования
// @Description Удаление собеседования
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id} [delete]
func (c *interviewApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = interviewhandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления собеседования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Завершение собеседования
// @Tags Собеседования
// @Description Завершение собеседования с заметками
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 completeInterviewRequest	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id}/complete [put]
func (c *interviewApiController) complete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload completeInterviewRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = interviewhandler.Instance.Complete(id, payload.Notes)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка завершения собеседования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отмена собеседования
// @Tags Собеседования
// @Description Отмена запланированного собеседования
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interviews/{id}/cancel [put]
func (c *interviewApiController) cancel(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = interviewhandler.Instance.Cancel(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отмены собеседования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
