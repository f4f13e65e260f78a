package apiv1

import (
	"erp-tools-backend/controllers"
	employeehandler "erp-tools-backend/lib/employee"
	skillshandler "erp-tools-backend/lib/skills"
	"erp-tools-backend/middleware"
	"erp-tools-backend/models"
	apimodels "erp-tools-backend/models/api"
	employeeapimodels "erp-tools-backend/models/api/employee"
	skillsapimodels "erp-tools-backend/models/api/skills"

	"github.com/gofiber/fiber/v2"
)

type employeeApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeApiRouters(app *fiber.App) {
	controller := employeeApiController{}
	app.Route("employees", func(router fiber.Router) {
		router.Post("list", middleware.AccessRequired(models.HrModule, models.AccessRead), controller.list)
		router.Post("", middleware.AccessRequired(models.HrModule, models.AccessCreate), controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", middleware.AccessRequired(models.HrModule, models.AccessRead), controller.get)
			idRoute.Put("", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.update)
			idRoute.Delete("", middleware.AccessRequired(models.HrModule, models.AccessDelete), controller.delete)
			idRoute.Get("skills", middleware.AccessRequired(models.HrModule, models.AccessRead), controller.listSkills)
			idRoute.Put("skills", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.saveSkill)
			idRoute.Delete("skills/:skillRecId", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.deleteSkill)
		})
	})
}

// @Summary Список сотрудников
// @Tags Сотрудники
// @Description Список сотрудников
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.EmployeeFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/list [post]
func (c *employeeApiController) list(ctx *fiber.Ctx) error {
	var payload employeeapimodels.EmployeeFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := employeehandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка сотрудников")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Создание сотрудника
// @Tags Сотрудники
// @Description Создание сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.EmployeeData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees [post]
func (c *employeeApiController) create(ctx *fiber.Ctx) error {
	var payload employeeapimodels.EmployeeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := employeehandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Получение сотрудника
// @Tags Сотрудники
// @Description Получение сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [get]
func (c *employeeApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := employeehandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Изменение сотрудника
// @Tags Сотрудники
// @Description Изменение сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.EmployeeData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [put]
func (c *employeeApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload employeeapimodels.EmployeeData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = employeehandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление сотрудника
// @Tags Сотрудники
// @Description Удаление сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [delete]
func (c *employeeApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = employeehandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Навыки сотрудника
// @Tags Сотрудники
// @Description Список навыков сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=[]skillsapimodels.EmployeeSkillView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id}/skills [get]
func (c *employeeApiController) listSkills(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := skillshandler.Instance.ListEmployeeSkills(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения навыков сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Оценка навыка сотрудника
// @Tags Сотрудники
// @Description Сохранение уровня навыка сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 skillsapimodels.EmployeeSkillData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id}/skills [put]
func (c *employeeApiController) saveSkill(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload skillsapimodels.EmployeeSkillData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload.EmployeeID = id
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	recID, err := skillshandler.Instance.SaveEmployeeSkill(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения навыка сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(recID))
}

// @Summary Удаление навыка сотрудника
// @Tags Сотрудники
// @Description Удаление записи о навыке сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Param   skillRecId  		path    string  true	"skill rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id}/skills/{skillRecId} [delete]
func (c *employeeApiController) deleteSkill(ctx *fiber.Ctx) error {
	skillRecID := ctx.Params("skillRecId")
	if skillRecID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор записи"))
	}
	err := skillshandler.Instance.DeleteEmployeeSkill(skillRecID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления навыка сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
