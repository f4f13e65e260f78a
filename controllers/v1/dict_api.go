package apiv1

import (
	"erp-tools-backend/controllers"
	dictshandler "erp-tools-backend/lib/dicts"
	skillshandler "erp-tools-backend/lib/skills"
	"erp-tools-backend/middleware"
	"erp-tools-backend/models"
	apimodels "erp-tools-backend/models/api"
	dictapimodels "erp-tools-backend/models/api/dict"
	skillsapimodels "erp-tools-backend/models/api/skills"

	"github.com/gofiber/fiber/v2"
)

type dictApiController struct {
	controllers.BaseAPIController
}

func InitDictApiRouters(app *fiber.App) {
	controller := dictApiController{}
	app.Route("dicts", func(router fiber.Router) {
		router.Route("departments", func(r fiber.Router) {
			r.Get("", middleware.AccessRequired(models.CoreModule, models.AccessRead), controller.listDepartments)
			r.Post("", middleware.AccessRequired(models.CoreModule, models.AccessCreate), controller.createDepartment)
			r.Put(":id", middleware.AccessRequired(models.CoreModule, models.AccessUpdate), controller.updateDepartment)
			r.Delete(":id", middleware.AccessRequired(models.CoreModule, models.AccessDelete), controller.deleteDepartment)
		})
		router.Route("job_titles", func(r fiber.Router) {
			r.Get("", middleware.AccessRequired(models.CoreModule, models.AccessRead), controller.listJobTitles)
			r.Post("", middleware.AccessRequired(models.CoreModule, models.AccessCreate), controller.createJobTitle)
			r.Put(":id", middleware.AccessRequired(models.CoreModule, models.AccessUpdate), controller.updateJobTitle)
			r.Delete(":id", middleware.AccessRequired(models.CoreModule, models.AccessDelete), controller.deleteJobTitle)
			r.Get(":id/requirements", middleware.AccessRequired(models.CoreModule, models.AccessRead), controller.listJobRequirements)
			r.Put(":id/requirements", middleware.AccessRequired(models.CoreModule, models.AccessUpdate), controller.saveJobRequirement)
			r.Delete(":id/requirements/:reqId", middleware.AccessRequired(models.CoreModule, models.AccessUpdate), controller.deleteJobRequirement)
		})
		router.Route("skills", func(r fiber.Router) {
			r.Get("", middleware.AccessRequired(models.CoreModule, models.AccessRead), controller.listSkills)
			r.Post("", middleware.AccessRequired(models.CoreModule, models.AccessCreate), controller.createSkill)
			r.Put(":id", middleware.AccessRequired(models.CoreModule, models.AccessUpdate), controller.updateSkill)
			r.Delete(":id", middleware.AccessRequired(models.CoreModule, models.AccessDelete), controller.deleteSkill)
		})
		router.Route("currencies", func(r fiber.Router) {
			r.Get("", middleware.AccessRequired(models.CoreModule, models.AccessRead), controller.listCurrencies)
			r.Post("", middleware.AccessRequired(models.CoreModule, models.AccessCreate), controller.createCurrency)
			r.Put(":id", middleware.AccessRequired(models.CoreModule, models.AccessUpdate), controller.updateCurrency)
			r.Delete(":id", middleware.AccessRequired(models.CoreModule, models.AccessDelete), controller.deleteCurrency)
			r.Put(":id/set_default", middleware.AccessRequired(models.CoreModule, models.AccessUpdate), controller.setDefaultCurrency)
		})
		router.Route("company_settings", func(r fiber.Router) {
			r.Get("", middleware.AccessRequired(models.CoreModule, models.AccessRead), controller.getCompanySettings)
			r.Put("", middleware.AccessRequired(models.CoreModule, models.AccessAdmin), controller.saveCompanySettings)
		})
	})
}

// @Summary Список подразделений
// @Tags Справочники
// @Description Список подразделений
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.DepartmentView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/departments [get]
func (c *dictApiController) listDepartments(ctx *fiber.Ctx) error {
	list, err := dictshandler.Instance.ListDepartments()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка подразделений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создание подразделения
// @Tags Справочники
// @Description Создание подразделения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.DepartmentData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/departments [post]
func (c *dictApiController) createDepartment(ctx *fiber.Ctx) error {
	var payload dictapimodels.DepartmentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := dictshandler.Instance.CreateDepartment(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания подразделения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Изменение подразделения
// @Tags Справочники
// @Description Изменение подразделения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.DepartmentData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/departments/{id} [put]
func (c *dictApiController) updateDepartment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.DepartmentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = dictshandler.Instance.UpdateDepartment(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения подразделения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление подразделения
// @Tags Справочники
// @Description Удаление подразделения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/departments/{id} [delete]
func (c *dictApiController) deleteDepartment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = dictshandler.Instance.DeleteDepartment(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления подразделения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Список должностей
// @Tags Справочники
// @Description Список должностей
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.JobTitleView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/job_titles [get]
func (c *dictApiController) listJobTitles(ctx *fiber.Ctx) error {
	list, err := dictshandler.Instance.ListJobTitles()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка должностей")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создание должности
// @Tags Справочники
// @Description Создание должности
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.JobTitleData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/job_titles [post]
func (c *dictApiController) createJobTitle(ctx *fiber.Ctx) error {
	var payload dictapimodels.JobTitleData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := dictshandler.Instance.CreateJobTitle(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания должности")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Изменение должности
// @Tags Справочники
// @Description Изменение должности
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.JobTitleData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/job_titles/{id} [put]
func (c *dictApiController) updateJobTitle(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.JobTitleData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = dictshandler.Instance.UpdateJobTitle(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения должности")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление должности
// @Tags Справочники
// @Description Удаление должности
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/job_titles/{id} [delete]
func (c *dictApiController) deleteJobTitle(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = dictshandler.Instance.DeleteJobTitle(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления должности")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Требования должности
// @Tags Справочники
// @Description Список требований должности к навыкам
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=[]skillsapimodels.JobRequirementView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/job_titles/{id}/requirements [get]
func (c *dictApiController) listJobRequirements(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := skillshandler.Instance.ListJobRequirements(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения требований должности")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Требование должности
// @Tags Справочники
// @Description Сохранение требования должности к навыку
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 skillsapimodels.JobRequirementData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/job_titles/{id}/requirements [put]
func (c *dictApiController) saveJobRequirement(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload skillsapimodels.JobRequirementData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload.JobTitleID = id
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	recID, err := skillshandler.Instance.SaveJobRequirement(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения требования должности")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(recID))
}

// @Summary Удаление требования должности
// @Tags Справочники
// @Description Удаление требования должности к навыку
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Param   reqId       		path    string  true	"requirement rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/job_titles/{id}/requirements/{reqId} [delete]
func (c *dictApiController) deleteJobRequirement(ctx *fiber.Ctx) error {
	reqID := ctx.Params("reqId")
	if reqID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор записи"))
	}
	err := skillshandler.Instance.DeleteJobRequirement(reqID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления требования должности")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Список навыков
// @Tags Справочники
// @Description Список навыков
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.SkillView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/skills [get]
func (c *dictApiController) listSkills(ctx *fiber.Ctx) error {
	list, err := dictshandler.Instance.ListSkills()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка навыков")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создание навыка
// @Tags Справочники
// @Description Создание навыка
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.SkillData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/skills [post]
func (c *dictApiController) createSkill(ctx *fiber.Ctx) error {
	var payload dictapimodels.SkillData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := dictshandler.Instance.CreateSkill(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания навыка")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Изменение навыка
// @Tags Справочники
// @Description Изменение навыка
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.SkillData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/skills/{id} [put]
func (c *dictApiController) updateSkill(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.SkillData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = dictshandler.Instance.UpdateSkill(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения навыка")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление навыка
// @Tags Справочники
// @Description Удаление навыка
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/skills/{id} [delete]
func (c *dictApiController) deleteSkill(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = dictshandler.Instance.DeleteSkill(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления навыка")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Список валют
// @Tags Справочники
// @Description Список валют
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.CurrencyView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/currencies [get]
func (c *dictApiController) listCurrencies(ctx *fiber.Ctx) error {
	list, err := dictshandler.Instance.ListCurrencies()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка валют")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создание валюты
// @Tags Справочники
// @Description Создание валюты
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.CurrencyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/currencies [post]
func (c *dictApiController) createCurrency(ctx *fiber.Ctx) error {
	var payload dictapimodels.CurrencyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := dictshandler.Instance.CreateCurrency(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания валюты")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Изменение валюты
// @Tags Справочники
// @Description Изменение валюты
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.CurrencyData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/currencies/{id} [put]
func (c *dictApiController) updateCurrency(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.CurrencyData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = dictshandler.Instance.UpdateCurrency(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения валюты")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление валюты
// @Tags Справочники
// @Description Удаление валюты
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/currencies/{id} [delete]
func (c *dictApiController) deleteCurrency(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = dictshandler.Instance.DeleteCurrency(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления валюты")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Валюта по умолчанию
// @Tags Справочники
// @Description Назначение валюты по умолчанию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/currencies/{id}/set_default [put]
func (c *dictApiController) setDefaultCurrency(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = dictshandler.Instance.SetDefaultCurrency(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка назначения валюты по умолчанию")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Настройки компании
// @Tags Справочники
// @Description Получение настроек компании
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=dictapimodels.CompanySettingsView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/company_settings [get]
func (c *dictApiController) getCompanySettings(ctx *fiber.Ctx) error {
	view, err := dictshandler.Instance.GetCompanySettings()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения настроек компании")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Сохранение настроек компании
// @Tags Справочники
// @Description Сохранение настроек компании
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.CompanySettingsData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dicts/company_settings [put]
func (c *dictApiController) saveCompanySettings(ctx *fiber.Ctx) error {
	var payload dictapimodels.CompanySettingsData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := dictshandler.Instance.SaveCompanySettings(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения настроек компании")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
