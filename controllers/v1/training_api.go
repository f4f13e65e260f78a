package apiv1

import (
	"erp-tools-backend/controllers"
	skillshandler "erp-tools-backend/lib/skills"
	traininghandler "erp-tools-backend/lib/training"
	"erp-tools-backend/middleware"
	"erp-tools-backend/models"
	apimodels "erp-tools-backend/models/api"
	skillsapimodels "erp-tools-backend/models/api/skills"
	trainingapimodels "erp-tools-backend/models/api/training"

	"github.com/gofiber/fiber/v2"
)

type trainingApiController struct {
	controllers.BaseAPIController
}

func InitTrainingApiRouters(app *fiber.App) {
	controller := trainingApiController{}
	app.Route("training", func(router fiber.Router) {
		router.Route("courses", func(r fiber.Router) {
			r.Get("", middleware.AccessRequired(models.HrModule, models.AccessRead), controller.listCourses)
			r.Post("", middleware.AccessRequired(models.HrModule, models.AccessCreate), controller.createCourse)
			r.Route(":id", func(idRoute fiber.Router) {
				idRoute.Get("", middleware.AccessRequired(models.HrModule, models.AccessRead), controller.getCourse)
				idRoute.Put("", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.updateCourse)
				idRoute.Delete("", middleware.AccessRequired(models.HrModule, models.AccessDelete), controller.deleteCourse)
				idRoute.Get("skills", middleware.AccessRequired(models.HrModule, models.AccessRead), controller.listCourseSkills)
				idRoute.Put("skills", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.saveCourseSkill)
				idRoute.Delete("skills/:skillRecId", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.deleteCourseSkill)
			})
		})
		router.Route("plans", func(r fiber.Router) {
			r.Post("list", middleware.AccessRequired(models.HrModule, models.AccessRead), controller.listPlans)
			r.Post("", middleware.AccessRequired(models.HrModule, models.AccessCreate), controller.createPlan)
			r.Route(":id", func(idRoute fiber.Router) {
				idRoute.Get("", middleware.AccessRequired(models.HrModule, models.AccessRead), controller.getPlan)
				idRoute.Delete("", middleware.AccessRequired(models.HrModule, models.AccessDelete), controller.deletePlan)
				idRoute.Put("submit", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.submitPlan)
				idRoute.Put("approve_manager", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.approvePlanManager)
				idRoute.Put("approve_hr", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.approvePlanHr)
				idRoute.Put("approve_finance", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.approvePlanFinance)
				idRoute.Put("reject", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.rejectPlan)
				idRoute.Put("complete", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.completePlan)
				idRoute.Post("items", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.addItem)
			})
		})
		router.Route("items/:id", func(idRoute fiber.Router) {
			idRoute.Delete("", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.removeItem)
			idRoute.Put("schedule", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.scheduleItem)
			idRoute.Put("start", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.startItem)
			idRoute.Put("complete", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.completeItem)
			idRoute.Put("evaluate", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.evaluateItem)
			idRoute.Put("cancel", middleware.AccessRequired(models.HrModule, models.AccessUpdate), controller.cancelItem)
		})
	})
}

// @Summary Список курсов
// @Tags Обучение
// @Description Список курсов обучения
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]trainingapimodels.CourseView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/training/courses [get]
func (c *trainingApiController) listCourses(ctx *fiber.Ctx) error {
	list, err := traininghandler.Instance.ListCourses()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка курсов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создание курса
// @Tags Обучение
// @Description Создание курса обучения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 trainingapimodels.CourseData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/training/courses [post]
func (c *trainingApiController) createCourse(ctx *fiber.Ctx) error {
	var payload trainingapimodels.CourseData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := traininghandler.Instance.CreateCourse(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания курса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Получение курса
// @Tags Обучение
// @Description Получение курса обучения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=trainingapimodels.CourseView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/training/courses/{id} [get]
func (c *trainingApiController) getCourse(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := traininghandler.Instance.GetCourse(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения курса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Изменение курса
// @Tags Обучение
// @Description Изменение курса обучения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 trainingapimodels.CourseData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/training/courses/{id} [put]
func (c *trainingApiController) updateCourse(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload trainingapimodels.CourseData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = traininghandler.Instance.UpdateCourse(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения курса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление курса
// @Tags Обучение
// @Description Удаление курса обучения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/training/courses/{id} [delete]
func (c *trainingApiController) deleteCourse(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = traininghandler.Instance.DeleteCourse(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления курса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Навыки курса
// @Tags Обучение
// @Description Список навыков, развиваемых курсом
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=[]skillsapimodels.TrainingSkillView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/training/courses/{id}/skills [get]
func (c *trainingApiController) listCourseSkills(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := skillshandler.Instance.ListTrainingSkills(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения навыков курса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Навык курса
// @Tags Обучение
// @Description Сохранение навыка, развиваемого курсом
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 skillsapimodels.TrainingSkillData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/training/courses/{id}/skills [put]
func (c *trainingApiController) saveCourseSkill(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload skillsapimodels.TrainingSkillData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload.CourseID = id
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	recID, err := skillshandler.Instance.SaveTrainingSkill(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения навыка курса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(recID))
}

// @Summary Удаление навыка курса
// @Tags Обучение
// @Description Удаление записи о навыке курса
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Param   skillRecId  		path    string  true	"skill rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/training/courses/{id}/skills/{skillRecId} [delete]
func (c *trainingApiController) deleteCourseSkill(ctx *fiber.Ctx) error {
	skillRecID := ctx.Params("skillRecId")
	if skillRecID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор записи"))
	}
	err := skillshandler.Instance.DeleteTrainingSkill(skillRecID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления навыка курса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Список планов обучения
// @Tags Обучение
// @Description Список планов обучения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 trainingapimodels.PlanFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]trainingapimodels.PlanView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/training/plans/list [post]
func (c *trainingApiController) listPlans(ctx *fiber.Ctx) error {
	var payload trainingapimodels.PlanFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := traininghandler.Instance.ListPlans(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка планов обучения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Создание плана обучения
// @Tags Обучение
// @Description Создание плана обучения сотрудника на год
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 trainingapimodels.PlanData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/training/plans [post]
func (c *trainingApiController) createPlan(ctx *fiber.Ctx) error {
	var payload trainingapimodels.PlanData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := traininghandler.Instance.CreatePlan(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания плана обучения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Получение плана обучения
// @Tags Обучение
// @Description Получение плана обучения с пунктами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=trainingapimodels.PlanView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/training/plans/{id} [get]
func (c *trainingApiController) getPlan(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := traininghandler.Instance.GetPlan(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения плана обучения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Удаление плана обучения
// @Tags Обучение
// @Description Удаление плана обучения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/training/plans/{id} [delete]
func (c *trainingApiController) deletePlan(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = traininghandler.Instance.DeletePlan(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления плана обучения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отправка плана на согласование
// @Tags Обучение
// @Description Отправка плана обучения на согласование
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/training/plans/{id}/submit [put]
func (c *trainingApiController) submitPlan(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = traininghandler.Instance.SubmitPlan(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отправки плана на согласование")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Согласование плана руководителем
// @Tags Обучение
// @Description Согласование плана обучения руководителем
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 trainingapimodels.ApproveData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/training/plans/{id}/approve_manager [put]
func (c *trainingApiController) approvePlanManager(ctx *fiber.Ctx) error {
	return c.approvePlan(ctx, traininghandler.Instance.ApprovePlanManager)
}

// @Summary Согласование плана HR
// @Tags Обучение
// @Description Согласование плана обучения HR-службой
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 trainingapimodels.ApproveData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/training/plans/{id}/approve_hr [put]
func (c *trainingApiController) approvePlanHr(ctx *fiber.Ctx) error {
	return c.approvePlan(ctx, traininghandler.Instance.ApprovePlanHr)
}

// @Summary Согласование плана финансами
// @Tags Обучение
// @Description Согласование плана обучения финансовой службой
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 trainingapimodels.ApproveData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/training/plans/{id}/approve_finance [put]
func (c *trainingApiController) approvePlanFinance(ctx *fiber.Ctx) error {
	return c.approvePlan(ctx, traininghandler.Instance.ApprovePlanFinance)
}

func (c *trainingApiController) approvePlan(ctx *fiber.Ctx, handler func(id string, data trainingapimodels.ApproveData) error) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload trainingapimodels.ApproveData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = handler(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка согласования плана обучения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отклонение плана
// @Tags Обучение
// @Description Отклонение плана обучения с указанием причины
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 trainingapimodels.RejectData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/training/plans/{id}/reject [put]
func (c *trainingApiController) rejectPlan(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload trainingapimodels.RejectData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = traininghandler.Instance.RejectPlan(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отклонения плана обучения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Завершение плана
// @Tags Обучение
// @Description Завершение плана обучения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/training/plans/{id}/complete [put]
func (c *trainingApiController) completePlan(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = traininghandler.Instance.CompletePlan(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка завершения плана обучения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Добавление курса в план
// @Tags Обучение
// @Description Добавление пункта в план обучения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 trainingapimodels.ItemData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/training/plans/{id}/items [post]
func (c *trainingApiController) addItem(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload trainingapimodels.ItemData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	itemID, err := traininghandler.Instance.AddItem(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления курса в план")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(itemID))
}

// @Summary Удаление курса из плана
// @Tags Обучение
// @Description Удаление пункта из плана обучения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/training/items/{id} [delete]
func (c *trainingApiController) removeItem(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = traininghandler.Instance.RemoveItem(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления курса из плана")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Назначение даты курса
// @Tags Обучение
// @Description Назначение даты прохождения курса
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 trainingapimodels.ScheduleData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/training/items/{id}/schedule [put]
func (c *trainingApiController) scheduleItem(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload trainingapimodels.ScheduleData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = traininghandler.Instance.ScheduleItem(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка назначения даты курса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Начало прохождения курса
// @Tags Обучение
// @Description Перевод пункта плана в работу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/training/items/{id}/start [put]
func (c *trainingApiController) startItem(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = traininghandler.Instance.StartItem(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка перевода курса в работу")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Завершение курса
// @Tags Обучение
// @Description Завершение прохождения курса сотрудником
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 trainingapimodels.CompleteData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/training/items/{id}/complete [put]
func (c *trainingApiController) completeItem(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload trainingapimodels.CompleteData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = traininghandler.Instance.CompleteItem(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка завершения курса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Оценка курса руководителем
// @Tags Обучение
// @Description Оценка пройденного курса руководителем
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 trainingapimodels.EvaluationData	true	"request body"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/training/items/{id}/evaluate [put]
func (c *trainingApiController) evaluateItem(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload trainingapimodels.EvaluationData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = traininghandler.Instance.EvaluateItem(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка оценки курса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отмена курса
// @Tags Обучение
// @Description Отмена пункта плана обучения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/training/items/{id}/cancel [put]
func (c *trainingApiController) cancelItem(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = traininghandler.Instance.CancelItem(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отмены курса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
