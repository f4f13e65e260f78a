package apiv1

import (
	"erp-tools-backend/controllers"
	authhandler "erp-tools-backend/lib/auth"
	usershandler "erp-tools-backend/lib/users"
	"erp-tools-backend/middleware"
	apimodels "erp-tools-backend/models/api"
	authapimodels "erp-tools-backend/models/api/auth"

	"github.com/gofiber/fiber/v2"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("login", controller.login)
		router.Route("", func(authRoute fiber.Router) {
			authRoute.Use(middleware.AuthorizationRequired())
			authRoute.Get("check_auth", controller.checkAuth)
			authRoute.Put("change_password", controller.changePassword)
		})
	})
}

// @Summary Вход по почте и паролю
// @Tags Авторизация
// @Description Вход по почте и паролю
// @Param	body body	 authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	response, err := authhandler.Instance.Login(payload.Email, payload.Password)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(response))
}

// @Summary Идентификация и карта доступов
// @Tags Авторизация
// @Description Идентификация и карта доступов по модулям
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=authapimodels.CheckAuthResponse}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/check_auth [get]
func (c *authApiController) checkAuth(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	response, err := authhandler.Instance.CheckAuth(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка проверки авторизации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(response))
}

type changePasswordRequest struct {
	Password string `json:"password"`
}

// @Summary Смена своего пароля
// @Tags Авторизация
// @Description Смена своего пароля
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 changePasswordRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/change_password [put]
func (c *authApiController) changePassword(ctx *fiber.Ctx) error {
	var payload changePasswordRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err := usershandler.Instance.ChangePassword(userID, payload.Password)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка смены пароля")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
