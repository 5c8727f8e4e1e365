package apiv1

import (
	"hrms-backend/controllers"
	authhandler "hrms-backend/lib/auth"
	"hrms-backend/middleware"
	"hrms-backend/models"
	apimodels "hrms-backend/models/api"
	authapimodels "hrms-backend/models/api/auth"
	dbmodels "hrms-backend/models/db"

	"github.com/gofiber/fiber/v2"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app fiber.Router) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("login", controller.login)
		router.Post("refresh", controller.refresh)
	})
	app.Route("users", func(router fiber.Router) {
		router.Post("", middleware.AuthorizationRequired(), middleware.AdminRequired(), controller.createUser)
	})
}

// @Summary Login with email and password
// @Tags Auth
// @Description Login with email and password
// @Param	body	body	authapimodels.LoginData	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.TokenView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, hMsg, err := authhandler.Instance.Login(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "login failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Refresh the access token
// @Tags Auth
// @Description Refresh the access token
// @Param	body	body	authapimodels.RefreshData	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.TokenView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/refresh [post]
func (c *authApiController) refresh(ctx *fiber.Ctx) error {
	var payload authapimodels.RefreshData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, hMsg, err := authhandler.Instance.Refresh(payload.RefreshToken)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "token refresh failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Create a user account
// @Tags Auth
// @Description Create a user account
// @Param   Authorization	header	string						true	"Authorization token"
// @Param	body			body	authapimodels.RegisterData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/users [post]
func (c *authApiController) createUser(ctx *fiber.Ctx) error {
	var payload authapimodels.RegisterData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	role := models.UserRole(payload.Role)
	if role == "" {
		role = models.EmployeeRole
	}
	id, hMsg, err := authhandler.Instance.CreateUser(dbmodels.User{
		Email:       payload.Email,
		FirstName:   payload.FirstName,
		LastName:    payload.LastName,
		PhoneNumber: payload.PhoneNumber,
		Role:        role,
		IsActive:    true,
	}, payload.Password)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "user creation failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}
