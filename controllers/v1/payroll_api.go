package apiv1

import (
	"hrms-backend/controllers"
	payrollhandler "hrms-backend/lib/payroll"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	payrollapimodels "hrms-backend/models/api/payroll"

	"github.com/gofiber/fiber/v2"
)

type payrollApiController struct {
	controllers.BaseAPIController
}

func InitPayrollApiRouters(app fiber.Router) {
	controller := payrollApiController{}
	app.Route("payroll_runs", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get("", controller.list)
		router.Get(":id", controller.getByID)
		router.Post(":id/submit", controller.submit)
		router.Post(":id/mark_paid", middleware.AdminRequired(), controller.markPaid)
	})
}

// @Summary Create a payroll run
// @Tags Payroll
// @Description Create a payroll run for a period
// @Param   Authorization	header	string								true	"Authorization token"
// @Param	body			body	payrollapimodels.PayrollRunData		true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll_runs [post]
func (c *payrollApiController) create(ctx *fiber.Ctx) error {
	var payload payrollapimodels.PayrollRunData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := payrollhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "payroll run creation failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List payroll runs
// @Tags Payroll
// @Description List payroll runs
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]payrollapimodels.PayrollRunView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll_runs [get]
func (c *payrollApiController) list(ctx *fiber.Ctx) error {
	list, err := payrollhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not list payroll runs")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get a payroll run
// @Tags Payroll
// @Description Get a payroll run
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=payrollapimodels.PayrollRunView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll_runs/{id} [get]
func (c *payrollApiController) getByID(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := payrollhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not load payroll run")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("payroll run not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Submit a payroll run for approval
// @Tags Payroll
// @Description Submit a payroll run for approval
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll_runs/{id}/submit [post]
func (c *payrollApiController) submit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := payrollhandler.Instance.Submit(id, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "payroll run submission failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Mark a payroll run as paid
// @Tags Payroll
// @Description Mark an approved payroll run as paid
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/payroll_runs/{id}/mark_paid [post]
func (c *payrollApiController) markPaid(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := payrollhandler.Instance.MarkPaid(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "payroll run update failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
