package apiv1

import (
	"hrms-backend/controllers"
	loanhandler "hrms-backend/lib/loan"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	loanapimodels "hrms-backend/models/api/loan"

	"github.com/gofiber/fiber/v2"
)

type loanApiController struct {
	controllers.BaseAPIController
}

func InitLoanApiRouters(app fiber.Router) {
	controller := loanApiController{}
	app.Route("loans", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get("", controller.list)
		router.Get(":id", controller.getByID)
		router.Get(":id/schedule", controller.getSchedule)
		router.Post(":id/submit", controller.submit)
		router.Post(":id/disburse", middleware.AdminRequired(), controller.disburse)
	})
}

// @Summary Create a loan application
// @Tags Loans
// @Description Create a loan application in draft
// @Param   Authorization	header	string					true	"Authorization token"
// @Param	body			body	loanapimodels.LoanData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/loans [post]
func (c *loanApiController) create(ctx *fiber.Ctx) error {
	var payload loanapimodels.LoanData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := loanhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "loan creation failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List loans
// @Tags Loans
// @Description List loans, optionally filtered by employee
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	employee_id		query	string	false	"employee ID"
// @Success 200 {object} apimodels.Response{data=[]loanapimodels.LoanView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/loans [get]
func (c *loanApiController) list(ctx *fiber.Ctx) error {
	employeeID := ctx.Query("employee_id", "")
	var (
		list []loanapimodels.LoanView
		err  error
	)
	if employeeID != "" {
		list, err = loanhandler.Instance.ListByEmployee(employeeID)
	} else {
		list, err = loanhandler.Instance.List()
	}
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not list loans")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get a loan
// @Tags Loans
// @Description Get a loan
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=loanapimodels.LoanView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/loans/{id} [get]
func (c *loanApiController) getByID(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := loanhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not load loan")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("loan not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Get a loan repayment schedule
// @Tags Loans
// @Description Get the repayment schedule of a disbursed loan
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=[]loanapimodels.ScheduleEntryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/loans/{id}/schedule [get]
func (c *loanApiController) getSchedule(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, hMsg, err := loanhandler.Instance.GetSchedule(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not load loan schedule")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Submit a loan for approval
// @Tags Loans
// @Description Submit a loan for approval
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/loans/{id}/submit [post]
func (c *loanApiController) submit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := loanhandler.Instance.Submit(id, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "loan submission failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Disburse an approved loan
// @Tags Loans
// @Description Disburse an approved loan and build its repayment schedule
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/loans/{id}/disburse [post]
func (c *loanApiController) disburse(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := loanhandler.Instance.Disburse(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "loan disbursement failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
