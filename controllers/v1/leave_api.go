package apiv1

import (
	"strconv"
	"time"

	"hrms-backend/controllers"
	leavehandler "hrms-backend/lib/leave"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	leaveapimodels "hrms-backend/models/api/leave"

	"github.com/gofiber/fiber/v2"
)

type leaveApiController struct {
	controllers.BaseAPIController
}

func InitLeaveApiRouters(app fiber.Router) {
	controller := leaveApiController{}
	app.Route("leave_types", func(router fiber.Router) {
		router.Post("", middleware.AdminRequired(), controller.createType)
		router.Get("", controller.listTypes)
	})
	app.Route("leave_requests", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get("", controller.list)
		router.Get("balance", controller.getBalance)
		router.Get(":id", controller.getByID)
		router.Post(":id/submit", controller.submit)
		router.Post(":id/cancel", controller.cancel)
	})
}

// @Summary Create a leave type
// @Tags Leave
// @Description Create a leave type
// @Param   Authorization	header	string							true	"Authorization token"
// @Param	body			body	leaveapimodels.LeaveTypeData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave_types [post]
func (c *leaveApiController) createType(ctx *fiber.Ctx) error {
	var payload leaveapimodels.LeaveTypeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := leavehandler.Instance.CreateType(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "leave type creation failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List leave types
// @Tags Leave
// @Description List leave types
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]leaveapimodels.LeaveTypeView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave_types [get]
func (c *leaveApiController) listTypes(ctx *fiber.Ctx) error {
	list, err := leavehandler.Instance.ListTypes()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not list leave types")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create a leave request
// @Tags Leave
// @Description Create a leave request in draft
// @Param   Authorization	header	string								true	"Authorization token"
// @Param	body			body	leaveapimodels.LeaveRequestData		true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave_requests [post]
func (c *leaveApiController) create(ctx *fiber.Ctx) error {
	var payload leaveapimodels.LeaveRequestData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := leavehandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "leave request creation failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List leave requests
// @Tags Leave
// @Description List leave requests, optionally filtered by employee
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	employee_id		query	string	false	"employee ID"
// @Success 200 {object} apimodels.Response{data=[]leaveapimodels.LeaveRequestView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave_requests [get]
func (c *leaveApiController) list(ctx *fiber.Ctx) error {
	employeeID := ctx.Query("employee_id", "")
	var (
		list []leaveapimodels.LeaveRequestView
		err  error
	)
	if employeeID != "" {
		list, err = leavehandler.Instance.ListByEmployee(employeeID)
	} else {
		list, err = leavehandler.Instance.List()
	}
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not list leave requests")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get a leave balance
// @Tags Leave
// @Description Get the remaining leave balance of an employee for a year
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	employee_id		query	string	true	"employee ID"
// @Param	leave_type_id	query	string	true	"leave type ID"
// @Param	year			query	int		false	"year, defaults to the current one"
// @Success 200 {object} apimodels.Response{data=leaveapimodels.BalanceView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave_requests/balance [get]
func (c *leaveApiController) getBalance(ctx *fiber.Ctx) error {
	employeeID := ctx.Query("employee_id", "")
	leaveTypeID := ctx.Query("leave_type_id", "")
	if employeeID == "" || leaveTypeID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("employee_id and leave_type_id are required"))
	}
	year, err := strconv.Atoi(ctx.Query("year", strconv.Itoa(time.Now().Year())))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("year is invalid"))
	}
	view, hMsg, err := leavehandler.Instance.GetBalance(employeeID, leaveTypeID, year)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not load leave balance")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Get a leave request
// @Tags Leave
// @Description Get a leave request
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=leaveapimodels.LeaveRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave_requests/{id} [get]
func (c *leaveApiController) getByID(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := leavehandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not load leave request")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("leave request not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Submit a leave request for approval
// @Tags Leave
// @Description Submit a leave request for approval
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave_requests/{id}/submit [post]
func (c *leaveApiController) submit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := leavehandler.Instance.Submit(id, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "leave request submission failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Cancel a leave request
// @Tags Leave
// @Description Cancel a leave request and its running approval
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave_requests/{id}/cancel [post]
func (c *leaveApiController) cancel(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := leavehandler.Instance.Cancel(id, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "leave request cancellation failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
