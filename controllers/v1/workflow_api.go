package apiv1

import (
	"hrms-backend/controllers"
	xlsexport "hrms-backend/lib/export/xls"
	workflowengine "hrms-backend/lib/workflow/engine"
	workflowregistry "hrms-backend/lib/workflow/registry"
	"hrms-backend/middleware"
	"hrms-backend/models"
	apimodels "hrms-backend/models/api"
	workflowapimodels "hrms-backend/models/api/workflow"
	dbmodels "hrms-backend/models/db"

	"github.com/gofiber/fiber/v2"
)

type workflowApiController struct {
	controllers.BaseAPIController
}

func InitWorkflowApiRouters(app fiber.Router) {
	controller := workflowApiController{}
	app.Route("workflow", func(router fiber.Router) {
		router.Get("my_approvals", controller.myApprovals)
		router.Post("requests/:id/action", controller.processAction)
		router.Post("requests/:id/delegate", controller.delegate)
		router.Post("delegations", controller.createDelegation)
		router.Get("delegations", controller.listDelegations)
		router.Post("delegations/:id/revoke", controller.revokeDelegation)
		router.Get("status/:objectType/:objectId", controller.objectStatus)
		router.Get("instances/:id/history", controller.instanceHistory)
		router.Get("stats", middleware.AdminRequired(), controller.stats)
		router.Get("stats/export", middleware.AdminRequired(), controller.statsExport)
	})
}

// sendEngineResult maps business refusals from the engine to a 400 and
// everything else to a 500.
func (c *workflowApiController) sendEngineResult(ctx *fiber.Ctx, err error, failMsg string) error {
	if err != nil {
		if workflowengine.IsEngineError(err) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, failMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List my pending approvals
// @Tags Workflow
// @Description List approval requests the current user can act on
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]workflowapimodels.PendingApprovalView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/workflow/my_approvals [get]
func (c *workflowApiController) myApprovals(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	requests, err := workflowengine.Instance.GetPendingForUser(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not list pending approvals")
	}
	list := make([]workflowapimodels.PendingApprovalView, 0, len(requests))
	for _, req := range requests {
		list = append(list, pendingConvert(req))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func pendingConvert(req dbmodels.ApprovalRequest) workflowapimodels.PendingApprovalView {
	view := workflowapimodels.PendingApprovalView{
		RequestID:    req.ID,
		InstanceID:   req.InstanceID,
		LevelNumber:  req.LevelNumber,
		LevelName:    req.LevelName,
		AssignedRole: req.AssignedRole,
		Status:       req.Status,
		CreatedAt:    req.CreatedAt,
	}
	if req.Instance == nil {
		return view
	}
	view.ObjectType = req.Instance.ObjectType
	view.ObjectID = req.Instance.ObjectID
	if req.Instance.Workflow != nil {
		view.WorkflowCode = req.Instance.Workflow.Code
	}
	if source, err := workflowregistry.Get(req.Instance.ObjectType); err == nil {
		if info, err := source.GetInfo(req.Instance.ObjectID); err == nil {
			view.ObjectTitle = info.Title
		}
	}
	return view
}

// @Summary Act on an approval request
// @Tags Workflow
// @Description Approve, reject or return a pending approval request
// @Param   Authorization	header	string							true	"Authorization token"
// @Param	body			body	workflowapimodels.ActionData	true	"request body"
// @Param   id				path	string							true	"request ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/workflow/requests/{id}/action [post]
func (c *workflowApiController) processAction(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload workflowapimodels.ActionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = workflowengine.Instance.ProcessAction(id, payload.Action, middleware.GetUserID(ctx), payload.Comments)
	return c.sendEngineResult(ctx, err, "approval action failed")
}

// @Summary Delegate an approval request
// @Tags Workflow
// @Description Hand a pending approval request over to another user
// @Param   Authorization	header	string							true	"Authorization token"
// @Param	body			body	workflowapimodels.DelegateData	true	"request body"
// @Param   id				path	string							true	"request ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/workflow/requests/{id}/delegate [post]
func (c *workflowApiController) delegate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload workflowapimodels.DelegateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = workflowengine.Instance.Delegate(id, middleware.GetUserID(ctx), payload.ToUserID, payload.Reason)
	return c.sendEngineResult(ctx, err, "delegation failed")
}

// @Summary Create a standing delegation
// @Tags Workflow
// @Description Route my approvals to another user for a period
// @Param   Authorization	header	string								true	"Authorization token"
// @Param	body			body	workflowapimodels.DelegationData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/workflow/delegations [post]
func (c *workflowApiController) createDelegation(ctx *fiber.Ctx) error {
	var payload workflowapimodels.DelegationData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec := dbmodels.ApprovalDelegation{
		DelegatorID: middleware.GetUserID(ctx),
		DelegateID:  payload.DelegateID,
		StartDate:   payload.StartDate,
		EndDate:     payload.EndDate,
		Reason:      payload.Reason,
	}
	if payload.WorkflowID != "" {
		rec.WorkflowID = &payload.WorkflowID
	}
	id, err := workflowengine.Instance.CreateDelegation(rec)
	if err != nil {
		if workflowengine.IsEngineError(err) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "delegation creation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List my delegations
// @Tags Workflow
// @Description List delegations created by the current user
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]workflowapimodels.DelegationView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/workflow/delegations [get]
func (c *workflowApiController) listDelegations(ctx *fiber.Ctx) error {
	recs, err := workflowengine.Instance.ListDelegations(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not list delegations")
	}
	list := make([]workflowapimodels.DelegationView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, workflowapimodels.DelegationConvert(rec))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Revoke a delegation
// @Tags Workflow
// @Description Revoke a standing delegation
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/workflow/delegations/{id}/revoke [post]
func (c *workflowApiController) revokeDelegation(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = workflowengine.Instance.RevokeDelegation(id, middleware.GetUserID(ctx))
	return c.sendEngineResult(ctx, err, "delegation revocation failed")
}

// @Summary Get the approval status of an object
// @Tags Workflow
// @Description Get the latest approval instance of an object with its requests
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   objectType		path	string	true	"object type"
// @Param   objectId		path	string	true	"object ID"
// @Success 200 {object} apimodels.Response{data=workflowapimodels.InstanceStatusView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/workflow/status/{objectType}/{objectId} [get]
func (c *workflowApiController) objectStatus(ctx *fiber.Ctx) error {
	objectType, err := c.GetIDByKey(ctx, "objectType")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	objectID, err := c.GetIDByKey(ctx, "objectId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	inst, requests, err := workflowengine.Instance.GetStatus(objectType, objectID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not load approval status")
	}
	if inst == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("no approval found for the object"))
	}
	view := workflowapimodels.InstanceStatusView{
		InstanceID:   inst.ID,
		ObjectType:   inst.ObjectType,
		ObjectID:     inst.ObjectID,
		CurrentState: inst.CurrentState,
		Status:       inst.Status,
		CurrentLevel: inst.CurrentLevel,
		CompletedAt:  inst.CompletedAt,
		Requests:     make([]workflowapimodels.RequestView, 0, len(requests)),
	}
	if inst.Workflow != nil {
		view.WorkflowCode = inst.Workflow.Code
	}
	if inst.StartedBy != nil {
		view.StartedBy = inst.StartedBy.GetFullName()
	}
	for _, req := range requests {
		view.Requests = append(view.Requests, workflowapimodels.RequestConvert(req))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Get the transition history of an instance
// @Tags Workflow
// @Description Get the transition log of an approval instance
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"instance ID"
// @Success 200 {object} apimodels.Response{data=[]workflowapimodels.TransitionLogView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/workflow/instances/{id}/history [get]
func (c *workflowApiController) instanceHistory(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	logs, err := workflowengine.Instance.GetHistory(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not load approval history")
	}
	list := make([]workflowapimodels.TransitionLogView, 0, len(logs))
	for _, rec := range logs {
		list = append(list, workflowapimodels.TransitionLogConvert(rec))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get approval statistics
// @Tags Workflow
// @Description Get approval statistics across all workflows
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=workflowapimodels.StatsView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/workflow/stats [get]
func (c *workflowApiController) stats(ctx *fiber.Ctx) error {
	stats, err := workflowengine.Instance.GetStats()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not load approval statistics")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(statsConvert(stats)))
}

func statsConvert(stats *workflowengine.Stats) workflowapimodels.StatsView {
	view := workflowapimodels.StatsView{
		ActiveInstances:    stats.ActiveInstances,
		CompletedInstances: stats.CompletedInstances,
		RejectedInstances:  stats.RejectedInstances,
		CancelledInstances: stats.CancelledInstances,
		PendingRequests:    stats.PendingRequests,
		ByWorkflow:         []workflowapimodels.WorkflowStatRow{},
	}
	index := map[string]int{}
	for _, row := range stats.ByWorkflow {
		pos, exist := index[row.WorkflowCode]
		if !exist {
			pos = len(view.ByWorkflow)
			index[row.WorkflowCode] = pos
			view.ByWorkflow = append(view.ByWorkflow, workflowapimodels.WorkflowStatRow{WorkflowCode: row.WorkflowCode})
		}
		switch row.Status {
		case models.InstanceActive:
			view.ByWorkflow[pos].Active = row.Count
		case models.InstanceCompleted:
			view.ByWorkflow[pos].Completed = row.Count
		case models.InstanceRejected:
			view.ByWorkflow[pos].Rejected = row.Count
		}
	}
	return view
}

// @Summary Export approval statistics
// @Tags Workflow
// @Description Export approval statistics as an xlsx workbook
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {file} binary
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/workflow/stats/export [get]
func (c *workflowApiController) statsExport(ctx *fiber.Ctx) error {
	stats, err := workflowengine.Instance.GetStats()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not load approval statistics")
	}
	content, err := xlsexport.WorkflowStats(stats)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "statistics export failed")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="approval_stats.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(content)
}
