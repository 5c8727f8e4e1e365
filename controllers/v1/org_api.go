package apiv1

import (
	"hrms-backend/controllers"
	orgunithandler "hrms-backend/lib/org-unit"
	roleassignmenthandler "hrms-backend/lib/role-assignment"
	apimodels "hrms-backend/models/api"
	orgapimodels "hrms-backend/models/api/org"

	"github.com/gofiber/fiber/v2"
)

type orgApiController struct {
	controllers.BaseAPIController
}

func InitOrgApiRouters(app fiber.Router) {
	controller := orgApiController{}
	app.Route("org_units", func(router fiber.Router) {
		router.Post("", controller.createOrgUnit)
		router.Get("", controller.listOrgUnits)
		router.Get(":id", controller.getOrgUnit)
		router.Put(":id", controller.updateOrgUnit)
	})
	app.Route("role_assignments", func(router fiber.Router) {
		router.Post("", controller.createRoleAssignment)
		router.Get("", controller.listRoleAssignments)
		router.Post(":id/deactivate", controller.deactivateRoleAssignment)
	})
}

// @Summary Create an organization unit
// @Tags Organization
// @Description Create an organization unit
// @Param   Authorization	header	string						true	"Authorization token"
// @Param	body			body	orgapimodels.OrgUnitData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org_units [post]
func (c *orgApiController) createOrgUnit(ctx *fiber.Ctx) error {
	var payload orgapimodels.OrgUnitData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := orgunithandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "organization unit creation failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List organization units
// @Tags Organization
// @Description List organization units
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]orgapimodels.OrgUnitView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org_units [get]
func (c *orgApiController) listOrgUnits(ctx *fiber.Ctx) error {
	list, err := orgunithandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not list organization units")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get an organization unit
// @Tags Organization
// @Description Get an organization unit
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=orgapimodels.OrgUnitView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org_units/{id} [get]
func (c *orgApiController) getOrgUnit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := orgunithandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not load organization unit")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("organization unit not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update an organization unit
// @Tags Organization
// @Description Update an organization unit
// @Param   Authorization	header	string						true	"Authorization token"
// @Param	body			body	orgapimodels.OrgUnitData	true	"request body"
// @Param   id				path	string						true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/org_units/{id} [put]
func (c *orgApiController) updateOrgUnit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload orgapimodels.OrgUnitData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := orgunithandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "organization unit update failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Assign a role to a user
// @Tags Organization
// @Description Assign a role to a user
// @Param   Authorization	header	string								true	"Authorization token"
// @Param	body			body	orgapimodels.RoleAssignmentData		true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/role_assignments [post]
func (c *orgApiController) createRoleAssignment(ctx *fiber.Ctx) error {
	var payload orgapimodels.RoleAssignmentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := roleassignmenthandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "role assignment failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List role assignments
// @Tags Organization
// @Description List role assignments
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]orgapimodels.RoleAssignmentView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/role_assignments [get]
func (c *orgApiController) listRoleAssignments(ctx *fiber.Ctx) error {
	list, err := roleassignmenthandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not list role assignments")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Deactivate a role assignment
// @Tags Organization
// @Description Deactivate a role assignment
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/role_assignments/{id}/deactivate [post]
func (c *orgApiController) deactivateRoleAssignment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := roleassignmenthandler.Instance.Deactivate(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "role assignment deactivation failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
