package apiv1

import (
	"hrms-backend/controllers"
	recruitmenthandler "hrms-backend/lib/recruitment"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	recruitmentapimodels "hrms-backend/models/api/recruitment"

	"github.com/gofiber/fiber/v2"
)

type recruitmentApiController struct {
	controllers.BaseAPIController
}

func InitRecruitmentApiRouters(app fiber.Router) {
	controller := recruitmentApiController{}
	app.Route("job_offers", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get("", controller.list)
		router.Get(":id", controller.getByID)
		router.Get(":id/letter", controller.offerLetter)
		router.Post(":id/submit", controller.submit)
		router.Post(":id/accept", controller.accept)
		router.Post(":id/decline", controller.decline)
	})
}

// @Summary Create a job offer
// @Tags Recruitment
// @Description Create a job offer in draft
// @Param   Authorization	header	string								true	"Authorization token"
// @Param	body			body	recruitmentapimodels.JobOfferData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_offers [post]
func (c *recruitmentApiController) create(ctx *fiber.Ctx) error {
	var payload recruitmentapimodels.JobOfferData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := recruitmenthandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "job offer creation failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List job offers
// @Tags Recruitment
// @Description List job offers
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]recruitmentapimodels.JobOfferView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_offers [get]
func (c *recruitmentApiController) list(ctx *fiber.Ctx) error {
	list, err := recruitmenthandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not list job offers")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get a job offer
// @Tags Recruitment
// @Description Get a job offer
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=recruitmentapimodels.JobOfferView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_offers/{id} [get]
func (c *recruitmentApiController) getByID(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := recruitmenthandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not load job offer")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("job offer not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Download the offer letter
// @Tags Recruitment
// @Description Download the offer letter of an approved job offer as PDF
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"rec ID"
// @Success 200 {file} binary
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_offers/{id}/letter [get]
func (c *recruitmentApiController) offerLetter(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	content, hMsg, err := recruitmenthandler.Instance.OfferLetter(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "offer letter rendering failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="offer_letter.pdf"`)
	return ctx.Status(fiber.StatusOK).Send(content)
}

// @Summary Submit a job offer for approval
// @Tags Recruitment
// @Description Submit a job offer for approval
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_offers/{id}/submit [post]
func (c *recruitmentApiController) submit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := recruitmenthandler.Instance.Submit(id, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "job offer submission failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Mark a job offer as accepted
// @Tags Recruitment
// @Description Mark an approved job offer as accepted by the candidate
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_offers/{id}/accept [post]
func (c *recruitmentApiController) accept(ctx *fiber.Ctx) error {
	return c.recordDecision(ctx, true)
}

// @Summary Mark a job offer as declined
// @Tags Recruitment
// @Description Mark an approved job offer as declined by the candidate
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_offers/{id}/decline [post]
func (c *recruitmentApiController) decline(ctx *fiber.Ctx) error {
	return c.recordDecision(ctx, false)
}

func (c *recruitmentApiController) recordDecision(ctx *fiber.Ctx, accepted bool) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := recruitmenthandler.Instance.RecordDecision(id, accepted)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "job offer update failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
