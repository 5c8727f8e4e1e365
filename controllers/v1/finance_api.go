package apiv1

import (
	"time"

	"hrms-backend/controllers"
	financehandler "hrms-backend/lib/finance"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	financeapimodels "hrms-backend/models/api/finance"

	"github.com/gofiber/fiber/v2"
)

type financeApiController struct {
	controllers.BaseAPIController
}

func InitFinanceApiRouters(app fiber.Router) {
	controller := financeApiController{}
	app.Route("gl_accounts", func(router fiber.Router) {
		router.Post("", middleware.AdminRequired(), controller.createAccount)
		router.Get("", controller.listAccounts)
	})
	app.Route("journal_entries", func(router fiber.Router) {
		router.Post("", controller.createEntry)
		router.Get("", controller.listEntries)
		router.Get(":id", controller.getEntry)
		router.Post(":id/post", controller.postEntry)
	})
	app.Get("trial_balance", controller.trialBalance)
}

// @Summary Create a general ledger account
// @Tags Finance
// @Description Create a general ledger account
// @Param   Authorization	header	string							true	"Authorization token"
// @Param	body			body	financeapimodels.GLAccountData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/gl_accounts [post]
func (c *financeApiController) createAccount(ctx *fiber.Ctx) error {
	var payload financeapimodels.GLAccountData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := financehandler.Instance.CreateAccount(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "account creation failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List general ledger accounts
// @Tags Finance
// @Description List general ledger accounts
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]financeapimodels.GLAccountView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/gl_accounts [get]
func (c *financeApiController) listAccounts(ctx *fiber.Ctx) error {
	list, err := financehandler.Instance.ListAccounts()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not list accounts")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create a journal entry
// @Tags Finance
// @Description Create a draft journal entry with its lines
// @Param   Authorization	header	string								true	"Authorization token"
// @Param	body			body	financeapimodels.JournalEntryData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/journal_entries [post]
func (c *financeApiController) createEntry(ctx *fiber.Ctx) error {
	var payload financeapimodels.JournalEntryData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := financehandler.Instance.CreateEntry(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "journal entry creation failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List journal entries
// @Tags Finance
// @Description List journal entries
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]financeapimodels.JournalEntryView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/journal_entries [get]
func (c *financeApiController) listEntries(ctx *fiber.Ctx) error {
	list, err := financehandler.Instance.ListEntries()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not list journal entries")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get a journal entry
// @Tags Finance
// @Description Get a journal entry with its lines
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=financeapimodels.JournalEntryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/journal_entries/{id} [get]
func (c *financeApiController) getEntry(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := financehandler.Instance.GetEntry(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not load journal entry")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("journal entry not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Post a journal entry
// @Tags Finance
// @Description Post a draft journal entry to the ledger
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/journal_entries/{id}/post [post]
func (c *financeApiController) postEntry(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := financehandler.Instance.PostEntry(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "journal entry posting failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get the trial balance
// @Tags Finance
// @Description Get the trial balance as of a date
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	as_of			query	string	false	"date in YYYY-MM-DD, defaults to today"
// @Success 200 {object} apimodels.Response{data=financeapimodels.TrialBalanceView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/trial_balance [get]
func (c *financeApiController) trialBalance(ctx *fiber.Ctx) error {
	asOf := time.Now()
	if raw := ctx.Query("as_of", ""); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("as_of date is invalid, expected YYYY-MM-DD"))
		}
		asOf = parsed
	}
	view, err := financehandler.Instance.TrialBalance(asOf)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not build the trial balance")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
