package apiv1

import (
	"hrms-backend/controllers"
	procurementhandler "hrms-backend/lib/procurement"
	apimodels "hrms-backend/models/api"
	procurementapimodels "hrms-backend/models/api/procurement"

	"github.com/gofiber/fiber/v2"
)

type procurementApiController struct {
	controllers.BaseAPIController
}

func InitProcurementApiRouters(app fiber.Router) {
	controller := procurementApiController{}
	app.Route("purchase_orders", func(router fiber.Router) {
		router.Post("", controller.createOrder)
		router.Get("", controller.listOrders)
		router.Get(":id", controller.getOrder)
		router.Post(":id/close", controller.closeOrder)
	})
	app.Route("goods_receipts", func(router fiber.Router) {
		router.Post("", controller.createReceipt)
	})
	app.Route("supplier_invoices", func(router fiber.Router) {
		router.Post("", controller.createInvoice)
		router.Get("", controller.listInvoices)
		router.Get(":id", controller.getInvoice)
		router.Post(":id/match", controller.matchInvoice)
	})
}

// @Summary Create a purchase order
// @Tags Procurement
// @Description Create a purchase order with its lines
// @Param   Authorization	header	string									true	"Authorization token"
// @Param	body			body	procurementapimodels.PurchaseOrderData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/purchase_orders [post]
func (c *procurementApiController) createOrder(ctx *fiber.Ctx) error {
	var payload procurementapimodels.PurchaseOrderData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := procurementhandler.Instance.CreateOrder(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "purchase order creation failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List purchase orders
// @Tags Procurement
// @Description List purchase orders
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]procurementapimodels.PurchaseOrderView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/purchase_orders [get]
func (c *procurementApiController) listOrders(ctx *fiber.Ctx) error {
	list, err := procurementhandler.Instance.ListOrders()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not list purchase orders")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get a purchase order
// @Tags Procurement
// @Description Get a purchase order with its lines
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=procurementapimodels.PurchaseOrderView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/purchase_orders/{id} [get]
func (c *procurementApiController) getOrder(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := procurementhandler.Instance.GetOrder(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not load purchase order")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("purchase order not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Close a purchase order
// @Tags Procurement
// @Description Close a purchase order to new receipts
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/purchase_orders/{id}/close [post]
func (c *procurementApiController) closeOrder(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := procurementhandler.Instance.CloseOrder(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "purchase order closing failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Record a goods receipt
// @Tags Procurement
// @Description Record the receipt of goods against a purchase order
// @Param   Authorization	header	string									true	"Authorization token"
// @Param	body			body	procurementapimodels.GoodsReceiptData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/goods_receipts [post]
func (c *procurementApiController) createReceipt(ctx *fiber.Ctx) error {
	var payload procurementapimodels.GoodsReceiptData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := procurementhandler.Instance.CreateReceipt(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "goods receipt creation failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Record a supplier invoice
// @Tags Procurement
// @Description Record a supplier invoice in draft
// @Param   Authorization	header	string								true	"Authorization token"
// @Param	body			body	procurementapimodels.InvoiceData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/supplier_invoices [post]
func (c *procurementApiController) createInvoice(ctx *fiber.Ctx) error {
	var payload procurementapimodels.InvoiceData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := procurementhandler.Instance.CreateInvoice(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "invoice creation failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List supplier invoices
// @Tags Procurement
// @Description List supplier invoices
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]procurementapimodels.InvoiceView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/supplier_invoices [get]
func (c *procurementApiController) listInvoices(ctx *fiber.Ctx) error {
	list, err := procurementhandler.Instance.ListInvoices()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not list invoices")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get a supplier invoice
// @Tags Procurement
// @Description Get a supplier invoice with its lines and match findings
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=procurementapimodels.InvoiceView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/supplier_invoices/{id} [get]
func (c *procurementApiController) getInvoice(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := procurementhandler.Instance.GetInvoice(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not load invoice")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("invoice not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Run the three way match on an invoice
// @Tags Procurement
// @Description Match an invoice against the purchase order and goods receipts
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=procurementapimodels.InvoiceView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/supplier_invoices/{id}/match [post]
func (c *procurementApiController) matchInvoice(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, hMsg, err := procurementhandler.Instance.MatchInvoice(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "invoice matching failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
