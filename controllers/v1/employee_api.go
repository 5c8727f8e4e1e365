package apiv1

import (
	"io"

	"hrms-backend/controllers"
	employeehandler "hrms-backend/lib/employee"
	filestorage "hrms-backend/lib/file-storage"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	orgapimodels "hrms-backend/models/api/org"

	"github.com/gofiber/fiber/v2"
)

type employeeApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeApiRouters(app fiber.Router) {
	controller := employeeApiController{}
	app.Route("employees", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get("", controller.list)
		router.Get("me", controller.getMe)
		router.Get(":id", controller.getByID)
		router.Put(":id", controller.update)
		router.Post(":id/exit", controller.submitExit)
		router.Post(":id/documents", controller.uploadDocument)
		router.Get(":id/documents", controller.listDocuments)
	})
	app.Route("documents", func(router fiber.Router) {
		router.Get(":id", controller.downloadDocument)
		router.Delete(":id", controller.deleteDocument)
	})
}

// @Summary Create an employee
// @Tags Employees
// @Description Create an employee
// @Param   Authorization	header	string						true	"Authorization token"
// @Param	body			body	orgapimodels.EmployeeData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees [post]
func (c *employeeApiController) create(ctx *fiber.Ctx) error {
	var payload orgapimodels.EmployeeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := employeehandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "employee creation failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List employees
// @Tags Employees
// @Description List employees
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]orgapimodels.EmployeeView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees [get]
func (c *employeeApiController) list(ctx *fiber.Ctx) error {
	list, err := employeehandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not list employees")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get the employee record of the current user
// @Tags Employees
// @Description Get the employee record of the current user
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=orgapimodels.EmployeeView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/me [get]
func (c *employeeApiController) getMe(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	view, err := employeehandler.Instance.GetByUser(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not load employee")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("no employee record for the current user"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Get an employee
// @Tags Employees
// @Description Get an employee
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=orgapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [get]
func (c *employeeApiController) getByID(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := employeehandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not load employee")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("employee not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update an employee
// @Tags Employees
// @Description Update an employee
// @Param   Authorization	header	string						true	"Authorization token"
// @Param	body			body	orgapimodels.EmployeeData	true	"request body"
// @Param   id				path	string						true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [put]
func (c *employeeApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload orgapimodels.EmployeeData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := employeehandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "employee update failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Start an employee exit
// @Tags Employees
// @Description Open the exit approval workflow for an active employee
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"employee ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id}/exit [post]
func (c *employeeApiController) submitExit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := employeehandler.Instance.SubmitExit(id, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "exit submission failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Upload an employee document
// @Tags Employees
// @Description Upload an employee document as multipart form data
// @Param   Authorization	header		string	true	"Authorization token"
// @Param   id				path		string	true	"employee ID"
// @Param   file			formData	file	true	"document file"
// @Success 200 {object} apimodels.Response{data=documentapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id}/documents [post]
func (c *employeeApiController) uploadDocument(ctx *fiber.Ctx) error {
	employeeID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("file is missing in the request"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not read the uploaded file")
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not read the uploaded file")
	}

	view, hMsg, err := filestorage.Instance.Upload(ctx.Context(), employeeID, middleware.GetUserID(ctx),
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), body)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "document upload failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary List employee documents
// @Tags Employees
// @Description List employee documents
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"employee ID"
// @Success 200 {object} apimodels.Response{data=[]documentapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id}/documents [get]
func (c *employeeApiController) listDocuments(ctx *fiber.Ctx) error {
	employeeID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := filestorage.Instance.ListByEmployee(employeeID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "can not list documents")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Download a document
// @Tags Employees
// @Description Download a document
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"document ID"
// @Success 200 {file} binary
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents/{id} [get]
func (c *employeeApiController) downloadDocument(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, body, err := filestorage.Instance.Download(ctx.Context(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "document download failed")
	}
	if rec == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("document not found"))
	}
	ctx.Set(fiber.HeaderContentType, rec.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+rec.FileName+`"`)
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Delete a document
// @Tags Employees
// @Description Delete a document
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id				path	string	true	"document ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents/{id} [delete]
func (c *employeeApiController) deleteDocument(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := filestorage.Instance.Delete(ctx.Context(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "document deletion failed")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
