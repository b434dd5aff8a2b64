package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supermack-billing/internal/application/billing"
	"github.com/jhoicas/supermack-billing/internal/application/dto"
)

// InvoiceHandler maneja las facturas (listado, edición y exportes).
type InvoiceHandler struct {
	uc  *billing.InvoiceUseCase
	pdf *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdf *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdf: pdf}
}

// List godoc
// @Summary      Listar facturas
// @Description  search filtra por cualquier campo sin distinguir mayúsculas. Orden: fecha de emisión descendente.
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Búsqueda global"
// @Success      200     {object}  dto.ListResponse[dto.InvoiceResponse]
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(out))
}

// Create godoc
// @Summary      Crear factura manual
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InvoiceRequest  true  "Datos de la factura"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.InvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una factura (vista previa / impresión).
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "factura no encontrada")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar factura
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID de la factura"
// @Param        body  body  dto.InvoiceRequest  true  "Datos de la factura"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [put]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.InvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err, "factura no encontrada")
	}
	return c.JSON(out)
}

// Delete elimina una factura.
// DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "factura no encontrada")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadPDF godoc
// @Summary      Descargar PDF de la factura
// @Tags         invoices
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	pdfBytes, filename, err := h.pdf.DownloadInvoicePDF(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "factura no encontrada")
	}
	return sendAttachment(c, "application/pdf", filename, pdfBytes)
}

// DownloadXML godoc
// @Summary      Descargar XML de la factura
// @Tags         invoices
// @Security     Bearer
// @Produce      application/xml
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/xml [get]
func (h *InvoiceHandler) DownloadXML(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	xmlBytes, filename, err := h.pdf.DownloadInvoiceXML(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "factura no encontrada")
	}
	return sendAttachment(c, "application/xml", filename, xmlBytes)
}

func sendAttachment(c *fiber.Ctx, contentType, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Attachment(filename)
	return c.Send(body)
}
