package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supermack-billing/internal/application/billing"
	"github.com/jhoicas/supermack-billing/internal/application/dto"
)

// BillingHandler punto de venta: carrito de la sesión y guardado como factura.
type BillingHandler struct {
	uc *billing.POSUseCase
}

func NewBillingHandler(uc *billing.POSUseCase) *BillingHandler {
	return &BillingHandler{uc: uc}
}

// Catalog godoc
// @Summary      Catálogo del punto de venta
// @Tags         billing
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CatalogItemResponse
// @Router       /api/billing/catalog [get]
func (h *BillingHandler) Catalog(c *fiber.Ctx) error {
	out, err := h.uc.Catalog(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetCart godoc
// @Summary      Carrito en curso
// @Tags         billing
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/billing/cart [get]
func (h *BillingHandler) GetCart(c *fiber.Ctx) error {
	out, err := h.uc.GetCart(c.UserContext(), GetSession(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar producto al carrito
// @Description  Si el producto ya está en el carrito suma 1 a su cantidad.
// @Tags         billing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddItemRequest  true  "product_id"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/billing/cart/items [post]
func (h *BillingHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddProduct(c.UserContext(), GetSession(c).ID, in.ProductID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Scan godoc
// @Summary      Escanear código de barras
// @Tags         billing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanRequest  true  "barcode"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/billing/cart/scan [post]
func (h *BillingHandler) Scan(c *fiber.Ctx) error {
	var in dto.ScanRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Scan(c.UserContext(), GetSession(c).ID, in.Barcode)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar por nombre y agregar
// @Description  Agrega el primer producto cuyo nombre contiene la búsqueda.
// @Tags         billing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SearchItemRequest  true  "query"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/billing/cart/search [post]
func (h *BillingHandler) Search(c *fiber.Ctx) error {
	var in dto.SearchItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Search(c.UserContext(), GetSession(c).ID, in.Query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateLine godoc
// @Summary      Editar cantidad o precio de una línea
// @Tags         billing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        lineID  path  string                 true  "ID de la línea"
// @Param        body    body  dto.UpdateLineRequest  true  "field (quantity|price), value"
// @Success      200     {object}  dto.CartResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/billing/cart/lines/{lineID} [patch]
func (h *BillingHandler) UpdateLine(c *fiber.Ctx) error {
	lineID := c.Params("lineID")
	if lineID == "" {
		return missingID(c)
	}
	var in dto.UpdateLineRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateLine(c.UserContext(), GetSession(c).ID, lineID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveLine godoc
// @Summary      Quitar una línea
// @Tags         billing
// @Security     Bearer
// @Produce      json
// @Param        lineID  path  string  true  "ID de la línea"
// @Success      200     {object}  dto.CartResponse
// @Router       /api/billing/cart/lines/{lineID} [delete]
func (h *BillingHandler) RemoveLine(c *fiber.Ctx) error {
	lineID := c.Params("lineID")
	if lineID == "" {
		return missingID(c)
	}
	out, err := h.uc.RemoveLine(c.UserContext(), GetSession(c).ID, lineID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Vaciar el carrito
// @Tags         billing
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/billing/cart [delete]
func (h *BillingHandler) Clear(c *fiber.Ctx) error {
	out, err := h.uc.Clear(c.UserContext(), GetSession(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Guardar el carrito como factura
// @Description  Numera la factura con el prefijo y consecutivo de la configuración y la guarda como última factura de la sesión.
// @Tags         billing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveCartRequest  false  "customer_name, reference, payment_type"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/billing/cart/save [post]
func (h *BillingHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveCartRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	out, err := h.uc.Save(c.UserContext(), GetSession(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// LastInvoice godoc
// @Summary      Última factura guardada por la sesión
// @Tags         billing
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LastInvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/billing/last-invoice [get]
func (h *BillingHandler) LastInvoice(c *fiber.Ctx) error {
	out, err := h.uc.LastInvoice(c.UserContext(), GetSession(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
