package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supermack-billing/internal/application/dto"
	"github.com/jhoicas/supermack-billing/internal/application/usecase"
)

// SettingsHandler perfil del negocio y numeración de facturas (solo Admin).
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Configuración
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Actualizar perfil del negocio
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProfileRequest  true  "Perfil"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/profile [put]
func (h *SettingsHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.ProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateProfile(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateInvoiceSettings godoc
// @Summary      Actualizar numeración de facturas
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InvoiceSettingsRequest  true  "tax_type, invoice_prefix, next_invoice_number"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/invoice [put]
func (h *SettingsHandler) UpdateInvoiceSettings(c *fiber.Ctx) error {
	var in dto.InvoiceSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateInvoiceSettings(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
