package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supermack-billing/internal/application/auth"
	"github.com/jhoicas/supermack-billing/internal/application/dto"
	"github.com/jhoicas/supermack-billing/internal/domain/access"
)

// AuthHandler maneja login, logout, sesión actual y navegación.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Borra la sesión completa y el carrito en curso. Idempotente.
// @Tags         auth
// @Security     Bearer
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if s := GetSession(c); s != nil {
		if err := h.uc.Logout(c.UserContext(), s.ID); err != nil {
			return respondError(c, err)
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Sesión actual
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(h.uc.Me(GetSession(c)))
}

// Navigation godoc
// @Summary      Menú de la sesión
// @Tags         navigation
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NavigationResponse
// @Router       /api/navigation [get]
func (h *AuthHandler) Navigation(c *fiber.Ctx) error {
	return c.JSON(h.uc.Navigation(GetSession(c)))
}

// Decide godoc
// @Summary      ¿Puede la sesión abrir esta vista?
// @Description  Sin sesión responde redirect "/"; sin permiso, redirect "/unauthorized".
// @Tags         navigation
// @Produce      json
// @Param        view  path  string  true  "Vista (dashboard, billingMain, users, ...)"
// @Success      200   {object}  dto.NavigationDecision
// @Router       /api/navigation/{view} [get]
func (h *AuthHandler) Decide(c *fiber.Ctx) error {
	return c.JSON(h.uc.Decide(GetSession(c), viewFromParam(c.Params("view"))))
}

// viewFromParam "dashboard" -> "/dashboard"; "login" o vacío -> "/".
func viewFromParam(p string) access.View {
	p = strings.Trim(p, "/")
	if p == "" || p == "login" {
		return access.ViewLogin
	}
	return access.View("/" + p)
}
