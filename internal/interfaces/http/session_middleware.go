package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supermack-billing/internal/application/dto"
	"github.com/jhoicas/supermack-billing/internal/domain"
	"github.com/jhoicas/supermack-billing/internal/domain/access"
	"github.com/jhoicas/supermack-billing/internal/domain/entity"
)

// LocalSession clave de c.Locals con la *entity.Session actual.
const LocalSession = "session"

// sessionResolver es lo que el middleware necesita del caso de uso de auth.
type sessionResolver interface {
	Resolve(ctx context.Context, token string) (*entity.Session, error)
}

// SessionMiddleware carga la sesión del Bearer Token en c.Locals.
// Sin header, con token inválido o de una sesión cerrada no hay sesión y la petición
// sigue; RequireView decide. Solo un fallo del almacén corta con 503.
func SessionMiddleware(resolver sessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get("Authorization"))
		if token == "" {
			return c.Next()
		}
		session, err := resolver.Resolve(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return c.Next()
			}
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "SESSION_STORE_UNAVAILABLE",
				Message: "no se pudo verificar la sesión, intente más tarde",
			})
		}
		c.Locals(LocalSession, session)
		return c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireView autoriza la vista para la sesión actual. Usar DESPUÉS de SessionMiddleware.
//
// Comportamiento:
//   - 401 UNAUTHENTICATED, redirect "/" → no hay sesión.
//   - 403 FORBIDDEN, redirect "/unauthorized" → el rol no puede abrir la vista.
func RequireView(view access.View) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d := access.Authorize(GetSession(c), view)
		if d.Allowed {
			return c.Next()
		}
		if d.Redirect == access.ViewLogin {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:     "UNAUTHENTICATED",
				Message:  "inicie sesión para continuar",
				Redirect: string(d.Redirect),
			})
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:     "FORBIDDEN",
			Message:  "su rol no tiene acceso a esta vista",
			Redirect: string(d.Redirect),
		})
	}
}

// RequireSession exige una sesión sin importar el rol (logout, me, navegación).
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetSession(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:     "UNAUTHENTICATED",
				Message:  "inicie sesión para continuar",
				Redirect: string(access.ViewLogin),
			})
		}
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto o nil.
func GetSession(c *fiber.Ctx) *entity.Session {
	s, _ := c.Locals(LocalSession).(*entity.Session)
	return s
}
