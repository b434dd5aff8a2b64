package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supermack-billing/internal/application/dto"
	"github.com/jhoicas/supermack-billing/internal/domain"
)

// errorBody convierte un error de dominio en status + ErrorResponse.
// ValidationError y DetailedError aportan el mensaje que ve el usuario;
// notFound reemplaza el mensaje genérico de NOT_FOUND.
func errorBody(err error, notFound string) (int, dto.ErrorResponse) {
	detail := ""
	var ve *domain.ValidationError
	var de *domain.DetailedError
	switch {
	case errors.As(err, &ve):
		detail = ve.Message
	case errors.As(err, &de):
		detail = de.Message
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: orDefault(detail, "datos inválidos")}
	case errors.Is(err, domain.ErrEmptyCart):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "EMPTY_CART", Message: orDefault(detail, domain.ErrEmptyCart.Error())}
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: orDefault(detail, orDefault(notFound, "recurso no encontrado"))}
	case errors.Is(err, domain.ErrEmailExists):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: domain.ErrEmailExists.Error()}
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "DUPLICATE", Message: orDefault(detail, "recurso duplicado")}
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "CONFLICT", Message: orDefault(detail, domain.ErrConflict.Error())}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: orDefault(detail, "no autorizado")}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: orDefault(detail, "acceso denegado")}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()}
}

// respondError escribe el error mapeado; notFound es opcional.
func respondError(c *fiber.Ctx, err error, notFound ...string) error {
	msg := ""
	if len(notFound) > 0 {
		msg = notFound[0]
	}
	status, body := errorBody(err, msg)
	return c.Status(status).JSON(body)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func missingID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
}

func orDefault(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
