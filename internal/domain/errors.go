package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrEmailExists  = errors.New("el email ya está registrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrEmptyCart    = errors.New("la factura no tiene líneas")
)

// ValidationError describe un campo requerido o inválido. Envuelve ErrInvalidInput
// para que los handlers lo traten como 400 y muestren Message al usuario.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid construye un ValidationError.
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// DetailedError asocia a un sentinel el mensaje que ve el usuario.
type DetailedError struct {
	Kind    error
	Message string
}

func (e *DetailedError) Error() string { return e.Message }

func (e *DetailedError) Unwrap() error { return e.Kind }

// WithMessage construye un DetailedError; errors.Is(err, kind) sigue funcionando.
func WithMessage(kind error, message string) error {
	return &DetailedError{Kind: kind, Message: message}
}
