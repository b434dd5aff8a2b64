package dto

// ErrorResponse cuerpo de error HTTP. Redirect indica a qué vista debe ir el
// front cuando el error es de sesión o de permisos.
type ErrorResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

// ListResponse envoltura de listados.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewList construye la envoltura; nunca serializa items como null.
func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}
