package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // Admin | Manager | Viewer
}

// UpdateUserRequest la vista de usuarios solo edita nombre y rol.
type UpdateUserRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token de sesión, usuario y rol.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
	Role  string       `json:"role"`
}

// SessionResponse GET /api/auth/me.
type SessionResponse struct {
	SessionID   string               `json:"session_id"`
	Username    string               `json:"username"`
	Role        string               `json:"role"`
	User        UserResponse         `json:"user"`
	LastInvoice *LastInvoiceResponse `json:"last_invoice,omitempty"`
	Views       []string             `json:"views"`
	CreatedAt   time.Time            `json:"created_at"`
}

// NavigationItem vista del menú lateral.
type NavigationItem struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

// NavigationResponse GET /api/navigation.
type NavigationResponse struct {
	Role  string           `json:"role"`
	Items []NavigationItem `json:"items"`
}

// NavigationDecision GET /api/navigation/:view.
type NavigationDecision struct {
	View         string   `json:"view"`
	Allowed      bool     `json:"allowed"`
	Redirect     string   `json:"redirect,omitempty"`
	AllowedRoles []string `json:"allowed_roles"`
}
