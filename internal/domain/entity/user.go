package entity

import "time"

// Role rol de un usuario del back office.
type Role string

// Roles válidos para User.
const (
	RoleAdmin   Role = "Admin"
	RoleManager Role = "Manager"
	RoleViewer  Role = "Viewer"
)

// Roles devuelve los roles válidos en orden de privilegio.
func Roles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleViewer}
}

// Valid informa si r es uno de los roles conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleViewer:
		return true
	}
	return false
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
