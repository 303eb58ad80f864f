package entity

import "time"

// RoleAdmin nombre del rol que habilita operaciones mutantes protegidas.
const RoleAdmin = "admin"

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// Role representa un rol asignable a usuarios.
type Role struct {
	ID          string
	Name        string
	Description string
}

// UserRole es la fila de unión usuario-rol con clave compuesta
// (user_id, role_id). Un usuario puede tener varios roles.
type UserRole struct {
	UserID     string
	RoleID     string
	AssignedAt time.Time
}
