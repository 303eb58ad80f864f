package repository

import (
	"time"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	Update(user *entity.User) error
	UpdateLastLogin(id string, at time.Time) error
	Delete(id string) error
}

// RoleRepository define el puerto de persistencia para Role.
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id string) (*entity.Role, error)
	List(limit, offset int) ([]*entity.Role, error)
	Update(role *entity.Role) error
	Delete(id string) error
}

// UserRoleRepository define el puerto para la tabla de unión user_roles.
type UserRoleRepository interface {
	Assign(userID, roleID string) (*entity.UserRole, error)
	Get(userID, roleID string) (*entity.UserRole, error)
	ListByUser(userID string) ([]*entity.UserRole, error)
	// RoleNamesByUser materializa con un join explícito los nombres de rol
	// del usuario (se embeben en el token al hacer login).
	RoleNamesByUser(userID string) ([]string, error)
	Update(userID, roleID, newRoleID string) (*entity.UserRole, error)
	Delete(userID, roleID string) error
}
