package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)
var _ repository.UserRoleRepository = (*UserRoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de persistencia para roles.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste un nuevo rol.
func (r *RoleRepo) Create(role *entity.Role) error {
	query := `INSERT INTO roles (id, name, description) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, role.ID, role.Name, role.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	var role entity.Role
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, description FROM roles WHERE id = $1`, id,
	).Scan(&role.ID, &role.Name, &role.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

// List lista roles con paginación.
func (r *RoleRepo) List(limit, offset int) ([]*entity.Role, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, description FROM roles ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}

// Update actualiza nombre y descripción de un rol.
func (r *RoleRepo) Update(role *entity.Role) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE roles SET name = $2, description = $3 WHERE id = $1`,
		role.ID, role.Name, role.Description,
	)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un rol por ID.
func (r *RoleRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UserRoleRepo implementación del puerto UserRoleRepository (tabla de unión
// con clave compuesta user_id, role_id).
type UserRoleRepo struct {
	q Querier
}

// NewUserRoleRepository construye el adaptador para user_roles.
func NewUserRoleRepository(q Querier) *UserRoleRepo {
	return &UserRoleRepo{q: q}
}

// Assign crea la fila de unión usuario-rol.
func (r *UserRoleRepo) Assign(userID, roleID string) (*entity.UserRole, error) {
	ur := &entity.UserRole{UserID: userID, RoleID: roleID, AssignedAt: time.Now()}
	query := `INSERT INTO user_roles (user_id, role_id, assigned_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, ur.UserID, ur.RoleID, ur.AssignedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("assign role: %w", err)
	}
	return ur, nil
}

// Get obtiene la fila de unión por clave compuesta.
func (r *UserRoleRepo) Get(userID, roleID string) (*entity.UserRole, error) {
	var ur entity.UserRole
	err := r.q.QueryRow(context.Background(),
		`SELECT user_id, role_id, assigned_at FROM user_roles WHERE user_id = $1 AND role_id = $2`,
		userID, roleID,
	).Scan(&ur.UserID, &ur.RoleID, &ur.AssignedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user role: %w", err)
	}
	return &ur, nil
}

// ListByUser lista las filas de unión de un usuario.
func (r *UserRoleRepo) ListByUser(userID string) ([]*entity.UserRole, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT user_id, role_id, assigned_at FROM user_roles WHERE user_id = $1 ORDER BY assigned_at`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list user roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.UserRole
	for rows.Next() {
		var ur entity.UserRole
		if err := rows.Scan(&ur.UserID, &ur.RoleID, &ur.AssignedAt); err != nil {
			return nil, fmt.Errorf("scan user role: %w", err)
		}
		list = append(list, &ur)
	}
	return list, rows.Err()
}

// RoleNamesByUser materializa los nombres de rol del usuario con un join
// explícito sobre la tabla de unión (nada de colecciones derivadas perezosas).
func (r *UserRoleRepo) RoleNamesByUser(userID string) ([]string, error) {
	const query = `
	SELECT r.name
	FROM user_roles ur
	JOIN roles r ON r.id = ur.role_id
	WHERE ur.user_id = $1
	ORDER BY r.name`

	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("role names by user: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan role name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Update reemplaza el rol de una fila de unión por otro.
func (r *UserRoleRepo) Update(userID, roleID, newRoleID string) (*entity.UserRole, error) {
	now := time.Now()
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE user_roles SET role_id = $3, assigned_at = $4 WHERE user_id = $1 AND role_id = $2`,
		userID, roleID, newRoleID, now,
	)
	if err != nil {
		return nil, fmt.Errorf("update user role: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return &entity.UserRole{UserID: userID, RoleID: newRoleID, AssignedAt: now}, nil
}

// Delete elimina la fila de unión.
func (r *UserRoleRepo) Delete(userID, roleID string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM user_roles WHERE user_id = $1 AND role_id = $2`, userID, roleID)
	if err != nil {
		return fmt.Errorf("delete user role: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
