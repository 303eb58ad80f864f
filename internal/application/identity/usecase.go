package identity

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// UseCase administra usuarios, roles y la tabla de unión user_roles.
// Las operaciones destructivas se protegen con el admin gate en la capa HTTP.
type UseCase struct {
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	userRoleRepo repository.UserRoleRepository
}

// NewUseCase construye el caso de uso de identidad.
func NewUseCase(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	userRoleRepo repository.UserRoleRepository,
) *UseCase {
	return &UseCase{userRepo: userRepo, roleRepo: roleRepo, userRoleRepo: userRoleRepo}
}

// CreateUser crea un usuario hasheando el password con bcrypt.
func (uc *UseCase) CreateUser(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetUser devuelve un usuario por ID.
func (uc *UseCase) GetUser(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// ListUsers lista usuarios con paginación.
func (uc *UseCase) ListUsers(page dto.PageRequest) ([]dto.UserResponse, error) {
	page.DefaultPage()
	rows, err := uc.userRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(rows))
	for _, u := range rows {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// UpdateUser actualiza username, email y opcionalmente el password.
func (uc *UseCase) UpdateUser(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Username != "" {
		user.Username = in.Username
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// DeleteUser elimina un usuario por ID.
func (uc *UseCase) DeleteUser(id string) error {
	return uc.userRepo.Delete(id)
}

// CreateRole crea un rol.
func (uc *UseCase) CreateRole(in dto.RoleRequest) (*dto.RoleResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	role := &entity.Role{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
	}
	if err := uc.roleRepo.Create(role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// GetRole devuelve un rol por ID.
func (uc *UseCase) GetRole(id string) (*dto.RoleResponse, error) {
	role, err := uc.roleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	return toRoleResponse(role), nil
}

// ListRoles lista roles con paginación.
func (uc *UseCase) ListRoles(page dto.PageRequest) ([]dto.RoleResponse, error) {
	page.DefaultPage()
	rows, err := uc.roleRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoleResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, *toRoleResponse(r))
	}
	return out, nil
}

// UpdateRole actualiza nombre y descripción de un rol.
func (uc *UseCase) UpdateRole(id string, in dto.RoleRequest) (*dto.RoleResponse, error) {
	role, err := uc.roleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	role.Name = in.Name
	role.Description = in.Description
	if err := uc.roleRepo.Update(role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// DeleteRole elimina un rol por ID.
func (uc *UseCase) DeleteRole(id string) error {
	return uc.roleRepo.Delete(id)
}

// AssignRole crea la fila de unión tras verificar que usuario y rol existan.
func (uc *UseCase) AssignRole(userID, roleID string) (*dto.UserRoleResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	role, err := uc.roleRepo.GetByID(roleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	ur, err := uc.userRoleRepo.Assign(userID, roleID)
	if err != nil {
		return nil, err
	}
	return toUserRoleResponse(ur), nil
}

// GetUserRole devuelve la fila de unión por clave compuesta.
func (uc *UseCase) GetUserRole(userID, roleID string) (*dto.UserRoleResponse, error) {
	ur, err := uc.userRoleRepo.Get(userID, roleID)
	if err != nil {
		return nil, err
	}
	if ur == nil {
		return nil, domain.ErrNotFound
	}
	return toUserRoleResponse(ur), nil
}

// ListUserRoles lista las filas de unión de un usuario.
func (uc *UseCase) ListUserRoles(userID string) ([]dto.UserRoleResponse, error) {
	rows, err := uc.userRoleRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	out := make([]dto.UserRoleResponse, 0, len(rows))
	for _, ur := range rows {
		out = append(out, *toUserRoleResponse(ur))
	}
	return out, nil
}

// UpdateUserRole reemplaza el rol de una fila de unión; verifica que el nuevo
// rol exista.
func (uc *UseCase) UpdateUserRole(userID, roleID, newRoleID string) (*dto.UserRoleResponse, error) {
	role, err := uc.roleRepo.GetByID(newRoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	ur, err := uc.userRoleRepo.Update(userID, roleID, newRoleID)
	if err != nil {
		return nil, err
	}
	return toUserRoleResponse(ur), nil
}

// DeleteUserRole elimina la fila de unión.
func (uc *UseCase) DeleteUserRole(userID, roleID string) error {
	return uc.userRoleRepo.Delete(userID, roleID)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	return &dto.RoleResponse{ID: r.ID, Name: r.Name, Description: r.Description}
}

func toUserRoleResponse(ur *entity.UserRole) *dto.UserRoleResponse {
	return &dto.UserRoleResponse{UserID: ur.UserID, RoleID: ur.RoleID, AssignedAt: ur.AssignedAt}
}
