package identity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/identity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.byID {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(id string, at time.Time) error {
	if u, ok := f.byID[id]; ok {
		u.LastLogin = &at
	}
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeRoleRepo struct {
	byID map[string]*entity.Role
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{byID: make(map[string]*entity.Role)}
}

func (f *fakeRoleRepo) Create(r *entity.Role) error {
	cp := *r
	f.byID[r.ID] = &cp
	return nil
}

func (f *fakeRoleRepo) GetByID(id string) (*entity.Role, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRoleRepo) List(limit, offset int) ([]*entity.Role, error) {
	var out []*entity.Role
	for _, r := range f.byID {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeRoleRepo) Update(r *entity.Role) error {
	cp := *r
	f.byID[r.ID] = &cp
	return nil
}

func (f *fakeRoleRepo) Delete(id string) error {
	delete(f.byID, id)
	return nil
}

type urKey struct{ userID, roleID string }

type fakeUserRoleRepo struct {
	roles   *fakeRoleRepo
	entries map[urKey]*entity.UserRole
}

func newFakeUserRoleRepo(roles *fakeRoleRepo) *fakeUserRoleRepo {
	return &fakeUserRoleRepo{roles: roles, entries: make(map[urKey]*entity.UserRole)}
}

func (f *fakeUserRoleRepo) Assign(userID, roleID string) (*entity.UserRole, error) {
	k := urKey{userID, roleID}
	if _, ok := f.entries[k]; ok {
		return nil, domain.ErrConflict
	}
	ur := &entity.UserRole{UserID: userID, RoleID: roleID, AssignedAt: time.Now()}
	f.entries[k] = ur
	cp := *ur
	return &cp, nil
}

func (f *fakeUserRoleRepo) Get(userID, roleID string) (*entity.UserRole, error) {
	ur, ok := f.entries[urKey{userID, roleID}]
	if !ok {
		return nil, nil
	}
	cp := *ur
	return &cp, nil
}

func (f *fakeUserRoleRepo) ListByUser(userID string) ([]*entity.UserRole, error) {
	var out []*entity.UserRole
	for k, ur := range f.entries {
		if k.userID == userID {
			cp := *ur
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeUserRoleRepo) RoleNamesByUser(userID string) ([]string, error) {
	var out []string
	for k := range f.entries {
		if k.userID == userID {
			if r, _ := f.roles.GetByID(k.roleID); r != nil {
				out = append(out, r.Name)
			}
		}
	}
	return out, nil
}

func (f *fakeUserRoleRepo) Update(userID, roleID, newRoleID string) (*entity.UserRole, error) {
	k := urKey{userID, roleID}
	ur, ok := f.entries[k]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(f.entries, k)
	nu := &entity.UserRole{UserID: userID, RoleID: newRoleID, AssignedAt: ur.AssignedAt}
	f.entries[urKey{userID, newRoleID}] = nu
	cp := *nu
	return &cp, nil
}

func (f *fakeUserRoleRepo) Delete(userID, roleID string) error {
	k := urKey{userID, roleID}
	if _, ok := f.entries[k]; !ok {
		return domain.ErrNotFound
	}
	delete(f.entries, k)
	return nil
}

func newIdentity() (*identity.UseCase, *fakeUserRepo, *fakeRoleRepo, *fakeUserRoleRepo) {
	users := newFakeUserRepo()
	roles := newFakeRoleRepo()
	userRoles := newFakeUserRoleRepo(roles)
	return identity.NewUseCase(users, roles, userRoles), users, roles, userRoles
}

// ──────────────────────────────────────────────────────────────────────────────
// Users
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateUser_HasheaPassword(t *testing.T) {
	uc, users, _, _ := newIdentity()

	out, err := uc.CreateUser(dto.CreateUserRequest{
		Username: "ana", Email: "ana@example.com", Password: "secreta123",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana", out.Username)

	stored, err := users.GetByID(out.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secreta123", stored.PasswordHash, "nunca se guarda el password en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")))
}

func TestCreateUser_UsernameTomado(t *testing.T) {
	uc, _, _, _ := newIdentity()

	_, err := uc.CreateUser(dto.CreateUserRequest{Username: "ana", Email: "a@example.com", Password: "secreta123"})
	require.NoError(t, err)
	_, err = uc.CreateUser(dto.CreateUserRequest{Username: "ana", Email: "b@example.com", Password: "otra12345"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestCreateUser_CamposRequeridos(t *testing.T) {
	uc, _, _, _ := newIdentity()

	_, err := uc.CreateUser(dto.CreateUserRequest{Username: "", Email: "a@example.com", Password: "x12345678"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateUser_PasswordVacioNoCambia(t *testing.T) {
	uc, users, _, _ := newIdentity()

	created, err := uc.CreateUser(dto.CreateUserRequest{Username: "ana", Email: "a@example.com", Password: "secreta123"})
	require.NoError(t, err)
	before, _ := users.GetByID(created.ID)

	_, err = uc.UpdateUser(created.ID, dto.UpdateUserRequest{Email: "nueva@example.com"})
	require.NoError(t, err)

	after, _ := users.GetByID(created.ID)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
	assert.Equal(t, "nueva@example.com", after.Email)
}

func TestGetUser_Inexistente(t *testing.T) {
	uc, _, _, _ := newIdentity()
	_, err := uc.GetUser("nope")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Roles y asignaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestAssignRole_VerificaExistencia(t *testing.T) {
	uc, _, _, _ := newIdentity()

	user, err := uc.CreateUser(dto.CreateUserRequest{Username: "ana", Email: "a@example.com", Password: "secreta123"})
	require.NoError(t, err)
	role, err := uc.CreateRole(dto.RoleRequest{Name: "admin"})
	require.NoError(t, err)

	_, err = uc.AssignRole("nope", role.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.AssignRole(user.ID, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	ur, err := uc.AssignRole(user.ID, role.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, ur.UserID)
	assert.Equal(t, role.ID, ur.RoleID)
}

func TestListUserRoles_SinRoles(t *testing.T) {
	uc, _, _, _ := newIdentity()

	user, err := uc.CreateUser(dto.CreateUserRequest{Username: "ana", Email: "a@example.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.ListUserRoles(user.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateUserRole_NuevoRolDebeExistir(t *testing.T) {
	uc, _, _, _ := newIdentity()

	user, err := uc.CreateUser(dto.CreateUserRequest{Username: "ana", Email: "a@example.com", Password: "secreta123"})
	require.NoError(t, err)
	r1, err := uc.CreateRole(dto.RoleRequest{Name: "user"})
	require.NoError(t, err)
	r2, err := uc.CreateRole(dto.RoleRequest{Name: "admin"})
	require.NoError(t, err)
	_, err = uc.AssignRole(user.ID, r1.ID)
	require.NoError(t, err)

	_, err = uc.UpdateUserRole(user.ID, r1.ID, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	ur, err := uc.UpdateUserRole(user.ID, r1.ID, r2.ID)
	require.NoError(t, err)
	assert.Equal(t, r2.ID, ur.RoleID)
}
