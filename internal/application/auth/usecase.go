package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
	"github.com/jhoicas/ecommerce-admin-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase caso de uso de autenticación: login con emisión de JWT.
// Los roles del usuario se materializan con un join explícito sobre
// user_roles en el momento del login y se embeben en el token; el admin gate
// posterior decide con esos claims, no con una lectura fresca de la DB.
type UseCase struct {
	userRepo     repository.UserRepository
	userRoleRepo repository.UserRoleRepository
	jwtCfg       JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, userRoleRepo repository.UserRoleRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, userRoleRepo: userRoleRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password, estampa last_login, genera el JWT con los
// nombres de rol del usuario y lo devuelve como bearer token.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	roles, err := uc.userRoleRepo.RoleNamesByUser(user.ID)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.UpdateLastLogin(user.ID, time.Now()); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, roles, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Roles:       roles,
	}, nil
}
