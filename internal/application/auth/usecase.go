package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/fichaje-api/internal/application/dto"
	"github.com/jhoicas/fichaje-api/internal/domain"
	"github.com/jhoicas/fichaje-api/internal/domain/entity"
	"github.com/jhoicas/fichaje-api/internal/domain/repository"
	"github.com/jhoicas/fichaje-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y primer acceso.
//
// Máquina de estados de la sesión: LOGIN → (usuario sin hash) SETUP_PASSWORD
// → ACTIVE, o LOGIN → ACTIVE directo con contraseña válida. El logout vuelve
// a LOGIN; el estado vive en el cliente (token JWT), el use case es stateless.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login resuelve el userID y decide la rama:
//   - usuario inexistente → ErrUserNotFound
//   - usuario sin contraseña → NeedsSetup (no se consulta la contraseña enviada)
//   - hash presente → bcrypt compara en tiempo constante; si coincide emite el
//     token de sesión, si no ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.HasPassword() {
		// Primer acceso: el caller pasa a SETUP_PASSWORD
		return &dto.LoginResponse{NeedsSetup: true}, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return uc.authenticated(user)
}

// SetupPassword completa el primer acceso: hashea la contraseña nueva, la
// persiste (transición hash-ausente → hash-presente, exactamente una vez) y
// emite el token de sesión igual que un login normal.
//
// La validación local (longitud mínima, coincidencia con la confirmación) es
// responsabilidad del caller y nunca llega aquí ni a la base de datos.
func (uc *AuthUseCase) SetupPassword(ctx context.Context, in dto.SetupPasswordRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		// carrera con un borrado administrativo
		return nil, domain.ErrUserNotFound
	}
	if user.HasPassword() {
		return nil, domain.ErrPasswordAlreadySet
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashear contraseña: %w", err)
	}
	if err := uc.userRepo.UpdatePasswordHash(ctx, user.ID, string(hash)); err != nil {
		return nil, fmt.Errorf("guardar contraseña: %w", err)
	}
	hashStr := string(hash)
	user.PasswordHash = &hashStr
	return uc.authenticated(user)
}

func (uc *AuthUseCase) authenticated(user *entity.User) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.DepartmentID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.LoginResponse{
		Token: token,
		User:  ToUserResponse(user),
	}, nil
}

// ToUserResponse convierte la entidad a DTO sin exponer el hash.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		DepartmentID: u.DepartmentID,
		Name:         u.Name,
		Role:         u.Role,
		HasPassword:  u.HasPassword(),
	}
}
