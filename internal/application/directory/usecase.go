package directory

import (
	"context"
	"fmt"

	"github.com/jhoicas/fichaje-api/internal/application/auth"
	"github.com/jhoicas/fichaje-api/internal/application/dto"
	"github.com/jhoicas/fichaje-api/internal/domain/repository"
)

// DirectoryUseCase sirve los datos de la pantalla de login: departamentos y
// usuarios. Solo lectura; las altas y bajas se administran fuera del sistema.
type DirectoryUseCase struct {
	deptRepo repository.DepartmentRepository
	userRepo repository.UserRepository
}

// NewDirectoryUseCase construye el caso de uso.
func NewDirectoryUseCase(deptRepo repository.DepartmentRepository, userRepo repository.UserRepository) *DirectoryUseCase {
	return &DirectoryUseCase{deptRepo: deptRepo, userRepo: userRepo}
}

// ListDepartments devuelve los departamentos ordenados por nombre.
func (uc *DirectoryUseCase) ListDepartments(ctx context.Context) ([]dto.DepartmentResponse, error) {
	departments, err := uc.deptRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar departamentos: %w", err)
	}
	out := make([]dto.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, dto.DepartmentResponse{ID: d.ID, Name: d.Name})
	}
	return out, nil
}

// ListUsers devuelve los usuarios ordenados por nombre, opcionalmente
// filtrados por departamento. Nunca expone el hash; has_password permite a la
// UI decidir entre pedir contraseña o dirigir al primer acceso.
func (uc *DirectoryUseCase) ListUsers(ctx context.Context, departmentID string) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}
