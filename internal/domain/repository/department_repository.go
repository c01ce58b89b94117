package repository

import (
	"context"

	"github.com/jhoicas/fichaje-api/internal/domain/entity"
)

// DepartmentRepository define el puerto de persistencia para Department (solo lectura).
type DepartmentRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Department, error)
	List(ctx context.Context) ([]*entity.Department, error)
}
