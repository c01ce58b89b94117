package repository

import (
	"context"

	"github.com/jhoicas/fichaje-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Este sistema nunca crea usuarios (se administran externamente); solo los
// consulta y actualiza el hash de contraseña en el primer acceso.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByIDForUpdate bloquea la fila del usuario (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción: serializa los fichajes
	// concurrentes del mismo usuario.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.User, error)
	// List devuelve los usuarios ordenados por nombre; departmentID vacío lista todos.
	List(ctx context.Context, departmentID string) ([]*entity.User, error)
	UpdatePasswordHash(ctx context.Context, id, hash string) error
}
