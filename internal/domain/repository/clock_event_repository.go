package repository

import (
	"context"
	"time"

	"github.com/jhoicas/fichaje-api/internal/domain/entity"
)

// ClockEventRepository define el puerto de persistencia para ClockEvent.
// Append-only: no existen operaciones de update ni delete.
type ClockEventRepository interface {
	Create(ctx context.Context, event *entity.ClockEvent) error
	// ListByUserBetween devuelve los eventos del usuario con timestamp en
	// [from, to], ordenados ascendente. Sin eventos devuelve lista vacía, no error.
	ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]*entity.ClockEvent, error)
}
