package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/fichaje-api/internal/domain/entity"
	"github.com/jhoicas/fichaje-api/internal/domain/repository"
)

var _ repository.ClockEventRepository = (*ClockEventRepo)(nil)

// ClockEventRepo implementación sobre PostgreSQL (usable con pool o tx).
// La tabla es append-only: este adaptador no expone UPDATE ni DELETE.
type ClockEventRepo struct {
	q Querier
}

// NewClockEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClockEventRepository(q Querier) *ClockEventRepo {
	return &ClockEventRepo{q: q}
}

// Create persiste un fichaje.
func (r *ClockEventRepo) Create(ctx context.Context, event *entity.ClockEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	query := `
		INSERT INTO clock_events (id, user_id, type, report, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		event.ID, event.UserID, event.Type, event.Report, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create clock event: %w", err)
	}
	return nil
}

// ListByUserBetween lista los fichajes del usuario en [from, to] ascendente.
func (r *ClockEventRepo) ListByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]*entity.ClockEvent, error) {
	query := `
		SELECT id, user_id, type, report, created_at
		FROM clock_events
		WHERE user_id = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at ASC`
	rows, err := r.q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list clock events: %w", err)
	}
	defer rows.Close()
	var list []*entity.ClockEvent
	for rows.Next() {
		var ev entity.ClockEvent
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.Type, &ev.Report, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan clock event: %w", err)
		}
		list = append(list, &ev)
	}
	return list, rows.Err()
}
