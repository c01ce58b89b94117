package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fichaje-api/internal/domain/entity"
	"github.com/jhoicas/fichaje-api/internal/infrastructure/postgres"
)

// Los repos aceptan cualquier Querier, así que pgxmock sirve tal cual:
// verificamos el SQL emitido y el mapeo de filas sin una base real.

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestClockEventRepo_Create_InsertaConReporte(t *testing.T) {
	mock := newMockPool(t)
	repo := postgres.NewClockEventRepository(mock)

	report := "Cierre de tareas del sprint"
	now := time.Now()
	ev := &entity.ClockEvent{
		ID:        "e1",
		UserID:    "u1",
		Type:      entity.EventTypeSAIDA,
		Report:    &report,
		CreatedAt: now,
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO clock_events`)).
		WithArgs("e1", "u1", entity.EventTypeSAIDA, &report, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), ev))
}

func TestClockEventRepo_Create_GeneraIDSiFalta(t *testing.T) {
	mock := newMockPool(t)
	repo := postgres.NewClockEventRepository(mock)

	ev := &entity.ClockEvent{UserID: "u1", Type: entity.EventTypeENTRADA, CreatedAt: time.Now()}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO clock_events`)).
		WithArgs(pgxmock.AnyArg(), "u1", entity.EventTypeENTRADA, (*string)(nil), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), ev))
	assert.NotEmpty(t, ev.ID, "el repo asigna UUID cuando el caller no lo trae")
}

func TestClockEventRepo_ListByUserBetween_MapeaFilas(t *testing.T) {
	mock := newMockPool(t)
	repo := postgres.NewClockEventRepository(mock)

	from := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 0, 1).Add(-time.Millisecond)
	report := "informe de salida"

	rows := pgxmock.NewRows([]string{"id", "user_id", "type", "report", "created_at"}).
		AddRow("e1", "u1", entity.EventTypeENTRADA, (*string)(nil), from.Add(8*time.Hour)).
		AddRow("e2", "u1", entity.EventTypeSAIDA, &report, from.Add(12*time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta(`FROM clock_events`)).
		WithArgs("u1", from, to).
		WillReturnRows(rows)

	events, err := repo.ListByUserBetween(context.Background(), "u1", from, to)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, entity.EventTypeENTRADA, events[0].Type)
	assert.Nil(t, events[0].Report)
	require.NotNil(t, events[1].Report)
	assert.Equal(t, report, *events[1].Report)
}

func TestClockEventRepo_ListByUserBetween_SinFilas_ListaVacia(t *testing.T) {
	mock := newMockPool(t)
	repo := postgres.NewClockEventRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM clock_events`)).
		WithArgs("u1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "type", "report", "created_at"}))

	events, err := repo.ListByUserBetween(context.Background(), "u1", time.Now().Add(-time.Hour), time.Now())
	require.NoError(t, err)
	assert.Empty(t, events, "día sin fichajes no es un error")
}

func TestUserRepo_GetByID_NoExiste_NilNil(t *testing.T) {
	mock := newMockPool(t)
	repo := postgres.NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = $1`)).
		WithArgs("nadie").
		WillReturnError(pgx.ErrNoRows)

	u, err := repo.GetByID(context.Background(), "nadie")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserRepo_UpdatePasswordHash_UsuarioBorrado(t *testing.T) {
	mock := newMockPool(t)
	repo := postgres.NewUserRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET password_hash`)).
		WithArgs("u1", "$2a$10$hash", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdatePasswordHash(context.Background(), "u1", "$2a$10$hash")
	assert.Error(t, err, "cero filas afectadas indica carrera con un borrado")
}
