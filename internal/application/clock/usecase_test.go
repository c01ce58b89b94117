package clock_test

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fichaje-api/internal/application/clock"
	"github.com/jhoicas/fichaje-api/internal/application/dto"
	"github.com/jhoicas/fichaje-api/internal/domain"
	"github.com/jhoicas/fichaje-api/internal/domain/entity"
	"github.com/jhoicas/fichaje-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes: un "store" en memoria con un TxRunner que serializa con un mutex,
// igual que lo haría el SELECT FOR UPDATE sobre la fila del usuario.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu     sync.Mutex
	users  map[string]*entity.User
	events []*entity.ClockEvent
}

func newMemStore(users ...*entity.User) *memStore {
	m := &memStore{users: make(map[string]*entity.User)}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.s.users[id], nil
}
func (r *memUserRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.User, error) {
	return r.GetByID(ctx, id)
}
func (r *memUserRepo) List(_ context.Context, _ string) ([]*entity.User, error) { return nil, nil }
func (r *memUserRepo) UpdatePasswordHash(_ context.Context, _, _ string) error  { return nil }

type memEventRepo struct{ s *memStore }

func (r *memEventRepo) Create(_ context.Context, ev *entity.ClockEvent) error {
	r.s.events = append(r.s.events, ev)
	return nil
}

func (r *memEventRepo) ListByUserBetween(_ context.Context, userID string, from, to time.Time) ([]*entity.ClockEvent, error) {
	var out []*entity.ClockEvent
	for _, ev := range r.s.events {
		if ev.UserID == userID && !ev.CreatedAt.Before(from) && !ev.CreatedAt.After(to) {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(_ context.Context, fn func(repository.UserRepository, repository.ClockEventRepository) error) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return fn(&memUserRepo{s: t.s}, &memEventRepo{s: t.s})
}

type memDeptRepo struct{}

func (memDeptRepo) GetByID(_ context.Context, id string) (*entity.Department, error) {
	return &entity.Department{ID: id, Name: "Operaciones"}, nil
}
func (memDeptRepo) List(_ context.Context) ([]*entity.Department, error) { return nil, nil }

func newUC(s *memStore, policy clock.Policy) *clock.ClockUseCase {
	return clock.NewClockUseCase(
		&memTxRunner{s: s},
		&memUserRepo{s: s},
		memDeptRepo{},
		&memEventRepo{s: s},
		nil, // el PDF no interviene en estos tests
		policy,
	)
}

var defaultPolicy = clock.Policy{ReportRequiredOnExit: true, ReportMinLength: 10}

func member(id string) *entity.User {
	return &entity.User{ID: id, DepartmentID: "d1", Name: "Bruno", Role: entity.RoleMember}
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordEvent — alternancia y política de informe
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordEvent_DiaNuevo_FlujoCompleto(t *testing.T) {
	s := newMemStore(member("u1"))
	uc := newUC(s, defaultPolicy)
	ctx := context.Background()

	// Día vacío: feed sin eventos, próximo tipo ENTRADA
	today, err := uc.Today(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, today.Events)
	assert.Equal(t, entity.EventTypeENTRADA, today.NextType)

	// ENTRADA válida
	ev, err := uc.RecordEvent(ctx, "u1", dto.RecordEventRequest{Type: entity.EventTypeENTRADA})
	require.NoError(t, err)
	assert.Equal(t, entity.EventTypeENTRADA, ev.Type)
	assert.Nil(t, ev.Report, "ENTRADA ignora el informe")

	// Repetir ENTRADA: la UI quedó desactualizada → rechazado sin persistir
	_, err = uc.RecordEvent(ctx, "u1", dto.RecordEventRequest{Type: entity.EventTypeENTRADA})
	assert.ErrorIs(t, err, domain.ErrOutOfSequence)
	assert.Len(t, s.events, 1)

	// SAIDA con informe válido
	ev, err = uc.RecordEvent(ctx, "u1", dto.RecordEventRequest{
		Type:   entity.EventTypeSAIDA,
		Report: "Cierre de tareas del sprint",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EventTypeSAIDA, ev.Type)
	require.NotNil(t, ev.Report)

	today, err = uc.Today(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, today.Events, 2)
	assert.Equal(t, entity.EventTypeENTRADA, today.NextType)
}

func TestRecordEvent_TipoInvalido(t *testing.T) {
	uc := newUC(newMemStore(member("u1")), defaultPolicy)

	_, err := uc.RecordEvent(context.Background(), "u1", dto.RecordEventRequest{Type: "PAUSA"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordEvent_UsuarioInexistente(t *testing.T) {
	uc := newUC(newMemStore(), defaultPolicy)

	_, err := uc.RecordEvent(context.Background(), "nadie", dto.RecordEventRequest{Type: entity.EventTypeENTRADA})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRecordEvent_SAIDA_InformeObligatorio(t *testing.T) {
	s := newMemStore(member("u1"))
	uc := newUC(s, defaultPolicy)
	ctx := context.Background()

	_, err := uc.RecordEvent(ctx, "u1", dto.RecordEventRequest{Type: entity.EventTypeENTRADA})
	require.NoError(t, err)

	// Informe demasiado corto bajo la política por defecto (mínimo 10)
	_, err = uc.RecordEvent(ctx, "u1", dto.RecordEventRequest{Type: entity.EventTypeSAIDA, Report: "corto"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Len(t, s.events, 1, "el rechazo de política no debe persistir nada")
}

func TestRecordEvent_SAIDA_InformeOpcionalPorPolitica(t *testing.T) {
	s := newMemStore(member("u1"))
	uc := newUC(s, clock.Policy{ReportRequiredOnExit: false})
	ctx := context.Background()

	_, err := uc.RecordEvent(ctx, "u1", dto.RecordEventRequest{Type: entity.EventTypeENTRADA})
	require.NoError(t, err)

	ev, err := uc.RecordEvent(ctx, "u1", dto.RecordEventRequest{Type: entity.EventTypeSAIDA})
	require.NoError(t, err)
	assert.Nil(t, ev.Report, "sin informe se guarda ausente, no cadena vacía")
}

// Dos envíos concurrentes del mismo tipo: el TxRunner serializa; exactamente
// uno persiste y el otro observa ErrOutOfSequence tras re-leer.
func TestRecordEvent_EnviosConcurrentes_SoloUnoGana(t *testing.T) {
	s := newMemStore(member("u1"))
	uc := newUC(s, defaultPolicy)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.RecordEvent(context.Background(), "u1", dto.RecordEventRequest{Type: entity.EventTypeENTRADA})
		}(i)
	}
	wg.Wait()

	var oks, seqErrs int
	for _, err := range errs {
		switch {
		case err == nil:
			oks++
		case assert.ErrorIs(t, err, domain.ErrOutOfSequence):
			seqErrs++
		}
	}
	assert.Equal(t, 1, oks, "exactamente un envío debe ganar")
	assert.Equal(t, 1, seqErrs)
	assert.Len(t, s.events, 1, "nunca dos ENTRADA consecutivas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Today — feed del día
// ──────────────────────────────────────────────────────────────────────────────

func TestToday_IgnoraEventosDeOtrosDias(t *testing.T) {
	s := newMemStore(member("u1"))
	ayer := time.Now().AddDate(0, 0, -1)
	s.events = append(s.events, &entity.ClockEvent{
		ID: "viejo", UserID: "u1", Type: entity.EventTypeENTRADA, CreatedAt: ayer,
	})
	uc := newUC(s, defaultPolicy)

	today, err := uc.Today(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, today.Events)
	assert.Equal(t, entity.EventTypeENTRADA, today.NextType,
		"un ENTRADA de ayer no condiciona el turno de hoy")
}

func TestToday_HorasTrabajadas(t *testing.T) {
	s := newMemStore(member("u1"))
	// Anclado a la medianoche local para que el par caiga siempre en el día de hoy
	y, m, d := time.Now().Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	s.events = append(s.events,
		&entity.ClockEvent{ID: "e1", UserID: "u1", Type: entity.EventTypeENTRADA, CreatedAt: midnight.Add(1 * time.Hour)},
		&entity.ClockEvent{ID: "e2", UserID: "u1", Type: entity.EventTypeSAIDA, CreatedAt: midnight.Add(5 * time.Hour)},
	)
	uc := newUC(s, defaultPolicy)

	today, err := uc.Today(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "4", today.WorkedHours)
}
