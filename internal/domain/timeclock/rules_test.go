package timeclock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fichaje-api/internal/domain/entity"
	"github.com/jhoicas/fichaje-api/internal/domain/timeclock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func evt(tipo string, at time.Time) *entity.ClockEvent {
	return &entity.ClockEvent{ID: tipo + at.String(), UserID: "u1", Type: tipo, CreatedAt: at}
}

var base = time.Date(2024, 3, 11, 8, 0, 0, 0, time.Local)

// ──────────────────────────────────────────────────────────────────────────────
// NextType — la invariante de alternancia
// ──────────────────────────────────────────────────────────────────────────────

func TestNextType_SinEventos_EsENTRADA(t *testing.T) {
	assert.Equal(t, entity.EventTypeENTRADA, timeclock.NextType(nil))
	assert.Equal(t, entity.EventTypeENTRADA, timeclock.NextType([]*entity.ClockEvent{}))
}

func TestNextType_UltimoENTRADA_EsSAIDA(t *testing.T) {
	events := []*entity.ClockEvent{evt(entity.EventTypeENTRADA, base)}
	assert.Equal(t, entity.EventTypeSAIDA, timeclock.NextType(events))
}

func TestNextType_UltimoSAIDA_EsENTRADA(t *testing.T) {
	events := []*entity.ClockEvent{
		evt(entity.EventTypeENTRADA, base),
		evt(entity.EventTypeSAIDA, base.Add(4*time.Hour)),
	}
	assert.Equal(t, entity.EventTypeENTRADA, timeclock.NextType(events))
}

// Para cualquier secuencia alternante válida la regla se sostiene por inducción:
// construimos la secuencia aplicando la propia regla y verificamos que cada
// paso produce el tipo contrario al anterior.
func TestNextType_SecuenciaAlternante_Inductivo(t *testing.T) {
	var events []*entity.ClockEvent
	expected := entity.EventTypeENTRADA
	for i := 0; i < 8; i++ {
		next := timeclock.NextType(events)
		require.Equal(t, expected, next, "paso %d", i)
		events = append(events, evt(next, base.Add(time.Duration(i)*time.Hour)))
		if expected == entity.EventTypeENTRADA {
			expected = entity.EventTypeSAIDA
		} else {
			expected = entity.EventTypeENTRADA
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// DayWindow — límites del día local
// ──────────────────────────────────────────────────────────────────────────────

func TestDayWindow_LimitesDelDia(t *testing.T) {
	now := time.Date(2024, 3, 11, 15, 42, 7, 123456789, time.Local)
	start, end := timeclock.DayWindow(now)

	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2024, 3, 11, 23, 59, 59, 999000000, time.Local), end)
}

func TestDayWindow_MedianocheCaeEnSuPropioDia(t *testing.T) {
	midnight := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)
	start, end := timeclock.DayWindow(midnight)

	assert.False(t, midnight.Before(start))
	assert.False(t, midnight.After(end))
}

// ──────────────────────────────────────────────────────────────────────────────
// WorkedTotal — horas de pares cerrados
// ──────────────────────────────────────────────────────────────────────────────

func TestWorkedTotal_SinEventos_Cero(t *testing.T) {
	assert.True(t, timeclock.WorkedTotal(nil).IsZero())
}

func TestWorkedTotal_ParCerrado(t *testing.T) {
	events := []*entity.ClockEvent{
		evt(entity.EventTypeENTRADA, base),
		evt(entity.EventTypeSAIDA, base.Add(4*time.Hour+30*time.Minute)),
	}
	assert.True(t, decimal.NewFromFloat(4.5).Equal(timeclock.WorkedTotal(events)),
		"4h30m deben sumar 4.50 horas, obtuvo %s", timeclock.WorkedTotal(events))
}

func TestWorkedTotal_TurnoAbiertoNoSuma(t *testing.T) {
	events := []*entity.ClockEvent{
		evt(entity.EventTypeENTRADA, base),
		evt(entity.EventTypeSAIDA, base.Add(2*time.Hour)),
		evt(entity.EventTypeENTRADA, base.Add(3*time.Hour)),
	}
	assert.True(t, decimal.NewFromInt(2).Equal(timeclock.WorkedTotal(events)),
		"el ENTRADA sin cerrar no debe sumar")
}

func TestWorkedTotal_VariosPares_Redondeo(t *testing.T) {
	events := []*entity.ClockEvent{
		evt(entity.EventTypeENTRADA, base),
		evt(entity.EventTypeSAIDA, base.Add(3*time.Hour+20*time.Minute)),
		evt(entity.EventTypeENTRADA, base.Add(4*time.Hour)),
		evt(entity.EventTypeSAIDA, base.Add(7*time.Hour+20*time.Minute)),
	}
	// 3h20m + 3h20m = 6.666... → 6.67
	assert.Equal(t, "6.67", timeclock.WorkedTotal(events).String())
}
