// Package timeclock contiene las reglas puras del registro de fichajes:
// derivación del próximo tipo de evento, ventana del día local y total de
// horas trabajadas. No toca la base de datos; el caso de uso las re-evalúa
// dentro de la transacción antes de persistir.
package timeclock

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fichaje-api/internal/domain/entity"
)

// NextType deriva el tipo permitido del próximo fichaje a partir de la
// secuencia ordenada de eventos del día: ENTRADA si la secuencia está vacía
// o el último evento fue SAIDA; SAIDA en caso contrario.
//
// Esta regla codifica la invariante de alternancia. La UI la calcula para
// mostrar el botón correcto, pero el servidor SIEMPRE la recalcula antes de
// insertar: nunca se confía en el tipo que manda el cliente.
func NextType(events []*entity.ClockEvent) string {
	if len(events) == 0 {
		return entity.EventTypeENTRADA
	}
	if events[len(events)-1].Type == entity.EventTypeENTRADA {
		return entity.EventTypeSAIDA
	}
	return entity.EventTypeENTRADA
}

// DayWindow devuelve los límites del día calendario local de now:
// [00:00:00.000, 23:59:59.999]. El sistema asume despliegue en una sola
// zona horaria, la del servidor.
func DayWindow(now time.Time) (start, end time.Time) {
	y, m, d := now.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 0, 1).Add(-time.Millisecond)
	return start, end
}

// WorkedTotal suma las horas de los pares ENTRADA→SAIDA cerrados del día,
// redondeadas a dos decimales. Un ENTRADA sin SAIDA (turno abierto) no suma.
// Asume la secuencia ordenada ascendente; con una secuencia alternante válida
// cada SAIDA cierra el ENTRADA inmediatamente anterior.
func WorkedTotal(events []*entity.ClockEvent) decimal.Decimal {
	total := decimal.Zero
	var open *entity.ClockEvent
	for _, ev := range events {
		switch ev.Type {
		case entity.EventTypeENTRADA:
			open = ev
		case entity.EventTypeSAIDA:
			if open != nil {
				seconds := ev.CreatedAt.Sub(open.CreatedAt).Seconds()
				total = total.Add(decimal.NewFromFloat(seconds))
				open = nil
			}
		}
	}
	hours := total.Div(decimal.NewFromInt(3600))
	return hours.Round(2)
}
