package entity

import "time"

// Tipos válidos para ClockEvent.
const (
	EventTypeENTRADA = "ENTRADA"
	EventTypeSAIDA   = "SAIDA"
)

// ClockEvent es un fichaje individual. Append-only: se crea una vez y nunca
// se modifica ni se borra. El timestamp lo asigna siempre el servidor.
type ClockEvent struct {
	ID        string
	UserID    string
	Type      string  // ENTRADA, SAIDA
	Report    *string // informe de jornada; solo presente en SAIDA
	CreatedAt time.Time
}
