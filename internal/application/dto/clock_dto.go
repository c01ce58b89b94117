package dto

import "time"

// RecordEventRequest entrada para registrar un fichaje. Type es el tipo que la
// UI cree que toca; el servidor lo re-deriva y rechaza si no coincide.
type RecordEventRequest struct {
	Type   string `json:"type" validate:"required,oneof=ENTRADA SAIDA"`
	Report string `json:"report" validate:"omitempty,max=2000"`
}

// ClockEventResponse salida de un fichaje.
type ClockEventResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Report    *string   `json:"report,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TodayResponse feed del día: eventos ordenados, el tipo que toca a
// continuación y el total de horas de los turnos cerrados.
type TodayResponse struct {
	Events      []ClockEventResponse `json:"events"`
	NextType    string               `json:"next_type"`
	WorkedHours string               `json:"worked_hours"`
}
