package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DepartmentResponse salida de un departamento para la pantalla de login.
type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
