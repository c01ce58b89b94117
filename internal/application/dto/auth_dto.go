package dto

// LoginRequest entrada para login: el usuario se elige de la lista, la
// contraseña se escribe. Si el usuario aún no tiene contraseña el servidor
// responde needs_setup sin consultar password.
type LoginRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Password string `json:"password"`
}

// SetupPasswordRequest entrada del primer acceso: crear la contraseña.
type SetupPasswordRequest struct {
	UserID          string `json:"user_id" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// UserResponse salida de un usuario (sin hash). HasPassword permite a la UI
// dirigir al primer acceso antes de pedir contraseña.
type UserResponse struct {
	ID           string `json:"id"`
	DepartmentID string `json:"department_id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	HasPassword  bool   `json:"has_password"`
}

// LoginResponse salida del login y del primer acceso. Con NeedsSetup en true
// no hay token: el caller debe pasar a la pantalla de creación de contraseña.
type LoginResponse struct {
	NeedsSetup bool          `json:"needs_setup"`
	Token      string        `json:"token,omitempty"`
	User       *UserResponse `json:"user,omitempty"`
}
