package entity

import "time"

// Roles válidos para User.
const (
	RoleMember   = "MEMBER"
	RoleDirector = "DIRECTOR"
)

// User representa un empleado del sistema (pertenece a un Department).
// PasswordHash es nil mientras el usuario no haya completado el primer acceso;
// la transición nil -> hash ocurre exactamente una vez por alta de credenciales.
type User struct {
	ID           string
	DepartmentID string
	Name         string
	Role         string  // MEMBER, DIRECTOR
	PasswordHash *string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPassword indica si el usuario ya configuró su contraseña.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}
