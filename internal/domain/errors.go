package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrPasswordAlreadySet = errors.New("la contraseña ya fue configurada")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrOutOfSequence      = errors.New("el tipo de fichaje no corresponde al turno actual")
	ErrUnauthorized       = errors.New("no autorizado")
)
