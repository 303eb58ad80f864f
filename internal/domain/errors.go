package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrUserNotFound  = errors.New("usuario no encontrado")
	ErrUsernameTaken = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrInvalidPeriod = errors.New("período de agrupación inválido")
	ErrConflict      = errors.New("conflicto con el estado actual")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrCategoryInUse = errors.New("la categoría tiene productos asociados")
)
