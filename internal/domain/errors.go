package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// ErrInvalidState: la operación violaría un invariante del estado actual
	// (ej. la cantidad de un producto quedaría negativa).
	ErrInvalidState = errors.New("operación inválida para el estado actual")

	// ErrInsufficientStock variante de ErrInvalidState para movimientos que
	// dejarían la cantidad por debajo de cero.
	ErrInsufficientStock = errors.New("stock insuficiente")

	// ErrInvalidTransition transición de estado no permitida en el ciclo de vida
	// de una orden de compra.
	ErrInvalidTransition = errors.New("transición de estado no permitida")

	// ErrConflict pérdida frente a una actualización concurrente. Es el único
	// error elegible para reintento automático acotado.
	ErrConflict = errors.New("conflicto por actualización concurrente")
)
