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
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// ErrInvalidQuantity se retorna antes de cualquier acceso a datos cuando la
	// cantidad solicitada al asignador no es positiva. El mensaje es fijo y el
	// kiosco lo muestra tal cual.
	ErrInvalidQuantity = errors.New("Requested quantity must be greater than zero")

	// ErrAllocationDiscrepancy indica que el total agregado y la suma por lote no
	// coinciden (stock sin lote, o una escritura concurrente entre lecturas).
	// Mensaje genérico a propósito: no es accionable por el usuario final.
	ErrAllocationDiscrepancy = errors.New("allocation failed due to a discrepancy, please retry")
)
