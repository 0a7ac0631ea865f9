package inventory

import (
	"fmt"

	"github.com/jhoicas/Pos-api/internal/domain"
)

// InsufficientStockError reporta cantidad pedida y disponible para que la capa
// de ventas pueda mostrar un mensaje claro en el checkout. Envuelve el sentinel
// domain.ErrInsufficientStock para errors.Is.
type InsufficientStockError struct {
	ProductID string
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para el producto %s (Requested: %d, Available: %d)",
		e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return domain.ErrInsufficientStock
}
