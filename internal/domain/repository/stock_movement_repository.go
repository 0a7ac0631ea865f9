package repository

import (
	"time"

	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/inventory"
)

// StockMovementRepository define el puerto de persistencia del libro de
// inventario (DIP). El libro es append-only: solo Create, nunca update/delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// SumByProduct suma la cantidad con signo de TODOS los movimientos del
	// producto, sin filtro de lote ni ubicación. 0 si no hay historial.
	SumByProduct(productID string) (int64, error)
	// LotBalances devuelve la suma de movimientos agrupada por lote del
	// producto, incluyendo lotes con saldo cero o negativo (el filtro HAVING
	// lo aplica el caso de uso). Excluye movimientos sin lote.
	LotBalances(productID string) ([]inventory.LotBalance, error)
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	ListByReference(reference string) ([]*entity.StockMovement, error)
}
