package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/inventory"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// StockUseCase expone las tres operaciones del motor de stock: total agregado,
// saldos por lote en orden FEFO y plan de asignación FEFO.
//
// La participación transaccional sigue el patrón Querier: se construye una
// instancia sobre repositorios atados al pool para lecturas sueltas, o sobre
// los repositorios atados a la tx que entrega el TxRunner cuando la asignación
// debe ser atómica con la escritura del libro (ventas, ajustes).
type StockUseCase struct {
	movRepo repository.StockMovementRepository
}

// NewStockUseCase construye el caso de uso sobre el repositorio del libro.
func NewStockUseCase(movRepo repository.StockMovementRepository) *StockUseCase {
	return &StockUseCase{movRepo: movRepo}
}

// GetProductStock devuelve el stock total del producto: suma con signo de todos
// sus movimientos, sobre todos los lotes y ubicaciones combinados. Un producto
// sin historial tiene stock 0, no es un error.
func (uc *StockUseCase) GetProductStock(ctx context.Context, productID string) (int64, error) {
	total, err := uc.movRepo.SumByProduct(productID)
	if err != nil {
		return 0, fmt.Errorf("consultar stock del producto %s: %w", productID, err)
	}
	return total, nil
}

// GetLotsWithBalance devuelve los lotes del producto con saldo estrictamente
// positivo, ordenados por vencimiento ascendente (sin vencimiento al final,
// desempate por id de lote). Puede ser vacío aunque GetProductStock reporte
// stock: eso indica stock sin lote y el asignador lo trata como discrepancia.
func (uc *StockUseCase) GetLotsWithBalance(ctx context.Context, productID string) ([]inventory.LotBalance, error) {
	balances, err := uc.movRepo.LotBalances(productID)
	if err != nil {
		return nil, fmt.Errorf("consultar lotes del producto %s: %w", productID, err)
	}
	lots := inventory.WithPositiveBalance(balances)
	inventory.SortFEFO(lots)
	return lots, nil
}

// AllocateFEFO valida la cantidad, verifica disponibilidad agregada y recorre
// los lotes en orden FEFO armando el plan de asignación. Solo planifica: el
// caller convierte el plan en movimientos negativos dentro de SU transacción.
func (uc *StockUseCase) AllocateFEFO(ctx context.Context, productID string, requested int64) ([]inventory.Allocation, error) {
	// Validación pura, antes de tocar la base de datos.
	if requested <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	// Corte temprano: si el total agregado no alcanza, no hay lote que recorrer.
	total, err := uc.GetProductStock(ctx, productID)
	if err != nil {
		return nil, err
	}
	if total < requested {
		log.Warn().
			Str("product_id", productID).
			Int64("requested", requested).
			Int64("available", total).
			Msg("asignación rechazada por stock insuficiente")
		return nil, &inventory.InsufficientStockError{
			ProductID: productID,
			Requested: requested,
			Available: total,
		}
	}

	lots, err := uc.GetLotsWithBalance(ctx, productID)
	if err != nil {
		return nil, err
	}

	allocations, remaining := inventory.Allocate(lots, requested)
	if remaining > 0 {
		// El agregado prometió stock que los lotes no cubren: movimientos sin
		// lote o una escritura concurrente entre las dos lecturas.
		log.Error().
			Str("product_id", productID).
			Int64("requested", requested).
			Int64("remaining", remaining).
			Int("lots", len(lots)).
			Msg("discrepancia entre stock agregado y saldos por lote")
		return nil, domain.ErrAllocationDiscrepancy
	}
	return allocations, nil
}

// ListMovements devuelve el historial del producto, con filtro opcional de
// fechas y paginación.
func (uc *StockUseCase) ListMovements(ctx context.Context, productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	movements, err := uc.movRepo.ListByProduct(productID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos del producto %s: %w", productID, err)
	}
	return movements, nil
}

// ListMovementsByReference devuelve los movimientos de una transacción o nota
// (ej. "tx:<venta>", "po:<orden>").
func (uc *StockUseCase) ListMovementsByReference(ctx context.Context, reference string) ([]*entity.StockMovement, error) {
	movements, err := uc.movRepo.ListByReference(reference)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos por referencia %s: %w", reference, err)
	}
	return movements, nil
}
