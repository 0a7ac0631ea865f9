package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/inventory"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// Ensure StockMovementRepo implements repository.StockMovementRepository.
var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementa el libro de movimientos sobre PostgreSQL.
// Solo inserta: el libro es append-only y las correcciones son movimientos
// opuestos, nunca updates.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository crea el repositorio de movimientos.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create inserta un movimiento en el libro.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	ctx := context.Background()
	query := `
		INSERT INTO stock_movements (id, product_id, lot_id, location_id, type, quantity, reference, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.ProductID, movement.LotID, movement.LocationID,
		movement.Type, movement.Quantity, movement.Reference,
		movement.CreatedAt, movement.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insertar movimiento: %w", err)
	}
	return nil
}

// SumByProduct suma la cantidad con signo de todos los movimientos del
// producto. COALESCE garantiza 0 cuando no hay historial.
func (r *StockMovementRepo) SumByProduct(productID string) (int64, error) {
	ctx := context.Background()
	query := `SELECT COALESCE(SUM(quantity), 0) FROM stock_movements WHERE product_id = $1`
	var total int64
	if err := r.q.QueryRow(ctx, query, productID).Scan(&total); err != nil {
		return 0, fmt.Errorf("sumar movimientos del producto %s: %w", productID, err)
	}
	return total, nil
}

// LotBalances devuelve el saldo por lote del producto (incluye saldos cero y
// negativos; el filtro de positivos lo aplica el caso de uso). Los movimientos
// sin lote quedan fuera del agrupado.
func (r *StockMovementRepo) LotBalances(productID string) ([]inventory.LotBalance, error) {
	ctx := context.Background()
	query := `
		SELECT l.id, l.code, l.product_id, l.expires_on, COALESCE(SUM(m.quantity), 0) AS balance
		FROM product_lots l
		JOIN stock_movements m ON m.lot_id = l.id
		WHERE l.product_id = $1
		GROUP BY l.id, l.code, l.product_id, l.expires_on`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("consultar saldos por lote del producto %s: %w", productID, err)
	}
	defer rows.Close()

	var balances []inventory.LotBalance
	for rows.Next() {
		var b inventory.LotBalance
		if err := rows.Scan(&b.LotID, &b.LotCode, &b.ProductID, &b.ExpiresOn, &b.Balance); err != nil {
			return nil, fmt.Errorf("escanear saldo de lote: %w", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar saldos de lote: %w", err)
	}
	return balances, nil
}

// ListByProduct lista el historial del producto, más reciente primero, con
// filtro opcional de rango de fechas.
func (r *StockMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	ctx := context.Background()
	query := `
		SELECT id, product_id, lot_id, location_id, type, quantity, reference, created_at, created_by
		FROM stock_movements
		WHERE product_id = $1
		  AND ($2::timestamptz IS NULL OR created_at >= $2)
		  AND ($3::timestamptz IS NULL OR created_at <= $3)
		ORDER BY created_at DESC, id DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(ctx, query, productID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos del producto %s: %w", productID, err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListByReference lista los movimientos de una referencia (ej. "tx:<venta>"),
// en orden de inserción.
func (r *StockMovementRepo) ListByReference(reference string) ([]*entity.StockMovement, error) {
	ctx := context.Background()
	query := `
		SELECT id, product_id, lot_id, location_id, type, quantity, reference, created_at, created_by
		FROM stock_movements
		WHERE reference = $1
		ORDER BY created_at ASC, id ASC`
	rows, err := r.q.Query(ctx, query, reference)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos por referencia %s: %w", reference, err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

type movementRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanMovements(rows movementRows) ([]*entity.StockMovement, error) {
	var movements []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.LotID, &m.LocationID,
			&m.Type, &m.Quantity, &m.Reference, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("escanear movimiento: %w", err)
		}
		movements = append(movements, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar movimientos: %w", err)
	}
	return movements, nil
}
