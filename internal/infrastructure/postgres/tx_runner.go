package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Pos-api/internal/application/inventory"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Las dos
// lecturas del asignador y los inserts del libro comparten la misma tx; el
// Rollback diferido garantiza que una venta fallida no deja débitos parciales.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	lotRepo repository.ProductLotRepository,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewStockMovementRepository(tx)
	lotRepo := NewProductLotRepository(tx)
	saleRepo := NewSaleRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(movRepo, lotRepo, saleRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunReceiving inicia una transacción con el repositorio de órdenes de compra
// (para crear y recibir órdenes).
func (r *TxRunner) RunReceiving(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	lotRepo repository.ProductLotRepository,
	orderRepo repository.PurchaseOrderRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewStockMovementRepository(tx)
	lotRepo := NewProductLotRepository(tx)
	orderRepo := NewPurchaseOrderRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(movRepo, lotRepo, orderRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
