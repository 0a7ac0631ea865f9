package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// Ensure SaleRepo implements repository.SaleRepository.
var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementa la persistencia de ventas sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository crea el repositorio de ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la venta y sus líneas. Debe llamarse dentro de la misma
// transacción que escribe los movimientos de stock.
func (r *SaleRepo) Create(sale *entity.Sale, items []*entity.SaleItem) error {
	ctx := context.Background()
	query := `
		INSERT INTO sales (id, customer_id, cashier_id, location_id, status, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.CustomerID, sale.CashierID, sale.LocationID,
		sale.Status, sale.Total, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insertar venta: %w", err)
	}

	itemQuery := `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, item := range items {
		if _, err := r.q.Exec(ctx, itemQuery,
			item.ID, item.SaleID, item.ProductID, item.Quantity,
			item.UnitPrice, item.LineTotal,
		); err != nil {
			return fmt.Errorf("insertar línea de venta: %w", err)
		}
	}
	return nil
}

// GetByID busca una venta con sus líneas. Retorna nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, []*entity.SaleItem, error) {
	ctx := context.Background()
	query := `
		SELECT id, customer_id, cashier_id, location_id, status, total, created_at
		FROM sales WHERE id = $1`
	var sale entity.Sale
	err := r.q.QueryRow(ctx, query, id).Scan(
		&sale.ID, &sale.CustomerID, &sale.CashierID, &sale.LocationID,
		&sale.Status, &sale.Total, &sale.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("consultar venta %s: %w", id, err)
	}

	itemQuery := `
		SELECT id, sale_id, product_id, quantity, unit_price, line_total
		FROM sale_items WHERE sale_id = $1 ORDER BY id ASC`
	rows, err := r.q.Query(ctx, itemQuery, id)
	if err != nil {
		return nil, nil, fmt.Errorf("consultar líneas de venta %s: %w", id, err)
	}
	defer rows.Close()

	var items []*entity.SaleItem
	for rows.Next() {
		var item entity.SaleItem
		if err := rows.Scan(&item.ID, &item.SaleID, &item.ProductID,
			&item.Quantity, &item.UnitPrice, &item.LineTotal); err != nil {
			return nil, nil, fmt.Errorf("escanear línea de venta: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterar líneas de venta: %w", err)
	}
	return &sale, items, nil
}

// List lista ventas paginadas, más reciente primero.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	ctx := context.Background()
	query := `
		SELECT id, customer_id, cashier_id, location_id, status, total, created_at
		FROM sales
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar ventas: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		var sale entity.Sale
		if err := rows.Scan(&sale.ID, &sale.CustomerID, &sale.CashierID,
			&sale.LocationID, &sale.Status, &sale.Total, &sale.CreatedAt); err != nil {
			return nil, fmt.Errorf("escanear venta: %w", err)
		}
		sales = append(sales, &sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar ventas: %w", err)
	}
	return sales, nil
}
