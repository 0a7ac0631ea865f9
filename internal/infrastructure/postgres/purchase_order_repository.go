package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// Ensure PurchaseOrderRepo implements repository.PurchaseOrderRepository.
var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementa la persistencia de órdenes de compra sobre
// PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository crea el repositorio de órdenes de compra.
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create inserta la orden y sus líneas.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder, lines []*entity.PurchaseOrderLine) error {
	ctx := context.Background()
	query := `
		INSERT INTO purchase_orders (id, supplier_id, status, created_at, received_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.SupplierID, order.Status,
		order.CreatedAt, order.ReceivedAt, order.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insertar orden de compra: %w", err)
	}

	lineQuery := `
		INSERT INTO purchase_order_lines (id, order_id, product_id, quantity, unit_cost, lot_code, expires_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, line := range lines {
		if _, err := r.q.Exec(ctx, lineQuery,
			line.ID, line.OrderID, line.ProductID, line.Quantity,
			line.UnitCost, line.LotCode, line.ExpiresOn,
		); err != nil {
			return fmt.Errorf("insertar línea de orden de compra: %w", err)
		}
	}
	return nil
}

// GetByID busca una orden con sus líneas. Retorna nil si no existe.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, []*entity.PurchaseOrderLine, error) {
	ctx := context.Background()
	query := `
		SELECT id, supplier_id, status, created_at, received_at, created_by
		FROM purchase_orders WHERE id = $1`
	var order entity.PurchaseOrder
	err := r.q.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.SupplierID, &order.Status,
		&order.CreatedAt, &order.ReceivedAt, &order.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("consultar orden de compra %s: %w", id, err)
	}

	lineQuery := `
		SELECT id, order_id, product_id, quantity, unit_cost, lot_code, expires_on
		FROM purchase_order_lines WHERE order_id = $1 ORDER BY id ASC`
	rows, err := r.q.Query(ctx, lineQuery, id)
	if err != nil {
		return nil, nil, fmt.Errorf("consultar líneas de la orden %s: %w", id, err)
	}
	defer rows.Close()

	var lines []*entity.PurchaseOrderLine
	for rows.Next() {
		var line entity.PurchaseOrderLine
		if err := rows.Scan(&line.ID, &line.OrderID, &line.ProductID,
			&line.Quantity, &line.UnitCost, &line.LotCode, &line.ExpiresOn); err != nil {
			return nil, nil, fmt.Errorf("escanear línea de orden: %w", err)
		}
		lines = append(lines, &line)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterar líneas de orden: %w", err)
	}
	return &order, lines, nil
}

// MarkReceived marca la orden como recibida. La condición de status en el
// WHERE hace el recibo idempotente: recibirla dos veces retorna conflicto.
func (r *PurchaseOrderRepo) MarkReceived(orderID string) error {
	ctx := context.Background()
	query := `
		UPDATE purchase_orders
		SET status = $2, received_at = NOW()
		WHERE id = $1 AND status = $3`
	tag, err := r.q.Exec(ctx, query, orderID, entity.PurchaseOrderStatusReceived, entity.PurchaseOrderStatusOpen)
	if err != nil {
		return fmt.Errorf("marcar orden %s como recibida: %w", orderID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// List lista órdenes paginadas, con filtro opcional por estado.
func (r *PurchaseOrderRepo) List(status string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	ctx := context.Background()
	query := `
		SELECT id, supplier_id, status, created_at, received_at, created_by
		FROM purchase_orders
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar órdenes de compra: %w", err)
	}
	defer rows.Close()

	var orders []*entity.PurchaseOrder
	for rows.Next() {
		var order entity.PurchaseOrder
		if err := rows.Scan(&order.ID, &order.SupplierID, &order.Status,
			&order.CreatedAt, &order.ReceivedAt, &order.CreatedBy); err != nil {
			return nil, fmt.Errorf("escanear orden de compra: %w", err)
		}
		orders = append(orders, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar órdenes de compra: %w", err)
	}
	return orders, nil
}
