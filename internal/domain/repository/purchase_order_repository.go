package repository

import "github.com/jhoicas/Pos-api/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para órdenes de
// compra (DIP).
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder, lines []*entity.PurchaseOrderLine) error
	GetByID(id string) (*entity.PurchaseOrder, []*entity.PurchaseOrderLine, error)
	// MarkReceived cambia el estado a received y fija ReceivedAt. Falla con
	// conflicto si la orden ya fue recibida (idempotencia del recibo).
	MarkReceived(orderID string) error
	List(status string, limit, offset int) ([]*entity.PurchaseOrder, error)
}
