package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	PurchaseOrderStatusOpen     = "open"
	PurchaseOrderStatusReceived = "received"
)

// PurchaseOrder representa una orden de compra a un proveedor.
type PurchaseOrder struct {
	ID         string
	SupplierID string
	Status     string
	CreatedAt  time.Time
	ReceivedAt *time.Time
	CreatedBy  string
}

// PurchaseOrderLine es una línea de orden de compra. Al recibirla se crea un
// ProductLot (LotCode, ExpiresOn) y un movimiento RECEIPT por Quantity.
type PurchaseOrderLine struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int64
	UnitCost  decimal.Decimal
	LotCode   string
	ExpiresOn *time.Time
}
