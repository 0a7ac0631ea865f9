package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	SaleStatusCompleted = "completed"
	SaleStatusVoided    = "voided" // anulada con movimientos de reversa
)

// Sale representa una transacción de venta del kiosco.
type Sale struct {
	ID         string
	CustomerID *string // nil = venta de mostrador
	CashierID  string  // UserID del cajero
	LocationID *string
	Status     string
	Total      decimal.Decimal
	CreatedAt  time.Time
}

// SaleItem es una línea de venta. Quantity en unidades enteras; el desglose por
// lote queda en los movimientos SALE con referencia "tx:<sale_id>".
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}
