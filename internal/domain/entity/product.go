package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU vendible en el punto de venta.
// StockCache es un contador desnormalizado solo para listados/legacy: la fuente
// de verdad del stock es siempre el libro de movimientos.
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta
	Cost        decimal.Decimal // costo de última compra
	Perishable  bool            // true = se reciben lotes con vencimiento
	StockCache  int64           // solo display; se refresca tras cada transacción
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
