package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseOrderRequest body para POST /api/purchase-orders.
type CreatePurchaseOrderRequest struct {
	SupplierID string                     `json:"supplier_id"`
	Lines      []PurchaseOrderLineRequest `json:"lines"`
}

// PurchaseOrderLineRequest línea de compra; lot_code y expires_on describen el
// lote que se creará al recibir.
type PurchaseOrderLineRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	LotCode   string          `json:"lot_code"`
	ExpiresOn *time.Time      `json:"expires_on,omitempty"`
}

// PurchaseOrderResponse orden creada o consultada.
type PurchaseOrderResponse struct {
	ID         string     `json:"id"`
	SupplierID string     `json:"supplier_id"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ReceivedAt *time.Time `json:"received_at,omitempty"`
}
