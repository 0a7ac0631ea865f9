package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest body para POST /api/sales.
type CreateSaleRequest struct {
	CustomerID *string           `json:"customer_id,omitempty"`
	LocationID *string           `json:"location_id,omitempty"`
	Items      []SaleItemRequest `json:"items"`
}

// SaleItemRequest línea pedida por el kiosco.
type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// SaleResponse venta creada, con el desglose de lotes consumido por línea.
type SaleResponse struct {
	ID        string             `json:"id"`
	Status    string             `json:"status"`
	Total     decimal.Decimal    `json:"total"`
	CreatedAt time.Time          `json:"created_at"`
	Items     []SaleItemResponse `json:"items"`
}

// SaleItemResponse línea vendida con sus asignaciones FEFO.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
	Allocations []AllocationDTO `json:"allocations"`
}

// AllocationDTO par lote → cantidad debitada.
type AllocationDTO struct {
	LotID    string `json:"lot_id"`
	Quantity int64  `json:"quantity"`
}
