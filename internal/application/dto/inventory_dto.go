package dto

import "time"

// RegisterMovementRequest body para POST /api/inventory/movements.
// type: ADJUSTMENT (quantity con signo) o TRANSFER (quantity positiva).
type RegisterMovementRequest struct {
	ProductID      string  `json:"product_id"`
	LotID          *string `json:"lot_id,omitempty"`
	LocationID     *string `json:"location_id,omitempty"`
	FromLocationID string  `json:"from_location_id,omitempty"`
	ToLocationID   string  `json:"to_location_id,omitempty"`
	Type           string  `json:"type"`
	Quantity       int64   `json:"quantity"`
	Note           string  `json:"note,omitempty"`
}

// ProductStockResponse respuesta de GET /api/inventory/stock/:productID.
type ProductStockResponse struct {
	ProductID string `json:"product_id"`
	Stock     int64  `json:"stock"`
}

// LotBalanceDTO saldo derivado de un lote, en orden FEFO.
type LotBalanceDTO struct {
	LotID     string     `json:"lot_id"`
	LotCode   string     `json:"lot_code"`
	ProductID string     `json:"product_id"`
	ExpiresOn *time.Time `json:"expires_on,omitempty"`
	Balance   int64      `json:"balance"`
}

// MovementDTO una entrada del libro para listados.
type MovementDTO struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	LotID      *string   `json:"lot_id,omitempty"`
	LocationID *string   `json:"location_id,omitempty"`
	Type       string    `json:"type"`
	Quantity   int64     `json:"quantity"`
	Reference  string    `json:"reference"`
	CreatedAt  time.Time `json:"created_at"`
}
