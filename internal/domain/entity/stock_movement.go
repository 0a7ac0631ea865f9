package entity

import "time"

// Tipos de movimiento del libro de inventario.
const (
	MovementTypeRECEIPT    = "RECEIPT"    // entrada por recepción de orden de compra
	MovementTypeSALE       = "SALE"       // salida por venta
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste manual (positivo o negativo)
	MovementTypeTRANSFER   = "TRANSFER"   // traslado entre ubicaciones (par de movimientos)
)

// StockMovement es una entrada inmutable del libro de inventario (append-only).
// La suma de Quantity por producto (y por lote) ES el stock real: nunca se
// actualiza ni borra un movimiento; las correcciones son movimientos opuestos.
type StockMovement struct {
	ID         string
	ProductID  string
	LotID      *string // nil = stock sin lote
	LocationID *string
	Type       string
	Quantity   int64  // positivo entrada, negativo salida
	Reference  string // "tx:<venta>", "po:<orden>", "adj:<nota>", "trf:<nota>"
	CreatedAt  time.Time
	CreatedBy  string // UserID
}
