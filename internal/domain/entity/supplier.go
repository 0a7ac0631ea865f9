package entity

import "time"

// Supplier representa un proveedor (origen de las órdenes de compra).
type Supplier struct {
	ID        string
	Name      string
	TaxID     string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
