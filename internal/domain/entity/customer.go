package entity

import "time"

// Customer representa un cliente registrado (ventas con cliente identificado).
type Customer struct {
	ID        string
	Name      string
	TaxID     string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
