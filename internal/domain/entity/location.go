package entity

import "time"

// Location representa una ubicación física de stock (sala de ventas, bodega).
// Los movimientos la referencian de forma opcional; el stock agregado de un
// producto se calcula siempre sobre todas las ubicaciones combinadas.
type Location struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
}
