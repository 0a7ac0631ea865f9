package entity

import "time"

// ProductLot representa un lote físico recibido de un producto, con su propia
// fecha de vencimiento. ExpiresOn nil = lote sin vencimiento (ordena de último
// en FEFO). El saldo de un lote nunca se guarda: se deriva de los movimientos.
type ProductLot struct {
	ID        string
	Code      string // código legible del lote (etiqueta física)
	ProductID string
	ExpiresOn *time.Time
	CreatedAt time.Time
}
