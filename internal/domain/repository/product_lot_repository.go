package repository

import "github.com/jhoicas/Pos-api/internal/domain/entity"

// ProductLotRepository define el puerto de persistencia de lotes (DIP).
type ProductLotRepository interface {
	Create(lot *entity.ProductLot) error
	GetByID(id string) (*entity.ProductLot, error)
	ListByProduct(productID string) ([]*entity.ProductLot, error)
	// LockByProduct bloquea las filas de lotes del producto (SELECT FOR UPDATE)
	// para serializar asignaciones concurrentes sobre el mismo producto. Solo
	// tiene efecto dentro de una transacción.
	LockByProduct(productID string) error
}
