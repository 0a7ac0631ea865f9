package repository

import "github.com/jhoicas/Pos-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para ventas (DIP).
type SaleRepository interface {
	Create(sale *entity.Sale, items []*entity.SaleItem) error
	GetByID(id string) (*entity.Sale, []*entity.SaleItem, error)
	List(limit, offset int) ([]*entity.Sale, error)
}
