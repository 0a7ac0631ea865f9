package repository

import "github.com/jhoicas/Pos-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para proveedores (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List(limit, offset int) ([]*entity.Supplier, error)
	Delete(id string) error
}
