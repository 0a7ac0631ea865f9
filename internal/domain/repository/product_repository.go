package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pos-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para productos (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateCost actualiza el costo de última compra (lo usa la recepción).
	UpdateCost(productID string, cost decimal.Decimal) error
	// UpdateStockCache refresca el contador desnormalizado de stock (solo
	// display). Nunca es fuente de verdad: esa es el libro de movimientos.
	UpdateStockCache(productID string, quantity int64) error
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
