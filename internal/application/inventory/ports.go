package inventory

import (
	"context"

	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Las dos lecturas del asignador y las
// escrituras del libro de una misma operación deben compartir la transacción;
// de lo contrario dos ventas concurrentes pueden leer "hay stock" ambas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		lotRepo repository.ProductLotRepository,
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error

	// RunReceiving variante con el repositorio de órdenes de compra (recepción).
	RunReceiving(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		lotRepo repository.ProductLotRepository,
		orderRepo repository.PurchaseOrderRepository,
		productRepo repository.ProductRepository,
	) error) error
}
