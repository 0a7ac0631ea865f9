package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/inventory"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// WriteDebitMovements convierte un plan de asignación en movimientos negativos
// del libro: uno por entrada del plan, con el tipo y la referencia indicados.
// Debe llamarse con el movRepo atado a la MISMA transacción en que se calculó
// el plan; de lo contrario el plan puede quedar obsoleto antes del débito.
func WriteDebitMovements(
	movRepo repository.StockMovementRepository,
	productID string,
	locationID *string,
	allocations []inventory.Allocation,
	movementType, reference, userID string,
	now time.Time,
) error {
	for _, alloc := range allocations {
		lotID := alloc.LotID
		mov := &entity.StockMovement{
			ID:         uuid.New().String(),
			ProductID:  productID,
			LotID:      &lotID,
			LocationID: locationID,
			Type:       movementType,
			Quantity:   -alloc.Quantity,
			Reference:  reference,
			CreatedAt:  now,
			CreatedBy:  userID,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
	}
	return nil
}

// RefreshStockCache recalcula el total del producto desde el libro y lo copia
// al contador desnormalizado de display. El contador nunca es autoritativo.
func RefreshStockCache(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	productID string,
) error {
	total, err := movRepo.SumByProduct(productID)
	if err != nil {
		return err
	}
	return productRepo.UpdateStockCache(productID, total)
}
