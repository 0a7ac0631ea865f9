package purchasing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/application/inventory"
	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// ReceiveUseCase gestiona órdenes de compra y su recepción. Recibir una orden
// crea un ProductLot por línea y acredita el libro con un movimiento RECEIPT
// por línea, referencia "po:<orden>", todo en una transacción.
type ReceiveUseCase struct {
	txRunner     inventory.TxRunner
	orderRepo    repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
}

// NewReceiveUseCase construye el caso de uso.
func NewReceiveUseCase(
	txRunner inventory.TxRunner,
	orderRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
) *ReceiveUseCase {
	return &ReceiveUseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
	}
}

// CreateOrder valida proveedor, productos y líneas, y persiste la orden en
// estado open. Todavía no toca el libro de inventario.
func (uc *ReceiveUseCase) CreateOrder(ctx context.Context, userID string, input dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if input.SupplierID == "" || len(input.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(input.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	for _, line := range input.Lines {
		if line.ProductID == "" || line.Quantity <= 0 || line.LotCode == "" {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		// Los perecederos reciben siempre con fecha de vencimiento.
		if product.Perishable && line.ExpiresOn == nil {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	order := &entity.PurchaseOrder{
		ID:         uuid.New().String(),
		SupplierID: input.SupplierID,
		Status:     entity.PurchaseOrderStatusOpen,
		CreatedAt:  now,
		CreatedBy:  userID,
	}
	lines := make([]*entity.PurchaseOrderLine, 0, len(input.Lines))
	for _, line := range input.Lines {
		lines = append(lines, &entity.PurchaseOrderLine{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitCost:  line.UnitCost,
			LotCode:   line.LotCode,
			ExpiresOn: line.ExpiresOn,
		})
	}

	err = uc.txRunner.RunReceiving(ctx, func(
		_ repository.StockMovementRepository,
		_ repository.ProductLotRepository,
		orderRepo repository.PurchaseOrderRepository,
		_ repository.ProductRepository,
	) error {
		return orderRepo.Create(order, lines)
	})
	if err != nil {
		return nil, err
	}
	return &dto.PurchaseOrderResponse{
		ID:         order.ID,
		SupplierID: order.SupplierID,
		Status:     order.Status,
		CreatedAt:  order.CreatedAt,
	}, nil
}

// ReceiveOrder marca la orden como recibida y acredita el inventario: un lote
// nuevo y un movimiento RECEIPT por línea. Idempotente por estado: una orden
// ya recibida devuelve conflicto y no duplica entradas del libro.
func (uc *ReceiveUseCase) ReceiveOrder(ctx context.Context, orderID, userID string) error {
	return uc.txRunner.RunReceiving(ctx, func(
		movRepo repository.StockMovementRepository,
		lotRepo repository.ProductLotRepository,
		orderRepo repository.PurchaseOrderRepository,
		productRepo repository.ProductRepository,
	) error {
		order, lines, err := orderRepo.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.PurchaseOrderStatusOpen {
			return domain.ErrConflict
		}
		if err := orderRepo.MarkReceived(orderID); err != nil {
			return err
		}

		now := time.Now()
		reference := fmt.Sprintf("po:%s", orderID)
		touched := make(map[string]struct{}, len(lines))

		for _, line := range lines {
			lot := &entity.ProductLot{
				ID:        uuid.New().String(),
				Code:      line.LotCode,
				ProductID: line.ProductID,
				ExpiresOn: line.ExpiresOn,
				CreatedAt: now,
			}
			if err := lotRepo.Create(lot); err != nil {
				return err
			}
			mov := &entity.StockMovement{
				ID:        uuid.New().String(),
				ProductID: line.ProductID,
				LotID:     &lot.ID,
				Type:      entity.MovementTypeRECEIPT,
				Quantity:  line.Quantity,
				Reference: reference,
				CreatedAt: now,
				CreatedBy: userID,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
			if err := productRepo.UpdateCost(line.ProductID, line.UnitCost); err != nil {
				return err
			}
			touched[line.ProductID] = struct{}{}
		}

		for productID := range touched {
			if err := inventory.RefreshStockCache(movRepo, productRepo, productID); err != nil {
				return err
			}
		}
		return nil
	})
}
