package sales

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/application/inventory"
	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// CheckoutUseCase procesa una venta del kiosco: asigna stock FEFO y escribe los
// débitos del libro junto con la venta, todo dentro de UNA transacción. Si
// cualquier paso falla la venta completa se revierte; nunca queda un débito
// parcial en el libro.
type CheckoutUseCase struct {
	txRunner     inventory.TxRunner
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(
	txRunner inventory.TxRunner,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *CheckoutUseCase {
	return &CheckoutUseCase{txRunner: txRunner, productRepo: productRepo, customerRepo: customerRepo}
}

// CreateSale valida las líneas, abre la transacción, bloquea los lotes de cada
// producto (en orden estable para evitar deadlocks cruzados), pide el plan FEFO
// por línea y lo convierte en movimientos SALE negativos con referencia
// "tx:<venta>". Commit solo si la venta y todos sus débitos quedaron escritos.
func (uc *CheckoutUseCase) CreateSale(ctx context.Context, cashierID string, input dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range input.Items {
		if item.ProductID == "" {
			return nil, domain.ErrInvalidInput
		}
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
	}
	if input.CustomerID != nil {
		customer, err := uc.customerRepo.GetByID(*input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
	}

	// Precios y existencia de productos, fuera de la transacción.
	products := make(map[string]*entity.Product, len(input.Items))
	for _, item := range input.Items {
		if _, ok := products[item.ProductID]; ok {
			continue
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		products[item.ProductID] = product
	}

	now := time.Now()
	saleID := uuid.New().String()
	reference := fmt.Sprintf("tx:%s", saleID)

	var resp *dto.SaleResponse
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		lotRepo repository.ProductLotRepository,
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquear los lotes de todos los productos de la venta en orden
		// estable: dos ventas que comparten productos se serializan aquí.
		productIDs := make([]string, 0, len(products))
		for id := range products {
			productIDs = append(productIDs, id)
		}
		sort.Strings(productIDs)
		for _, id := range productIDs {
			if err := lotRepo.LockByProduct(id); err != nil {
				return err
			}
		}

		stockUC := inventory.NewStockUseCase(movRepo)

		total := decimal.Zero
		saleItems := make([]*entity.SaleItem, 0, len(input.Items))
		respItems := make([]dto.SaleItemResponse, 0, len(input.Items))

		for _, item := range input.Items {
			allocations, err := stockUC.AllocateFEFO(ctx, item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if err := inventory.WriteDebitMovements(movRepo, item.ProductID, input.LocationID,
				allocations, entity.MovementTypeSALE, reference, cashierID, now); err != nil {
				return err
			}

			product := products[item.ProductID]
			lineTotal := product.Price.Mul(decimal.NewFromInt(item.Quantity))
			total = total.Add(lineTotal)
			saleItems = append(saleItems, &entity.SaleItem{
				ID:        uuid.New().String(),
				SaleID:    saleID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: product.Price,
				LineTotal: lineTotal,
			})

			allocDTOs := make([]dto.AllocationDTO, 0, len(allocations))
			for _, alloc := range allocations {
				allocDTOs = append(allocDTOs, dto.AllocationDTO{LotID: alloc.LotID, Quantity: alloc.Quantity})
			}
			respItems = append(respItems, dto.SaleItemResponse{
				ProductID:   item.ProductID,
				Quantity:    item.Quantity,
				UnitPrice:   product.Price,
				LineTotal:   lineTotal,
				Allocations: allocDTOs,
			})
		}

		sale := &entity.Sale{
			ID:         saleID,
			CustomerID: input.CustomerID,
			CashierID:  cashierID,
			LocationID: input.LocationID,
			Status:     entity.SaleStatusCompleted,
			Total:      total,
			CreatedAt:  now,
		}
		if err := saleRepo.Create(sale, saleItems); err != nil {
			return err
		}

		for _, id := range productIDs {
			if err := inventory.RefreshStockCache(movRepo, productRepo, id); err != nil {
				return err
			}
		}

		resp = &dto.SaleResponse{
			ID:        saleID,
			Status:    sale.Status,
			Total:     total,
			CreatedAt: now,
			Items:     respItems,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
