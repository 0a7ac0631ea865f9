package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// RegisterMovementUseCase registra ajustes manuales y traslados de forma
// transaccional. El libro es append-only: un ajuste negativo no "corrige"
// movimientos anteriores, agrega débitos FEFO nuevos.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, productRepo: productRepo}
}

// MovementInput entrada para registrar un movimiento manual.
// ADJUSTMENT positivo: ProductID, Quantity > 0, LotID opcional (nil = sin lote).
// ADJUSTMENT negativo: ProductID, Quantity < 0; el débito se reparte FEFO.
// TRANSFER: ProductID, FromLocationID, ToLocationID, Quantity > 0.
type MovementInput struct {
	UserID         string
	ProductID      string
	LotID          *string
	LocationID     *string
	FromLocationID string
	ToLocationID   string
	Type           string
	Quantity       int64
	Note           string
}

// RegisterMovement valida la entrada, abre la transacción, bloquea los lotes
// del producto y aplica la lógica según tipo. Commit o Rollback completo.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) error {
	switch input.Type {
	case entity.MovementTypeADJUSTMENT:
		if input.ProductID == "" || input.Quantity == 0 {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeTRANSFER:
		if input.ProductID == "" || input.FromLocationID == "" || input.ToLocationID == "" {
			return domain.ErrInvalidInput
		}
		if input.FromLocationID == input.ToLocationID || input.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}

	now := time.Now()
	note := input.Note
	if note == "" {
		note = uuid.New().String()
	}
	prefix := "adj"
	if input.Type == entity.MovementTypeTRANSFER {
		prefix = "trf"
	}
	reference := fmt.Sprintf("%s:%s", prefix, note)

	return uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		lotRepo repository.ProductLotRepository,
		_ repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		// Serializa contra otras asignaciones del mismo producto.
		if err := lotRepo.LockByProduct(input.ProductID); err != nil {
			return err
		}

		switch input.Type {
		case entity.MovementTypeADJUSTMENT:
			if err := uc.doAdjustment(ctx, movRepo, lotRepo, input, reference, now); err != nil {
				return err
			}
		case entity.MovementTypeTRANSFER:
			if err := uc.doTransfer(ctx, movRepo, input, reference, now); err != nil {
				return err
			}
		}
		return RefreshStockCache(movRepo, productRepo, input.ProductID)
	})
}

// doAdjustment: positivo acredita un movimiento (con o sin lote); negativo
// debita FEFO a través de los lotes vigentes.
func (uc *RegisterMovementUseCase) doAdjustment(
	ctx context.Context,
	movRepo repository.StockMovementRepository,
	lotRepo repository.ProductLotRepository,
	input MovementInput,
	reference string,
	now time.Time,
) error {
	if input.Quantity > 0 {
		if input.LotID != nil {
			lot, err := lotRepo.GetByID(*input.LotID)
			if err != nil {
				return err
			}
			if lot == nil || lot.ProductID != input.ProductID {
				return domain.ErrNotFound
			}
		}
		return movRepo.Create(&entity.StockMovement{
			ID:         uuid.New().String(),
			ProductID:  input.ProductID,
			LotID:      input.LotID,
			LocationID: input.LocationID,
			Type:       entity.MovementTypeADJUSTMENT,
			Quantity:   input.Quantity,
			Reference:  reference,
			CreatedAt:  now,
			CreatedBy:  input.UserID,
		})
	}

	stockUC := NewStockUseCase(movRepo)
	allocations, err := stockUC.AllocateFEFO(ctx, input.ProductID, -input.Quantity)
	if err != nil {
		return err
	}
	return WriteDebitMovements(movRepo, input.ProductID, input.LocationID,
		allocations, entity.MovementTypeADJUSTMENT, reference, input.UserID, now)
}

// doTransfer: par de movimientos por lote asignado, negativo en origen y
// positivo en destino. El saldo por (producto, lote) no cambia.
func (uc *RegisterMovementUseCase) doTransfer(
	ctx context.Context,
	movRepo repository.StockMovementRepository,
	input MovementInput,
	reference string,
	now time.Time,
) error {
	stockUC := NewStockUseCase(movRepo)
	allocations, err := stockUC.AllocateFEFO(ctx, input.ProductID, input.Quantity)
	if err != nil {
		return err
	}

	from, to := input.FromLocationID, input.ToLocationID
	for _, alloc := range allocations {
		lotID := alloc.LotID
		out := &entity.StockMovement{
			ID:         uuid.New().String(),
			ProductID:  input.ProductID,
			LotID:      &lotID,
			LocationID: &from,
			Type:       entity.MovementTypeTRANSFER,
			Quantity:   -alloc.Quantity,
			Reference:  reference,
			CreatedAt:  now,
			CreatedBy:  input.UserID,
		}
		if err := movRepo.Create(out); err != nil {
			return err
		}
		in := &entity.StockMovement{
			ID:         uuid.New().String(),
			ProductID:  input.ProductID,
			LotID:      &lotID,
			LocationID: &to,
			Type:       entity.MovementTypeTRANSFER,
			Quantity:   alloc.Quantity,
			Reference:  reference,
			CreatedAt:  now,
			CreatedBy:  input.UserID,
		}
		if err := movRepo.Create(in); err != nil {
			return err
		}
	}
	return nil
}
