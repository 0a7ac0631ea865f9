package purchasing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	"github.com/jhoicas/Pos-api/internal/application/purchasing"
	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
	dominventory "github.com/jhoicas/Pos-api/internal/domain/inventory"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks
// ──────────────────────────────────────────────────────────────────────────────

type ledgerMock struct {
	created []*entity.StockMovement
}

func (m *ledgerMock) Create(mov *entity.StockMovement) error {
	m.created = append(m.created, mov)
	return nil
}

func (m *ledgerMock) SumByProduct(string) (int64, error) {
	var total int64
	for _, mov := range m.created {
		total += mov.Quantity
	}
	return total, nil
}

func (m *ledgerMock) LotBalances(string) ([]dominventory.LotBalance, error) { return nil, nil }

func (m *ledgerMock) ListByProduct(string, *time.Time, *time.Time, int, int) ([]*entity.StockMovement, error) {
	return nil, nil
}

func (m *ledgerMock) ListByReference(string) ([]*entity.StockMovement, error) { return nil, nil }

type lotRepoMock struct {
	created []*entity.ProductLot
}

func (m *lotRepoMock) Create(lot *entity.ProductLot) error {
	m.created = append(m.created, lot)
	return nil
}

func (m *lotRepoMock) GetByID(string) (*entity.ProductLot, error)         { return nil, nil }
func (m *lotRepoMock) ListByProduct(string) ([]*entity.ProductLot, error) { return nil, nil }
func (m *lotRepoMock) LockByProduct(string) error                         { return nil }

type orderRepoMock struct {
	order    *entity.PurchaseOrder
	lines    []*entity.PurchaseOrderLine
	received bool
}

func (m *orderRepoMock) Create(order *entity.PurchaseOrder, lines []*entity.PurchaseOrderLine) error {
	m.order = order
	m.lines = lines
	return nil
}

func (m *orderRepoMock) GetByID(id string) (*entity.PurchaseOrder, []*entity.PurchaseOrderLine, error) {
	if m.order == nil || m.order.ID != id {
		return nil, nil, nil
	}
	return m.order, m.lines, nil
}

func (m *orderRepoMock) MarkReceived(orderID string) error {
	if m.order == nil || m.order.Status != entity.PurchaseOrderStatusOpen {
		return domain.ErrConflict
	}
	m.order.Status = entity.PurchaseOrderStatusReceived
	m.received = true
	return nil
}

func (m *orderRepoMock) List(string, int, int) ([]*entity.PurchaseOrder, error) { return nil, nil }

type supplierRepoMock struct {
	suppliers map[string]*entity.Supplier
}

func (m *supplierRepoMock) Create(*entity.Supplier) error { return nil }

func (m *supplierRepoMock) GetByID(id string) (*entity.Supplier, error) {
	return m.suppliers[id], nil
}

func (m *supplierRepoMock) Update(*entity.Supplier) error             { return nil }
func (m *supplierRepoMock) List(int, int) ([]*entity.Supplier, error) { return nil, nil }
func (m *supplierRepoMock) Delete(string) error                       { return nil }

type productRepoMock struct {
	products     map[string]*entity.Product
	costUpdates  map[string]decimal.Decimal
	cacheUpdates map[string]int64
}

func (m *productRepoMock) Create(*entity.Product) error { return nil }

func (m *productRepoMock) GetByID(id string) (*entity.Product, error) {
	return m.products[id], nil
}

func (m *productRepoMock) GetBySKU(string) (*entity.Product, error) { return nil, nil }
func (m *productRepoMock) Update(*entity.Product) error             { return nil }
func (m *productRepoMock) List(int, int) ([]*entity.Product, error) { return nil, nil }
func (m *productRepoMock) Delete(string) error                      { return nil }

func (m *productRepoMock) UpdateCost(productID string, cost decimal.Decimal) error {
	if m.costUpdates == nil {
		m.costUpdates = make(map[string]decimal.Decimal)
	}
	m.costUpdates[productID] = cost
	return nil
}

func (m *productRepoMock) UpdateStockCache(productID string, quantity int64) error {
	if m.cacheUpdates == nil {
		m.cacheUpdates = make(map[string]int64)
	}
	m.cacheUpdates[productID] = quantity
	return nil
}

type txRunnerMock struct {
	mov    *ledgerMock
	lots   *lotRepoMock
	orders *orderRepoMock
	prod   *productRepoMock
}

func (m *txRunnerMock) Run(ctx context.Context, fn func(
	repository.StockMovementRepository,
	repository.ProductLotRepository,
	repository.SaleRepository,
	repository.ProductRepository,
) error) error {
	return nil
}

func (m *txRunnerMock) RunReceiving(ctx context.Context, fn func(
	repository.StockMovementRepository,
	repository.ProductLotRepository,
	repository.PurchaseOrderRepository,
	repository.ProductRepository,
) error) error {
	return fn(m.mov, m.lots, m.orders, m.prod)
}

func expiry(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return &d
}

func newFixture(t *testing.T) (*purchasing.ReceiveUseCase, *txRunnerMock) {
	t.Helper()
	runner := &txRunnerMock{
		mov:    &ledgerMock{},
		lots:   &lotRepoMock{},
		orders: &orderRepoMock{},
		prod: &productRepoMock{products: map[string]*entity.Product{
			"perecedero":    {ID: "perecedero", SKU: "YOG", Name: "Yogur", Perishable: true},
			"no-perecedero": {ID: "no-perecedero", SKU: "ARR", Name: "Arroz", Perishable: false},
		}},
	}
	suppliers := &supplierRepoMock{suppliers: map[string]*entity.Supplier{
		"s1": {ID: "s1", Name: "Distribuidora"},
	}}
	uc := purchasing.NewReceiveUseCase(runner, runner.orders, suppliers, runner.prod)
	return uc, runner
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateOrder
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateOrder_PersisteOrdenAbierta(t *testing.T) {
	uc, runner := newFixture(t)

	resp, err := uc.CreateOrder(context.Background(), "bodeguero-1", dto.CreatePurchaseOrderRequest{
		SupplierID: "s1",
		Lines: []dto.PurchaseOrderLineRequest{
			{ProductID: "perecedero", Quantity: 10, UnitCost: decimal.NewFromFloat(1.75), LotCode: "L-001", ExpiresOn: expiry(t, "2026-09-30")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseOrderStatusOpen, resp.Status)
	require.NotNil(t, runner.orders.order)
	assert.Equal(t, "bodeguero-1", runner.orders.order.CreatedBy)
	require.Len(t, runner.orders.lines, 1)
	assert.Equal(t, "L-001", runner.orders.lines[0].LotCode)
	assert.Empty(t, runner.mov.created, "crear la orden no toca el libro")
}

func TestCreateOrder_ProveedorInexistente(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.CreateOrder(context.Background(), "u1", dto.CreatePurchaseOrderRequest{
		SupplierID: "fantasma",
		Lines: []dto.PurchaseOrderLineRequest{
			{ProductID: "no-perecedero", Quantity: 5, LotCode: "L-002"},
		},
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateOrder_PerecederoSinVencimientoEsInvalido(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.CreateOrder(context.Background(), "u1", dto.CreatePurchaseOrderRequest{
		SupplierID: "s1",
		Lines: []dto.PurchaseOrderLineRequest{
			{ProductID: "perecedero", Quantity: 5, LotCode: "L-003"},
		},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"un producto perecedero siempre se recibe con fecha de vencimiento")
}

func TestCreateOrder_SinLineasEsInvalido(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.CreateOrder(context.Background(), "u1", dto.CreatePurchaseOrderRequest{SupplierID: "s1"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// ReceiveOrder
// ──────────────────────────────────────────────────────────────────────────────

func createOpenOrder(t *testing.T, uc *purchasing.ReceiveUseCase) string {
	t.Helper()
	resp, err := uc.CreateOrder(context.Background(), "bodeguero-1", dto.CreatePurchaseOrderRequest{
		SupplierID: "s1",
		Lines: []dto.PurchaseOrderLineRequest{
			{ProductID: "perecedero", Quantity: 10, UnitCost: decimal.NewFromFloat(1.75), LotCode: "L-001", ExpiresOn: expiry(t, "2026-09-30")},
			{ProductID: "no-perecedero", Quantity: 20, UnitCost: decimal.NewFromFloat(1.05), LotCode: "L-002"},
		},
	})
	require.NoError(t, err)
	return resp.ID
}

func TestReceiveOrder_CreaLotesYAcreditaElLibro(t *testing.T) {
	uc, runner := newFixture(t)
	orderID := createOpenOrder(t, uc)

	err := uc.ReceiveOrder(context.Background(), orderID, "bodeguero-1")

	require.NoError(t, err)
	assert.True(t, runner.orders.received)

	// Un lote por línea, con el código y vencimiento de la línea.
	require.Len(t, runner.lots.created, 2)
	assert.Equal(t, "L-001", runner.lots.created[0].Code)
	require.NotNil(t, runner.lots.created[0].ExpiresOn)
	assert.Nil(t, runner.lots.created[1].ExpiresOn, "línea sin vencimiento crea lote sin vencimiento")

	// Un RECEIPT positivo por línea, con referencia po:<orden>.
	require.Len(t, runner.mov.created, 2)
	for _, mov := range runner.mov.created {
		assert.Equal(t, entity.MovementTypeRECEIPT, mov.Type)
		assert.Positive(t, mov.Quantity)
		assert.Equal(t, "po:"+orderID, mov.Reference)
		require.NotNil(t, mov.LotID, "toda recepción entra con lote")
	}
	assert.Equal(t, int64(10), runner.mov.created[0].Quantity)
	assert.Equal(t, int64(20), runner.mov.created[1].Quantity)

	// Costo de última compra y cache actualizados.
	assert.True(t, runner.prod.costUpdates["perecedero"].Equal(decimal.NewFromFloat(1.75)))
	assert.Contains(t, runner.prod.cacheUpdates, "perecedero")
	assert.Contains(t, runner.prod.cacheUpdates, "no-perecedero")
}

func TestReceiveOrder_OrdenYaRecibidaEsConflicto(t *testing.T) {
	uc, runner := newFixture(t)
	orderID := createOpenOrder(t, uc)
	require.NoError(t, uc.ReceiveOrder(context.Background(), orderID, "u1"))
	movimientos := len(runner.mov.created)

	err := uc.ReceiveOrder(context.Background(), orderID, "u1")

	assert.ErrorIs(t, err, domain.ErrConflict, "recibir dos veces no duplica stock")
	assert.Len(t, runner.mov.created, movimientos, "el libro no recibe entradas nuevas")
}

func TestReceiveOrder_OrdenInexistente(t *testing.T) {
	uc, _ := newFixture(t)

	err := uc.ReceiveOrder(context.Background(), "no-existe", "u1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
