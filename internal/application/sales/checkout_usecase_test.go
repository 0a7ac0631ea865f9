package sales_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pos-api/internal/application/dto"
	appinventory "github.com/jhoicas/Pos-api/internal/application/inventory"
	"github.com/jhoicas/Pos-api/internal/application/sales"
	"github.com/jhoicas/Pos-api/internal/domain"
	"github.com/jhoicas/Pos-api/internal/domain/entity"
	dominventory "github.com/jhoicas/Pos-api/internal/domain/inventory"
	"github.com/jhoicas/Pos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks
// ──────────────────────────────────────────────────────────────────────────────

// ledgerMock simula el libro por producto: totales y saldos por lote fijos, y
// registra los movimientos que el checkout escribe.
type ledgerMock struct {
	totals   map[string]int64
	balances map[string][]dominventory.LotBalance
	created  []*entity.StockMovement
}

func (m *ledgerMock) Create(mov *entity.StockMovement) error {
	m.created = append(m.created, mov)
	return nil
}

func (m *ledgerMock) SumByProduct(productID string) (int64, error) {
	return m.totals[productID], nil
}

func (m *ledgerMock) LotBalances(productID string) ([]dominventory.LotBalance, error) {
	return m.balances[productID], nil
}

func (m *ledgerMock) ListByProduct(string, *time.Time, *time.Time, int, int) ([]*entity.StockMovement, error) {
	return nil, nil
}

func (m *ledgerMock) ListByReference(string) ([]*entity.StockMovement, error) {
	return nil, nil
}

type lotRepoMock struct {
	lockedProducts []string
}

func (m *lotRepoMock) Create(*entity.ProductLot) error                       { return nil }
func (m *lotRepoMock) GetByID(string) (*entity.ProductLot, error)            { return nil, nil }
func (m *lotRepoMock) ListByProduct(string) ([]*entity.ProductLot, error)    { return nil, nil }
func (m *lotRepoMock) LockByProduct(productID string) error {
	m.lockedProducts = append(m.lockedProducts, productID)
	return nil
}

type saleRepoMock struct {
	sale  *entity.Sale
	items []*entity.SaleItem
}

func (m *saleRepoMock) Create(sale *entity.Sale, items []*entity.SaleItem) error {
	m.sale = sale
	m.items = items
	return nil
}

func (m *saleRepoMock) GetByID(string) (*entity.Sale, []*entity.SaleItem, error) {
	return m.sale, m.items, nil
}

func (m *saleRepoMock) List(int, int) ([]*entity.Sale, error) { return nil, nil }

type productRepoMock struct {
	products     map[string]*entity.Product
	cacheUpdates map[string]int64
}

func (m *productRepoMock) Create(*entity.Product) error { return nil }

func (m *productRepoMock) GetByID(id string) (*entity.Product, error) {
	return m.products[id], nil
}

func (m *productRepoMock) GetBySKU(string) (*entity.Product, error)          { return nil, nil }
func (m *productRepoMock) Update(*entity.Product) error                      { return nil }
func (m *productRepoMock) UpdateCost(string, decimal.Decimal) error          { return nil }
func (m *productRepoMock) List(int, int) ([]*entity.Product, error)          { return nil, nil }
func (m *productRepoMock) Delete(string) error                               { return nil }

func (m *productRepoMock) UpdateStockCache(productID string, quantity int64) error {
	if m.cacheUpdates == nil {
		m.cacheUpdates = make(map[string]int64)
	}
	m.cacheUpdates[productID] = quantity
	return nil
}

type customerRepoMock struct {
	customers map[string]*entity.Customer
}

func (m *customerRepoMock) Create(*entity.Customer) error { return nil }

func (m *customerRepoMock) GetByID(id string) (*entity.Customer, error) {
	return m.customers[id], nil
}

func (m *customerRepoMock) Update(*entity.Customer) error             { return nil }
func (m *customerRepoMock) List(int, int) ([]*entity.Customer, error) { return nil, nil }
func (m *customerRepoMock) Delete(string) error                       { return nil }

// txRunnerMock ejecuta el callback de inmediato con los mocks; cuenta las
// invocaciones para verificar que la validación corta antes de abrir tx.
type txRunnerMock struct {
	mov  *ledgerMock
	lots *lotRepoMock
	sale *saleRepoMock
	prod *productRepoMock
	runs int
}

func (m *txRunnerMock) Run(ctx context.Context, fn func(
	repository.StockMovementRepository,
	repository.ProductLotRepository,
	repository.SaleRepository,
	repository.ProductRepository,
) error) error {
	m.runs++
	return fn(m.mov, m.lots, m.sale, m.prod)
}

func (m *txRunnerMock) RunReceiving(ctx context.Context, fn func(
	repository.StockMovementRepository,
	repository.ProductLotRepository,
	repository.PurchaseOrderRepository,
	repository.ProductRepository,
) error) error {
	return nil
}

var _ appinventory.TxRunner = (*txRunnerMock)(nil)

func expiry(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return &d
}

func newFixture(t *testing.T) (*sales.CheckoutUseCase, *txRunnerMock) {
	t.Helper()
	runner := &txRunnerMock{
		mov: &ledgerMock{
			totals: map[string]int64{"p1": 10},
			balances: map[string][]dominventory.LotBalance{
				"p1": {
					{LotID: "lote-tarde", ProductID: "p1", Balance: 6, ExpiresOn: expiry(t, "2026-12-01")},
					{LotID: "lote-pronto", ProductID: "p1", Balance: 4, ExpiresOn: expiry(t, "2026-09-15")},
				},
			},
		},
		lots: &lotRepoMock{},
		sale: &saleRepoMock{},
		prod: &productRepoMock{
			products: map[string]*entity.Product{
				"p1": {ID: "p1", SKU: "SKU1", Name: "Yogur", Price: decimal.NewFromFloat(3.50)},
			},
		},
	}
	customers := &customerRepoMock{customers: map[string]*entity.Customer{
		"c1": {ID: "c1", Name: "Cliente Uno"},
	}}
	uc := sales.NewCheckoutUseCase(runner, runner.prod, customers)
	return uc, runner
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_DebitaFEFOYPersisteLaVenta(t *testing.T) {
	uc, runner := newFixture(t)

	resp, err := uc.CreateSale(context.Background(), "cajero-1", dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "p1", Quantity: 6}},
	})

	require.NoError(t, err)
	require.NotNil(t, resp)

	// Venta persistida con total correcto.
	require.NotNil(t, runner.sale.sale, "la venta debe persistirse")
	assert.Equal(t, entity.SaleStatusCompleted, runner.sale.sale.Status)
	assert.True(t, resp.Total.Equal(decimal.NewFromFloat(21.00)),
		"total = 6 x 3.50, obtuvo %s", resp.Total)

	// Débitos del libro: negativos, tipo SALE, referencia tx:<venta>.
	require.Len(t, runner.mov.created, 2, "6 unidades cruzan dos lotes")
	first, second := runner.mov.created[0], runner.mov.created[1]
	assert.Equal(t, "lote-pronto", *first.LotID, "primero el lote que vence antes")
	assert.Equal(t, int64(-4), first.Quantity)
	assert.Equal(t, "lote-tarde", *second.LotID)
	assert.Equal(t, int64(-2), second.Quantity)
	for _, mov := range runner.mov.created {
		assert.Equal(t, entity.MovementTypeSALE, mov.Type)
		assert.Equal(t, "tx:"+resp.ID, mov.Reference)
		assert.Equal(t, "cajero-1", mov.CreatedBy)
		assert.Negative(t, mov.Quantity, "todo débito de venta es negativo")
	}

	// Desglose de asignaciones en la respuesta.
	require.Len(t, resp.Items, 1)
	require.Len(t, resp.Items[0].Allocations, 2)
	assert.Equal(t, int64(4), resp.Items[0].Allocations[0].Quantity)

	// Lotes bloqueados y cache refrescado.
	assert.Equal(t, []string{"p1"}, runner.lots.lockedProducts)
	assert.Contains(t, runner.prod.cacheUpdates, "p1")
}

func TestCreateSale_StockInsuficienteNoPersisteNada(t *testing.T) {
	uc, runner := newFixture(t)

	resp, err := uc.CreateSale(context.Background(), "cajero-1", dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "p1", Quantity: 11}},
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Requested: 11, Available: 10")
	assert.Nil(t, runner.sale.sale, "la venta no debe persistirse")
	assert.Empty(t, runner.mov.created, "ningún débito debe escribirse")
}

func TestCreateSale_CantidadInvalidaCortaAntesDeLaTransaccion(t *testing.T) {
	uc, runner := newFixture(t)

	_, err := uc.CreateSale(context.Background(), "cajero-1", dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "p1", Quantity: 0}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Zero(t, runner.runs, "la transacción no debe abrirse con entrada inválida")
}

func TestCreateSale_SinItemsEsEntradaInvalida(t *testing.T) {
	uc, runner := newFixture(t)

	_, err := uc.CreateSale(context.Background(), "cajero-1", dto.CreateSaleRequest{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, runner.runs)
}

func TestCreateSale_ClienteInexistenteRetornaNotFound(t *testing.T) {
	uc, runner := newFixture(t)
	ghost := "no-existe"

	_, err := uc.CreateSale(context.Background(), "cajero-1", dto.CreateSaleRequest{
		CustomerID: &ghost,
		Items:      []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, runner.runs)
}

func TestCreateSale_ProductoInexistenteRetornaNotFound(t *testing.T) {
	uc, runner := newFixture(t)

	_, err := uc.CreateSale(context.Background(), "cajero-1", dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "fantasma", Quantity: 1}},
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, runner.runs)
}

func TestCreateSale_VariosProductosBloqueaEnOrdenEstable(t *testing.T) {
	uc, runner := newFixture(t)
	runner.prod.products["p0"] = &entity.Product{ID: "p0", SKU: "SKU0", Name: "Leche", Price: decimal.NewFromFloat(1.20)}
	runner.mov.totals["p0"] = 5
	runner.mov.balances["p0"] = []dominventory.LotBalance{
		{LotID: "p0-l1", ProductID: "p0", Balance: 5, ExpiresOn: expiry(t, "2026-10-01")},
	}

	resp, err := uc.CreateSale(context.Background(), "cajero-1", dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p0", Quantity: 3},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"p0", "p1"}, runner.lots.lockedProducts,
		"los lotes se bloquean por id de producto ascendente, no en orden de ítems")
	require.Len(t, resp.Items, 2)

	// Referencia compartida entre todos los débitos de la venta.
	refs := make(map[string]struct{})
	for _, mov := range runner.mov.created {
		refs[mov.Reference] = struct{}{}
	}
	require.Len(t, refs, 1, "todos los débitos comparten la referencia de la venta")
	for ref := range refs {
		assert.True(t, strings.HasPrefix(ref, "tx:"))
	}
}
