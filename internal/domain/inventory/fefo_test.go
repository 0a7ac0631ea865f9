package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pos-api/internal/domain/inventory"
)

func datePtr(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// WithPositiveBalance
// ──────────────────────────────────────────────────────────────────────────────

func TestWithPositiveBalance_ExcluyeCeroYNegativo(t *testing.T) {
	balances := []inventory.LotBalance{
		{LotID: "a", Balance: 5},
		{LotID: "b", Balance: 0},
		{LotID: "c", Balance: -3},
		{LotID: "d", Balance: 1},
	}

	out := inventory.WithPositiveBalance(balances)

	require.Len(t, out, 2, "solo deben quedar los lotes con saldo positivo")
	assert.Equal(t, "a", out[0].LotID)
	assert.Equal(t, "d", out[1].LotID)
}

func TestWithPositiveBalance_VacioSinLotes(t *testing.T) {
	out := inventory.WithPositiveBalance(nil)
	assert.Empty(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// SortFEFO
// ──────────────────────────────────────────────────────────────────────────────

func TestSortFEFO_VencimientoAscendenteConNilAlFinal(t *testing.T) {
	balances := []inventory.LotBalance{
		{LotID: "sin-vencimiento", ExpiresOn: nil},
		{LotID: "tarde", ExpiresOn: datePtr(t, "2026-12-01")},
		{LotID: "pronto", ExpiresOn: datePtr(t, "2026-09-15")},
	}

	inventory.SortFEFO(balances)

	assert.Equal(t, "pronto", balances[0].LotID, "el lote que vence primero va primero")
	assert.Equal(t, "tarde", balances[1].LotID)
	assert.Equal(t, "sin-vencimiento", balances[2].LotID, "los lotes sin vencimiento van al final")
}

func TestSortFEFO_DesempatePorLotID(t *testing.T) {
	sameDay := datePtr(t, "2026-10-01")
	balances := []inventory.LotBalance{
		{LotID: "b", ExpiresOn: sameDay},
		{LotID: "a", ExpiresOn: sameDay},
		{LotID: "z", ExpiresOn: nil},
		{LotID: "y", ExpiresOn: nil},
	}

	inventory.SortFEFO(balances)

	assert.Equal(t, []string{"a", "b", "y", "z"},
		[]string{balances[0].LotID, balances[1].LotID, balances[2].LotID, balances[3].LotID},
		"mismo vencimiento (o ambos nil) desempata por id de lote")
}

// ──────────────────────────────────────────────────────────────────────────────
// Allocate
// ──────────────────────────────────────────────────────────────────────────────

func TestAllocate_TomaDeVariosLotesEnOrden(t *testing.T) {
	lots := []inventory.LotBalance{
		{LotID: "l1", Balance: 3},
		{LotID: "l2", Balance: 10},
		{LotID: "l3", Balance: 10},
	}

	allocations, remaining := inventory.Allocate(lots, 8)

	require.Zero(t, remaining, "8 unidades caben en los lotes disponibles")
	require.Len(t, allocations, 2)
	assert.Equal(t, inventory.Allocation{LotID: "l1", Quantity: 3}, allocations[0],
		"el primer lote se agota por completo")
	assert.Equal(t, inventory.Allocation{LotID: "l2", Quantity: 5}, allocations[1],
		"el segundo lote cubre el resto")
}

func TestAllocate_CantidadExactaAgotaUltimoLote(t *testing.T) {
	lots := []inventory.LotBalance{
		{LotID: "l1", Balance: 4},
		{LotID: "l2", Balance: 6},
	}

	allocations, remaining := inventory.Allocate(lots, 10)

	assert.Zero(t, remaining)
	require.Len(t, allocations, 2)
	var total int64
	for _, a := range allocations {
		total += a.Quantity
	}
	assert.Equal(t, int64(10), total, "la suma del plan debe igualar lo pedido")
}

func TestAllocate_DevuelveRestanteSiNoAlcanza(t *testing.T) {
	lots := []inventory.LotBalance{
		{LotID: "l1", Balance: 2},
	}

	allocations, remaining := inventory.Allocate(lots, 5)

	assert.Equal(t, int64(3), remaining, "quedan 3 unidades sin cubrir")
	require.Len(t, allocations, 1)
	assert.Equal(t, int64(2), allocations[0].Quantity)
}

func TestAllocate_SinEntradasDeCantidadCero(t *testing.T) {
	lots := []inventory.LotBalance{
		{LotID: "l1", Balance: 5},
		{LotID: "l2", Balance: 5},
	}

	allocations, remaining := inventory.Allocate(lots, 5)

	assert.Zero(t, remaining)
	require.Len(t, allocations, 1, "el segundo lote no aporta nada y no debe aparecer")
	for _, a := range allocations {
		assert.Positive(t, a.Quantity, "ninguna entrada del plan puede ser cero")
	}
}

func TestAllocate_NuncaExcedeElSaldoDelLote(t *testing.T) {
	lots := []inventory.LotBalance{
		{LotID: "l1", Balance: 1},
		{LotID: "l2", Balance: 2},
		{LotID: "l3", Balance: 100},
	}

	allocations, _ := inventory.Allocate(lots, 50)

	byLot := map[string]int64{"l1": 1, "l2": 2, "l3": 100}
	for _, a := range allocations {
		assert.LessOrEqual(t, a.Quantity, byLot[a.LotID],
			"cada entrada toma como máximo el saldo de su lote")
	}
}
