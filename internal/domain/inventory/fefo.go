package inventory

import (
	"sort"
	"time"
)

// LotBalance es el saldo derivado de un lote: suma de los movimientos del lote.
// Nunca se persiste; se recalcula del libro en cada lectura.
type LotBalance struct {
	LotID     string
	LotCode   string
	ProductID string
	ExpiresOn *time.Time
	Balance   int64
}

// Allocation empareja un lote con la cantidad a debitar de él. Es la salida del
// asignador FEFO y la entrada del escritor de movimientos; estructura plana sin
// comportamiento para mantener el asignador testeable aislado del libro.
type Allocation struct {
	LotID    string
	Quantity int64
}

// WithPositiveBalance filtra a los lotes con saldo estrictamente positivo
// (condición HAVING: aplica sobre el agregado, no sobre filas individuales).
// Un lote agotado simplemente deja de aparecer; no existe "cierre" explícito.
func WithPositiveBalance(balances []LotBalance) []LotBalance {
	out := make([]LotBalance, 0, len(balances))
	for _, b := range balances {
		if b.Balance > 0 {
			out = append(out, b)
		}
	}
	return out
}

// SortFEFO ordena in place por fecha de vencimiento ascendente. Los lotes sin
// vencimiento van al final (nil = "vence infinitamente lejos"). Desempate por
// LotID para que el orden sea reproducible entre lecturas.
func SortFEFO(balances []LotBalance) {
	sort.SliceStable(balances, func(i, j int) bool {
		a, b := balances[i], balances[j]
		switch {
		case a.ExpiresOn == nil && b.ExpiresOn == nil:
			return a.LotID < b.LotID
		case a.ExpiresOn == nil:
			return false
		case b.ExpiresOn == nil:
			return true
		case !a.ExpiresOn.Equal(*b.ExpiresOn):
			return a.ExpiresOn.Before(*b.ExpiresOn)
		default:
			return a.LotID < b.LotID
		}
	})
}

// Allocate recorre los lotes en el orden dado tomando min(restante, saldo) de
// cada uno, hasta satisfacer la cantidad pedida. No emite entradas de cantidad
// cero. Devuelve lo restante sin cubrir; el caller decide qué hacer si es > 0.
func Allocate(lots []LotBalance, requested int64) ([]Allocation, int64) {
	remaining := requested
	allocations := make([]Allocation, 0, len(lots))
	for _, lot := range lots {
		if remaining <= 0 {
			break
		}
		take := lot.Balance
		if take > remaining {
			take = remaining
		}
		if take <= 0 {
			continue
		}
		allocations = append(allocations, Allocation{LotID: lot.LotID, Quantity: take})
		remaining -= take
	}
	return allocations, remaining
}
