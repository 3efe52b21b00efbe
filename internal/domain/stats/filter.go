package stats

import (
	"sort"
	"strings"

	"github.com/jhoicas/gestion360-api/internal/domain/entity"
)

// Criterios de orden para listados.
const (
	SortByName      = "name"
	SortByStockAsc  = "stock_asc"
	SortByStockDesc = "stock_desc"
	SortByDebt      = "debt"
)

// FilterProducts devuelve los productos cuyo nombre o SKU contienen la
// búsqueda (sin distinguir mayúsculas). Búsqueda vacía devuelve todos.
func FilterProducts(products []*entity.Product, query string) []*entity.Product {
	q := strings.ToLower(query)
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if q == "" || strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.SKU), q) {
			out = append(out, p)
		}
	}
	return out
}

// SortProducts ordena una copia del slice según el criterio: nombre (colación
// española), stock ascendente o stock descendente.
func SortProducts(products []*entity.Product, sortBy string) []*entity.Product {
	out := append([]*entity.Product(nil), products...)
	sort.SliceStable(out, func(i, j int) bool {
		switch sortBy {
		case SortByStockAsc:
			return out[i].Stock < out[j].Stock
		case SortByStockDesc:
			return out[i].Stock > out[j].Stock
		default:
			return CompareNames(out[i].Name, out[j].Name) < 0
		}
	})
	return out
}

// FilterCustomers devuelve los clientes cuyo nombre contiene la búsqueda.
func FilterCustomers(customers []*entity.Customer, query string) []*entity.Customer {
	q := strings.ToLower(query)
	out := make([]*entity.Customer, 0, len(customers))
	for _, c := range customers {
		if q == "" || strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out
}

// SortCustomers ordena una copia del slice: por nombre ascendente, o por deuda
// descendente con desempate por nombre ascendente.
func SortCustomers(customers []*entity.Customer, sortBy string) []*entity.Customer {
	out := append([]*entity.Customer(nil), customers...)
	sort.SliceStable(out, func(i, j int) bool {
		if sortBy == SortByDebt {
			if out[i].Debt.Equal(out[j].Debt) {
				return CompareNames(out[i].Name, out[j].Name) < 0
			}
			return out[i].Debt.GreaterThan(out[j].Debt)
		}
		return CompareNames(out[i].Name, out[j].Name) < 0
	})
	return out
}

// FilterTransactions filtra por búsqueda (descripción o monto como texto) y
// por tipo opcional ("Venta", "Gasto" o vacío para todos), devolviendo el
// resultado ordenado por fecha descendente.
func FilterTransactions(txs []*entity.Transaction, query, typeFilter string) []*entity.Transaction {
	q := strings.ToLower(query)
	out := make([]*entity.Transaction, 0, len(txs))
	for _, t := range txs {
		if typeFilter != "" && t.Type != typeFilter {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(t.Description), q) && !strings.Contains(t.Amount.String(), q) {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}
