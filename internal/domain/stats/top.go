package stats

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion360-api/internal/domain/entity"
)

// Concept es un concepto vendido: la descripción de la transacción actúa como
// identidad del producto. Como la transacción no lleva cantidad, se asume
// 1 transacción = 1 unidad (simplificación explícita de la app).
type Concept struct {
	Name  string          `json:"name"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// TopConcepts agrupa las ventas por descripción, suma montos y devuelve los
// primeros n ordenados por total descendente.
func TopConcepts(txs []*entity.Transaction, n int) []Concept {
	totals := make(map[string]*Concept)
	var order []string
	for _, t := range txs {
		if !t.IsSale() {
			continue
		}
		c, ok := totals[t.Description]
		if !ok {
			c = &Concept{Name: t.Description, Total: decimal.Zero}
			totals[t.Description] = c
			order = append(order, t.Description)
		}
		c.Count++
		c.Total = c.Total.Add(t.Amount)
	}

	out := make([]Concept, 0, len(order))
	for _, name := range order {
		out = append(out, *totals[name])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total.GreaterThan(out[j].Total) })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
