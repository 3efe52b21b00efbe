package stats

import (
	"sort"
	"time"

	"github.com/jhoicas/gestion360-api/internal/domain/entity"
)

// DateGroup es un bucket del listado de actividad: "Hoy", "Ayer" o el día
// escrito, con sus transacciones ordenadas por fecha descendente.
type DateGroup struct {
	Label        string                `json:"label"`
	Transactions []*entity.Transaction `json:"transactions"`
}

// GroupByDateLabel agrupa transacciones por etiqueta de día calendario. La
// clasificación Hoy/Ayer usa igualdad de día calendario, no una ventana móvil
// de 24 horas. Los grupos salen del más reciente al más viejo.
func GroupByDateLabel(txs []*entity.Transaction, now time.Time) []DateGroup {
	sorted := append([]*entity.Transaction(nil), txs...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.After(sorted[j].Date) })

	var groups []DateGroup
	index := make(map[string]int)
	for _, t := range sorted {
		label := DateLabel(t.Date, now)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, DateGroup{Label: label})
		}
		groups[i].Transactions = append(groups[i].Transactions, t)
	}
	return groups
}
