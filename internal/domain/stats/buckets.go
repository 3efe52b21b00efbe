package stats

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion360-api/internal/domain/entity"
)

// Timeframe del reporte. Los valores coinciden con el query param de la API.
const (
	TimeframeDay   = "dia"
	TimeframeMonth = "mes"
	TimeframeYear  = "anio"
)

// Bucket es una barra del gráfico Ventas vs. Gastos.
type Bucket struct {
	Label    string          `json:"label"`
	Sales    decimal.Decimal `json:"sales"`
	Expenses decimal.Decimal `json:"expenses"`
}

// BucketTimeframe particiona las transacciones del periodo vigente en bloques
// fijos y suma montos por bloque separando ventas de gastos:
//
//   - dia:  6 bloques de 4 horas ("00-04" .. "20-24"), solo el día de hoy.
//   - mes:  exactamente 5 semanas ("Sem 1" .. "Sem 5"), semana = ceil(día/7).
//   - anio: 12 meses ("Ene" .. "Dic") del año en curso.
//
// Las transacciones fuera del periodo se descartan.
func BucketTimeframe(txs []*entity.Transaction, timeframe string, now time.Time) []Bucket {
	inPeriod := FilterPeriod(txs, timeframe, now)

	switch timeframe {
	case TimeframeDay:
		buckets := newBuckets(6, func(i int) string { return fmt.Sprintf("%02d-%02d", i*4, i*4+4) })
		for _, t := range inPeriod {
			addToBucket(buckets, t.Date.Hour()/4, t)
		}
		return buckets
	case TimeframeYear:
		buckets := newBuckets(12, func(i int) string { return monthShort[i] })
		for _, t := range inPeriod {
			addToBucket(buckets, int(t.Date.Month())-1, t)
		}
		return buckets
	default: // mes
		// ceil(día/7) da hasta 5 semanas (días 29-31 caen en la "Sem 5").
		buckets := newBuckets(5, func(i int) string { return fmt.Sprintf("Sem %d", i+1) })
		for _, t := range inPeriod {
			addToBucket(buckets, (t.Date.Day()+6)/7-1, t)
		}
		return buckets
	}
}

// FilterPeriod devuelve las transacciones del periodo calendario vigente:
// hoy, el mes en curso o el año en curso según el timeframe.
func FilterPeriod(txs []*entity.Transaction, timeframe string, now time.Time) []*entity.Transaction {
	out := make([]*entity.Transaction, 0, len(txs))
	for _, t := range txs {
		if inTimeframe(t.Date, timeframe, now) {
			out = append(out, t)
		}
	}
	return out
}

func inTimeframe(date time.Time, timeframe string, now time.Time) bool {
	switch timeframe {
	case TimeframeDay:
		return SameDay(date, now)
	case TimeframeYear:
		return date.Year() == now.Year()
	default:
		return date.Year() == now.Year() && date.Month() == now.Month()
	}
}

func newBuckets(n int, label func(i int) string) []Bucket {
	buckets := make([]Bucket, n)
	for i := range buckets {
		buckets[i] = Bucket{Label: label(i), Sales: decimal.Zero, Expenses: decimal.Zero}
	}
	return buckets
}

func addToBucket(buckets []Bucket, idx int, t *entity.Transaction) {
	if idx < 0 || idx >= len(buckets) {
		return
	}
	if t.IsSale() {
		buckets[idx].Sales = buckets[idx].Sales.Add(t.Amount)
	} else if t.IsExpense() {
		buckets[idx].Expenses = buckets[idx].Expenses.Add(t.Amount)
	}
}
