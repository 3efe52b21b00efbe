package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion360-api/internal/domain/entity"
)

// Totals son los acumulados de un conjunto de transacciones.
type Totals struct {
	Sales    decimal.Decimal `json:"sales"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// SumTotals suma ventas y gastos de un conjunto de transacciones.
func SumTotals(txs []*entity.Transaction) Totals {
	t := Totals{Sales: decimal.Zero, Expenses: decimal.Zero}
	for _, tx := range txs {
		switch {
		case tx.IsSale():
			t.Sales = t.Sales.Add(tx.Amount)
		case tx.IsExpense():
			t.Expenses = t.Expenses.Add(tx.Amount)
		}
	}
	t.Balance = t.Sales.Sub(t.Expenses)
	return t
}

// MonthlyTotals devuelve los acumulados del mes calendario en curso.
func MonthlyTotals(txs []*entity.Transaction, now time.Time) Totals {
	return SumTotals(FilterPeriod(txs, TimeframeMonth, now))
}

// DayPoint es una barra del gráfico de los últimos 7 días del dashboard.
// Amount viene recortado a cero para el dibujo; Raw conserva el neto real.
type DayPoint struct {
	Day    string          `json:"day"` // "Dom".."Sáb"
	Amount decimal.Decimal `json:"amount"`
	Raw    decimal.Decimal `json:"rawAmount"`
}

// LastNDaysSeries calcula el neto diario (ventas menos gastos) de los últimos
// n días calendario terminando hoy, en orden cronológico.
func LastNDaysSeries(txs []*entity.Transaction, n int, now time.Time) []DayPoint {
	series := make([]DayPoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		net := decimal.Zero
		for _, t := range txs {
			if !SameDay(t.Date, day) {
				continue
			}
			if t.IsSale() {
				net = net.Add(t.Amount)
			} else if t.IsExpense() {
				net = net.Sub(t.Amount)
			}
		}
		point := DayPoint{Day: WeekdayShort(day), Amount: net, Raw: net}
		if point.Amount.IsNegative() {
			point.Amount = decimal.Zero
		}
		series = append(series, point)
	}
	return series
}

// PeriodSummary es el resumen del reporte para un timeframe.
type PeriodSummary struct {
	Totals
	NetProfit decimal.Decimal `json:"netProfit"`
	// Growth es la variación porcentual de ventas contra el periodo calendario
	// anterior (día/mes/año previo). Cero si el periodo anterior no tuvo ventas.
	Growth decimal.Decimal `json:"growth"`
}

// Summarize calcula totales, ganancia neta y crecimiento del periodo vigente.
func Summarize(txs []*entity.Transaction, timeframe string, now time.Time) PeriodSummary {
	current := SumTotals(FilterPeriod(txs, timeframe, now))
	previous := SumTotals(FilterPeriod(txs, timeframe, previousPeriod(timeframe, now)))

	growth := decimal.Zero
	if previous.Sales.IsPositive() {
		growth = current.Sales.Sub(previous.Sales).Div(previous.Sales).Mul(decimal.NewFromInt(100)).Round(1)
	}
	return PeriodSummary{
		Totals:    current,
		NetProfit: current.Balance,
		Growth:    growth,
	}
}

func previousPeriod(timeframe string, now time.Time) time.Time {
	switch timeframe {
	case TimeframeDay:
		return now.AddDate(0, 0, -1)
	case TimeframeYear:
		return now.AddDate(-1, 0, 0)
	default:
		// Primer día del mes anterior; evita saltos raros con días 29-31.
		return time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	}
}
