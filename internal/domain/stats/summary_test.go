package stats_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion360-api/internal/domain/entity"
	"github.com/jhoicas/gestion360-api/internal/domain/stats"
)

func TestSumTotals_VentasGastosYBalance(t *testing.T) {
	fecha := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	historial := []*entity.Transaction{
		movimiento(entity.TransactionSale, "a", 1000, fecha),
		movimiento(entity.TransactionSale, "b", 500, fecha),
		movimiento(entity.TransactionExpense, "c", 300, fecha),
	}

	totales := stats.SumTotals(historial)
	assert.True(t, totales.Sales.Equal(decimal.NewFromInt(1500)))
	assert.True(t, totales.Expenses.Equal(decimal.NewFromInt(300)))
	assert.True(t, totales.Balance.Equal(decimal.NewFromInt(1200)))
}

func TestMonthlyTotals_SoloMesEnCurso(t *testing.T) {
	historial := []*entity.Transaction{
		movimiento(entity.TransactionSale, "marzo", 45000, time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)),
		movimiento(entity.TransactionSale, "febrero", 100000, time.Date(2026, time.February, 20, 12, 0, 0, 0, time.UTC)),
		movimiento(entity.TransactionExpense, "marzo", 5000, time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)),
	}

	totales := stats.MonthlyTotals(historial, ahora)
	assert.True(t, totales.Sales.Equal(decimal.NewFromInt(45000)))
	assert.True(t, totales.Expenses.Equal(decimal.NewFromInt(5000)))
	assert.True(t, totales.Balance.Equal(decimal.NewFromInt(40000)))
}

func TestLastNDaysSeries_OrdenCronologicoYRecorte(t *testing.T) {
	historial := []*entity.Transaction{
		// Hoy: neto positivo.
		movimiento(entity.TransactionSale, "hoy", 800, ahora),
		// Hace 2 días: gastos superan ventas, neto negativo.
		movimiento(entity.TransactionSale, "venta", 100, ahora.AddDate(0, 0, -2)),
		movimiento(entity.TransactionExpense, "gasto", 400, ahora.AddDate(0, 0, -2)),
		// Hace 8 días: fuera de la ventana de 7.
		movimiento(entity.TransactionSale, "fuera", 9999, ahora.AddDate(0, 0, -8)),
	}

	serie := stats.LastNDaysSeries(historial, 7, ahora)
	require.Len(t, serie, 7)

	// La serie termina hoy (15/3/2026 es domingo).
	assert.Equal(t, "Dom", serie[6].Day)
	assert.True(t, serie[6].Amount.Equal(decimal.NewFromInt(800)))

	// El neto negativo se recorta a cero para el gráfico, pero Raw lo conserva.
	assert.True(t, serie[4].Amount.IsZero(), "la barra no baja de cero")
	assert.True(t, serie[4].Raw.Equal(decimal.NewFromInt(-300)), "el neto real se conserva en Raw")

	// Días sin movimientos quedan en cero.
	assert.True(t, serie[0].Amount.IsZero())
}

func TestSummarize_CrecimientoContraPeriodoAnterior(t *testing.T) {
	historial := []*entity.Transaction{
		// Febrero (periodo anterior): 100000 en ventas.
		movimiento(entity.TransactionSale, "feb", 100000, time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)),
		// Marzo (periodo vigente): 145000 en ventas y 5000 de gastos.
		movimiento(entity.TransactionSale, "mar1", 100000, time.Date(2026, time.March, 3, 12, 0, 0, 0, time.UTC)),
		movimiento(entity.TransactionSale, "mar2", 45000, time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC)),
		movimiento(entity.TransactionExpense, "mar3", 5000, time.Date(2026, time.March, 9, 13, 0, 0, 0, time.UTC)),
	}

	resumen := stats.Summarize(historial, stats.TimeframeMonth, ahora)
	assert.True(t, resumen.Sales.Equal(decimal.NewFromInt(145000)))
	assert.True(t, resumen.NetProfit.Equal(decimal.NewFromInt(140000)))
	// (145000-100000)/100000 = +45%.
	assert.True(t, resumen.Growth.Equal(decimal.NewFromInt(45)), "growth calculado: %s", resumen.Growth)
}

func TestSummarize_SinVentasPrevias_GrowthCero(t *testing.T) {
	historial := []*entity.Transaction{
		movimiento(entity.TransactionSale, "mar", 1000, time.Date(2026, time.March, 3, 12, 0, 0, 0, time.UTC)),
	}

	resumen := stats.Summarize(historial, stats.TimeframeMonth, ahora)
	assert.True(t, resumen.Growth.IsZero(), "sin periodo anterior el growth es cero, no infinito")
}

func TestSummarize_TimeframeDia_UsaElDiaAnterior(t *testing.T) {
	historial := []*entity.Transaction{
		movimiento(entity.TransactionSale, "ayer", 200, ahora.AddDate(0, 0, -1)),
		movimiento(entity.TransactionSale, "hoy", 300, ahora),
	}

	resumen := stats.Summarize(historial, stats.TimeframeDay, ahora)
	assert.True(t, resumen.Sales.Equal(decimal.NewFromInt(300)))
	// (300-200)/200 = +50%.
	assert.True(t, resumen.Growth.Equal(decimal.NewFromInt(50)))
}
