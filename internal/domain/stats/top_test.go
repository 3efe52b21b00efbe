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

func TestTopConcepts_AgrupaPorDescripcionYOrdenaPorTotal(t *testing.T) {
	fecha := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	historial := []*entity.Transaction{
		movimiento(entity.TransactionSale, "Café con leche", 500, fecha),
		movimiento(entity.TransactionSale, "Café con leche", 500, fecha),
		movimiento(entity.TransactionSale, "Medialunas", 1200, fecha),
		movimiento(entity.TransactionSale, "Tostado", 900, fecha),
		// Los gastos no cuentan como concepto vendido.
		movimiento(entity.TransactionExpense, "Alquiler", 99999, fecha),
	}

	top := stats.TopConcepts(historial, 5)
	require.Len(t, top, 3)

	assert.Equal(t, "Medialunas", top[0].Name)
	assert.True(t, top[0].Total.Equal(decimal.NewFromInt(1200)))

	// Cada transacción cuenta como una unidad.
	assert.Equal(t, "Café con leche", top[1].Name)
	assert.Equal(t, 2, top[1].Count)
	assert.True(t, top[1].Total.Equal(decimal.NewFromInt(1000)))

	assert.Equal(t, "Tostado", top[2].Name)
}

func TestTopConcepts_CortaEnN(t *testing.T) {
	fecha := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	var historial []*entity.Transaction
	for i, desc := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		historial = append(historial, movimiento(entity.TransactionSale, desc, int64(100*(i+1)), fecha))
	}

	top := stats.TopConcepts(historial, 5)
	require.Len(t, top, 5)
	assert.Equal(t, "g", top[0].Name, "el mayor total queda primero")
}

func TestTopConcepts_SinVentas(t *testing.T) {
	fecha := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	historial := []*entity.Transaction{
		movimiento(entity.TransactionExpense, "Alquiler", 100, fecha),
	}
	assert.Empty(t, stats.TopConcepts(historial, 5))
}
