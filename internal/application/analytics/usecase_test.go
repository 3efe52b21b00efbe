package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion360-api/internal/application/analytics"
	"github.com/jhoicas/gestion360-api/internal/application/dto"
	"github.com/jhoicas/gestion360-api/internal/domain"
	"github.com/jhoicas/gestion360-api/internal/domain/entity"
)

// fakeTxRepo expone un historial fijo.
type fakeTxRepo struct {
	txs []*entity.Transaction
}

func (r *fakeTxRepo) Create(*entity.Transaction) error                 { return nil }
func (r *fakeTxRepo) GetByID(string, string) (*entity.Transaction, error) { return nil, nil }
func (r *fakeTxRepo) Update(*entity.Transaction) error                 { return nil }
func (r *fakeTxRepo) Delete(string, string) error                      { return nil }
func (r *fakeTxRepo) ListByOwner(string) ([]*entity.Transaction, error) { return r.txs, nil }

// fakePDF registra el reporte recibido y devuelve bytes fijos.
type fakePDF struct {
	got *dto.ReportResponse
}

func (f *fakePDF) GenerateReportPDF(r *dto.ReportResponse) ([]byte, error) {
	f.got = r
	return []byte("%PDF-fake"), nil
}

// 15 de marzo de 2026, 18:30. Fecha fija vía WithClock.
var ahora = time.Date(2026, time.March, 15, 18, 30, 0, 0, time.UTC)

func venta(desc string, amount int64, date time.Time) *entity.Transaction {
	return &entity.Transaction{Type: entity.TransactionSale, Description: desc, Amount: decimal.NewFromInt(amount), Date: date}
}

func gasto(desc string, amount int64, date time.Time) *entity.Transaction {
	return &entity.Transaction{Type: entity.TransactionExpense, Description: desc, Amount: decimal.NewFromInt(amount), Date: date}
}

func historialDemo() []*entity.Transaction {
	return []*entity.Transaction{
		venta("Café", 45000, time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)),
		gasto("Alquiler", 5000, time.Date(2026, time.March, 7, 9, 0, 0, 0, time.UTC)),
		venta("Medialunas", 20000, ahora.AddDate(0, 0, -2)),
		// Febrero: solo cuenta para el growth del reporte mensual.
		venta("Café", 100000, time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)),
	}
}

func TestDashboard_TotalesDelMesYSerieDe7Dias(t *testing.T) {
	uc := analytics.NewAnalyticsUseCase(&fakeTxRepo{txs: historialDemo()}, nil).WithClock(func() time.Time { return ahora })

	out, err := uc.Dashboard("owner")
	require.NoError(t, err)

	assert.Equal(t, "Marzo 2026", out.MonthLabel)
	assert.True(t, out.Sales.Equal(decimal.NewFromInt(65000)))
	assert.True(t, out.Expenses.Equal(decimal.NewFromInt(5000)))
	assert.True(t, out.Balance.Equal(decimal.NewFromInt(60000)))
	require.Len(t, out.Last7Days, 7)

	// El top del mes no incluye la venta de febrero.
	require.NotEmpty(t, out.TopConcepts)
	assert.Equal(t, "Café", out.TopConcepts[0].Name)
	assert.True(t, out.TopConcepts[0].Total.Equal(decimal.NewFromInt(45000)))
}

func TestReport_MesConCrecimiento(t *testing.T) {
	uc := analytics.NewAnalyticsUseCase(&fakeTxRepo{txs: historialDemo()}, nil).WithClock(func() time.Time { return ahora })

	out, err := uc.Report("owner", "mes")
	require.NoError(t, err)

	assert.Equal(t, "mes", out.Timeframe)
	assert.Equal(t, "Este mes", out.PeriodLabel)
	assert.True(t, out.Sales.Equal(decimal.NewFromInt(65000)))
	assert.True(t, out.NetProfit.Equal(decimal.NewFromInt(60000)))
	// (65000-100000)/100000 = -35%.
	assert.True(t, out.Growth.Equal(decimal.NewFromInt(-35)), "growth: %s", out.Growth)
	assert.Len(t, out.Buckets, 5)
}

func TestReport_TimeframeInvalido(t *testing.T) {
	uc := analytics.NewAnalyticsUseCase(&fakeTxRepo{}, nil)

	_, err := uc.Report("owner", "semana")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExportPDF_DelegaEnElGenerador(t *testing.T) {
	pdf := &fakePDF{}
	uc := analytics.NewAnalyticsUseCase(&fakeTxRepo{txs: historialDemo()}, pdf).WithClock(func() time.Time { return ahora })

	raw, err := uc.ExportPDF("owner", "anio")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), raw)

	require.NotNil(t, pdf.got, "el generador debe recibir el reporte armado")
	assert.Equal(t, "anio", pdf.got.Timeframe)
	assert.Equal(t, "Este año", pdf.got.PeriodLabel)
	assert.Len(t, pdf.got.Buckets, 12)
}
