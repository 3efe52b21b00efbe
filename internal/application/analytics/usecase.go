// Package analytics arma el resumen del dashboard y los reportes por
// timeframe. Todo se deriva en memoria con las funciones puras de stats;
// las colecciones son chicas y no hace falta cachear nada.
package analytics

import (
	"time"

	"github.com/jhoicas/gestion360-api/internal/application/dto"
	"github.com/jhoicas/gestion360-api/internal/domain"
	"github.com/jhoicas/gestion360-api/internal/domain/repository"
	"github.com/jhoicas/gestion360-api/internal/domain/stats"
)

const topConceptCount = 5 // conceptos en el widget de más vendidos

// ReportPDFGenerator renderiza un reporte como PDF (botón de exportar).
type ReportPDFGenerator interface {
	GenerateReportPDF(report *dto.ReportResponse) ([]byte, error)
}

// AnalyticsUseCase calcula dashboard y reportes sobre las transacciones del
// dueño. El reloj es inyectable para fijar "hoy" en los tests.
type AnalyticsUseCase struct {
	txRepo repository.TransactionRepository
	pdf    ReportPDFGenerator
	now    func() time.Time
}

// NewAnalyticsUseCase construye el caso de uso. pdf puede ser nil si el
// deployment no expone exportación.
func NewAnalyticsUseCase(txRepo repository.TransactionRepository, pdf ReportPDFGenerator) *AnalyticsUseCase {
	return &AnalyticsUseCase{txRepo: txRepo, pdf: pdf, now: time.Now}
}

// WithClock fija el reloj (tests).
func (uc *AnalyticsUseCase) WithClock(now func() time.Time) *AnalyticsUseCase {
	uc.now = now
	return uc
}

// Dashboard devuelve los totales del mes en curso, el gráfico de los últimos
// 7 días y el top de conceptos del mes.
func (uc *AnalyticsUseCase) Dashboard(ownerID string) (*dto.DashboardResponse, error) {
	txs, err := uc.txRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	totals := stats.MonthlyTotals(txs, now)
	return &dto.DashboardResponse{
		MonthLabel:  stats.MonthLabel(now),
		Sales:       totals.Sales,
		Expenses:    totals.Expenses,
		Balance:     totals.Balance,
		Last7Days:   stats.LastNDaysSeries(txs, 7, now),
		TopConcepts: stats.TopConcepts(stats.FilterPeriod(txs, stats.TimeframeMonth, now), topConceptCount),
	}, nil
}

// Report arma el reporte del timeframe: totales, crecimiento contra el
// periodo anterior, buckets del gráfico y top de conceptos.
func (uc *AnalyticsUseCase) Report(ownerID, timeframe string) (*dto.ReportResponse, error) {
	switch timeframe {
	case stats.TimeframeDay, stats.TimeframeMonth, stats.TimeframeYear:
	default:
		return nil, domain.ErrInvalidInput
	}
	txs, err := uc.txRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	summary := stats.Summarize(txs, timeframe, now)
	return &dto.ReportResponse{
		Timeframe:   timeframe,
		PeriodLabel: periodLabel(timeframe),
		Sales:       summary.Sales,
		Expenses:    summary.Expenses,
		NetProfit:   summary.NetProfit,
		Growth:      summary.Growth,
		Buckets:     stats.BucketTimeframe(txs, timeframe, now),
		TopConcepts: stats.TopConcepts(stats.FilterPeriod(txs, timeframe, now), topConceptCount),
	}, nil
}

// ExportPDF renderiza el reporte del timeframe como PDF.
func (uc *AnalyticsUseCase) ExportPDF(ownerID, timeframe string) ([]byte, error) {
	if uc.pdf == nil {
		return nil, domain.ErrInvalidInput
	}
	report, err := uc.Report(ownerID, timeframe)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateReportPDF(report)
}

func periodLabel(timeframe string) string {
	switch timeframe {
	case stats.TimeframeDay:
		return "Hoy"
	case stats.TimeframeYear:
		return "Este año"
	default:
		return "Este mes"
	}
}
