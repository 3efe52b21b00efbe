// Package pdf renderiza el reporte de ventas y gastos como PDF usando
// Maroto v2. Es la salida del botón de exportar de la pantalla de reportes.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion360-api/internal/application/analytics"
	"github.com/jhoicas/gestion360-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 19, Green: 120, Blue: 70}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ analytics.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa analytics.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(report *dto.ReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Reportes y Estadísticas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(8, "Gestión 360 - Reportes y Estadísticas", props.Text{
			Size: 14, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Left,
		}),
		text.NewCol(4, report.PeriodLabel, props.Text{
			Size: 11, Align: align.Right, Color: colorGray,
		}),
	)
	m.AddRow(4, line.NewCol(12))

	m.AddRow(8,
		summaryCol("Ventas Totales", report.Sales),
		summaryCol("Gastos Totales", report.Expenses),
		summaryCol("Ganancia Neta", report.NetProfit),
	)
	if !report.Growth.IsZero() {
		m.AddRow(6, text.NewCol(12, fmt.Sprintf("Variación de ventas vs. periodo anterior: %s%%", report.Growth), props.Text{
			Size: 9, Color: colorGray,
		}))
	}

	m.AddRow(10, text.NewCol(12, "Ventas vs. Gastos", props.Text{
		Size: 12, Style: fontstyle.Bold, Top: 3,
	}))
	m.AddRow(7,
		text.NewCol(4, "Periodo", props.Text{Style: fontstyle.Bold}),
		text.NewCol(4, "Ventas", props.Text{Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(4, "Gastos", props.Text{Style: fontstyle.Bold, Align: align.Right}),
	)
	for _, b := range report.Buckets {
		m.AddRow(6,
			text.NewCol(4, b.Label),
			text.NewCol(4, formatARS(b.Sales), props.Text{Align: align.Right}),
			text.NewCol(4, formatARS(b.Expenses), props.Text{Align: align.Right}),
		)
	}

	m.AddRow(10, text.NewCol(12, "Conceptos Más Vendidos", props.Text{
		Size: 12, Style: fontstyle.Bold, Top: 3,
	}))
	if len(report.TopConcepts) == 0 {
		m.AddRow(6, text.NewCol(12, "No hay datos de ventas en este periodo", props.Text{Color: colorGray}))
	}
	for i, c := range report.TopConcepts {
		m.AddRow(6,
			text.NewCol(1, fmt.Sprintf("%d.", i+1)),
			text.NewCol(6, c.Name),
			text.NewCol(2, fmt.Sprintf("%d trans.", c.Count), props.Text{Align: align.Right, Color: colorGray}),
			text.NewCol(3, formatARS(c.Total), props.Text{Align: align.Right}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF del reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

func summaryCol(label string, amount decimal.Decimal) core.Col {
	return text.NewCol(4, fmt.Sprintf("%s: %s", label, formatARS(amount)), props.Text{
		Size: 10, Style: fontstyle.Bold,
	})
}

func formatARS(v decimal.Decimal) string {
	return "$ " + v.StringFixed(2)
}
