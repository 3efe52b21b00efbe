package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion360-api/internal/domain/stats"
)

// CreateTransactionRequest alta de venta o gasto. Date vacío usa la hora del
// servidor; CustomerID solo tiene sentido en ventas.
type CreateTransactionRequest struct {
	Type        string          `json:"type" validate:"required,oneof=Venta Gasto"`
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Date        *time.Time      `json:"date"`
	CustomerID  string          `json:"customerId"`
}

// UpdateTransactionRequest edición parcial de una transacción.
type UpdateTransactionRequest struct {
	Type        *string          `json:"type" validate:"omitempty,oneof=Venta Gasto"`
	Description *string          `json:"description" validate:"omitempty,min=1"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *time.Time       `json:"date"`
	CustomerID  *string          `json:"customerId"`
}

// TransactionResponse representación de salida de una transacción.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	CustomerID  string          `json:"customerId,omitempty"`
}

// TransactionListResponse listado plano, ordenado por fecha descendente.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int                   `json:"total"`
}

// TransactionGroup grupo de actividad bajo una etiqueta de día.
type TransactionGroup struct {
	Label string                `json:"label"`
	Items []TransactionResponse `json:"items"`
}

// GroupedTransactionsResponse actividad agrupada por "Hoy", "Ayer" y días
// anteriores, del más reciente al más viejo.
type GroupedTransactionsResponse struct {
	Groups []TransactionGroup `json:"groups"`
	Total  int                `json:"total"`
}

// ReportResponse resumen del timeframe elegido: totales, buckets del gráfico
// y el top de conceptos vendidos.
type ReportResponse struct {
	Timeframe   string          `json:"timeframe"`
	PeriodLabel string          `json:"periodLabel"`
	Sales       decimal.Decimal `json:"sales"`
	Expenses    decimal.Decimal `json:"expenses"`
	NetProfit   decimal.Decimal `json:"netProfit"`
	Growth      decimal.Decimal `json:"growth"`
	Buckets     []stats.Bucket  `json:"buckets"`
	TopConcepts []stats.Concept `json:"topConcepts"`
}

// DashboardResponse resumen del mes en curso más el gráfico de 7 días.
type DashboardResponse struct {
	MonthLabel  string           `json:"monthLabel"`
	Sales       decimal.Decimal  `json:"sales"`
	Expenses    decimal.Decimal  `json:"expenses"`
	Balance     decimal.Decimal  `json:"balance"`
	Last7Days   []stats.DayPoint `json:"last7Days"`
	TopConcepts []stats.Concept  `json:"topConcepts"`
}
