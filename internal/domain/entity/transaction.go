package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción. Se persisten con el literal en español que usa la UI.
const (
	TransactionSale    = "Venta"
	TransactionExpense = "Gasto"
)

// Transaction representa un movimiento de caja: una venta o un gasto.
// CustomerID es opcional y solo tiene sentido en ventas (fiado). El monto no
// ajusta la deuda del cliente ni el stock del producto; ese registro es manual.
type Transaction struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"ownerId,omitempty"`
	Type        string          `json:"type"` // Venta | Gasto
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // siempre positivo
	Date        time.Time       `json:"date"`
	CustomerID  string          `json:"customerId,omitempty"`
}

// IsSale indica si la transacción es una venta.
func (t *Transaction) IsSale() bool { return t.Type == TransactionSale }

// IsExpense indica si la transacción es un gasto.
func (t *Transaction) IsExpense() bool { return t.Type == TransactionExpense }
