package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest alta de cliente. La deuda puede arrancar en cualquier
// valor con signo (positivo = debe).
type CreateCustomerRequest struct {
	Name     string          `json:"name" validate:"required"`
	Debt     decimal.Decimal `json:"debt"`
	ImageURL string          `json:"imageUrl" validate:"omitempty,url"`
}

// UpdateCustomerRequest edición parcial de cliente. La deuda se corrige a
// mano: no hay conciliación automática contra las ventas.
type UpdateCustomerRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1"`
	Debt     *decimal.Decimal `json:"debt"`
	ImageURL *string          `json:"imageUrl" validate:"omitempty,url"`
}

// CustomerResponse representación de salida de un cliente.
type CustomerResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Debt      decimal.Decimal `json:"debt"`
	ImageURL  string          `json:"imageUrl"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// CustomerListResponse listado de clientes ya filtrado y ordenado.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Total int                `json:"total"`
}
