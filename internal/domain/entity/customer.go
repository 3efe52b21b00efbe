package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente del negocio. Debt es el saldo fiado acumulado
// (positivo = debe plata); se edita a mano, nunca se deriva de las ventas.
type Customer struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"ownerId,omitempty"`
	Name      string          `json:"name"`
	Debt      decimal.Decimal `json:"debt"`
	ImageURL  string          `json:"imageUrl"`
	CreatedAt time.Time       `json:"createdAt,omitempty"`
	UpdatedAt time.Time       `json:"updatedAt,omitempty"`
}
