package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. El stock se edita directo
// desde el formulario; esta app no lleva kardex de movimientos.
type Product struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"ownerId,omitempty"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"` // único por dueño, no global
	Stock     int             `json:"stock"`
	Price     decimal.Decimal `json:"price"` // precio de venta en ARS
	ImageURL  string          `json:"imageUrl"`
	CreatedAt time.Time       `json:"createdAt,omitempty"`
	UpdatedAt time.Time       `json:"updatedAt,omitempty"`
}
