package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto. El stock llega tal cual lo cargó el
// usuario; la app no lo valida contra nada.
type CreateProductRequest struct {
	Name     string          `json:"name" validate:"required"`
	SKU      string          `json:"sku" validate:"required"`
	Stock    int             `json:"stock"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"imageUrl" validate:"omitempty,url"`
}

// UpdateProductRequest edición parcial de producto.
type UpdateProductRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1"`
	SKU      *string          `json:"sku" validate:"omitempty,min=1"`
	Stock    *int             `json:"stock"`
	Price    *decimal.Decimal `json:"price"`
	ImageURL *string          `json:"imageUrl" validate:"omitempty,url"`
}

// ProductResponse representación de salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Stock     int             `json:"stock"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"imageUrl"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ProductListResponse listado de productos ya filtrado y ordenado.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
