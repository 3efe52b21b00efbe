package repository

import "github.com/jhoicas/gestion360-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los listados devuelven la colección completa del dueño: los filtros y
// ordenamientos son vistas derivadas que se calculan en memoria.
// Toda lectura y borrado por ID va scopeado por dueño: una fila de otro
// dueño se trata como inexistente.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(ownerID, id string) (*entity.Product, error)
	GetByOwnerAndSKU(ownerID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(ownerID, id string) error
	ListByOwner(ownerID string) ([]*entity.Product, error)
}
