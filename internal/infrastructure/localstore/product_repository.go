package localstore

import (
	"github.com/jhoicas/gestion360-api/internal/domain"
	"github.com/jhoicas/gestion360-api/internal/domain/entity"
	"github.com/jhoicas/gestion360-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre el slot local.
// Los datos del dispositivo pertenecen a un solo dueño, así que el filtro por
// OwnerID no aplica acá.
type ProductRepo struct {
	s *Store
}

// Create agrega el producto a la colección y reescribe el slot.
func (r *ProductRepo) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *product
	r.s.products = append(r.s.products, &cp)
	r.s.persistSlot(slotProducts, r.s.products)
	return nil
}

// GetByID devuelve una copia del producto, o nil si no existe. El dueño se
// ignora: el dispositivo tiene un solo dueño.
func (r *ProductRepo) GetByID(_, id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByOwnerAndSKU busca por SKU (el dueño se ignora en el driver local).
func (r *ProductRepo) GetByOwnerAndSKU(_, sku string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza el producto por ID y reescribe el slot.
func (r *ProductRepo) Update(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, p := range r.s.products {
		if p.ID == product.ID {
			cp := *product
			r.s.products[i] = &cp
			r.s.persistSlot(slotProducts, r.s.products)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete saca el producto de la colección. Borrar un ID inexistente no es error.
func (r *ProductRepo) Delete(_, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.products[:0]
	for _, p := range r.s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.s.products = kept
	r.s.persistSlot(slotProducts, r.s.products)
	return nil
}

// ListByOwner devuelve copias de todos los productos del dispositivo.
func (r *ProductRepo) ListByOwner(_ string) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}
