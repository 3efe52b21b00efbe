package localstore

import (
	"github.com/jhoicas/gestion360-api/internal/domain"
	"github.com/jhoicas/gestion360-api/internal/domain/entity"
	"github.com/jhoicas/gestion360-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre el slot local.
type CustomerRepo struct {
	s *Store
}

// Create agrega el cliente a la colección y reescribe el slot.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *customer
	r.s.customers = append(r.s.customers, &cp)
	r.s.persistSlot(slotCustomers, r.s.customers)
	return nil
}

// GetByID devuelve una copia del cliente, o nil si no existe. El dueño se
// ignora en el driver local.
func (r *CustomerRepo) GetByID(_, id string) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.customers {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza el cliente por ID y reescribe el slot.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, c := range r.s.customers {
		if c.ID == customer.ID {
			cp := *customer
			r.s.customers[i] = &cp
			r.s.persistSlot(slotCustomers, r.s.customers)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete saca al cliente de la colección. Las transacciones que lo referencian
// no se tocan: no hay borrado en cascada.
func (r *CustomerRepo) Delete(_, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.customers[:0]
	for _, c := range r.s.customers {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	r.s.customers = kept
	r.s.persistSlot(slotCustomers, r.s.customers)
	return nil
}

// ListByOwner devuelve copias de todos los clientes del dispositivo.
func (r *CustomerRepo) ListByOwner(_ string) ([]*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Customer, 0, len(r.s.customers))
	for _, c := range r.s.customers {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}
