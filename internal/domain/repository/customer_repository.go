package repository

import "github.com/jhoicas/gestion360-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer (DIP).
// Delete no cascadea: las transacciones que referencian al cliente quedan.
// GetByID y Delete van scopeados por dueño.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(ownerID, id string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(ownerID, id string) error
	ListByOwner(ownerID string) ([]*entity.Customer, error)
}
