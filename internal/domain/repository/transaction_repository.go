package repository

import "github.com/jhoicas/gestion360-api/internal/domain/entity"

// TransactionRepository define el puerto de persistencia para Transaction (DIP).
// GetByID y Delete van scopeados por dueño.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(ownerID, id string) (*entity.Transaction, error)
	Update(tx *entity.Transaction) error
	Delete(ownerID, id string) error
	ListByOwner(ownerID string) ([]*entity.Transaction, error)
}
