package localstore

import (
	"github.com/jhoicas/gestion360-api/internal/domain"
	"github.com/jhoicas/gestion360-api/internal/domain/entity"
	"github.com/jhoicas/gestion360-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre el slot local.
type TransactionRepo struct {
	s *Store
}

// Create agrega la transacción a la colección y reescribe el slot.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *tx
	r.s.transactions = append(r.s.transactions, &cp)
	r.s.persistSlot(slotTransactions, r.s.transactions)
	return nil
}

// GetByID devuelve una copia de la transacción, o nil si no existe. El dueño
// se ignora en el driver local.
func (r *TransactionRepo) GetByID(_, id string) (*entity.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.transactions {
		if t.ID == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza la transacción por ID y reescribe el slot.
func (r *TransactionRepo) Update(tx *entity.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, t := range r.s.transactions {
		if t.ID == tx.ID {
			cp := *tx
			r.s.transactions[i] = &cp
			r.s.persistSlot(slotTransactions, r.s.transactions)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete saca la transacción de la colección.
func (r *TransactionRepo) Delete(_, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.transactions[:0]
	for _, t := range r.s.transactions {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	r.s.transactions = kept
	r.s.persistSlot(slotTransactions, r.s.transactions)
	return nil
}

// ListByOwner devuelve copias de todas las transacciones del dispositivo.
func (r *TransactionRepo) ListByOwner(_ string) ([]*entity.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Transaction, 0, len(r.s.transactions))
	for _, t := range r.s.transactions {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}
