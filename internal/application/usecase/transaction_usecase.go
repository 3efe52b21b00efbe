package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion360-api/internal/application/dto"
	"github.com/jhoicas/gestion360-api/internal/domain"
	"github.com/jhoicas/gestion360-api/internal/domain/entity"
	"github.com/jhoicas/gestion360-api/internal/domain/repository"
	"github.com/jhoicas/gestion360-api/internal/domain/stats"
)

// TransactionUseCase casos de uso CRUD para ventas y gastos.
type TransactionUseCase struct {
	repo repository.TransactionRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

// Create registra una venta o gasto. El monto debe ser positivo; la fecha
// vacía usa la hora actual. Registrar la venta no ajusta la deuda del cliente
// ni el stock del producto.
func (uc *TransactionUseCase) Create(ownerID string, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	customerID := in.CustomerID
	if in.Type != entity.TransactionSale {
		// el cliente solo tiene sentido en ventas (fiado)
		customerID = ""
	}
	tx := &entity.Transaction{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Type:        in.Type,
		Description: in.Description,
		Amount:      in.Amount,
		Date:        date,
		CustomerID:  customerID,
	}
	if err := uc.repo.Create(tx); err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// GetByID obtiene una transacción del dueño por ID. Devuelve nil si no existe
// o pertenece a otro dueño.
func (uc *TransactionUseCase) GetByID(ownerID, id string) (*dto.TransactionResponse, error) {
	tx, err := uc.repo.GetByID(ownerID, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, nil
	}
	return toTransactionResponse(tx), nil
}

// Update edita una transacción del dueño.
func (uc *TransactionUseCase) Update(ownerID, id string, in dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	tx, err := uc.repo.GetByID(ownerID, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, nil
	}
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		tx.Amount = *in.Amount
	}
	if in.Type != nil {
		tx.Type = *in.Type
	}
	if in.Description != nil {
		tx.Description = *in.Description
	}
	if in.Date != nil {
		tx.Date = *in.Date
	}
	if in.CustomerID != nil {
		tx.CustomerID = *in.CustomerID
	}
	if tx.Type != entity.TransactionSale {
		tx.CustomerID = ""
	}
	if err := uc.repo.Update(tx); err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// Delete elimina una transacción del dueño. Solo un admin puede borrar
// movimientos.
func (uc *TransactionUseCase) Delete(ownerID, id, role string) error {
	if role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(ownerID, id)
}

// List devuelve la actividad filtrada por búsqueda y tipo, por fecha
// descendente.
func (uc *TransactionUseCase) List(ownerID, query, typeFilter string) (*dto.TransactionListResponse, error) {
	view, err := uc.filtered(ownerID, query, typeFilter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(view))
	for _, t := range view {
		items = append(items, *toTransactionResponse(t))
	}
	return &dto.TransactionListResponse{Items: items, Total: len(items)}, nil
}

// ListGrouped devuelve la actividad agrupada por "Hoy", "Ayer" y días
// anteriores.
func (uc *TransactionUseCase) ListGrouped(ownerID, query, typeFilter string) (*dto.GroupedTransactionsResponse, error) {
	view, err := uc.filtered(ownerID, query, typeFilter)
	if err != nil {
		return nil, err
	}
	groups := stats.GroupByDateLabel(view, time.Now())
	out := &dto.GroupedTransactionsResponse{Groups: make([]dto.TransactionGroup, 0, len(groups)), Total: len(view)}
	for _, g := range groups {
		items := make([]dto.TransactionResponse, 0, len(g.Transactions))
		for _, t := range g.Transactions {
			items = append(items, *toTransactionResponse(t))
		}
		out.Groups = append(out.Groups, dto.TransactionGroup{Label: g.Label, Items: items})
	}
	return out, nil
}

func (uc *TransactionUseCase) filtered(ownerID, query, typeFilter string) ([]*entity.Transaction, error) {
	list, err := uc.repo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	return stats.FilterTransactions(list, query, typeFilter), nil
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:          t.ID,
		Type:        t.Type,
		Description: t.Description,
		Amount:      t.Amount,
		Date:        t.Date,
		CustomerID:  t.CustomerID,
	}
}
