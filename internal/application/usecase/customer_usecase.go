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

// CustomerUseCase casos de uso CRUD para clientes y su saldo fiado.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un nuevo cliente.
func (uc *CustomerUseCase) Create(ownerID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      in.Name,
		Debt:      in.Debt,
		ImageURL:  in.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente del dueño por ID. Devuelve nil si no existe o
// pertenece a otro dueño.
func (uc *CustomerUseCase) GetByID(ownerID, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ownerID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toCustomerResponse(customer), nil
}

// Update edita un cliente del dueño. La deuda se corrige a mano; registrar
// una venta nunca la ajusta.
func (uc *CustomerUseCase) Update(ownerID, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.repo.GetByID(ownerID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Debt != nil {
		customer.Debt = *in.Debt
	}
	if in.ImageURL != nil {
		customer.ImageURL = *in.ImageURL
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente del dueño por ID. Las transacciones que lo
// referencian quedan intactas: no hay borrado en cascada.
func (uc *CustomerUseCase) Delete(ownerID, id string) error {
	return uc.repo.Delete(ownerID, id)
}

// List devuelve los clientes del dueño filtrados por búsqueda y ordenados por
// nombre o por deuda descendente (desempate por nombre).
func (uc *CustomerUseCase) List(ownerID, query, sortBy string) (*dto.CustomerListResponse, error) {
	list, err := uc.repo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	view := stats.SortCustomers(stats.FilterCustomers(list, query), sortBy)
	items := make([]dto.CustomerResponse, 0, len(view))
	for _, c := range view {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{Items: items, Total: len(items)}, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Debt:      c.Debt,
		ImageURL:  c.ImageURL,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
