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

// ProductUseCase casos de uso CRUD para productos del inventario.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. El SKU debe ser único para el dueño.
func (uc *ProductUseCase) Create(ownerID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByOwnerAndSKU(ownerID, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      in.Name,
		SKU:       in.SKU,
		Stock:     in.Stock,
		Price:     in.Price,
		ImageURL:  in.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto del dueño por ID. Devuelve nil si no existe o
// pertenece a otro dueño.
func (uc *ProductUseCase) GetByID(ownerID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ownerID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update edita un producto. El stock se corrige directo acá; no hay kardex.
func (uc *ProductUseCase) Update(ownerID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(ownerID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.SKU != nil && *in.SKU != product.SKU {
		existing, err := uc.repo.GetByOwnerAndSKU(ownerID, *in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		product.SKU = *in.SKU
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto del dueño por ID, previa confirmación en la UI.
func (uc *ProductUseCase) Delete(ownerID, id string) error {
	return uc.repo.Delete(ownerID, id)
}

// List devuelve el inventario del dueño filtrado por búsqueda y ordenado
// según el criterio (nombre, stock ascendente o descendente).
func (uc *ProductUseCase) List(ownerID, query, sortBy string) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	view := stats.SortProducts(stats.FilterProducts(list, query), sortBy)
	items := make([]dto.ProductResponse, 0, len(view))
	for _, p := range view {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Stock:     p.Stock,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
