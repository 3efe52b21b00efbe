package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion360-api/internal/domain"
	"github.com/jhoicas/gestion360-api/internal/domain/entity"
	"github.com/jhoicas/gestion360-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, owner_id, name, sku, stock, price, image_url, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row, p *entity.Product) error {
	return row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.SKU, &p.Stock, &p.Price, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
}

// Create inserta el producto y reconcilia la entidad con la fila devuelta.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, owner_id, name, sku, stock, price, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + productColumns
	err := scanProduct(r.q.QueryRow(context.Background(), query,
		product.ID, product.OwnerID, product.Name, product.SKU, product.Stock,
		product.Price, product.ImageURL, product.CreatedAt, product.UpdatedAt,
	), product)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID, scopeado por dueño. Una fila de otro
// dueño se reporta como inexistente.
func (r *ProductRepo) GetByID(ownerID, id string) (*entity.Product, error) {
	var p entity.Product
	err := scanProduct(r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE id = $1 AND owner_id = $2`, id, ownerID), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetByOwnerAndSKU obtiene un producto por dueño y SKU.
func (r *ProductRepo) GetByOwnerAndSKU(ownerID, sku string) (*entity.Product, error) {
	var p entity.Product
	err := scanProduct(r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE owner_id = $1 AND sku = $2`, ownerID, sku), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return &p, nil
}

// Update actualiza el producto (una sola fila, scopeada por dueño) y
// reconcilia la entidad con la fila devuelta.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $3, sku = $4, stock = $5, price = $6, image_url = $7, updated_at = $8
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + productColumns
	err := scanProduct(r.q.QueryRow(context.Background(), query,
		product.ID, product.OwnerID, product.Name, product.SKU, product.Stock,
		product.Price, product.ImageURL, product.UpdatedAt,
	), product)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID, scopeado por dueño.
func (r *ProductRepo) Delete(ownerID, id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// ListByOwner lista todos los productos del dueño.
func (r *ProductRepo) ListByOwner(ownerID string) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
