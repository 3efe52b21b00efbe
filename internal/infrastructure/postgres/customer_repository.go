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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, owner_id, name, debt, image_url, created_at, updated_at`

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de persistencia para clientes.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func scanCustomer(row pgx.Row, c *entity.Customer) error {
	return row.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Debt, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt)
}

// Create inserta el cliente y reconcilia la entidad con la fila devuelta.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, owner_id, name, debt, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + customerColumns
	err := scanCustomer(r.q.QueryRow(context.Background(), query,
		customer.ID, customer.OwnerID, customer.Name, customer.Debt,
		customer.ImageURL, customer.CreatedAt, customer.UpdatedAt,
	), customer)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID, scopeado por dueño.
func (r *CustomerRepo) GetByID(ownerID, id string) (*entity.Customer, error) {
	var c entity.Customer
	err := scanCustomer(r.q.QueryRow(context.Background(),
		`SELECT `+customerColumns+` FROM customers WHERE id = $1 AND owner_id = $2`, id, ownerID), &c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// Update actualiza el cliente (incluida la deuda, que se edita a mano) y
// reconcilia la entidad con la fila devuelta.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $3, debt = $4, image_url = $5, updated_at = $6
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + customerColumns
	err := scanCustomer(r.q.QueryRow(context.Background(), query,
		customer.ID, customer.OwnerID, customer.Name, customer.Debt,
		customer.ImageURL, customer.UpdatedAt,
	), customer)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID, scopeado por dueño. Sus transacciones no
// se tocan.
func (r *CustomerRepo) Delete(ownerID, id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// ListByOwner lista todos los clientes del dueño.
func (r *CustomerRepo) ListByOwner(ownerID string) ([]*entity.Customer, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+customerColumns+` FROM customers WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := scanCustomer(rows, &c); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
