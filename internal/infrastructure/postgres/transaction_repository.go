package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion360-api/internal/domain"
	"github.com/jhoicas/gestion360-api/internal/domain/entity"
	"github.com/jhoicas/gestion360-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, owner_id, type, description, amount, date, customer_id`

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador de persistencia para transacciones.
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// customer_id es NULL cuando la transacción no referencia cliente.
func scanTransaction(row pgx.Row, t *entity.Transaction) error {
	var customerID sql.NullString
	if err := row.Scan(&t.ID, &t.OwnerID, &t.Type, &t.Description, &t.Amount, &t.Date, &customerID); err != nil {
		return err
	}
	t.CustomerID = customerID.String
	return nil
}

func nullableID(id string) any {
	if id == "" {
		return nil
	}
	return id
}

// Create inserta la transacción y reconcilia la entidad con la fila devuelta.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, owner_id, type, description, amount, date, customer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + transactionColumns
	err := scanTransaction(r.q.QueryRow(context.Background(), query,
		tx.ID, tx.OwnerID, tx.Type, tx.Description, tx.Amount, tx.Date, nullableID(tx.CustomerID),
	), tx)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID, scopeada por dueño.
func (r *TransactionRepo) GetByID(ownerID, id string) (*entity.Transaction, error) {
	var t entity.Transaction
	err := scanTransaction(r.q.QueryRow(context.Background(),
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1 AND owner_id = $2`, id, ownerID), &t)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// Update actualiza la transacción y reconcilia la entidad con la fila devuelta.
func (r *TransactionRepo) Update(tx *entity.Transaction) error {
	query := `
		UPDATE transactions SET type = $3, description = $4, amount = $5, date = $6, customer_id = $7
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + transactionColumns
	err := scanTransaction(r.q.QueryRow(context.Background(), query,
		tx.ID, tx.OwnerID, tx.Type, tx.Description, tx.Amount, tx.Date, nullableID(tx.CustomerID),
	), tx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// Delete elimina una transacción por ID, scopeada por dueño.
func (r *TransactionRepo) Delete(ownerID, id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM transactions WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// ListByOwner lista todas las transacciones del dueño, más recientes primero.
func (r *TransactionRepo) ListByOwner(ownerID string) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+transactionColumns+` FROM transactions WHERE owner_id = $1 ORDER BY date DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := scanTransaction(rows, &t); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
