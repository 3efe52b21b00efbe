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

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, name, avatar_url, pin, email, password_hash, role, permissions, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre la tabla profiles.
// La fila se empareja por ID con el usuario del proveedor de auth; permissions
// es un blob JSONB que pgx serializa desde el struct directamente.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para perfiles.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func scanUser(row pgx.Row, u *entity.User) error {
	return row.Scan(&u.ID, &u.Name, &u.AvatarURL, &u.PIN, &u.Email, &u.PasswordHash,
		&u.Role, &u.Permissions, &u.CreatedAt, &u.UpdatedAt)
}

// Create inserta el perfil y reconcilia la entidad con la fila devuelta.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO profiles (id, name, avatar_url, pin, email, password_hash, role, permissions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + userColumns
	err := scanUser(r.q.QueryRow(context.Background(), query,
		user.ID, user.Name, user.AvatarURL, user.PIN, user.Email, user.PasswordHash,
		user.Role, user.Permissions, user.CreatedAt, user.UpdatedAt,
	), user)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	var u entity.User
	err := scanUser(r.q.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM profiles WHERE id = $1`, id), &u)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &u, nil
}

// GetByEmail obtiene un perfil por email (login de la variante remota).
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	var u entity.User
	err := scanUser(r.q.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM profiles WHERE email = $1`, email), &u)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile by email: %w", err)
	}
	return &u, nil
}

// Update actualiza el perfil y reconcilia la entidad con la fila devuelta.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE profiles SET name = $2, avatar_url = $3, pin = $4, email = $5, password_hash = $6, role = $7, permissions = $8, updated_at = $9
		WHERE id = $1
		RETURNING ` + userColumns
	err := scanUser(r.q.QueryRow(context.Background(), query,
		user.ID, user.Name, user.AvatarURL, user.PIN, user.Email, user.PasswordHash,
		user.Role, user.Permissions, user.UpdatedAt,
	), user)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// Delete elimina un perfil por ID.
func (r *UserRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

// List lista todos los perfiles.
func (r *UserRepo) List() ([]*entity.User, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+userColumns+` FROM profiles ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
