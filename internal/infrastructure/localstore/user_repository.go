package localstore

import (
	"github.com/jhoicas/gestion360-api/internal/domain"
	"github.com/jhoicas/gestion360-api/internal/domain/entity"
	"github.com/jhoicas/gestion360-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre el slot local.
type UserRepo struct {
	s *Store
}

// Create agrega el perfil a la colección y reescribe el slot.
func (r *UserRepo) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *user
	r.s.users = append(r.s.users, &cp)
	r.s.persistSlot(slotUsers, r.s.users)
	return nil
}

// GetByID devuelve una copia del perfil, o nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByEmail busca un perfil por email (variante remota; en el dataset local
// los perfiles no suelen tener email).
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email != "" && u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza el perfil por ID y reescribe el slot.
func (r *UserRepo) Update(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, u := range r.s.users {
		if u.ID == user.ID {
			cp := *user
			r.s.users[i] = &cp
			r.s.persistSlot(slotUsers, r.s.users)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete saca el perfil de la colección.
func (r *UserRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.users[:0]
	for _, u := range r.s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	r.s.users = kept
	r.s.persistSlot(slotUsers, r.s.users)
	return nil
}

// List devuelve copias de todos los perfiles.
func (r *UserRepo) List() ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}
