package repository

import "github.com/jhoicas/gestion360-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para los perfiles de la app.
// En el driver local los perfiles viven en el dispositivo; en el remoto son
// filas de la tabla profiles emparejadas con el usuario del proveedor de auth.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
	List() ([]*entity.User, error)
}
