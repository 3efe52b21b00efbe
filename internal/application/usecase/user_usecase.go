package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gestion360-api/internal/application/dto"
	"github.com/jhoicas/gestion360-api/internal/application/session"
	"github.com/jhoicas/gestion360-api/internal/domain"
	"github.com/jhoicas/gestion360-api/internal/domain/entity"
	"github.com/jhoicas/gestion360-api/internal/domain/repository"
)

// UserUseCase gestión de perfiles. Editar el perfil activo refresca la vista
// de la sesión a través del holder.
type UserUseCase struct {
	repo   repository.UserRepository
	holder *session.Holder
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, holder *session.Holder) *UserUseCase {
	return &UserUseCase{repo: repo, holder: holder}
}

// Create crea un perfil. El PIN se guarda hasheado con bcrypt; si el rol es
// admin los permisos se fuerzan todos en true.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	pinHash, err := bcrypt.GenerateFromPassword([]byte(in.PIN), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	var passwordHash string
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		passwordHash = string(hash)
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		AvatarURL:    in.AvatarURL,
		PIN:          string(pinHash),
		Email:        in.Email,
		PasswordHash: passwordHash,
		Role:         in.Role,
		Permissions:  in.Permissions,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	user.NormalizePermissions()
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

// GetByID obtiene un perfil por ID. Devuelve nil si no existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return dto.NewUserResponse(user), nil
}

// Update edita un perfil. Si es el perfil de la sesión activa, la vista de la
// sesión se actualiza en el acto.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.AvatarURL != nil {
		user.AvatarURL = *in.AvatarURL
	}
	if in.PIN != nil {
		pinHash, err := bcrypt.GenerateFromPassword([]byte(*in.PIN), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PIN = string(pinHash)
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.Permissions != nil {
		user.Permissions = *in.Permissions
	}
	user.NormalizePermissions()
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	uc.holder.Refresh(user)
	return dto.NewUserResponse(user), nil
}

// Delete elimina un perfil por ID.
func (uc *UserUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List lista todos los perfiles.
func (uc *UserUseCase) List() (*dto.UserListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *dto.NewUserResponse(u))
	}
	return &dto.UserListResponse{Items: items, Total: len(items)}, nil
}
