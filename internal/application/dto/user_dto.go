package dto

import (
	"time"

	"github.com/jhoicas/gestion360-api/internal/domain/entity"
)

// CreateUserRequest alta de perfil. El PIN son exactamente 4 dígitos.
type CreateUserRequest struct {
	Name        string             `json:"name" validate:"required"`
	AvatarURL   string             `json:"avatarUrl" validate:"omitempty,url"`
	PIN         string             `json:"pin" validate:"required,len=4,number"`
	Email       string             `json:"email" validate:"omitempty,email"`
	Password    string             `json:"password" validate:"omitempty,min=6"`
	Role        string             `json:"role" validate:"required,oneof=admin employee"`
	Permissions entity.Permissions `json:"permissions"`
}

// UpdateUserRequest edición parcial de perfil.
type UpdateUserRequest struct {
	Name        *string             `json:"name" validate:"omitempty,min=1"`
	AvatarURL   *string             `json:"avatarUrl" validate:"omitempty,url"`
	PIN         *string             `json:"pin" validate:"omitempty,len=4,number"`
	Role        *string             `json:"role" validate:"omitempty,oneof=admin employee"`
	Permissions *entity.Permissions `json:"permissions"`
}

// UserResponse representación de salida de un perfil. El PIN nunca sale.
type UserResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	AvatarURL   string             `json:"avatarUrl"`
	Email       string             `json:"email,omitempty"`
	Role        string             `json:"role"`
	Permissions entity.Permissions `json:"permissions"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// UserListResponse listado de perfiles.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total"`
}

// NewUserResponse mapea el perfil de dominio a su representación de salida.
func NewUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		AvatarURL:   u.AvatarURL,
		Email:       u.Email,
		Role:        u.Role,
		Permissions: u.Permissions,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
