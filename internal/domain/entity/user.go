package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Permissions flags de acceso por módulo de la app. Se fuerzan todos en true
// cuando el rol es admin.
type Permissions struct {
	Inventory bool `json:"inventory"`
	Sales     bool `json:"sales"`
	Customers bool `json:"customers"`
	Reports   bool `json:"reports"`
}

// AllPermissions devuelve el set completo de permisos (rol admin).
func AllPermissions() Permissions {
	return Permissions{Inventory: true, Sales: true, Customers: true, Reports: true}
}

// User representa un perfil de la app. PIN es el código de 4 dígitos del login
// local; Email/PasswordHash existen solo en la variante con backend remoto.
type User struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	AvatarURL    string      `json:"avatarUrl"`
	PIN          string      `json:"pin"` // 4 dígitos; hasheado con bcrypt en el driver remoto
	Email        string      `json:"email,omitempty"`
	PasswordHash string      `json:"-"`
	Role         string      `json:"role"` // admin | employee
	Permissions  Permissions `json:"permissions"`
	CreatedAt    time.Time   `json:"createdAt,omitempty"`
	UpdatedAt    time.Time   `json:"updatedAt,omitempty"`
}

// Can evalúa un flag de permiso por nombre de módulo. Un admin pasa siempre.
func (u *User) Can(module string) bool {
	if u.Role == RoleAdmin {
		return true
	}
	switch module {
	case "inventory":
		return u.Permissions.Inventory
	case "sales":
		return u.Permissions.Sales
	case "customers":
		return u.Permissions.Customers
	case "reports":
		return u.Permissions.Reports
	}
	return false
}

// NormalizePermissions fuerza el set completo cuando el rol es admin.
func (u *User) NormalizePermissions() {
	if u.Role == RoleAdmin {
		u.Permissions = AllPermissions()
	}
}
