package dto

// PINLoginRequest login local: el código de 4 dígitos del teclado numérico.
type PINLoginRequest struct {
	PIN string `json:"pin" validate:"required,len=4,number"`
}

// EmailLoginRequest login de la variante remota.
type EmailLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido más el perfil autenticado.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// SessionResponse estado actual del session holder.
type SessionResponse struct {
	IsAuthenticated bool          `json:"isAuthenticated"`
	IsLoading       bool          `json:"isLoading"`
	User            *UserResponse `json:"user,omitempty"`
}
