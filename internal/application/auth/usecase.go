// Package auth implementa los dos caminos de login de la app: el PIN de 4
// dígitos contra los perfiles del dispositivo y el email/password de la
// variante con backend remoto. Ambos emiten un JWT y actualizan el session
// holder.
package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gestion360-api/internal/application/dto"
	"github.com/jhoicas/gestion360-api/internal/application/session"
	"github.com/jhoicas/gestion360-api/internal/domain"
	"github.com/jhoicas/gestion360-api/internal/domain/repository"
	"github.com/jhoicas/gestion360-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	userRepo repository.UserRepository
	holder   *session.Holder
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, holder *session.Holder, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, holder: holder, jwtCfg: jwtCfg}
}

// LoginWithPIN recorre los perfiles buscando el PIN. Si no hay coincidencia
// la sesión queda como estaba y el caller muestra el indicador de error;
// si hay, la sesión se setea en el acto y se emite el token.
func (uc *AuthUseCase) LoginWithPIN(in dto.PINLoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidPIN
	}
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if !pinMatches(u.PIN, in.PIN) {
			continue
		}
		u.NormalizePermissions()
		uc.holder.Set(u)
		token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil {
			return nil, err
		}
		return &dto.LoginResponse{Token: token, User: dto.NewUserResponse(u)}, nil
	}
	return nil, domain.ErrUnauthorized
}

// LoginWithEmail verifica email/password contra el perfil remoto. La sesión
// pasa por loading mientras el perfil está en vuelo.
func (uc *AuthUseCase) LoginWithEmail(in dto.EmailLoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	uc.holder.BeginLoading()
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		uc.holder.Clear()
		return nil, err
	}
	if user == nil {
		uc.holder.Clear()
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		uc.holder.Clear()
		return nil, domain.ErrUnauthorized
	}
	user.NormalizePermissions()
	uc.holder.Set(user)
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

// Logout limpia la sesión activa y notifica a los suscriptores.
func (uc *AuthUseCase) Logout() {
	uc.holder.Clear()
}

// Session devuelve el estado actual del holder.
func (uc *AuthUseCase) Session() *dto.SessionResponse {
	return &dto.SessionResponse{
		IsAuthenticated: uc.holder.IsAuthenticated(),
		IsLoading:       uc.holder.IsLoading(),
		User:            dto.NewUserResponse(uc.holder.CurrentUser()),
	}
}

// Profile busca el perfil por el user_id del token (variante remota: cada
// request rearma la vista del perfil a partir del claim).
func (uc *AuthUseCase) Profile(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	user.NormalizePermissions()
	return dto.NewUserResponse(user), nil
}

// pinMatches compara el PIN ingresado con el almacenado: hash bcrypt en el
// driver remoto, texto plano en el dataset local de fábrica.
func pinMatches(stored, pin string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(pin)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(pin)) == 1
}
