// Package session mantiene el estado de la sesión activa de la app: quién
// está logueado, si hay un fetch de perfil en vuelo y las notificaciones de
// cambio para quien quiera reaccionar (igual que el onAuthStateChange del
// proveedor de auth remoto).
package session

import (
	"sync"

	"github.com/jhoicas/gestion360-api/internal/domain/entity"
)

// Status estado de la máquina: loading -> {authenticated, unauthenticated}.
// Cada evento externo de auth reingresa por loading mientras se busca el perfil.
type Status string

const (
	StatusLoading         Status = "loading"
	StatusAuthenticated   Status = "authenticated"
	StatusUnauthenticated Status = "unauthenticated"
)

// Change notificación de transición de estado.
type Change struct {
	Status Status
	User   *entity.User
}

// Holder guarda la sesión activa. Seguro para uso concurrente; las lecturas
// devuelven copias del perfil.
type Holder struct {
	mu     sync.RWMutex
	status Status
	user   *entity.User
	subs   map[int]chan Change
	nextID int
}

// NewHolder arranca en loading: todavía no se sabe si hay sesión previa.
func NewHolder() *Holder {
	return &Holder{status: StatusLoading, subs: make(map[int]chan Change)}
}

// Status devuelve el estado actual.
func (h *Holder) Status() Status {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.status
}

// IsAuthenticated indica si hay un perfil activo.
func (h *Holder) IsAuthenticated() bool {
	return h.Status() == StatusAuthenticated
}

// IsLoading indica si hay un fetch de perfil en vuelo.
func (h *Holder) IsLoading() bool {
	return h.Status() == StatusLoading
}

// CurrentUser devuelve una copia del perfil activo, o nil si no hay sesión.
func (h *Holder) CurrentUser() *entity.User {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.user == nil {
		return nil
	}
	cp := *h.user
	return &cp
}

// BeginLoading reingresa a loading (evento de auth externo, perfil en vuelo).
func (h *Holder) BeginLoading() {
	h.transition(StatusLoading, nil)
}

// Set marca la sesión autenticada con el perfil dado.
func (h *Holder) Set(user *entity.User) {
	cp := *user
	h.transition(StatusAuthenticated, &cp)
}

// Clear pasa a no autenticado (logout explícito o expiración externa).
func (h *Holder) Clear() {
	h.transition(StatusUnauthenticated, nil)
}

// Refresh actualiza la vista del perfil activo si el ID coincide: editar el
// propio perfil se refleja en la sesión sin relogueo.
func (h *Holder) Refresh(user *entity.User) {
	h.mu.Lock()
	if h.status != StatusAuthenticated || h.user == nil || h.user.ID != user.ID {
		h.mu.Unlock()
		return
	}
	cp := *user
	h.user = &cp
	h.mu.Unlock()
	h.notify(Change{Status: StatusAuthenticated, User: &cp})
}

// Subscribe registra un canal de notificaciones de cambio. El segundo valor
// lo da de baja; los suscriptores lentos pierden eventos, no bloquean.
func (h *Holder) Subscribe() (<-chan Change, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	ch := make(chan Change, 8)
	h.subs[id] = ch
	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
	}
}

func (h *Holder) transition(status Status, user *entity.User) {
	h.mu.Lock()
	h.status = status
	h.user = user
	h.mu.Unlock()
	h.notify(Change{Status: status, User: user})
}

func (h *Holder) notify(c Change) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		select {
		case ch <- c:
		default:
		}
	}
}
