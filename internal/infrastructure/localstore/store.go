// Package localstore implementa los puertos de persistencia sobre cuatro
// slots JSON con nombre (uno por colección) en un directorio del dispositivo.
// Cada slot se lee una sola vez al abrir el store; si falta o no parsea se
// cae al dataset inicial de fábrica. Cada mutación reescribe el slot completo,
// igual que hacía la app con localStorage.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/gestion360-api/internal/domain/entity"
	"github.com/jhoicas/gestion360-api/pkg/logger"
)

// Nombres de slot. Coinciden con las claves de localStorage de la app.
const (
	slotProducts     = "app_products.json"
	slotCustomers    = "app_customers.json"
	slotTransactions = "app_transactions.json"
	slotUsers        = "app_users.json"
)

// Store mantiene las cuatro colecciones en memoria y las espeja al disco.
// Las mutaciones pasan por el mutex; las lecturas devuelven copias.
type Store struct {
	dir string
	log *logger.Logger

	mu           sync.Mutex
	products     []*entity.Product
	customers    []*entity.Customer
	transactions []*entity.Transaction
	users        []*entity.User
}

// Open carga los cuatro slots del directorio dado, creándolo si no existe.
// Un slot ausente o corrupto se reemplaza por el dataset inicial (se loguea
// el motivo y se sigue; la corrupción local no es fatal).
func Open(dir string, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	s := &Store{dir: dir, log: log}
	loadSlot(s, slotProducts, &s.products, SeedProducts)
	loadSlot(s, slotCustomers, &s.customers, SeedCustomers)
	loadSlot(s, slotTransactions, &s.transactions, SeedTransactions)
	loadSlot(s, slotUsers, &s.users, SeedUsers)
	return s, nil
}

// loadSlot lee y parsea un slot. El fallback al seed se persiste enseguida
// para que el próximo arranque encuentre datos sanos.
func loadSlot[T any](s *Store, name string, dst *[]T, seed func() []T) {
	path := filepath.Join(s.dir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("slot", name).Msg("no se pudo leer el slot, usando datos iniciales")
		}
		*dst = seed()
		s.persistSlot(name, *dst)
		return
	}
	var parsed []T
	if err := json.Unmarshal(raw, &parsed); err != nil {
		s.log.Warn().Err(err).Str("slot", name).Msg("slot corrupto, usando datos iniciales")
		*dst = seed()
		s.persistSlot(name, *dst)
		return
	}
	*dst = parsed
}

// persistSlot serializa la colección completa y reescribe el archivo.
func (s *Store) persistSlot(name string, collection any) {
	raw, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		s.log.Error().Err(err).Str("slot", name).Msg("serializar slot")
		return
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), raw, 0o644); err != nil {
		s.log.Error().Err(err).Str("slot", name).Msg("escribir slot")
	}
}

// Products devuelve el adaptador de persistencia de productos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Customers devuelve el adaptador de persistencia de clientes.
func (s *Store) Customers() *CustomerRepo { return &CustomerRepo{s: s} }

// Transactions devuelve el adaptador de persistencia de transacciones.
func (s *Store) Transactions() *TransactionRepo { return &TransactionRepo{s: s} }

// Users devuelve el adaptador de persistencia de perfiles.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }
