package localstore_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion360-api/internal/domain/entity"
	"github.com/jhoicas/gestion360-api/internal/infrastructure/localstore"
	"github.com/jhoicas/gestion360-api/pkg/logger"
)

func abrir(t *testing.T, dir string) *localstore.Store {
	t.Helper()
	s, err := localstore.Open(dir, logger.Nop())
	require.NoError(t, err)
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Arranque y dataset inicial
// ──────────────────────────────────────────────────────────────────────────────

func TestOpen_DirectorioVacio_SiembraDatosIniciales(t *testing.T) {
	dir := t.TempDir()
	s := abrir(t, dir)

	productos, err := s.Products().ListByOwner("")
	require.NoError(t, err)
	assert.Len(t, productos, 4, "el dataset inicial trae 4 productos")

	clientes, err := s.Customers().ListByOwner("")
	require.NoError(t, err)
	assert.Len(t, clientes, 5)

	perfiles, err := s.Users().List()
	require.NoError(t, err)
	require.Len(t, perfiles, 2)
	assert.Equal(t, entity.RoleAdmin, perfiles[0].Role)

	// Los slots quedan escritos en disco para el próximo arranque.
	for _, slot := range []string{"app_products.json", "app_customers.json", "app_transactions.json", "app_users.json"} {
		_, err := os.Stat(filepath.Join(dir, slot))
		assert.NoError(t, err, "el slot %s debe existir tras el primer arranque", slot)
	}
}

func TestOpen_SlotCorrupto_CaeAlDatasetInicial(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app_products.json"), []byte("{esto no es json"), 0o644))

	s := abrir(t, dir)
	productos, err := s.Products().ListByOwner("")
	require.NoError(t, err)
	assert.Len(t, productos, 4, "slot corrupto se reemplaza por los datos de fábrica")

	// El slot reescrito ya es válido: un segundo arranque lo lee tal cual.
	s2 := abrir(t, dir)
	productos2, err := s2.Products().ListByOwner("")
	require.NoError(t, err)
	assert.Len(t, productos2, 4)
}

// ──────────────────────────────────────────────────────────────────────────────
// Persistencia entre arranques
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_MutacionSobreviveLaReapertura(t *testing.T) {
	dir := t.TempDir()
	s := abrir(t, dir)

	nuevo := &entity.Product{
		ID:    "nuevo-1",
		Name:  "Yerba Orgánica",
		SKU:   "YER-001",
		Stock: 12,
		Price: decimal.NewFromFloat(3200.50),
	}
	require.NoError(t, s.Products().Create(nuevo))

	s2 := abrir(t, dir)
	leido, err := s2.Products().GetByID("", "nuevo-1")
	require.NoError(t, err)
	require.NotNil(t, leido)
	assert.Equal(t, "Yerba Orgánica", leido.Name)
	assert.Equal(t, 12, leido.Stock)
	assert.True(t, leido.Price.Equal(decimal.NewFromFloat(3200.50)), "el precio decimal sobrevive el round-trip")
}

func TestStore_UpdateInexistente_DevuelveNotFound(t *testing.T) {
	s := abrir(t, t.TempDir())
	err := s.Products().Update(&entity.Product{ID: "no-existe", Price: decimal.Zero})
	assert.Error(t, err)
}

func TestStore_DeleteIdempotente(t *testing.T) {
	s := abrir(t, t.TempDir())
	require.NoError(t, s.Products().Delete("", "1"))
	// Borrar de nuevo el mismo ID no es error.
	require.NoError(t, s.Products().Delete("", "1"))

	p, err := s.Products().GetByID("", "1")
	require.NoError(t, err)
	assert.Nil(t, p)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes y transacciones: sin cascada
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_BorrarCliente_NoTocaSusTransacciones(t *testing.T) {
	s := abrir(t, t.TempDir())

	venta := &entity.Transaction{
		ID:          "v1",
		Type:        entity.TransactionSale,
		Description: "Venta fiada",
		Amount:      decimal.NewFromInt(1000),
		Date:        time.Now(),
		CustomerID:  "2",
	}
	require.NoError(t, s.Transactions().Create(venta))
	require.NoError(t, s.Customers().Delete("", "2"))

	// La transacción sigue en el historial con la referencia colgante.
	quedo, err := s.Transactions().GetByID("", "v1")
	require.NoError(t, err)
	require.NotNil(t, quedo)
	assert.Equal(t, "2", quedo.CustomerID)
}

func TestStore_LecturasDevuelvenCopias(t *testing.T) {
	s := abrir(t, t.TempDir())

	p, err := s.Products().GetByID("", "1")
	require.NoError(t, err)
	require.NotNil(t, p)
	p.Stock = 99999 // mutar la copia no toca el store

	otra, err := s.Products().GetByID("", "1")
	require.NoError(t, err)
	assert.NotEqual(t, 99999, otra.Stock)
}
