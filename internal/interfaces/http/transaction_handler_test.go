package http_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion360-api/internal/application/dto"
	"github.com/jhoicas/gestion360-api/internal/application/usecase"
	"github.com/jhoicas/gestion360-api/internal/domain"
	"github.com/jhoicas/gestion360-api/internal/domain/entity"
	apphttp "github.com/jhoicas/gestion360-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// multiOwnerTxRepo implementación en memoria con filas de varios dueños,
// siguiendo el contrato del driver remoto: GetByID y Delete van scopeados
// por dueño.
type multiOwnerTxRepo struct {
	txs []*entity.Transaction
}

func (r *multiOwnerTxRepo) Create(t *entity.Transaction) error {
	cp := *t
	r.txs = append(r.txs, &cp)
	return nil
}

func (r *multiOwnerTxRepo) GetByID(ownerID, id string) (*entity.Transaction, error) {
	for _, t := range r.txs {
		if t.ID == id && t.OwnerID == ownerID {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *multiOwnerTxRepo) Update(t *entity.Transaction) error {
	for i, old := range r.txs {
		if old.ID == t.ID && old.OwnerID == t.OwnerID {
			cp := *t
			r.txs[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *multiOwnerTxRepo) Delete(ownerID, id string) error {
	kept := r.txs[:0]
	for _, t := range r.txs {
		if t.ID != id || t.OwnerID != ownerID {
			kept = append(kept, t)
		}
	}
	r.txs = kept
	return nil
}

func (r *multiOwnerTxRepo) ListByOwner(ownerID string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.txs {
		if t.OwnerID == ownerID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

// movimientosApp monta las rutas de transacciones sobre el repo indicado.
func movimientosApp(repo *multiOwnerTxRepo) *fiber.App {
	h := apphttp.NewTransactionHandler(usecase.NewTransactionUseCase(repo))

	app := fiber.New()
	g := app.Group("/api/transactions", apphttp.AuthMiddleware(testJWTSecret))
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", apphttp.RequireRole(entity.RoleAdmin), h.Delete)
	return app
}

func repoDeDosDuenos() *multiOwnerTxRepo {
	return &multiOwnerTxRepo{txs: []*entity.Transaction{
		{ID: "tx-a", OwnerID: "dueno-a", Type: entity.TransactionSale, Description: "Venta de A", Amount: montoDec(1000), Date: time.Now()},
		{ID: "tx-b", OwnerID: "dueno-b", Type: entity.TransactionSale, Description: "Venta de B", Amount: montoDec(2000), Date: time.Now()},
	}}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de visibilidad por dueño
// ──────────────────────────────────────────────────────────────────────────────

func TestTransactionHandler_NoLeeMovimientoAjeno(t *testing.T) {
	app := movimientosApp(repoDeDosDuenos())

	ajeno := doJSON(t, app, http.MethodGet, "/api/transactions/tx-a", nil, tokenFor(t, "dueno-b", entity.RoleAdmin))
	defer ajeno.Body.Close()
	require.Equal(t, http.StatusNotFound, ajeno.StatusCode,
		"un movimiento de otro dueño se reporta como inexistente")
	assert.Equal(t, "NOT_FOUND", decodeError(t, ajeno).Code)

	propio := doJSON(t, app, http.MethodGet, "/api/transactions/tx-a", nil, tokenFor(t, "dueno-a", entity.RoleAdmin))
	defer propio.Body.Close()
	assert.Equal(t, http.StatusOK, propio.StatusCode)
}

func TestTransactionHandler_NoBorraMovimientoAjeno(t *testing.T) {
	repo := repoDeDosDuenos()
	app := movimientosApp(repo)

	resp := doJSON(t, app, http.MethodDelete, "/api/transactions/tx-a", nil, tokenFor(t, "dueno-b", entity.RoleAdmin))
	defer resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	quedo, err := repo.GetByID("dueno-a", "tx-a")
	require.NoError(t, err)
	assert.NotNil(t, quedo, "el borrado ajeno no debe tocar la fila")

	propio := doJSON(t, app, http.MethodGet, "/api/transactions/tx-a", nil, tokenFor(t, "dueno-a", entity.RoleAdmin))
	defer propio.Body.Close()
	assert.Equal(t, http.StatusOK, propio.StatusCode)
}

func TestTransactionHandler_NoEditaMovimientoAjeno(t *testing.T) {
	repo := repoDeDosDuenos()
	app := movimientosApp(repo)

	desc := "reescrito"
	resp := doJSON(t, app, http.MethodPut, "/api/transactions/tx-a",
		dto.UpdateTransactionRequest{Description: &desc}, tokenFor(t, "dueno-b", entity.RoleAdmin))
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	quedo, err := repo.GetByID("dueno-a", "tx-a")
	require.NoError(t, err)
	assert.Equal(t, "Venta de A", quedo.Description)
}

func TestTransactionHandler_ListaSoloLoPropio(t *testing.T) {
	app := movimientosApp(repoDeDosDuenos())

	resp := doJSON(t, app, http.MethodGet, "/api/transactions/", nil, tokenFor(t, "dueno-a", entity.RoleEmployee))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.TransactionListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Venta de A", out.Items[0].Description)
}
