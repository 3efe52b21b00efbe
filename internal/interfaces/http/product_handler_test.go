package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion360-api/internal/application/dto"
	"github.com/jhoicas/gestion360-api/internal/application/usecase"
	"github.com/jhoicas/gestion360-api/internal/domain/entity"
	"github.com/jhoicas/gestion360-api/internal/infrastructure/localstore"
	apphttp "github.com/jhoicas/gestion360-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/gestion360-api/pkg/jwt"
	"github.com/jhoicas/gestion360-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// inventarioApp construye la API de inventario sobre el driver local recién
// seedeado, con las mismas rutas que monta el router.
func inventarioApp(t *testing.T) *fiber.App {
	t.Helper()
	store, err := localstore.Open(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	h := apphttp.NewProductHandler(usecase.NewProductUseCase(store.Products()))

	app := fiber.New()
	g := app.Group("/api/products", apphttp.AuthMiddleware(testJWTSecret))
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
	return app
}

// tokenFor genera un JWT para el usuario y rol indicados.
func tokenFor(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func montoDec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// doJSON lanza una petición con cuerpo JSON opcional y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any, authHeader string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeError lee el cuerpo como ErrorResponse.
func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ProductHandler sobre el driver local
// ──────────────────────────────────────────────────────────────────────────────

func TestProductHandler_ListaElSeedInicial(t *testing.T) {
	app := inventarioApp(t)
	auth := tokenFor(t, "1", entity.RoleAdmin)

	resp := doJSON(t, app, http.MethodGet, "/api/products/", nil, auth)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ProductListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 4, out.Total, "el seed trae cuatro productos")
}

func TestProductHandler_CreaYLuegoObtiene(t *testing.T) {
	app := inventarioApp(t)
	auth := tokenFor(t, "1", entity.RoleAdmin)

	resp := doJSON(t, app, http.MethodPost, "/api/products/", dto.CreateProductRequest{
		Name:  "Mate Imperial",
		SKU:   "MAT-010",
		Stock: 8,
		Price: montoDec(4500),
	}, auth)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var creado dto.ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&creado))
	require.NotEmpty(t, creado.ID)

	leido := doJSON(t, app, http.MethodGet, "/api/products/"+creado.ID, nil, auth)
	defer leido.Body.Close()
	assert.Equal(t, http.StatusOK, leido.StatusCode)
}

func TestProductHandler_SKURepetido_Retorna409(t *testing.T) {
	app := inventarioApp(t)
	auth := tokenFor(t, "1", entity.RoleAdmin)

	// SKU001 ya existe en el seed.
	resp := doJSON(t, app, http.MethodPost, "/api/products/", dto.CreateProductRequest{
		Name:  "Taza Repetida",
		SKU:   "SKU001",
		Price: montoDec(100),
	}, auth)
	defer resp.Body.Close()
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", decodeError(t, resp).Code)
}

func TestProductHandler_SinNombre_Retorna400(t *testing.T) {
	app := inventarioApp(t)
	auth := tokenFor(t, "1", entity.RoleAdmin)

	resp := doJSON(t, app, http.MethodPost, "/api/products/", dto.CreateProductRequest{
		SKU:   "SIN-NOMBRE",
		Price: montoDec(100),
	}, auth)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, resp).Code)
}

func TestProductHandler_CuerpoInvalido_Retorna400(t *testing.T) {
	app := inventarioApp(t)
	auth := tokenFor(t, "1", entity.RoleAdmin)

	req := httptest.NewRequest(http.MethodPost, "/api/products/", bytes.NewReader([]byte("{no es json")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", auth)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Code)
}

func TestProductHandler_IDDesconocido_Retorna404(t *testing.T) {
	app := inventarioApp(t)
	auth := tokenFor(t, "1", entity.RoleAdmin)

	resp := doJSON(t, app, http.MethodGet, "/api/products/fantasma", nil, auth)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)
}

func TestProductHandler_Borrado_Retorna204YDesaparece(t *testing.T) {
	app := inventarioApp(t)
	auth := tokenFor(t, "1", entity.RoleAdmin)

	resp := doJSON(t, app, http.MethodDelete, "/api/products/1", nil, auth)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	leido := doJSON(t, app, http.MethodGet, "/api/products/1", nil, auth)
	defer leido.Body.Close()
	assert.Equal(t, http.StatusNotFound, leido.StatusCode)
}
