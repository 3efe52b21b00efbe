package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion360-api/internal/application/dto"
	"github.com/jhoicas/gestion360-api/internal/application/usecase"
	"github.com/jhoicas/gestion360-api/internal/domain"
	"github.com/jhoicas/gestion360-api/internal/domain/entity"
)

// fakeTransactionRepo implementación en memoria del puerto de transacciones.
// Refleja el contrato del driver remoto: lecturas y borrados por ID van
// scopeados por dueño.
type fakeTransactionRepo struct {
	txs []*entity.Transaction
}

func (r *fakeTransactionRepo) Create(t *entity.Transaction) error {
	cp := *t
	r.txs = append(r.txs, &cp)
	return nil
}

func (r *fakeTransactionRepo) GetByID(ownerID, id string) (*entity.Transaction, error) {
	for _, t := range r.txs {
		if t.ID == id && t.OwnerID == ownerID {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTransactionRepo) Update(t *entity.Transaction) error {
	for i, old := range r.txs {
		if old.ID == t.ID {
			cp := *t
			r.txs[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeTransactionRepo) Delete(ownerID, id string) error {
	kept := r.txs[:0]
	for _, t := range r.txs {
		if t.ID != id || t.OwnerID != ownerID {
			kept = append(kept, t)
		}
	}
	r.txs = kept
	return nil
}

func (r *fakeTransactionRepo) ListByOwner(string) ([]*entity.Transaction, error) {
	out := make([]*entity.Transaction, 0, len(r.txs))
	for _, t := range r.txs {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func monto(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestTransactionCreate_VentaConCliente(t *testing.T) {
	repo := &fakeTransactionRepo{}
	uc := usecase.NewTransactionUseCase(repo)

	out, err := uc.Create("owner", dto.CreateTransactionRequest{
		Type:        entity.TransactionSale,
		Description: "Venta fiada",
		Amount:      monto(1500),
		CustomerID:  "cli-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "cli-1", out.CustomerID)
	assert.False(t, out.Date.IsZero(), "sin fecha explícita se usa la hora actual")
}

func TestTransactionCreate_GastoDescartaElCliente(t *testing.T) {
	uc := usecase.NewTransactionUseCase(&fakeTransactionRepo{})

	out, err := uc.Create("owner", dto.CreateTransactionRequest{
		Type:        entity.TransactionExpense,
		Description: "Alquiler",
		Amount:      monto(150000),
		CustomerID:  "cli-1", // no tiene sentido en un gasto
	})
	require.NoError(t, err)
	assert.Empty(t, out.CustomerID)
}

func TestTransactionCreate_MontoNoPositivo(t *testing.T) {
	uc := usecase.NewTransactionUseCase(&fakeTransactionRepo{})

	for _, amount := range []decimal.Decimal{decimal.Zero, monto(-100)} {
		_, err := uc.Create("owner", dto.CreateTransactionRequest{
			Type:        entity.TransactionSale,
			Description: "inválida",
			Amount:      amount,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto %s", amount)
	}
}

func TestTransactionCreate_TipoInvalido(t *testing.T) {
	uc := usecase.NewTransactionUseCase(&fakeTransactionRepo{})

	_, err := uc.Create("owner", dto.CreateTransactionRequest{
		Type:        "Prestamo",
		Description: "tipo desconocido",
		Amount:      monto(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransactionDelete_SoloAdmin(t *testing.T) {
	repo := &fakeTransactionRepo{txs: []*entity.Transaction{
		{ID: "t1", OwnerID: "owner", Type: entity.TransactionSale, Amount: monto(100), Date: time.Now()},
	}}
	uc := usecase.NewTransactionUseCase(repo)

	err := uc.Delete("owner", "t1", entity.RoleEmployee)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Len(t, repo.txs, 1, "el empleado no debe poder borrar")

	require.NoError(t, uc.Delete("owner", "t1", entity.RoleAdmin))
	assert.Empty(t, repo.txs)
}

func TestTransactionGetYDelete_DeOtroDuenoNoSeVen(t *testing.T) {
	repo := &fakeTransactionRepo{txs: []*entity.Transaction{
		{ID: "t1", OwnerID: "dueno-a", Type: entity.TransactionSale, Amount: monto(100), Date: time.Now()},
	}}
	uc := usecase.NewTransactionUseCase(repo)

	out, err := uc.GetByID("dueno-b", "t1")
	require.NoError(t, err)
	assert.Nil(t, out, "una transacción ajena se trata como inexistente")

	require.NoError(t, uc.Delete("dueno-b", "t1", entity.RoleAdmin))
	assert.Len(t, repo.txs, 1, "el borrado ajeno no debe tocar la fila")

	actualizado, err := uc.Update("dueno-b", "t1", dto.UpdateTransactionRequest{})
	require.NoError(t, err)
	assert.Nil(t, actualizado)
}

func TestTransactionUpdate_CambioAGastoLimpiaElCliente(t *testing.T) {
	repo := &fakeTransactionRepo{txs: []*entity.Transaction{
		{ID: "t1", OwnerID: "owner", Type: entity.TransactionSale, Description: "Venta", Amount: monto(100), Date: time.Now(), CustomerID: "cli-1"},
	}}
	uc := usecase.NewTransactionUseCase(repo)

	gasto := entity.TransactionExpense
	out, err := uc.Update("owner", "t1", dto.UpdateTransactionRequest{Type: &gasto})
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionExpense, out.Type)
	assert.Empty(t, out.CustomerID)
}

func TestTransactionUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewTransactionUseCase(&fakeTransactionRepo{})
	out, err := uc.Update("owner", "fantasma", dto.UpdateTransactionRequest{})
	require.NoError(t, err)
	assert.Nil(t, out, "nil sin error significa no encontrado")
}

func TestTransactionListGrouped_EtiquetasDeDia(t *testing.T) {
	now := time.Now()
	repo := &fakeTransactionRepo{txs: []*entity.Transaction{
		{ID: "t1", Type: entity.TransactionSale, Description: "hoy", Amount: monto(100), Date: now},
		{ID: "t2", Type: entity.TransactionExpense, Description: "ayer", Amount: monto(200), Date: now.AddDate(0, 0, -1)},
	}}
	uc := usecase.NewTransactionUseCase(repo)

	out, err := uc.ListGrouped("owner", "", "")
	require.NoError(t, err)
	require.Len(t, out.Groups, 2)
	assert.Equal(t, "Hoy", out.Groups[0].Label)
	assert.Equal(t, "Ayer", out.Groups[1].Label)
	assert.Equal(t, 2, out.Total)
}
