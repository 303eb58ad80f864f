package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/inventory"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInventoryRepo struct {
	byProduct map[string]*entity.Inventory
	updateErr error
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{byProduct: make(map[string]*entity.Inventory)}
}

func (f *fakeInventoryRepo) GetByProduct(productID string) (*entity.Inventory, error) {
	inv, ok := f.byProduct[productID]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInventoryRepo) List() ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for _, inv := range f.byProduct {
		cp := *inv
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeInventoryRepo) ListLowStock() ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for _, inv := range f.byProduct {
		if inv.IsLowStock() {
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeInventoryRepo) Create(inv *entity.Inventory) error {
	cp := *inv
	f.byProduct[inv.ProductID] = &cp
	return nil
}

func (f *fakeInventoryRepo) Update(inv *entity.Inventory) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	cp := *inv
	f.byProduct[inv.ProductID] = &cp
	return nil
}

func (f *fakeInventoryRepo) Delete(productID string) error {
	delete(f.byProduct, productID)
	return nil
}

type fakeHistoryRepo struct {
	entries   []*entity.InventoryHistory
	appendErr error
}

func (f *fakeHistoryRepo) Append(h *entity.InventoryHistory) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	cp := *h
	f.entries = append(f.entries, &cp)
	return nil
}

func (f *fakeHistoryRepo) ListAll() ([]*entity.InventoryHistory, error) {
	return f.entries, nil
}

func (f *fakeHistoryRepo) ListByProduct(productID string) ([]*entity.InventoryHistory, error) {
	var out []*entity.InventoryHistory
	for _, h := range f.entries {
		if h.ProductID == productID {
			out = append(out, h)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	ids map[string]bool
}

func (f *fakeProductRepo) Create(*entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if f.ids[id] {
		return &entity.Product{ID: id}, nil
	}
	return nil, nil
}
func (f *fakeProductRepo) List(int, int) ([]*entity.Product, error)         { return nil, nil }
func (f *fakeProductRepo) ListByCategory(string) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Update(*entity.Product) error                     { return nil }
func (f *fakeProductRepo) CountByCategory(string) (int, error)              { return 0, nil }

// fakeTxRunner ejecuta el callback contra los fakes y descarta las escrituras
// si el callback falla, imitando el rollback real.
type fakeTxRunner struct {
	invRepo  *fakeInventoryRepo
	histRepo *fakeHistoryRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	invRepo repository.InventoryRepository,
	histRepo repository.InventoryHistoryRepository,
) error) error {
	invBackup := make(map[string]*entity.Inventory, len(f.invRepo.byProduct))
	for k, v := range f.invRepo.byProduct {
		cp := *v
		invBackup[k] = &cp
	}
	histBackup := append([]*entity.InventoryHistory(nil), f.histRepo.entries...)

	if err := fn(f.invRepo, f.histRepo); err != nil {
		f.invRepo.byProduct = invBackup
		f.histRepo.entries = histBackup
		return err
	}
	return nil
}

func newLedger(t *testing.T) (*inventory.LedgerUseCase, *fakeInventoryRepo, *fakeHistoryRepo, *fakeProductRepo) {
	t.Helper()
	invRepo := newFakeInventoryRepo()
	histRepo := &fakeHistoryRepo{}
	productRepo := &fakeProductRepo{ids: map[string]bool{"p1": true}}
	tx := &fakeTxRunner{invRepo: invRepo, histRepo: histRepo}
	uc := inventory.NewLedgerUseCase(tx, invRepo, histRepo, productRepo)
	return uc, invRepo, histRepo, productRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_NoGeneraHistorial(t *testing.T) {
	uc, _, histRepo, _ := newLedger(t)

	out, err := uc.Create(dto.CreateInventoryRequest{ProductID: "p1", QuantityOnHand: 50})
	require.NoError(t, err)
	assert.Equal(t, 50, out.QuantityOnHand)
	assert.Equal(t, entity.DefaultLowStockThreshold, out.LowStockThreshold)
	assert.Empty(t, histRepo.entries, "el abastecimiento inicial no es un ajuste")
}

func TestCreate_ProductoInexistente(t *testing.T) {
	uc, _, _, _ := newLedger(t)

	_, err := uc.Create(dto.CreateInventoryRequest{ProductID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_Duplicado(t *testing.T) {
	uc, _, _, _ := newLedger(t)

	_, err := uc.Create(dto.CreateInventoryRequest{ProductID: "p1", QuantityOnHand: 5})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateInventoryRequest{ProductID: "p1", QuantityOnHand: 5})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreate_UmbralExplicito(t *testing.T) {
	uc, _, _, _ := newLedger(t)

	out, err := uc.Create(dto.CreateInventoryRequest{ProductID: "p1", QuantityOnHand: 5, LowStockThreshold: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, out.LowStockThreshold)
}

// ──────────────────────────────────────────────────────────────────────────────
// Adjust
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjust_AplicaDeltaYRegistraHistorial(t *testing.T) {
	uc, _, histRepo, _ := newLedger(t)
	ctx := context.Background()

	_, err := uc.Create(dto.CreateInventoryRequest{ProductID: "p1", QuantityOnHand: 10})
	require.NoError(t, err)

	out, err := uc.Adjust(ctx, "p1", dto.AdjustInventoryRequest{ChangeQty: -4, Reason: "venta mostrador"})
	require.NoError(t, err)
	assert.Equal(t, 6, out.QuantityOnHand)

	require.Len(t, histRepo.entries, 1)
	assert.Equal(t, -4, histRepo.entries[0].ChangeQty)
	assert.Equal(t, "venta mostrador", histRepo.entries[0].Reason)
	assert.Equal(t, "p1", histRepo.entries[0].ProductID)
}

func TestAdjust_PermiteStockNegativo(t *testing.T) {
	uc, _, _, _ := newLedger(t)
	ctx := context.Background()

	_, err := uc.Create(dto.CreateInventoryRequest{ProductID: "p1", QuantityOnHand: 3})
	require.NoError(t, err)

	out, err := uc.Adjust(ctx, "p1", dto.AdjustInventoryRequest{ChangeQty: -10})
	require.NoError(t, err)
	assert.Equal(t, -7, out.QuantityOnHand, "no se aplica piso en cero")
}

func TestAdjust_ProductoInexistente(t *testing.T) {
	uc, _, histRepo, _ := newLedger(t)

	_, err := uc.Adjust(context.Background(), "nope", dto.AdjustInventoryRequest{ChangeQty: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, histRepo.entries)
}

func TestAdjust_SinInventario(t *testing.T) {
	uc, _, histRepo, _ := newLedger(t)

	// Producto existe pero nunca se creó su fila de inventario.
	_, err := uc.Adjust(context.Background(), "p1", dto.AdjustInventoryRequest{ChangeQty: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, histRepo.entries)
}

// Si el asiento de historial falla, la cantidad tampoco debe cambiar.
func TestAdjust_FalloEnHistorialRevierteCantidad(t *testing.T) {
	uc, invRepo, histRepo, _ := newLedger(t)
	ctx := context.Background()

	_, err := uc.Create(dto.CreateInventoryRequest{ProductID: "p1", QuantityOnHand: 10})
	require.NoError(t, err)

	histRepo.appendErr = errors.New("disco lleno")
	_, err = uc.Adjust(ctx, "p1", dto.AdjustInventoryRequest{ChangeQty: 5})
	require.Error(t, err)

	inv, err := invRepo.GetByProduct("p1")
	require.NoError(t, err)
	assert.Equal(t, 10, inv.QuantityOnHand, "sin asiento no hay cambio de cantidad")
	assert.Empty(t, histRepo.entries)
}

// La suma de deltas del historial reconstruye el stock actual.
func TestAdjust_HistorialReconstruyeStock(t *testing.T) {
	uc, _, histRepo, _ := newLedger(t)
	ctx := context.Background()

	initial := 100
	_, err := uc.Create(dto.CreateInventoryRequest{ProductID: "p1", QuantityOnHand: initial})
	require.NoError(t, err)

	deltas := []int{-5, 20, -30, 7, -1}
	var last *dto.InventoryResponse
	for _, d := range deltas {
		last, err = uc.Adjust(ctx, "p1", dto.AdjustInventoryRequest{ChangeQty: d})
		require.NoError(t, err)
	}

	sum := 0
	for _, h := range histRepo.entries {
		sum += h.ChangeQty
	}
	assert.Equal(t, initial+sum, last.QuantityOnHand)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete / History
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_ElHistorialSobrevive(t *testing.T) {
	uc, _, _, _ := newLedger(t)
	ctx := context.Background()

	_, err := uc.Create(dto.CreateInventoryRequest{ProductID: "p1", QuantityOnHand: 10})
	require.NoError(t, err)
	_, err = uc.Adjust(ctx, "p1", dto.AdjustInventoryRequest{ChangeQty: 2})
	require.NoError(t, err)

	require.NoError(t, uc.Delete("p1"))

	_, err = uc.Get("p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	hist, err := uc.History("p1")
	require.NoError(t, err)
	assert.Len(t, hist, 1, "el historial es rastro de auditoría, no se borra en cascada")
}

func TestDelete_SinInventario(t *testing.T) {
	uc, _, _, _ := newLedger(t)
	assert.ErrorIs(t, uc.Delete("p1"), domain.ErrNotFound)
}

func TestHistory_VacioConProductoVacio(t *testing.T) {
	uc, _, _, _ := newLedger(t)

	hist, err := uc.History("")
	require.NoError(t, err)
	assert.Empty(t, hist)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListLowStock
// ──────────────────────────────────────────────────────────────────────────────

func TestListLowStock(t *testing.T) {
	uc, invRepo, _, productRepo := newLedger(t)
	productRepo.ids["p2"] = true

	now := time.Now()
	require.NoError(t, invRepo.Create(&entity.Inventory{
		ID: "i1", ProductID: "p1", QuantityOnHand: 3, LowStockThreshold: 5, LastUpdated: now,
	}))
	require.NoError(t, invRepo.Create(&entity.Inventory{
		ID: "i2", ProductID: "p2", QuantityOnHand: 50, LowStockThreshold: 5, LastUpdated: now,
	}))

	out, err := uc.ListLowStock()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].ProductID)
}
