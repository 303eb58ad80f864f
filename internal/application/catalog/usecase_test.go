package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/catalog"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	byID    map[string]*entity.Category
	deleted []string
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byID: make(map[string]*entity.Category)}
}

func (f *fakeCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryRepo) List() ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range f.byID {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) Delete(id string) error {
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: make(map[string]*entity.Product)}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.byID {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProductRepo) ListByCategory(categoryID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.byID {
		if p.CategoryID == categoryID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) CountByCategory(categoryID string) (int, error) {
	n := 0
	for _, p := range f.byID {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func newCatalog() (*catalog.UseCase, *fakeCategoryRepo, *fakeProductRepo) {
	catRepo := newFakeCategoryRepo()
	prodRepo := newFakeProductRepo()
	return catalog.NewUseCase(catRepo, prodRepo), catRepo, prodRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateCategory(t *testing.T) {
	uc, _, _ := newCatalog()

	out, err := uc.CreateCategory(dto.CategoryRequest{Name: "Electrónica", Description: "gadgets"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Electrónica", out.Name)
}

func TestCreateCategory_NombreVacio(t *testing.T) {
	uc, _, _ := newCatalog()

	for _, name := range []string{"", "   "} {
		_, err := uc.CreateCategory(dto.CategoryRequest{Name: name})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestDeleteCategory_RestrictConProductos(t *testing.T) {
	uc, catRepo, _ := newCatalog()

	cat, err := uc.CreateCategory(dto.CategoryRequest{Name: "Hogar"})
	require.NoError(t, err)
	_, err = uc.CreateProduct(dto.ProductRequest{Name: "Lámpara", CategoryID: cat.ID, UnitPrice: 22})
	require.NoError(t, err)

	err = uc.DeleteCategory(cat.ID)
	assert.ErrorIs(t, err, domain.ErrCategoryInUse)
	assert.Empty(t, catRepo.deleted, "una categoría en uso nunca llega al repositorio de borrado")
}

func TestDeleteCategory_SinProductos(t *testing.T) {
	uc, _, _ := newCatalog()

	cat, err := uc.CreateCategory(dto.CategoryRequest{Name: "Vacía"})
	require.NoError(t, err)
	require.NoError(t, uc.DeleteCategory(cat.ID))

	_, err = uc.GetCategory(cat.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteCategory_Inexistente(t *testing.T) {
	uc, _, _ := newCatalog()
	assert.ErrorIs(t, uc.DeleteCategory("nope"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_CategoriaInexistente(t *testing.T) {
	uc, _, _ := newCatalog()

	_, err := uc.CreateProduct(dto.ProductRequest{Name: "X", CategoryID: "nope", UnitPrice: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateProduct_PrecioInvalido(t *testing.T) {
	uc, _, _ := newCatalog()

	cat, err := uc.CreateCategory(dto.CategoryRequest{Name: "C"})
	require.NoError(t, err)

	_, err = uc.CreateProduct(dto.ProductRequest{Name: "X", CategoryID: cat.ID, UnitPrice: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.CreateProduct(dto.ProductRequest{Name: "X", CategoryID: cat.ID, UnitPrice: -5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateProduct_RefrescaUpdatedAt(t *testing.T) {
	uc, _, _ := newCatalog()

	cat, err := uc.CreateCategory(dto.CategoryRequest{Name: "C"})
	require.NoError(t, err)
	p, err := uc.CreateProduct(dto.ProductRequest{Name: "X", CategoryID: cat.ID, UnitPrice: 10})
	require.NoError(t, err)

	upd, err := uc.UpdateProduct(p.ID, dto.ProductRequest{Name: "Y", CategoryID: cat.ID, UnitPrice: 12.5})
	require.NoError(t, err)
	assert.Equal(t, "Y", upd.Name)
	assert.Equal(t, 12.5, upd.UnitPrice)
	assert.False(t, upd.UpdatedAt.Before(p.UpdatedAt))
}

func TestUpdateProduct_NuevaCategoriaDebeExistir(t *testing.T) {
	uc, _, _ := newCatalog()

	cat, err := uc.CreateCategory(dto.CategoryRequest{Name: "C"})
	require.NoError(t, err)
	p, err := uc.CreateProduct(dto.ProductRequest{Name: "X", CategoryID: cat.ID, UnitPrice: 10})
	require.NoError(t, err)

	_, err = uc.UpdateProduct(p.ID, dto.ProductRequest{Name: "X", CategoryID: "nope", UnitPrice: 10})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListProductsByCategory(t *testing.T) {
	uc, _, _ := newCatalog()

	c1, err := uc.CreateCategory(dto.CategoryRequest{Name: "A"})
	require.NoError(t, err)
	c2, err := uc.CreateCategory(dto.CategoryRequest{Name: "B"})
	require.NoError(t, err)

	_, err = uc.CreateProduct(dto.ProductRequest{Name: "a1", CategoryID: c1.ID, UnitPrice: 1})
	require.NoError(t, err)
	_, err = uc.CreateProduct(dto.ProductRequest{Name: "b1", CategoryID: c2.ID, UnitPrice: 1})
	require.NoError(t, err)

	out, err := uc.ListProductsByCategory(c1.ID)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "a1", out[0].Name)
}
