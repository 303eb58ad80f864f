package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/sales"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (f *fakeSaleRepo) Create(sale *entity.Sale) error {
	cp := *sale
	f.sales = append(f.sales, &cp)
	return nil
}

func (f *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	for _, s := range f.sales {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeSaleRepo) inRange(start, end time.Time) []*entity.Sale {
	var out []*entity.Sale
	for _, s := range f.sales {
		if !s.SaleDate.Before(start) && !s.SaleDate.After(end) {
			out = append(out, s)
		}
	}
	return out
}

func (f *fakeSaleRepo) ListByDateRange(_ context.Context, start, end time.Time) ([]*entity.Sale, error) {
	return f.inRange(start, end), nil
}

func (f *fakeSaleRepo) SumTotalAmount(_ context.Context, start, end time.Time) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, s := range f.inRange(start, end) {
		sum = sum.Add(s.TotalAmount)
	}
	return sum, nil
}

func (f *fakeSaleRepo) RevenueByCategory(context.Context, time.Time, time.Time) ([]repository.CategoryRevenueRow, error) {
	return nil, nil
}

func (f *fakeSaleRepo) RevenueByCategoryID(context.Context, time.Time, time.Time, string) ([]repository.CategoryRevenueRow, error) {
	return nil, nil
}

func (f *fakeSaleRepo) RevenueByProduct(context.Context, time.Time, time.Time, string) ([]repository.ProductRevenueRow, error) {
	return nil, nil
}

func (f *fakeSaleRepo) ListAllProductRevenue(context.Context) ([]repository.ProductRevenueRow, error) {
	return nil, nil
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

func newAggregator() (*sales.AggregatorUseCase, *fakeSaleRepo) {
	saleRepo := &fakeSaleRepo{}
	productRepo := &fakeProductRepo{ids: map[string]bool{"p1": true}}
	return sales.NewAggregatorUseCase(saleRepo, productRepo, nil), saleRepo
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func addSale(t *testing.T, repo *fakeSaleRepo, id, date string, amount float64) {
	t.Helper()
	require.NoError(t, repo.Create(&entity.Sale{
		ID:          id,
		ProductID:   "p1",
		SaleDate:    mustDate(t, date),
		Quantity:    1,
		TotalAmount: decimal.NewFromFloat(amount),
		CreatedAt:   time.Now(),
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordSale
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale(t *testing.T) {
	uc, repo := newAggregator()

	out, err := uc.RecordSale(dto.CreateSaleRequest{
		ProductID: "p1", SaleDate: "2025-05-28", Quantity: 2, TotalAmount: 31.98,
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-05-28", out.SaleDate)
	assert.Equal(t, 31.98, out.TotalAmount)
	assert.Len(t, repo.sales, 1)
}

func TestRecordSale_ProductoInexistente(t *testing.T) {
	uc, _ := newAggregator()

	_, err := uc.RecordSale(dto.CreateSaleRequest{
		ProductID: "nope", SaleDate: "2025-05-28", Quantity: 1, TotalAmount: 10,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordSale_Invalida(t *testing.T) {
	uc, _ := newAggregator()

	cases := []dto.CreateSaleRequest{
		{ProductID: "p1", SaleDate: "28/05/2025", Quantity: 1, TotalAmount: 10},
		{ProductID: "p1", SaleDate: "2025-05-28", Quantity: 0, TotalAmount: 10},
		{ProductID: "p1", SaleDate: "2025-05-28", Quantity: 1, TotalAmount: 0},
		{ProductID: "p1", SaleDate: "2025-05-28", Quantity: -2, TotalAmount: 10},
	}
	for _, in := range cases {
		_, err := uc.RecordSale(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RevenueByPeriod
// ──────────────────────────────────────────────────────────────────────────────

func TestRevenueByPeriod_AgrupaPorMes(t *testing.T) {
	uc, repo := newAggregator()
	addSale(t, repo, "s1", "2025-05-03", 10.00)
	addSale(t, repo, "s2", "2025-05-28", 15.00)

	out, err := uc.RevenueByPeriod(context.Background(), "month", "2025-05-01", "2025-05-31")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2025-05", out[0].Period)
	assert.Equal(t, 25.0, out[0].Revenue)
}

func TestRevenueByPeriod_BucketsOrdenados(t *testing.T) {
	uc, repo := newAggregator()
	addSale(t, repo, "s1", "2025-03-10", 5)
	addSale(t, repo, "s2", "2025-01-15", 7)
	addSale(t, repo, "s3", "2025-02-20", 11)

	out, err := uc.RevenueByPeriod(context.Background(), "month", "2025-01-01", "2025-12-31")
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, []string{"2025-01", "2025-02", "2025-03"},
		[]string{out[0].Period, out[1].Period, out[2].Period})
}

func TestRevenueByPeriod_RespetaIntervaloCerrado(t *testing.T) {
	uc, repo := newAggregator()
	addSale(t, repo, "s1", "2025-05-01", 10)
	addSale(t, repo, "s2", "2025-05-31", 20)
	addSale(t, repo, "s3", "2025-06-01", 40)

	out, err := uc.RevenueByPeriod(context.Background(), "day", "2025-05-01", "2025-05-31")
	require.NoError(t, err)
	require.Len(t, out, 2, "los extremos se incluyen; fuera del intervalo no")
}

func TestRevenueByPeriod_PeriodoInvalido(t *testing.T) {
	uc, _ := newAggregator()

	_, err := uc.RevenueByPeriod(context.Background(), "quarter", "2025-01-01", "2025-12-31")
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

func TestRevenueByPeriod_FechasInvalidas(t *testing.T) {
	uc, _ := newAggregator()

	_, err := uc.RevenueByPeriod(context.Background(), "month", "01-01-2025", "2025-12-31")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRevenueByPeriod_SinVentas(t *testing.T) {
	uc, _ := newAggregator()

	out, err := uc.RevenueByPeriod(context.Background(), "year", "2025-01-01", "2025-12-31")
	require.NoError(t, err)
	assert.Empty(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// RevenueComparison
// ──────────────────────────────────────────────────────────────────────────────

func TestRevenueComparison(t *testing.T) {
	uc, repo := newAggregator()
	addSale(t, repo, "s1", "2025-01-10", 100)
	addSale(t, repo, "s2", "2025-02-10", 60)

	out, err := uc.RevenueComparison(context.Background(),
		"2025-01-01", "2025-01-31",
		"2025-02-01", "2025-02-28")
	require.NoError(t, err)
	assert.Equal(t, 100.0, out.Period1)
	assert.Equal(t, 60.0, out.Period2)
}

func TestRevenueComparison_VentanaVaciaEsCero(t *testing.T) {
	uc, repo := newAggregator()
	addSale(t, repo, "s1", "2025-01-10", 100)

	out, err := uc.RevenueComparison(context.Background(),
		"2025-01-01", "2025-01-31",
		"2030-01-01", "2030-01-31")
	require.NoError(t, err)
	assert.Equal(t, 100.0, out.Period1)
	assert.Equal(t, 0.0, out.Period2)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetSale / SalesByDateRange / PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSale_Inexistente(t *testing.T) {
	uc, _ := newAggregator()

	_, err := uc.GetSale("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSalesByDateRange(t *testing.T) {
	uc, repo := newAggregator()
	addSale(t, repo, "s1", "2025-05-10", 10)
	addSale(t, repo, "s2", "2025-06-10", 20)

	out, err := uc.SalesByDateRange(context.Background(), "2025-05-01", "2025-05-31")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "s1", out[0].ID)
}

func TestProductRevenuePDF_SinGenerador(t *testing.T) {
	uc, _ := newAggregator()

	_, err := uc.ProductRevenuePDF(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
