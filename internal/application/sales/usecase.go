package sales

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/report"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// AggregatorUseCase implementa el registro de ventas y todas las consultas de
// ingresos: buckets temporales, comparación de ventanas y agrupaciones por
// categoría y producto. Las sumas monetarias se hacen en decimal y solo se
// convierten a float64 al armar los DTOs de respuesta.
type AggregatorUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	pdfGen      ReportPDFGenerator
}

// NewAggregatorUseCase construye el caso de uso. pdfGen puede ser nil si no se
// expone el export PDF.
func NewAggregatorUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	pdfGen ReportPDFGenerator,
) *AggregatorUseCase {
	return &AggregatorUseCase{saleRepo: saleRepo, productRepo: productRepo, pdfGen: pdfGen}
}

// RecordSale registra una venta. ErrNotFound si el producto no existe; el
// total lo aporta el caller y se persiste tal cual.
func (uc *AggregatorUseCase) RecordSale(in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	saleDate, err := time.Parse(dateLayout, in.SaleDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 || in.TotalAmount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	sale := &entity.Sale{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		SaleDate:    saleDate,
		Quantity:    in.Quantity,
		TotalAmount: decimal.NewFromFloat(in.TotalAmount),
		CreatedAt:   time.Now(),
	}
	if err := uc.saleRepo.Create(sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// GetSale devuelve una venta por ID.
func (uc *AggregatorUseCase) GetSale(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// RevenueByPeriod agrupa las ventas de [start, end] en buckets day/week/month/
// year y suma total_amount por bucket, en decimal. La agregación es en memoria
// sobre las filas del intervalo: el volumen es administrativo, no transaccional.
// Resultado ordenado ascendente por clave de bucket.
func (uc *AggregatorUseCase) RevenueByPeriod(ctx context.Context, period, start, end string) ([]dto.RevenueByPeriodDTO, error) {
	if !report.ValidPeriod(period) {
		return nil, domain.ErrInvalidPeriod
	}
	startDate, endDate, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}
	rows, err := uc.saleRepo.ListByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]decimal.Decimal)
	for _, s := range rows {
		key, err := report.BucketKey(period, s.SaleDate)
		if err != nil {
			return nil, err
		}
		buckets[key] = buckets[key].Add(s.TotalAmount)
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]dto.RevenueByPeriodDTO, 0, len(keys))
	for _, k := range keys {
		out = append(out, dto.RevenueByPeriodDTO{Period: k, Revenue: buckets[k].InexactFloat64()})
	}
	return out, nil
}

// RevenueComparison suma independientemente dos ventanas; cada total es cero
// si la ventana no tiene ventas. Las ventanas pueden solaparse y no se valida
// start <= end.
func (uc *AggregatorUseCase) RevenueComparison(ctx context.Context, start1, end1, start2, end2 string) (*dto.RevenueComparisonDTO, error) {
	s1, e1, err := parseRange(start1, end1)
	if err != nil {
		return nil, err
	}
	s2, e2, err := parseRange(start2, end2)
	if err != nil {
		return nil, err
	}
	rev1, err := uc.saleRepo.SumTotalAmount(ctx, s1, e1)
	if err != nil {
		return nil, err
	}
	rev2, err := uc.saleRepo.SumTotalAmount(ctx, s2, e2)
	if err != nil {
		return nil, err
	}
	return &dto.RevenueComparisonDTO{
		Period1: rev1.InexactFloat64(),
		Period2: rev2.InexactFloat64(),
	}, nil
}

// RevenueByCategory agrupa unidades e ingresos del intervalo por categoría,
// solo categorías con al menos una venta.
func (uc *AggregatorUseCase) RevenueByCategory(ctx context.Context, start, end string) ([]dto.RevenueByCategoryDTO, error) {
	startDate, endDate, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}
	rows, err := uc.saleRepo.RevenueByCategory(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return toCategoryDTOs(rows), nil
}

// RevenueByCategoryID variante filtrada a una sola categoría.
func (uc *AggregatorUseCase) RevenueByCategoryID(ctx context.Context, start, end, categoryID string) ([]dto.RevenueByCategoryDTO, error) {
	startDate, endDate, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}
	rows, err := uc.saleRepo.RevenueByCategoryID(ctx, startDate, endDate, categoryID)
	if err != nil {
		return nil, err
	}
	return toCategoryDTOs(rows), nil
}

// RevenueByProduct variante filtrada a un solo producto.
func (uc *AggregatorUseCase) RevenueByProduct(ctx context.Context, start, end, productID string) ([]dto.RevenueByProductDTO, error) {
	startDate, endDate, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}
	rows, err := uc.saleRepo.RevenueByProduct(ctx, startDate, endDate, productID)
	if err != nil {
		return nil, err
	}
	return toProductDTOs(rows), nil
}

// SalesByDateRange devuelve las ventas crudas del intervalo, ascendente por fecha.
func (uc *AggregatorUseCase) SalesByDateRange(ctx context.Context, start, end string) ([]dto.SaleResponse, error) {
	startDate, endDate, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}
	rows, err := uc.saleRepo.ListByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, *toSaleResponse(s))
	}
	return out, nil
}

// ListAllProductRevenue agregación histórica por producto, ordenada por nombre.
func (uc *AggregatorUseCase) ListAllProductRevenue(ctx context.Context) ([]dto.RevenueByProductDTO, error) {
	rows, err := uc.saleRepo.ListAllProductRevenue(ctx)
	if err != nil {
		return nil, err
	}
	return toProductDTOs(rows), nil
}

// ProductRevenuePDF genera el PDF del reporte histórico de ingresos por producto.
func (uc *AggregatorUseCase) ProductRevenuePDF(ctx context.Context) ([]byte, error) {
	if uc.pdfGen == nil {
		return nil, domain.ErrNotFound
	}
	rows, err := uc.saleRepo.ListAllProductRevenue(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateProductRevenuePDF(ctx, rows)
}

func parseRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return startDate, endDate, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:          s.ID,
		ProductID:   s.ProductID,
		SaleDate:    s.SaleDate.Format(dateLayout),
		Quantity:    s.Quantity,
		TotalAmount: s.TotalAmount.InexactFloat64(),
		CreatedAt:   s.CreatedAt,
	}
}

func toCategoryDTOs(rows []repository.CategoryRevenueRow) []dto.RevenueByCategoryDTO {
	out := make([]dto.RevenueByCategoryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.RevenueByCategoryDTO{
			Category:  r.CategoryName,
			UnitsSold: r.UnitsSold,
			Revenue:   r.Revenue.InexactFloat64(),
		})
	}
	return out
}

func toProductDTOs(rows []repository.ProductRevenueRow) []dto.RevenueByProductDTO {
	out := make([]dto.RevenueByProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.RevenueByProductDTO{
			Product:   r.ProductName,
			Category:  r.CategoryName,
			UnitsSold: r.UnitsSold,
			Revenue:   r.Revenue.InexactFloat64(),
		})
	}
	return out
}
