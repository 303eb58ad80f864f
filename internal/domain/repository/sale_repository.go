package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
)

// ProductRevenueRow fila agregada de ventas por producto.
type ProductRevenueRow struct {
	ProductName  string
	CategoryName string
	UnitsSold    int64
	Revenue      decimal.Decimal
}

// CategoryRevenueRow fila agregada de ventas por categoría.
type CategoryRevenueRow struct {
	CategoryName string
	UnitsSold    int64
	Revenue      decimal.Decimal
}

// SaleRepository define el puerto de persistencia y agregación para Sale.
// Las consultas agregadas son de solo lectura y toman ctx, igual que el
// repositorio de analítica; todos los intervalos [start, end] son cerrados
// en ambos extremos.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)

	// ListByDateRange devuelve las ventas crudas del intervalo ordenadas por
	// sale_date ascendente.
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Sale, error)

	// SumTotalAmount suma total_amount en el intervalo; cero si no hay ventas.
	SumTotalAmount(ctx context.Context, start, end time.Time) (decimal.Decimal, error)

	// RevenueByCategory agrupa unidades e ingresos por nombre de categoría.
	RevenueByCategory(ctx context.Context, start, end time.Time) ([]CategoryRevenueRow, error)

	// RevenueByCategoryID igual que RevenueByCategory pero para una sola
	// categoría, ordenado por nombre.
	RevenueByCategoryID(ctx context.Context, start, end time.Time, categoryID string) ([]CategoryRevenueRow, error)

	// RevenueByProduct agrega unidades e ingresos de un producto en el intervalo.
	RevenueByProduct(ctx context.Context, start, end time.Time, productID string) ([]ProductRevenueRow, error)

	// ListAllProductRevenue agregación histórica sin filtro, por producto,
	// ordenada por nombre de producto.
	ListAllProductRevenue(ctx context.Context) ([]ProductRevenueRow, error)
}
