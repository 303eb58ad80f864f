package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
// Las escrituras usan Querier (pool o tx); las agregaciones son de solo
// lectura y toman ctx. Todos los intervalos son cerrados: sale_date BETWEEN.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta. Las ventas son inmutables: no hay Update ni Delete.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, product_id, sale_date, quantity, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ProductID, sale.SaleDate, sale.Quantity, sale.TotalAmount, sale.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, product_id, sale_date, quantity, total_amount, created_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ProductID, &s.SaleDate, &s.Quantity, &s.TotalAmount, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// ListByDateRange devuelve las ventas crudas del intervalo, ascendente por sale_date.
func (r *SaleRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Sale, error) {
	query := `
		SELECT id, product_id, sale_date, quantity, total_amount, created_at
		FROM sales
		WHERE sale_date BETWEEN $1 AND $2
		ORDER BY sale_date`
	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("sales.ListByDateRange: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ProductID, &s.SaleDate, &s.Quantity, &s.TotalAmount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("sales.ListByDateRange scan: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// SumTotalAmount suma total_amount del intervalo.
// COALESCE devuelve cero para ventanas sin ventas.
func (r *SaleRepo) SumTotalAmount(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(total_amount), 0) AS revenue
	FROM sales
	WHERE sale_date BETWEEN $1 AND $2`

	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, start, end).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sales.SumTotalAmount: %w", err)
	}
	return total, nil
}

// RevenueByCategory agrupa unidades e ingresos del intervalo por nombre de categoría.
func (r *SaleRepo) RevenueByCategory(ctx context.Context, start, end time.Time) ([]repository.CategoryRevenueRow, error) {
	const query = `
	SELECT
	    c.name                 AS category_name,
	    SUM(s.quantity)        AS units_sold,
	    SUM(s.total_amount)    AS revenue
	FROM sales s
	JOIN products   p ON p.id = s.product_id
	JOIN categories c ON c.id = p.category_id
	WHERE s.sale_date BETWEEN $1 AND $2
	GROUP BY c.name`

	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("sales.RevenueByCategory: %w", err)
	}
	defer rows.Close()
	return scanCategoryRevenue(rows, "sales.RevenueByCategory")
}

// RevenueByCategoryID agrega unidades e ingresos de una sola categoría.
func (r *SaleRepo) RevenueByCategoryID(ctx context.Context, start, end time.Time, categoryID string) ([]repository.CategoryRevenueRow, error) {
	const query = `
	SELECT
	    c.name                 AS category_name,
	    SUM(s.quantity)        AS units_sold,
	    SUM(s.total_amount)    AS revenue
	FROM sales s
	JOIN products   p ON p.id = s.product_id
	JOIN categories c ON c.id = p.category_id
	WHERE s.sale_date BETWEEN $1 AND $2
	  AND c.id = $3
	GROUP BY c.id, c.name
	ORDER BY c.name`

	rows, err := r.q.Query(ctx, query, start, end, categoryID)
	if err != nil {
		return nil, fmt.Errorf("sales.RevenueByCategoryID: %w", err)
	}
	defer rows.Close()
	return scanCategoryRevenue(rows, "sales.RevenueByCategoryID")
}

// RevenueByProduct agrega unidades e ingresos de un producto en el intervalo.
func (r *SaleRepo) RevenueByProduct(ctx context.Context, start, end time.Time, productID string) ([]repository.ProductRevenueRow, error) {
	const query = `
	SELECT
	    p.name                 AS product_name,
	    c.name                 AS category_name,
	    SUM(s.quantity)        AS units_sold,
	    SUM(s.total_amount)    AS revenue
	FROM sales s
	JOIN products   p ON p.id = s.product_id
	JOIN categories c ON c.id = p.category_id
	WHERE s.sale_date BETWEEN $1 AND $2
	  AND p.id = $3
	GROUP BY p.id, p.name, c.name
	ORDER BY p.name`

	rows, err := r.q.Query(ctx, query, start, end, productID)
	if err != nil {
		return nil, fmt.Errorf("sales.RevenueByProduct: %w", err)
	}
	defer rows.Close()
	return scanProductRevenue(rows, "sales.RevenueByProduct")
}

// ListAllProductRevenue agrega todo el histórico de ventas por producto.
func (r *SaleRepo) ListAllProductRevenue(ctx context.Context) ([]repository.ProductRevenueRow, error) {
	const query = `
	SELECT
	    p.name                 AS product_name,
	    c.name                 AS category_name,
	    SUM(s.quantity)        AS units_sold,
	    SUM(s.total_amount)    AS revenue
	FROM sales s
	JOIN products   p ON p.id = s.product_id
	JOIN categories c ON c.id = p.category_id
	GROUP BY p.id, p.name, c.name
	ORDER BY p.name`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sales.ListAllProductRevenue: %w", err)
	}
	defer rows.Close()
	return scanProductRevenue(rows, "sales.ListAllProductRevenue")
}

func scanCategoryRevenue(rows pgx.Rows, op string) ([]repository.CategoryRevenueRow, error) {
	var results []repository.CategoryRevenueRow
	for rows.Next() {
		var row repository.CategoryRevenueRow
		if err := rows.Scan(&row.CategoryName, &row.UnitsSold, &row.Revenue); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

func scanProductRevenue(rows pgx.Rows, op string) ([]repository.ProductRevenueRow, error) {
	var results []repository.ProductRevenueRow
	for rows.Next() {
		var row repository.ProductRevenueRow
		if err := rows.Scan(&row.ProductName, &row.CategoryName, &row.UnitsSold, &row.Revenue); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
