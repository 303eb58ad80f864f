package dto

import "time"

// CreateSaleRequest body para POST /api/sales. TotalAmount se toma tal cual,
// sin validar contra unit_price × quantity.
type CreateSaleRequest struct {
	ProductID   string  `json:"product_id" validate:"required"`
	SaleDate    string  `json:"sale_date" validate:"required"` // YYYY-MM-DD
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	TotalAmount float64 `json:"total_amount" validate:"required,gt=0"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	SaleDate    string    `json:"sale_date"` // YYYY-MM-DD
	Quantity    int       `json:"quantity"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// DateRangeRequest query params start/end (YYYY-MM-DD, intervalo cerrado).
type DateRangeRequest struct {
	Start string `query:"start" validate:"required"`
	End   string `query:"end" validate:"required"`
}

// RevenueByPeriodDTO ingreso total de un bucket temporal.
// Los montos se convierten a float64 únicamente en esta frontera.
type RevenueByPeriodDTO struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
}

// RevenueComparisonDTO totales de dos ventanas independientes.
type RevenueComparisonDTO struct {
	Period1 float64 `json:"period1"`
	Period2 float64 `json:"period2"`
}

// RevenueByCategoryDTO unidades e ingresos de una categoría.
type RevenueByCategoryDTO struct {
	Category  string  `json:"category"`
	UnitsSold int64   `json:"units_sold"`
	Revenue   float64 `json:"revenue"`
}

// RevenueByProductDTO unidades e ingresos de un producto.
type RevenueByProductDTO struct {
	Product   string  `json:"product"`
	Category  string  `json:"category"`
	UnitsSold int64   `json:"units_sold"`
	Revenue   float64 `json:"revenue"`
}
