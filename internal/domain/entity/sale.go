package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada. Inmutable una vez creada.
// TotalAmount lo suministra el caller y se persiste tal cual; no se
// valida contra unit_price × quantity.
type Sale struct {
	ID          string
	ProductID   string
	SaleDate    time.Time // solo la fecha es significativa
	Quantity    int
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
}
