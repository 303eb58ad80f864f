package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. UnitPrice siempre en decimal;
// la conversión a float ocurre solo en la capa de presentación.
type Product struct {
	ID         string
	Name       string
	CategoryID string
	UnitPrice  decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
