package entity

import "time"

// DefaultLowStockThreshold umbral de stock bajo cuando el caller no envía uno.
const DefaultLowStockThreshold = 10

// Inventory representa el nivel de stock actual de un producto.
// A lo sumo una fila por producto; QuantityOnHand es la cantidad autoritativa
// y puede ser negativa (no se aplica piso en cero).
type Inventory struct {
	ID                string
	ProductID         string
	QuantityOnHand    int
	LowStockThreshold int
	LastUpdated       time.Time
}

// IsLowStock indica si el stock actual está en o por debajo del umbral.
func (i Inventory) IsLowStock() bool {
	return i.QuantityOnHand <= i.LowStockThreshold
}
