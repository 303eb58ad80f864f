package entity

import "time"

// Category representa una categoría del catálogo de productos.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}
