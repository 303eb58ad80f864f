package repository

import "github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para el nivel de stock
// actual. Solo el libro de inventario (application/inventory) escribe deltas.
type InventoryRepository interface {
	GetByProduct(productID string) (*entity.Inventory, error)
	List() ([]*entity.Inventory, error)
	// ListLowStock devuelve las filas con quantity_on_hand <= low_stock_threshold.
	ListLowStock() ([]*entity.Inventory, error)
	Create(inv *entity.Inventory) error
	Update(inv *entity.Inventory) error
	Delete(productID string) error
}

// InventoryHistoryRepository define el puerto del libro mayor append-only.
// No existe Update ni Delete: las entradas son inmutables.
type InventoryHistoryRepository interface {
	Append(h *entity.InventoryHistory) error
	// ListAll devuelve todas las entradas ordenadas por changed_at descendente.
	ListAll() ([]*entity.InventoryHistory, error)
	// ListByProduct filtra por inventory_history.product_id, mismo orden.
	ListByProduct(productID string) ([]*entity.InventoryHistory, error)
}
