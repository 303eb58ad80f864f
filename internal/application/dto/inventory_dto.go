package dto

import "time"

// CreateInventoryRequest body para POST /api/inventory.
// Threshold cero o ausente usa el umbral por defecto.
type CreateInventoryRequest struct {
	ProductID         string `json:"product_id" validate:"required"`
	QuantityOnHand    int    `json:"quantity_on_hand"`
	LowStockThreshold int    `json:"low_stock_threshold" validate:"min=0"`
}

// AdjustInventoryRequest body para PUT /api/inventory/:product_id.
// ChangeQty es un delta firmado; el stock puede quedar negativo.
type AdjustInventoryRequest struct {
	ChangeQty int    `json:"change_qty" validate:"required"`
	Reason    string `json:"reason"`
}

// InventoryResponse salida de una fila de inventario.
type InventoryResponse struct {
	ID                string    `json:"id"`
	ProductID         string    `json:"product_id"`
	QuantityOnHand    int       `json:"quantity_on_hand"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	LastUpdated       time.Time `json:"last_updated"`
}

// InventoryHistoryResponse entrada del libro mayor de inventario.
type InventoryHistoryResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	ChangeQty int       `json:"change_qty"`
	Reason    string    `json:"reason"`
	ChangedAt time.Time `json:"changed_at"`
}
