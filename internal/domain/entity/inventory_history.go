package entity

import "time"

// InventoryHistory es una entrada del libro mayor de inventario: registra un
// delta firmado sobre el stock de un producto. Append-only; nunca se actualiza
// ni se borra, y sobrevive al borrado de la fila de Inventory.
type InventoryHistory struct {
	ID        string
	ProductID string
	ChangeQty int
	Reason    string
	ChangedAt time.Time
}
