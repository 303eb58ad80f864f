package inventory

import (
	"context"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando los
// repositorios del libro de inventario atados a esa tx. Garantiza que la
// actualización del stock y su entrada de historial se apliquen como unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		histRepo repository.InventoryHistoryRepository,
	) error) error
}
