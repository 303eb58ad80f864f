package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// LedgerUseCase implementa el libro de inventario: nivel de stock actual por
// producto más un historial append-only de cada cambio. Es el único componente
// autorizado a escribir deltas de cantidad.
type LedgerUseCase struct {
	txRunner    TxRunner
	invRepo     repository.InventoryRepository
	histRepo    repository.InventoryHistoryRepository
	productRepo repository.ProductRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	invRepo repository.InventoryRepository,
	histRepo repository.InventoryHistoryRepository,
	productRepo repository.ProductRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:    txRunner,
		invRepo:     invRepo,
		histRepo:    histRepo,
		productRepo: productRepo,
	}
}

// Get devuelve la fila de inventario de un producto.
func (uc *LedgerUseCase) Get(productID string) (*dto.InventoryResponse, error) {
	inv, err := uc.invRepo.GetByProduct(productID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return toInventoryResponse(inv), nil
}

// List devuelve todas las filas de inventario.
func (uc *LedgerUseCase) List() ([]dto.InventoryResponse, error) {
	rows, err := uc.invRepo.List()
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(rows), nil
}

// ListLowStock devuelve las filas con stock en o bajo su umbral. No hay
// notificación push: este listado pull es el único mecanismo de alerta.
func (uc *LedgerUseCase) ListLowStock() ([]dto.InventoryResponse, error) {
	rows, err := uc.invRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(rows), nil
}

// Create crea la fila inicial de inventario de un producto. El abastecimiento
// inicial no es un ajuste: no genera entrada de historial.
// Devuelve ErrNotFound si el producto no existe y ErrConflict si el producto
// ya tiene inventario.
func (uc *LedgerUseCase) Create(in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.invRepo.GetByProduct(in.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	threshold := in.LowStockThreshold
	if threshold <= 0 {
		threshold = entity.DefaultLowStockThreshold
	}
	inv := &entity.Inventory{
		ID:                uuid.New().String(),
		ProductID:         in.ProductID,
		QuantityOnHand:    in.QuantityOnHand,
		LowStockThreshold: threshold,
		LastUpdated:       time.Now(),
	}
	if err := uc.invRepo.Create(inv); err != nil {
		return nil, err
	}
	return toInventoryResponse(inv), nil
}

// Adjust aplica un delta firmado al stock de un producto y añade la entrada de
// historial correspondiente, ambos dentro de una misma transacción: un fallo
// entre las dos escrituras no puede dejar cantidad sin asiento ni asiento sin
// cantidad. El delta puede ser negativo y el stock puede quedar bajo cero (no
// se aplica piso; comportamiento heredado y deliberado).
//
// No se toma bloqueo de fila: dos ajustes concurrentes sobre el mismo producto
// pueden perder una actualización bajo el aislamiento por defecto. Aceptable
// para una herramienta administrativa de baja concurrencia.
func (uc *LedgerUseCase) Adjust(ctx context.Context, productID string, in dto.AdjustInventoryRequest) (*dto.InventoryResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	var updated *entity.Inventory
	err = uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		histRepo repository.InventoryHistoryRepository,
	) error {
		inv, err := invRepo.GetByProduct(productID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		now := time.Now()
		inv.QuantityOnHand += in.ChangeQty
		inv.LastUpdated = now
		if err := invRepo.Update(inv); err != nil {
			return err
		}
		hist := &entity.InventoryHistory{
			ID:        uuid.New().String(),
			ProductID: productID,
			ChangeQty: in.ChangeQty,
			Reason:    in.Reason,
			ChangedAt: now,
		}
		if err := histRepo.Append(hist); err != nil {
			return err
		}
		updated = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInventoryResponse(updated), nil
}

// Delete elimina la fila de inventario de un producto. El historial no se
// borra en cascada: queda como rastro de auditoría.
func (uc *LedgerUseCase) Delete(productID string) error {
	inv, err := uc.invRepo.GetByProduct(productID)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	return uc.invRepo.Delete(productID)
}

// History devuelve el historial ordenado por changed_at descendente.
// Con productID vacío devuelve el historial completo.
func (uc *LedgerUseCase) History(productID string) ([]dto.InventoryHistoryResponse, error) {
	var rows []*entity.InventoryHistory
	var err error
	if productID == "" {
		rows, err = uc.histRepo.ListAll()
	} else {
		rows, err = uc.histRepo.ListByProduct(productID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryHistoryResponse, 0, len(rows))
	for _, h := range rows {
		out = append(out, dto.InventoryHistoryResponse{
			ID:        h.ID,
			ProductID: h.ProductID,
			ChangeQty: h.ChangeQty,
			Reason:    h.Reason,
			ChangedAt: h.ChangedAt,
		})
	}
	return out, nil
}

func toInventoryResponse(inv *entity.Inventory) *dto.InventoryResponse {
	if inv == nil {
		return nil
	}
	return &dto.InventoryResponse{
		ID:                inv.ID,
		ProductID:         inv.ProductID,
		QuantityOnHand:    inv.QuantityOnHand,
		LowStockThreshold: inv.LowStockThreshold,
		LastUpdated:       inv.LastUpdated,
	}
}

func toInventoryResponses(rows []*entity.Inventory) []dto.InventoryResponse {
	out := make([]dto.InventoryResponse, 0, len(rows))
	for _, inv := range rows {
		out = append(out, *toInventoryResponse(inv))
	}
	return out
}
