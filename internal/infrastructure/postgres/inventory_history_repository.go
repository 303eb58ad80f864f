package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

var _ repository.InventoryHistoryRepository = (*InventoryHistoryRepo)(nil)

// InventoryHistoryRepo implementación del libro mayor sobre PostgreSQL (usable con pool o tx).
// Solo inserta y lee: las entradas del historial son inmutables.
type InventoryHistoryRepo struct {
	q Querier
}

// NewInventoryHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryHistoryRepository(q Querier) *InventoryHistoryRepo {
	return &InventoryHistoryRepo{q: q}
}

// Append persiste una entrada del historial.
func (r *InventoryHistoryRepo) Append(h *entity.InventoryHistory) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_history (id, product_id, change_qty, reason, changed_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		h.ID, h.ProductID, h.ChangeQty, h.Reason, h.ChangedAt,
	)
	if err != nil {
		return fmt.Errorf("append inventory history: %w", err)
	}
	return nil
}

// ListAll devuelve todo el historial ordenado por changed_at descendente.
func (r *InventoryHistoryRepo) ListAll() ([]*entity.InventoryHistory, error) {
	query := `
		SELECT id, product_id, change_qty, reason, changed_at
		FROM inventory_history ORDER BY changed_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list inventory history: %w", err)
	}
	defer rows.Close()
	return scanHistory(rows)
}

// ListByProduct filtra el historial por inventory_history.product_id,
// ordenado por changed_at descendente.
func (r *InventoryHistoryRepo) ListByProduct(productID string) ([]*entity.InventoryHistory, error) {
	query := `
		SELECT id, product_id, change_qty, reason, changed_at
		FROM inventory_history WHERE product_id = $1 ORDER BY changed_at DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list inventory history by product: %w", err)
	}
	defer rows.Close()
	return scanHistory(rows)
}

func scanHistory(rows pgx.Rows) ([]*entity.InventoryHistory, error) {
	var list []*entity.InventoryHistory
	for rows.Next() {
		var h entity.InventoryHistory
		if err := rows.Scan(&h.ID, &h.ProductID, &h.ChangeQty, &h.Reason, &h.ChangedAt); err != nil {
			return nil, fmt.Errorf("scan inventory history: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
