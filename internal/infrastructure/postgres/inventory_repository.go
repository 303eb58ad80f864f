package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// GetByProduct obtiene la fila de inventario de un producto.
func (r *InventoryRepo) GetByProduct(productID string) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, quantity_on_hand, low_stock_threshold, last_updated
		FROM inventory WHERE product_id = $1`
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&inv.ID, &inv.ProductID, &inv.QuantityOnHand, &inv.LowStockThreshold, &inv.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// List devuelve todas las filas de inventario, sin orden garantizado.
func (r *InventoryRepo) List() ([]*entity.Inventory, error) {
	query := `
		SELECT id, product_id, quantity_on_hand, low_stock_threshold, last_updated
		FROM inventory`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	return scanInventories(rows)
}

// ListLowStock devuelve las filas con stock en o por debajo de su umbral.
func (r *InventoryRepo) ListLowStock() ([]*entity.Inventory, error) {
	query := `
		SELECT id, product_id, quantity_on_hand, low_stock_threshold, last_updated
		FROM inventory WHERE quantity_on_hand <= low_stock_threshold`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return scanInventories(rows)
}

// Create persiste la fila inicial de inventario de un producto.
// La constraint UNIQUE sobre product_id garantiza a lo sumo una fila por producto.
func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (id, product_id, quantity_on_hand, low_stock_threshold, last_updated)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.ProductID, inv.QuantityOnHand, inv.LowStockThreshold, inv.LastUpdated,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// Update actualiza cantidad, umbral y last_updated de la fila de un producto.
func (r *InventoryRepo) Update(inv *entity.Inventory) error {
	query := `
		UPDATE inventory SET quantity_on_hand = $2, low_stock_threshold = $3, last_updated = $4
		WHERE product_id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		inv.ProductID, inv.QuantityOnHand, inv.LowStockThreshold, inv.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la fila de inventario de un producto. Las entradas de
// inventory_history sobreviven como rastro de auditoría.
func (r *InventoryRepo) Delete(productID string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM inventory WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanInventories(rows pgx.Rows) ([]*entity.Inventory, error) {
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.ProductID, &inv.QuantityOnHand, &inv.LowStockThreshold, &inv.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
