package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
	"github.com/veth14/hotel-backoffice-api/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

// StockTransactionRepo implementación del libro de ajustes sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lee: los asientos no se editan.
type StockTransactionRepo struct {
	q Querier
}

// NewStockTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockTransactionRepository(q Querier) *StockTransactionRepo {
	return &StockTransactionRepo{q: q}
}

// Create persiste un asiento del libro de ajustes.
func (r *StockTransactionRepo) Create(tx *entity.StockTransaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_transactions (id, item_id, delta, previous_stock, new_stock, reason, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.ItemID, tx.Delta, tx.PreviousStock, tx.NewStock,
		tx.Reason, tx.CreatedBy, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock transaction: %w", err)
	}
	return nil
}

// ListByItem devuelve la historia de ajustes de un artículo, del más reciente
// al más antiguo.
func (r *StockTransactionRepo) ListByItem(itemID string, limit, offset int) ([]entity.StockTransaction, error) {
	query := `
		SELECT id, item_id, delta, previous_stock, new_stock, reason, created_by, created_at
		FROM stock_transactions WHERE item_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock transactions: %w", err)
	}
	defer rows.Close()

	var list []entity.StockTransaction
	for rows.Next() {
		var t entity.StockTransaction
		if err := rows.Scan(&t.ID, &t.ItemID, &t.Delta, &t.PreviousStock, &t.NewStock, &t.Reason, &t.CreatedBy, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
