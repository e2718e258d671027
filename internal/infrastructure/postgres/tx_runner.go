package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veth14/hotel-backoffice-api/internal/application/inventory"
	"github.com/veth14/hotel-backoffice-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. El ajuste
// de stock y su asiento en el libro comparten tx: o entran ambos o ninguno.
type TxRunner struct {
	pool    *pgxpool.Pool
	channel string
}

// NewTxRunner construye el runner con el pool y el canal de notificación de
// artículos (los repos atados a la tx también notifican).
func NewTxRunner(pool *pgxpool.Pool, channel string) *TxRunner {
	return &TxRunner{pool: pool, channel: channel}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	ledgerRepo repository.StockTransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	itemRepo := NewItemRepository(tx, r.channel)
	ledgerRepo := NewStockTransactionRepository(tx)

	if err := fn(itemRepo, ledgerRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
