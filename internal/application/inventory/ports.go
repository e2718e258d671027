package inventory

import (
	"context"

	"github.com/veth14/hotel-backoffice-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. El ajuste de stock y su asiento en el libro
// se confirman o se revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		ledgerRepo repository.StockTransactionRepository,
	) error) error
}
