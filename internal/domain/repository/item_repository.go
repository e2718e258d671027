package repository

import (
	"context"
	"time"

	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para InventoryItem (DIP).
// ListAll admite ordenamiento del lado del servidor por un solo campo.
type ItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	ListAll(orderBy string) ([]entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	UpdateStock(itemID string, newStock int, lastRestocked *time.Time, updatedAt time.Time) error
	Delete(id string) error
}

// ItemWatcher suscripción a cambios de la colección de artículos.
// Watch entrega una señal por cada cambio remoto; el consumidor decide cómo
// refrescar. La función de cancelación devuelta es idempotente y detiene la
// entrega de señales.
type ItemWatcher interface {
	Watch(ctx context.Context, onChange func(), onError func(error)) (func(), error)
}
