package inventory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
	"github.com/veth14/hotel-backoffice-api/internal/domain/repository"
	"github.com/veth14/hotel-backoffice-api/pkg/logger"
)

// ItemSync mantiene la caché alineada con el remoto vía suscripción a
// cambios. Por cada señal del watcher refetchea la colección, la normaliza,
// sobreescribe la caché y notifica al consumidor. Se espera exactamente una
// suscripción viva por sesión; la función de cancelación devuelta debe
// invocarse al cerrar la sesión para no filtrar el listener.
type ItemSync struct {
	watcher repository.ItemWatcher
	repo    repository.ItemRepository
	cache   *ItemCache
	log     *logger.Logger
}

// NewItemSync construye el sincronizador.
func NewItemSync(watcher repository.ItemWatcher, repo repository.ItemRepository, cache *ItemCache, log *logger.Logger) *ItemSync {
	return &ItemSync{watcher: watcher, repo: repo, cache: cache, log: log}
}

// Subscribe abre la suscripción. Entrega un snapshot inicial de inmediato y
// luego uno por cada cambio remoto, en el orden de emisión del canal. En
// error de transporte invoca onError y no toca la caché. La función devuelta
// cancela la suscripción y es idempotente.
func (s *ItemSync) Subscribe(
	ctx context.Context,
	onItems func([]entity.InventoryItem),
	onError func(error),
) (func(), error) {
	deliver := func() {
		items, err := s.repo.ListAll("name")
		if err != nil {
			// La caché vigente queda intacta: el error es del transporte,
			// no de los datos ya conocidos.
			onError(fmt.Errorf("snapshot de artículos: %w", err))
			return
		}
		for i := range items {
			normalizeItem(&items[i])
		}
		s.cache.Replace(items)
		s.log.Debug().Int("items", len(items)).Msg("snapshot de inventario aplicado")
		onItems(items)
	}

	stop, err := s.watcher.Watch(ctx, deliver, onError)
	if err != nil {
		return nil, fmt.Errorf("abrir suscripción de artículos: %w", err)
	}

	// Snapshot inicial: el consumidor no espera al primer cambio remoto.
	deliver()

	var once sync.Once
	return func() {
		once.Do(func() {
			stop()
			s.log.Debug().Msg("suscripción de inventario cerrada")
		})
	}, nil
}

// normalizeItem aplica los defaults de campos ausentes al mapear documentos
// remotos a la forma del dominio.
func normalizeItem(item *entity.InventoryItem) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Category == "" {
		item.Category = "general"
	}
	if item.Unit == "" {
		item.Unit = "pieza"
	}
	if item.LastRestocked.IsZero() {
		item.LastRestocked = item.CreatedAt
	}
}
