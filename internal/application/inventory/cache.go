// Package inventory implementa el núcleo de acceso a datos del inventario:
// caché con TTL sobre el almacén remoto, sincronización en tiempo real,
// filtrado/ordenamiento, estadísticas y las mutaciones de artículos.
package inventory

import (
	"fmt"
	"sync"
	"time"

	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
	"github.com/veth14/hotel-backoffice-api/internal/domain/repository"
)

// DefaultCacheTTL vigencia por defecto de la caché de artículos.
const DefaultCacheTTL = 5 * time.Minute

// ItemCache mantiene la última colección completa de artículos conocida y su
// marca de frescura. Hay exactamente una ranura: todos los lectores observan
// los mismos datos y el mismo reloj de caducidad. Es un objeto explícito con
// TTL inyectado por constructor, no estado global de paquete.
type ItemCache struct {
	repo repository.ItemRepository
	ttl  time.Duration
	now  func() time.Time

	mu        sync.Mutex
	items     []entity.InventoryItem
	fetchedAt time.Time
}

// NewItemCache construye la caché sobre el repositorio de artículos.
// ttl <= 0 usa DefaultCacheTTL.
func NewItemCache(repo repository.ItemRepository, ttl time.Duration) *ItemCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ItemCache{repo: repo, ttl: ttl, now: time.Now}
}

// NewItemCacheWithClock como NewItemCache pero con reloj inyectado (tests).
func NewItemCacheWithClock(repo repository.ItemRepository, ttl time.Duration, now func() time.Time) *ItemCache {
	c := NewItemCache(repo, ttl)
	c.now = now
	return c
}

// Read devuelve la colección cacheada si su edad es menor al TTL y force es
// false; si no, trae la colección completa del remoto, reemplaza la ranura y
// reinicia el reloj. Si el fetch remoto falla, la caché vigente (aunque esté
// vencida) no se descarta y el error se propaga al caller.
func (c *ItemCache) Read(force bool) ([]entity.InventoryItem, error) {
	c.mu.Lock()
	if !force && !c.fetchedAt.IsZero() && c.now().Sub(c.fetchedAt) < c.ttl {
		items := copyItems(c.items)
		c.mu.Unlock()
		return items, nil
	}
	c.mu.Unlock()

	// Fetch fuera del lock: el remoto puede tardar y los lectores de caché
	// vigente no deben esperar por él.
	fresh, err := c.repo.ListAll("name")
	if err != nil {
		return nil, fmt.Errorf("refrescar caché de artículos: %w", err)
	}

	c.mu.Lock()
	c.items = fresh
	c.fetchedAt = c.now()
	items := copyItems(c.items)
	c.mu.Unlock()
	return items, nil
}

// Invalidate borra la marca de frescura; el próximo Read refetchea sí o sí.
func (c *ItemCache) Invalidate() {
	c.mu.Lock()
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}

// Replace sobreescribe la ranura con un snapshot autoritativo (suscripción)
// y reinicia el reloj de caducidad.
func (c *ItemCache) Replace(items []entity.InventoryItem) {
	c.mu.Lock()
	c.items = copyItems(items)
	c.fetchedAt = c.now()
	c.mu.Unlock()
}

// Patch aplica una mutación optimista sobre la ranura sin tocar el reloj.
// El parche queda vigente hasta el siguiente snapshot autoritativo o hasta
// que la mutación remota falle y el caller lo revierta.
func (c *ItemCache) Patch(fn func(items []entity.InventoryItem) []entity.InventoryItem) {
	c.mu.Lock()
	c.items = fn(c.items)
	c.mu.Unlock()
}

// Snapshot devuelve una copia de la ranura actual sin consultar el remoto.
func (c *ItemCache) Snapshot() []entity.InventoryItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyItems(c.items)
}

func copyItems(items []entity.InventoryItem) []entity.InventoryItem {
	out := make([]entity.InventoryItem, len(items))
	copy(out, items)
	return out
}
