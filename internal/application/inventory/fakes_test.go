package inventory_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
	"github.com/veth14/hotel-backoffice-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de persistencia en memoria
// ──────────────────────────────────────────────────────────────────────────────

var errRemoto = errors.New("remoto no disponible")

// fakeItemRepo repositorio de artículos en memoria con inyección de fallas.
type fakeItemRepo struct {
	mu    sync.Mutex
	items map[string]entity.InventoryItem

	listCalls  int
	failList   bool
	failUpdate bool
	failStock  bool
}

func newFakeItemRepo(items ...entity.InventoryItem) *fakeItemRepo {
	r := &fakeItemRepo{items: make(map[string]entity.InventoryItem)}
	for _, it := range items {
		r.items[it.ID] = it
	}
	return r
}

func (r *fakeItemRepo) Create(item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = *item
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *fakeItemRepo) ListAll(string) ([]entity.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	if r.failList {
		return nil, errRemoto
	}
	out := make([]entity.InventoryItem, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	return out, nil
}

func (r *fakeItemRepo) Update(item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failUpdate {
		return errRemoto
	}
	r.items[item.ID] = *item
	return nil
}

func (r *fakeItemRepo) UpdateStock(itemID string, newStock int, lastRestocked *time.Time, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failStock {
		return errRemoto
	}
	it, ok := r.items[itemID]
	if !ok {
		return errRemoto
	}
	it.CurrentStock = newStock
	it.UpdatedAt = updatedAt
	if lastRestocked != nil {
		it.LastRestocked = *lastRestocked
	}
	r.items[itemID] = it
	return nil
}

func (r *fakeItemRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

// fakeLedgerRepo libro de ajustes en memoria.
type fakeLedgerRepo struct {
	mu      sync.Mutex
	entries []entity.StockTransaction
}

func (r *fakeLedgerRepo) Create(tx *entity.StockTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *tx)
	return nil
}

func (r *fakeLedgerRepo) ListByItem(itemID string, limit, offset int) ([]entity.StockTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.StockTransaction, 0)
	for _, e := range r.entries {
		if e.ItemID == itemID {
			out = append(out, e)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los repos dados; no
// hay transacción real pero la semántica "todo o nada" se respeta porque el
// fake de stock falla antes de escribir el asiento.
type fakeTxRunner struct {
	itemRepo   *fakeItemRepo
	ledgerRepo *fakeLedgerRepo
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.ItemRepository, repository.StockTransactionRepository) error) error {
	return fn(t.itemRepo, t.ledgerRepo)
}

// fakeWatcher permite disparar señales de cambio a mano.
type fakeWatcher struct {
	mu       sync.Mutex
	onChange func()
	onError  func(error)
	stopped  bool
	failOpen bool
}

func (w *fakeWatcher) Watch(_ context.Context, onChange func(), onError func(error)) (func(), error) {
	if w.failOpen {
		return nil, errRemoto
	}
	w.mu.Lock()
	w.onChange = onChange
	w.onError = onError
	w.mu.Unlock()
	return func() {
		w.mu.Lock()
		w.stopped = true
		w.mu.Unlock()
	}, nil
}

func (w *fakeWatcher) fire() {
	w.mu.Lock()
	fn := w.onChange
	w.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Constructores de datos de prueba
// ──────────────────────────────────────────────────────────────────────────────

func item(id, name, category string, stock, reorder int, price string) entity.InventoryItem {
	p, _ := decimal.NewFromString(price)
	return entity.InventoryItem{
		ID:           id,
		Name:         name,
		Category:     category,
		CurrentStock: stock,
		ReorderLevel: reorder,
		UnitPrice:    p,
	}
}
