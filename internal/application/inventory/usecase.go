package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/veth14/hotel-backoffice-api/internal/application/dto"
	"github.com/veth14/hotel-backoffice-api/internal/domain"
	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
	"github.com/veth14/hotel-backoffice-api/internal/domain/repository"
)

// ItemUseCase casos de uso de artículos: lecturas a través de la caché y
// mutaciones en dos fases (parche optimista local, confirmación remota,
// reversión del parche si el remoto falla).
type ItemUseCase struct {
	cache      *ItemCache
	repo       repository.ItemRepository
	ledgerRepo repository.StockTransactionRepository
	txRunner   TxRunner
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(cache *ItemCache, repo repository.ItemRepository, ledgerRepo repository.StockTransactionRepository, txRunner TxRunner) *ItemUseCase {
	return &ItemUseCase{cache: cache, repo: repo, ledgerRepo: ledgerRepo, txRunner: txRunner}
}

// FetchItems devuelve la colección, cacheada o refrescada según force y TTL.
func (uc *ItemUseCase) FetchItems(force bool) ([]entity.InventoryItem, error) {
	return uc.cache.Read(force)
}

// GetItem busca un artículo por ID en la colección cacheada; si no está,
// consulta el remoto. Devuelve nil si no existe.
func (uc *ItemUseCase) GetItem(id string) (*entity.InventoryItem, error) {
	items, err := uc.cache.Read(false)
	if err == nil {
		for i := range items {
			if items[i].ID == id {
				item := items[i]
				return &item, nil
			}
		}
	}
	return uc.repo.GetByID(id)
}

// AddItem valida y crea un artículo. El identificador y los timestamps los
// asigna el servidor; la caché se parchea con el artículo recién creado.
func (uc *ItemUseCase) AddItem(in dto.CreateItemRequest) (*entity.InventoryItem, error) {
	if in.Name == "" || in.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CurrentStock < 0 || in.ReorderLevel < 0 {
		return nil, domain.ErrInvalidInput
	}
	if !in.UnitPrice.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	item := entity.InventoryItem{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Category:      in.Category,
		Description:   in.Description,
		CurrentStock:  in.CurrentStock,
		ReorderLevel:  in.ReorderLevel,
		UnitPrice:     in.UnitPrice,
		Supplier:      in.Supplier,
		Unit:          in.Unit,
		Location:      in.Location,
		LastRestocked: now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.repo.Create(&item); err != nil {
		return nil, err
	}

	uc.cache.Patch(func(items []entity.InventoryItem) []entity.InventoryItem {
		return append(items, item)
	})
	return &item, nil
}

// UpdateItem fusiona los campos no nulos del parche sobre el artículo y lo
// persiste. Dos fases: primero el parche optimista en caché, luego el remoto;
// si el remoto falla, el parche local se revierte y el error se propaga.
// El stock no se edita por aquí: pasa por UpdateStock y su libro.
func (uc *ItemUseCase) UpdateItem(id string, in dto.UpdateItemRequest) (*entity.InventoryItem, error) {
	current, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}

	previous := *current
	updated := *current
	if in.Name != nil {
		updated.Name = *in.Name
	}
	if in.Category != nil {
		updated.Category = *in.Category
	}
	if in.Description != nil {
		updated.Description = *in.Description
	}
	if in.ReorderLevel != nil {
		updated.ReorderLevel = *in.ReorderLevel
	}
	if in.UnitPrice != nil {
		updated.UnitPrice = *in.UnitPrice
	}
	if in.Supplier != nil {
		updated.Supplier = *in.Supplier
	}
	if in.Unit != nil {
		updated.Unit = *in.Unit
	}
	if in.Location != nil {
		updated.Location = *in.Location
	}
	if !updated.UnitPrice.GreaterThan(decimal.Zero) || updated.ReorderLevel < 0 || updated.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	updated.UpdatedAt = time.Now()

	uc.patchItem(updated)
	if err := uc.repo.Update(&updated); err != nil {
		uc.patchItem(previous)
		return nil, err
	}
	return &updated, nil
}

// UpdateStock ajusta el stock de un artículo a un valor absoluto nuevo.
// Rechaza valores negativos (nunca recorta a cero). El nuevo stock y el
// asiento del libro se escriben en la misma transacción; el parche optimista
// de caché se revierte si el remoto falla.
func (uc *ItemUseCase) UpdateStock(ctx context.Context, id string, newStock int, reason, actor string) (*entity.InventoryItem, error) {
	if newStock < 0 {
		return nil, domain.ErrNegativeStock
	}
	if reason == "" {
		return nil, domain.ErrInvalidInput
	}

	current, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	previous := *current
	updated := *current
	updated.CurrentStock = newStock
	updated.UpdatedAt = now
	var restocked *time.Time
	if newStock > previous.CurrentStock {
		updated.LastRestocked = now
		restocked = &now
	}

	uc.patchItem(updated)

	err = uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, ledgerRepo repository.StockTransactionRepository) error {
		if err := itemRepo.UpdateStock(id, newStock, restocked, now); err != nil {
			return err
		}
		return ledgerRepo.Create(&entity.StockTransaction{
			ID:            uuid.New().String(),
			ItemID:        id,
			Delta:         newStock - previous.CurrentStock,
			PreviousStock: previous.CurrentStock,
			NewStock:      newStock,
			Reason:        reason,
			CreatedBy:     actor,
			CreatedAt:     now,
		})
	})
	if err != nil {
		uc.patchItem(previous)
		return nil, err
	}
	return &updated, nil
}

// DeleteItem elimina el artículo del remoto y lo retira de la caché.
func (uc *ItemUseCase) DeleteItem(id string) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.cache.Patch(func(items []entity.InventoryItem) []entity.InventoryItem {
		out := items[:0]
		for _, it := range items {
			if it.ID != id {
				out = append(out, it)
			}
		}
		return out
	})
	return nil
}

// ListTransactions devuelve la historia de ajustes de un artículo.
func (uc *ItemUseCase) ListTransactions(itemID string, limit, offset int) ([]entity.StockTransaction, error) {
	return uc.ledgerRepo.ListByItem(itemID, limit, offset)
}

// patchItem reemplaza en la caché la entrada con el mismo ID.
func (uc *ItemUseCase) patchItem(item entity.InventoryItem) {
	uc.cache.Patch(func(items []entity.InventoryItem) []entity.InventoryItem {
		for i := range items {
			if items[i].ID == item.ID {
				items[i] = item
				break
			}
		}
		return items
	})
}
