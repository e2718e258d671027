package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
	dominv "github.com/veth14/hotel-backoffice-api/internal/domain/inventory"
)

// Stats agregados del inventario completo.
type Stats struct {
	TotalItems      int
	TotalValue      decimal.Decimal // Σ stock × precio unitario
	LowStockItems   int
	OutOfStockItems int
	Categories      []string // deduplicadas, orden lexicográfico
}

// AggregateStats reduce la colección a sus agregados. Usa el mismo
// clasificador de stock que el filtrado, así ambos cuentan igual.
func AggregateStats(items []entity.InventoryItem) Stats {
	stats := Stats{TotalValue: decimal.Zero}
	seen := make(map[string]struct{})

	for _, item := range items {
		stats.TotalItems++
		stats.TotalValue = stats.TotalValue.Add(item.Value())
		switch dominv.ClassifyStock(item) {
		case dominv.StockLow:
			stats.LowStockItems++
		case dominv.StockOut:
			stats.OutOfStockItems++
		}
		if _, ok := seen[item.Category]; !ok {
			seen[item.Category] = struct{}{}
			stats.Categories = append(stats.Categories, item.Category)
		}
	}

	sort.Strings(stats.Categories)
	return stats
}
