package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/veth14/hotel-backoffice-api/internal/application/inventory"
	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
	dominv "github.com/veth14/hotel-backoffice-api/internal/domain/inventory"
)

func TestAggregateStats(t *testing.T) {
	stats := inventory.AggregateStats(hotelItems())

	assert.Equal(t, 15, stats.TotalItems)
	assert.Equal(t, 4, stats.LowStockItems)
	assert.Equal(t, 2, stats.OutOfStockItems)
	assert.Equal(t, []string{"amenities", "blancos", "limpieza", "minibar"}, stats.Categories,
		"categorías deduplicadas en orden lexicográfico")

	// Valor total = Σ stock × precio unitario, calculado a mano sobre la
	// misma colección para no depender del orden de iteración.
	want := decimal.Zero
	for _, it := range hotelItems() {
		want = want.Add(it.Value())
	}
	assert.True(t, stats.TotalValue.Equal(want), "TotalValue esperado %s, obtenido %s", want, stats.TotalValue)
}

func TestAggregateStats_Vacio(t *testing.T) {
	stats := inventory.AggregateStats(nil)

	assert.Zero(t, stats.TotalItems)
	assert.True(t, stats.TotalValue.IsZero())
	assert.Empty(t, stats.Categories)
}

// Los conteos low/out de las estadísticas y los de las facetas salen del
// mismo clasificador: sobre cualquier colección deben coincidir.
func TestAggregateStats_CoincideConFacetas(t *testing.T) {
	items := hotelItems()
	stats := inventory.AggregateStats(items)
	facets := inventory.FacetCounts(items)

	var lowFacet, outFacet int
	for _, s := range facets.StockStatuses {
		switch s.Value {
		case string(dominv.StockLow):
			lowFacet = s.Count
		case string(dominv.StockOut):
			outFacet = s.Count
		}
	}
	assert.Equal(t, stats.LowStockItems, lowFacet)
	assert.Equal(t, stats.OutOfStockItems, outFacet)
}

func TestAggregateStats_ItemEnElLimiteCuentaComoLow(t *testing.T) {
	items := []entity.InventoryItem{item("a", "Cloro", "limpieza", 15, 15, "100")}
	stats := inventory.AggregateStats(items)

	assert.Equal(t, 1, stats.LowStockItems)
	assert.Zero(t, stats.OutOfStockItems)
}
