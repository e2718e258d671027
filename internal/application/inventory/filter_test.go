package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veth14/hotel-backoffice-api/internal/application/inventory"
	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
)

// colección de prueba: 15 artículos de un back-office de hotel, 3 con
// "towel" en el nombre.
func hotelItems() []entity.InventoryItem {
	return []entity.InventoryItem{
		item("i01", "Bath Towel", "blancos", 40, 20, "250"),
		item("i02", "Hand Towel", "blancos", 8, 15, "120"),
		item("i03", "Pool Towel", "blancos", 0, 10, "300"),
		item("i04", "Sábana Queen", "blancos", 60, 25, "480"),
		item("i05", "Jabón de tocador", "amenities", 200, 100, "12"),
		item("i06", "Shampoo 30ml", "amenities", 90, 100, "18"),
		item("i07", "Acondicionador 30ml", "amenities", 0, 100, "18"),
		item("i08", "Café en sobre", "minibar", 150, 50, "8"),
		item("i09", "Agua embotellada", "minibar", 300, 120, "10"),
		item("i10", "Detergente industrial", "limpieza", 12, 10, "450"),
		item("i11", "Cloro 5L", "limpieza", 5, 8, "180"),
		item("i12", "Escoba", "limpieza", 25, 5, "95"),
		item("i13", "Papel higiénico", "amenities", 500, 200, "14"),
		item("i14", "Almohada estándar", "blancos", 35, 15, "350"),
		item("i15", "Cobija térmica", "blancos", 18, 20, "620"),
	}
}

func TestFilterItems_BusquedaPorSubstring(t *testing.T) {
	got := inventory.FilterItems(hotelItems(), inventory.FilterSpec{SearchTerm: "towel"})

	require.Len(t, got, 3, "tres artículos contienen 'towel' en el nombre")
	for _, it := range got {
		assert.Contains(t, []string{"Bath Towel", "Hand Towel", "Pool Towel"}, it.Name)
	}
}

func TestFilterItems_BusquedaEsCaseInsensitiveYRecortaEspacios(t *testing.T) {
	got := inventory.FilterItems(hotelItems(), inventory.FilterSpec{SearchTerm: "  TOWEL  "})
	assert.Len(t, got, 3)
}

func TestFilterItems_BusquedaCubreCategoriaProveedorEID(t *testing.T) {
	items := hotelItems()
	items[0].Supplier = "Distribuidora Norte"

	byCategory := inventory.FilterItems(items, inventory.FilterSpec{SearchTerm: "minibar"})
	assert.Len(t, byCategory, 2)

	bySupplier := inventory.FilterItems(items, inventory.FilterSpec{SearchTerm: "norte"})
	require.Len(t, bySupplier, 1)
	assert.Equal(t, "i01", bySupplier[0].ID)

	byID := inventory.FilterItems(items, inventory.FilterSpec{SearchTerm: "i11"})
	require.Len(t, byID, 1)
	assert.Equal(t, "Cloro 5L", byID[0].Name)
}

func TestFilterItems_CategoriaYAllComoCentinela(t *testing.T) {
	items := hotelItems()

	blancos := inventory.FilterItems(items, inventory.FilterSpec{Category: "blancos"})
	assert.Len(t, blancos, 6)

	todos := inventory.FilterItems(items, inventory.FilterSpec{Category: inventory.FilterAll})
	assert.Len(t, todos, len(items), "'all' desactiva el filtro de categoría")

	vacio := inventory.FilterItems(items, inventory.FilterSpec{})
	assert.Len(t, vacio, len(items), "cadena vacía equivale a 'all'")
}

func TestFilterItems_PorNivelDeStock(t *testing.T) {
	items := hotelItems()

	out := inventory.FilterItems(items, inventory.FilterSpec{StockStatus: "out-of-stock"})
	require.Len(t, out, 2)
	for _, it := range out {
		assert.Zero(t, it.CurrentStock)
	}

	low := inventory.FilterItems(items, inventory.FilterSpec{StockStatus: "low-stock"})
	// i02 (8/15), i06 (90/100), i11 (5/8), i15 (18/20)
	assert.Len(t, low, 4)
}

func TestFilterItems_FiltrosCombinados(t *testing.T) {
	got := inventory.FilterItems(hotelItems(), inventory.FilterSpec{
		SearchTerm:  "towel",
		Category:    "blancos",
		StockStatus: "out-of-stock",
	})
	require.Len(t, got, 1)
	assert.Equal(t, "Pool Towel", got[0].Name)
}

func TestFilterItems_OrdenPorNombreCaseInsensitivePorDefecto(t *testing.T) {
	items := []entity.InventoryItem{
		item("a", "zebra", "x", 1, 0, "1"),
		item("b", "Alfombra", "x", 1, 0, "1"),
		item("c", "mantel", "x", 1, 0, "1"),
	}
	got := inventory.FilterItems(items, inventory.FilterSpec{})

	require.Len(t, got, 3)
	assert.Equal(t, []string{"Alfombra", "mantel", "zebra"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestFilterItems_OrdenPorValorDescendente(t *testing.T) {
	items := []entity.InventoryItem{
		item("a", "A", "x", 10, 0, "10"), // valor 100
		item("b", "B", "x", 2, 0, "500"), // valor 1000
		item("c", "C", "x", 1, 0, "50"),  // valor 50
	}
	got := inventory.FilterItems(items, inventory.FilterSpec{SortBy: inventory.SortByValue, SortOrder: "desc"})

	assert.Equal(t, []string{"B", "A", "C"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestFilterItems_OrdenEstableNoMutaLaEntrada(t *testing.T) {
	items := hotelItems()
	original := make([]entity.InventoryItem, len(items))
	copy(original, items)

	_ = inventory.FilterItems(items, inventory.FilterSpec{SortBy: inventory.SortByStock, SortOrder: "desc"})

	assert.Equal(t, original, items, "FilterItems es puro: la colección de entrada no cambia")
}

func TestFacetCounts(t *testing.T) {
	facets := inventory.FacetCounts(hotelItems())

	// Categorías en orden lexicográfico con conteos pre-filtro.
	require.Len(t, facets.Categories, 4)
	assert.Equal(t, inventory.FacetOption{Value: "amenities", Count: 4}, facets.Categories[0])
	assert.Equal(t, inventory.FacetOption{Value: "blancos", Count: 6}, facets.Categories[1])
	assert.Equal(t, inventory.FacetOption{Value: "limpieza", Count: 3}, facets.Categories[2])
	assert.Equal(t, inventory.FacetOption{Value: "minibar", Count: 2}, facets.Categories[3])

	// Niveles de stock en orden fijo in/low/out.
	require.Len(t, facets.StockStatuses, 3)
	assert.Equal(t, "in-stock", facets.StockStatuses[0].Value)
	assert.Equal(t, 9, facets.StockStatuses[0].Count)
	assert.Equal(t, "low-stock", facets.StockStatuses[1].Value)
	assert.Equal(t, 4, facets.StockStatuses[1].Count)
	assert.Equal(t, "out-of-stock", facets.StockStatuses[2].Value)
	assert.Equal(t, 2, facets.StockStatuses[2].Count)
}
