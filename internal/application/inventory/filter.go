package inventory

import (
	"sort"
	"strings"

	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
	dominv "github.com/veth14/hotel-backoffice-api/internal/domain/inventory"
)

// FilterAll valor centinela que desactiva el filtro de categoría o de nivel
// de stock.
const FilterAll = "all"

// Campos de ordenamiento admitidos.
const (
	SortByName          = "name"
	SortByCategory      = "category"
	SortByStock         = "stock"
	SortByValue         = "value" // stock × precio unitario
	SortByLastRestocked = "lastRestocked"
)

// FilterSpec especificación de filtrado/ordenamiento de la vista de artículos.
type FilterSpec struct {
	SearchTerm  string
	Category    string // FilterAll = todas
	StockStatus string // FilterAll | out-of-stock | low-stock | in-stock
	SortBy      string
	SortOrder   string // asc | desc (explícito, no inferido)
}

// FilterItems produce la vista filtrada y ordenada de la colección. Es una
// función pura: no muta la colección de entrada.
func FilterItems(items []entity.InventoryItem, spec FilterSpec) []entity.InventoryItem {
	term := strings.ToLower(strings.TrimSpace(spec.SearchTerm))

	out := make([]entity.InventoryItem, 0, len(items))
	for _, item := range items {
		if term != "" && !matchesSearch(item, term) {
			continue
		}
		if spec.Category != "" && spec.Category != FilterAll && item.Category != spec.Category {
			continue
		}
		if spec.StockStatus != "" && spec.StockStatus != FilterAll &&
			string(dominv.ClassifyStock(item)) != spec.StockStatus {
			continue
		}
		out = append(out, item)
	}

	sortItems(out, spec.SortBy, spec.SortOrder == "desc")
	return out
}

// matchesSearch busca el término como substring (case-insensitive) en nombre,
// categoría, descripción, proveedor e identificador.
func matchesSearch(item entity.InventoryItem, term string) bool {
	for _, field := range []string{item.Name, item.Category, item.Description, item.Supplier, item.ID} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// sortItems ordena de forma estable por la clave indicada.
func sortItems(items []entity.InventoryItem, sortBy string, desc bool) {
	var less func(a, b entity.InventoryItem) bool
	switch sortBy {
	case SortByCategory:
		less = func(a, b entity.InventoryItem) bool { return a.Category < b.Category }
	case SortByStock:
		less = func(a, b entity.InventoryItem) bool { return a.CurrentStock < b.CurrentStock }
	case SortByValue:
		less = func(a, b entity.InventoryItem) bool { return a.Value().LessThan(b.Value()) }
	case SortByLastRestocked:
		less = func(a, b entity.InventoryItem) bool { return a.LastRestocked.Before(b.LastRestocked) }
	case SortByName:
		fallthrough
	default:
		less = func(a, b entity.InventoryItem) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

// FacetOption opción de filtro con su conteo sobre la colección sin filtrar.
type FacetOption struct {
	Value string
	Count int
}

// Facets opciones seleccionables de los menús de filtro, derivadas de la
// colección pre-filtro para poder mostrar "Categoría X (12)" sin otra consulta.
type Facets struct {
	Categories    []FacetOption
	StockStatuses []FacetOption
}

// FacetCounts deriva las opciones de categoría y de nivel de stock con sus
// conteos. Las categorías salen ordenadas lexicográficamente; los niveles de
// stock en orden fijo in/low/out.
func FacetCounts(items []entity.InventoryItem) Facets {
	byCategory := make(map[string]int)
	byStatus := map[dominv.StockStatus]int{}
	for _, item := range items {
		byCategory[item.Category]++
		byStatus[dominv.ClassifyStock(item)]++
	}

	categories := make([]FacetOption, 0, len(byCategory))
	for cat, n := range byCategory {
		categories = append(categories, FacetOption{Value: cat, Count: n})
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Value < categories[j].Value })

	statuses := []FacetOption{
		{Value: string(dominv.StockIn), Count: byStatus[dominv.StockIn]},
		{Value: string(dominv.StockLow), Count: byStatus[dominv.StockLow]},
		{Value: string(dominv.StockOut), Count: byStatus[dominv.StockOut]},
	}

	return Facets{Categories: categories, StockStatuses: statuses}
}
