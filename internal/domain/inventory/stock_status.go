// Package inventory contiene reglas puras del dominio de inventario.
package inventory

import "github.com/veth14/hotel-backoffice-api/internal/domain/entity"

// StockStatus clasificación del nivel de stock de un artículo.
type StockStatus string

// Los tres cubos son mutuamente excluyentes y cubren todos los casos.
const (
	StockOut = StockStatus("out-of-stock") // stock = 0
	StockLow = StockStatus("low-stock")    // 0 < stock <= nivel de reorden
	StockIn  = StockStatus("in-stock")     // stock > nivel de reorden
)

// ClassifyStock es el único clasificador de nivel de stock del sistema.
// Tanto el filtrado como las estadísticas lo usan, así nunca divergen.
func ClassifyStock(item entity.InventoryItem) StockStatus {
	switch {
	case item.CurrentStock <= 0:
		return StockOut
	case item.CurrentStock <= item.ReorderLevel:
		return StockLow
	default:
		return StockIn
	}
}
