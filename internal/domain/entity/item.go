package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un artículo del inventario del hotel (amenities,
// blancos, suministros de limpieza, etc.).
// Invariante: CurrentStock nunca es negativo; los ajustes que lo dejarían
// por debajo de cero se rechazan, no se recortan.
type InventoryItem struct {
	ID            string
	Name          string
	Category      string
	Description   string
	CurrentStock  int
	ReorderLevel  int
	UnitPrice     decimal.Decimal // precio por unidad, siempre > 0
	Supplier      string
	Unit          string // unidad de medida: pieza, caja, litro...
	Location      string // bodega o piso donde se almacena
	LastRestocked time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Value devuelve el valor monetario del stock actual (stock × precio unitario).
func (i InventoryItem) Value() decimal.Decimal {
	return decimal.NewFromInt(int64(i.CurrentStock)).Mul(i.UnitPrice)
}
