package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de proveedor.
const (
	SupplierActive   = "active"
	SupplierInactive = "inactive"
)

// Supplier proveedor del hotel. Se crea vía formulario y es de solo lectura
// en el resto del núcleo; TotalOrders/TotalValue son agregados que se
// actualizan al crear órdenes de compra.
type Supplier struct {
	ID               string
	Name             string
	ContactPerson    string
	Email            string
	Phone            string
	Address          string
	Category         string
	PaymentTerms     string // ej. "30 días", "contado"
	DeliveryTimeDays int
	Status           string
	Rating           decimal.Decimal // 0.0 – 5.0
	TotalOrders      int
	TotalValue       decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
