package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado del ciclo de vida de una orden de compra.
type OrderStatus string

// Estados de orden de compra. received y cancelled son terminales.
const (
	OrderPending   OrderStatus = "pending"
	OrderApproved  OrderStatus = "approved"
	OrderReceived  OrderStatus = "received"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderItem línea de una orden de compra. Total siempre = Quantity × UnitPrice.
// Las etiquetas JSON fijan las claves del documento JSONB en purchase_orders.
type OrderItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// PurchaseOrder orden de compra a un proveedor.
// Invariante: TotalAmount es la suma de los totales de línea al momento de la
// creación; ninguna transición lo recalcula.
type PurchaseOrder struct {
	ID               string
	OrderNumber      string // PO-YYYY-NNNN
	Supplier         string
	Items            []OrderItem
	TotalAmount      decimal.Decimal
	Status           OrderStatus
	OrderDate        time.Time
	ExpectedDelivery time.Time
	ApprovedBy       *string
	ApprovedDate     *time.Time
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
