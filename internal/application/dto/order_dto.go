package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
)

// OrderItemRequest línea de orden en la creación. El total de línea se
// calcula en el servidor: quantity × unit_price.
type OrderItemRequest struct {
	Name      string          `json:"name" validate:"required"`
	Quantity  int             `json:"quantity" validate:"min=1"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest entrada para crear una orden de compra.
type CreateOrderRequest struct {
	SupplierID       string             `json:"supplier_id" validate:"required"`
	Items            []OrderItemRequest `json:"items" validate:"required,min=1"`
	ExpectedDelivery time.Time          `json:"expected_delivery"`
	Notes            string             `json:"notes"`
}

// TransitionOrderRequest acción sobre una orden: approve | receive | cancel.
type TransitionOrderRequest struct {
	Action string `json:"action" validate:"required"`
}

// OrderItemResponse línea de orden en respuestas.
type OrderItemResponse struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// OrderResponse salida de una orden de compra.
type OrderResponse struct {
	ID               string              `json:"id"`
	OrderNumber      string              `json:"order_number"`
	Supplier         string              `json:"supplier"`
	Items            []OrderItemResponse `json:"items"`
	TotalAmount      decimal.Decimal     `json:"total_amount"`
	Status           string              `json:"status"`
	OrderDate        time.Time           `json:"order_date"`
	ExpectedDelivery time.Time           `json:"expected_delivery"`
	ApprovedBy       *string             `json:"approved_by,omitempty"`
	ApprovedDate     *time.Time          `json:"approved_date,omitempty"`
	Notes            string              `json:"notes,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// ToOrderResponse mapea la entidad a su DTO de salida.
func ToOrderResponse(order *entity.PurchaseOrder) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, OrderItemResponse{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Total:     it.Total,
		})
	}
	return OrderResponse{
		ID:               order.ID,
		OrderNumber:      order.OrderNumber,
		Supplier:         order.Supplier,
		Items:            items,
		TotalAmount:      order.TotalAmount,
		Status:           string(order.Status),
		OrderDate:        order.OrderDate,
		ExpectedDelivery: order.ExpectedDelivery,
		ApprovedBy:       order.ApprovedBy,
		ApprovedDate:     order.ApprovedDate,
		Notes:            order.Notes,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
}
