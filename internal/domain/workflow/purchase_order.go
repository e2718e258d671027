// Package workflow define las tablas de transición de los dos ciclos de vida
// con estado: órdenes de compra y requisiciones. Las transiciones inválidas se
// rechazan aquí, antes de tocar la persistencia.
package workflow

import (
	"time"

	"github.com/veth14/hotel-backoffice-api/internal/domain"
	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
)

// OrderAction acción solicitada sobre una orden de compra.
type OrderAction string

// Acciones válidas sobre órdenes de compra.
const (
	OrderApprove OrderAction = "approve"
	OrderReceive OrderAction = "receive"
	OrderCancel  OrderAction = "cancel"
)

// orderTransitions: (estado actual, acción) -> estado destino.
// received y cancelled no aparecen como origen: son terminales.
var orderTransitions = map[entity.OrderStatus]map[OrderAction]entity.OrderStatus{
	entity.OrderPending: {
		OrderApprove: entity.OrderApproved,
		OrderCancel:  entity.OrderCancelled,
	},
	entity.OrderApproved: {
		OrderReceive: entity.OrderReceived,
		OrderCancel:  entity.OrderCancelled,
	},
}

// CanTransitionOrder indica si la acción es válida desde el estado actual y,
// en ese caso, cuál es el estado destino.
func CanTransitionOrder(from entity.OrderStatus, action OrderAction) (entity.OrderStatus, bool) {
	to, ok := orderTransitions[from][action]
	return to, ok
}

// ApplyOrderAction aplica la transición sobre la orden, estampando actor y
// fecha cuando corresponde (aprobación). No recalcula TotalAmount: queda
// fijado en la creación.
func ApplyOrderAction(order *entity.PurchaseOrder, action OrderAction, actor string, now time.Time) error {
	to, ok := CanTransitionOrder(order.Status, action)
	if !ok {
		return domain.ErrInvalidTransition
	}
	order.Status = to
	order.UpdatedAt = now
	if action == OrderApprove {
		order.ApprovedBy = &actor
		approvedAt := now
		order.ApprovedDate = &approvedAt
	}
	return nil
}
