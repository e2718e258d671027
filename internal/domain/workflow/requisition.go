package workflow

import (
	"time"

	"github.com/veth14/hotel-backoffice-api/internal/domain"
	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
)

// RequisitionAction acción solicitada sobre una requisición.
type RequisitionAction string

// Acciones válidas sobre requisiciones.
const (
	RequisitionApprove RequisitionAction = "approve"
	RequisitionReject  RequisitionAction = "reject"
	RequisitionFulfill RequisitionAction = "fulfill"
)

// requisitionTransitions: (estado actual, acción) -> estado destino.
// rejected y fulfilled son terminales.
var requisitionTransitions = map[entity.RequisitionStatus]map[RequisitionAction]entity.RequisitionStatus{
	entity.RequisitionPending: {
		RequisitionApprove: entity.RequisitionApproved,
		RequisitionReject:  entity.RequisitionRejected,
	},
	entity.RequisitionApproved: {
		RequisitionFulfill: entity.RequisitionFulfilled,
	},
}

// CanTransitionRequisition indica si la acción es válida desde el estado actual.
func CanTransitionRequisition(from entity.RequisitionStatus, action RequisitionAction) (entity.RequisitionStatus, bool) {
	to, ok := requisitionTransitions[from][action]
	return to, ok
}

// ApplyRequisitionAction aplica la transición sobre la requisición.
// Aprobar estampa ApprovedBy/ApprovedDate; rechazar estampa RejectedBy/
// RejectedDate. Son campos distintos: el modelo no reutiliza "approved_by"
// para el rechazo.
func ApplyRequisitionAction(req *entity.Requisition, action RequisitionAction, actor string, now time.Time) error {
	to, ok := CanTransitionRequisition(req.Status, action)
	if !ok {
		return domain.ErrInvalidTransition
	}
	req.Status = to
	req.UpdatedAt = now
	switch action {
	case RequisitionApprove:
		req.ApprovedBy = &actor
		approvedAt := now
		req.ApprovedDate = &approvedAt
	case RequisitionReject:
		req.RejectedBy = &actor
		rejectedAt := now
		req.RejectedDate = &rejectedAt
	}
	return nil
}
