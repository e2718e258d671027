package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
)

// RequisitionItemRequest línea solicitada en la creación de una requisición.
type RequisitionItemRequest struct {
	Name          string          `json:"name" validate:"required"`
	Quantity      int             `json:"quantity" validate:"min=1"`
	Unit          string          `json:"unit"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	Reason        string          `json:"reason"`
}

// CreateRequisitionRequest entrada para crear una requisición de materiales.
type CreateRequisitionRequest struct {
	Department    string                   `json:"department" validate:"required"`
	Items         []RequisitionItemRequest `json:"items" validate:"required,min=1"`
	Priority      string                   `json:"priority"`
	RequiredDate  time.Time                `json:"required_date"`
	Justification string                   `json:"justification"`
	Notes         string                   `json:"notes"`
}

// TransitionRequisitionRequest acción sobre una requisición: approve | reject | fulfill.
type TransitionRequisitionRequest struct {
	Action string `json:"action" validate:"required"`
}

// RequisitionItemResponse línea de requisición en respuestas.
type RequisitionItemResponse struct {
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	Unit          string          `json:"unit"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	Reason        string          `json:"reason,omitempty"`
}

// RequisitionResponse salida de una requisición.
type RequisitionResponse struct {
	ID                 string                    `json:"id"`
	RequestNumber      string                    `json:"request_number"`
	Department         string                    `json:"department"`
	RequestedBy        string                    `json:"requested_by"`
	Items              []RequisitionItemResponse `json:"items"`
	TotalEstimatedCost decimal.Decimal           `json:"total_estimated_cost"`
	Status             string                    `json:"status"`
	Priority           string                    `json:"priority"`
	RequestDate        time.Time                 `json:"request_date"`
	RequiredDate       time.Time                 `json:"required_date"`
	Justification      string                    `json:"justification,omitempty"`
	ApprovedBy         *string                   `json:"approved_by,omitempty"`
	ApprovedDate       *time.Time                `json:"approved_date,omitempty"`
	RejectedBy         *string                   `json:"rejected_by,omitempty"`
	RejectedDate       *time.Time                `json:"rejected_date,omitempty"`
	Notes              string                    `json:"notes,omitempty"`
	CreatedAt          time.Time                 `json:"created_at"`
	UpdatedAt          time.Time                 `json:"updated_at"`
}

// RequisitionListResponse lista paginada de requisiciones.
type RequisitionListResponse struct {
	Items []RequisitionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// ToRequisitionResponse mapea la entidad a su DTO de salida.
func ToRequisitionResponse(req *entity.Requisition) RequisitionResponse {
	items := make([]RequisitionItemResponse, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, RequisitionItemResponse{
			Name:          it.Name,
			Quantity:      it.Quantity,
			Unit:          it.Unit,
			EstimatedCost: it.EstimatedCost,
			Reason:        it.Reason,
		})
	}
	return RequisitionResponse{
		ID:                 req.ID,
		RequestNumber:      req.RequestNumber,
		Department:         req.Department,
		RequestedBy:        req.RequestedBy,
		Items:              items,
		TotalEstimatedCost: req.TotalEstimatedCost,
		Status:             string(req.Status),
		Priority:           req.Priority,
		RequestDate:        req.RequestDate,
		RequiredDate:       req.RequiredDate,
		Justification:      req.Justification,
		ApprovedBy:         req.ApprovedBy,
		ApprovedDate:       req.ApprovedDate,
		RejectedBy:         req.RejectedBy,
		RejectedDate:       req.RejectedDate,
		Notes:              req.Notes,
		CreatedAt:          req.CreatedAt,
		UpdatedAt:          req.UpdatedAt,
	}
}
