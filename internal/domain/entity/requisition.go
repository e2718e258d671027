package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequisitionStatus estado del ciclo de vida de una requisición de materiales.
type RequisitionStatus string

// Estados de requisición. rejected es terminal; fulfilled también.
const (
	RequisitionPending   RequisitionStatus = "pending"
	RequisitionApproved  RequisitionStatus = "approved"
	RequisitionFulfilled RequisitionStatus = "fulfilled"
	RequisitionRejected  RequisitionStatus = "rejected"
)

// Prioridades válidas de una requisición.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// RequisitionItem línea solicitada en una requisición. Las etiquetas JSON
// fijan las claves del documento JSONB en requisitions.
type RequisitionItem struct {
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	Unit          string          `json:"unit"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	Reason        string          `json:"reason"`
}

// Requisition solicitud interna de materiales de un departamento del hotel.
// ApprovedBy y RejectedBy son campos separados: una requisición estampa
// exactamente uno de los dos según el resultado.
type Requisition struct {
	ID                 string
	RequestNumber      string // REQ-YYYY-NNNN
	Department         string
	RequestedBy        string
	Items              []RequisitionItem
	TotalEstimatedCost decimal.Decimal
	Status             RequisitionStatus
	Priority           string
	RequestDate        time.Time
	RequiredDate       time.Time
	Justification      string
	ApprovedBy         *string
	ApprovedDate       *time.Time
	RejectedBy         *string
	RejectedDate       *time.Time
	Notes              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
