// Package requisition contiene los casos de uso de requisiciones internas de
// materiales: creación con costo estimado calculado y transiciones del ciclo
// de vida (aprobar, rechazar, surtir).
package requisition

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/veth14/hotel-backoffice-api/internal/application/dto"
	"github.com/veth14/hotel-backoffice-api/internal/domain"
	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
	"github.com/veth14/hotel-backoffice-api/internal/domain/repository"
	"github.com/veth14/hotel-backoffice-api/internal/domain/workflow"
)

var validPriorities = map[string]struct{}{
	entity.PriorityLow:    {},
	entity.PriorityMedium: {},
	entity.PriorityHigh:   {},
	entity.PriorityUrgent: {},
}

// UseCase casos de uso de requisiciones.
type UseCase struct {
	repo repository.RequisitionRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.RequisitionRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create valida y crea una requisición en estado pending. El costo total
// estimado es la suma de los costos estimados de línea. requestedBy sale de
// la identidad del actor autenticado.
func (uc *UseCase) Create(in dto.CreateRequisitionRequest, requestedBy string) (*entity.Requisition, error) {
	if in.Department == "" || len(in.Items) == 0 || requestedBy == "" {
		return nil, domain.ErrInvalidInput
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if _, ok := validPriorities[priority]; !ok {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	items := make([]entity.RequisitionItem, 0, len(in.Items))
	total := decimal.Zero
	for _, line := range in.Items {
		if line.Name == "" || line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if line.EstimatedCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.RequisitionItem{
			Name:          line.Name,
			Quantity:      line.Quantity,
			Unit:          line.Unit,
			EstimatedCost: line.EstimatedCost,
			Reason:        line.Reason,
		})
		total = total.Add(line.EstimatedCost)
	}

	requestNumber, err := uc.repo.NextRequestNumber(now.Year())
	if err != nil {
		return nil, fmt.Errorf("número de requisición: %w", err)
	}

	req := &entity.Requisition{
		ID:                 uuid.New().String(),
		RequestNumber:      requestNumber,
		Department:         in.Department,
		RequestedBy:        requestedBy,
		Items:              items,
		TotalEstimatedCost: total,
		Status:             entity.RequisitionPending,
		Priority:           priority,
		RequestDate:        now,
		RequiredDate:       in.RequiredDate,
		Justification:      in.Justification,
		Notes:              in.Notes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

// GetByID obtiene una requisición por ID.
func (uc *UseCase) GetByID(id string) (*entity.Requisition, error) {
	return uc.repo.GetByID(id)
}

// List lista requisiciones, opcionalmente filtradas por estado.
func (uc *UseCase) List(status entity.RequisitionStatus, limit, offset int) ([]entity.Requisition, error) {
	return uc.repo.List(status, limit, offset)
}

// Transition aplica una acción del ciclo de vida. Aprobar estampa
// ApprovedBy/ApprovedDate; rechazar estampa RejectedBy/RejectedDate; surtir
// exige estado approved. La validación ocurre antes de tocar el remoto.
func (uc *UseCase) Transition(id string, action workflow.RequisitionAction, actor string) (*entity.Requisition, error) {
	req, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}

	if err := workflow.ApplyRequisitionAction(req, action, actor, time.Now()); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(req); err != nil {
		return nil, err
	}
	return req, nil
}
