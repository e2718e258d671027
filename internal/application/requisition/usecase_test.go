package requisition_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veth14/hotel-backoffice-api/internal/application/dto"
	"github.com/veth14/hotel-backoffice-api/internal/application/requisition"
	"github.com/veth14/hotel-backoffice-api/internal/domain"
	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
	"github.com/veth14/hotel-backoffice-api/internal/domain/workflow"
)

type fakeRequisitionRepo struct {
	reqs map[string]entity.Requisition
	seq  int
}

func newFakeRequisitionRepo() *fakeRequisitionRepo {
	return &fakeRequisitionRepo{reqs: make(map[string]entity.Requisition)}
}

func (r *fakeRequisitionRepo) Create(req *entity.Requisition) error {
	r.reqs[req.ID] = *req
	return nil
}

func (r *fakeRequisitionRepo) GetByID(id string) (*entity.Requisition, error) {
	req, ok := r.reqs[id]
	if !ok {
		return nil, nil
	}
	return &req, nil
}

func (r *fakeRequisitionRepo) List(status entity.RequisitionStatus, limit, offset int) ([]entity.Requisition, error) {
	out := make([]entity.Requisition, 0)
	for _, req := range r.reqs {
		if status == "" || req.Status == status {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeRequisitionRepo) Update(req *entity.Requisition) error {
	r.reqs[req.ID] = *req
	return nil
}

func (r *fakeRequisitionRepo) Delete(id string) error {
	delete(r.reqs, id)
	return nil
}

func (r *fakeRequisitionRepo) NextRequestNumber(year int) (string, error) {
	r.seq++
	return fmt.Sprintf("REQ-%d-%04d", year, r.seq), nil
}

func lineaValida() dto.RequisitionItemRequest {
	return dto.RequisitionItemRequest{Name: "Cloro 5L", Quantity: 4, Unit: "galón", EstimatedCost: decimal.NewFromInt(180)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestRequisitionCreate_SumaCostosYQuedaPending(t *testing.T) {
	uc := requisition.NewUseCase(newFakeRequisitionRepo())

	req, err := uc.Create(dto.CreateRequisitionRequest{
		Department: "housekeeping",
		Items: []dto.RequisitionItemRequest{
			lineaValida(),
			{Name: "Detergente", Quantity: 2, EstimatedCost: decimal.NewFromInt(70)},
		},
	}, "Marta López")
	require.NoError(t, err)

	assert.Equal(t, entity.RequisitionPending, req.Status)
	assert.Equal(t, "Marta López", req.RequestedBy, "requestedBy sale del actor autenticado")
	assert.True(t, req.TotalEstimatedCost.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, entity.PriorityMedium, req.Priority, "prioridad por defecto es medium")
	assert.Contains(t, req.RequestNumber, "REQ-")
}

func TestRequisitionCreate_PrioridadInvalida(t *testing.T) {
	uc := requisition.NewUseCase(newFakeRequisitionRepo())

	_, err := uc.Create(dto.CreateRequisitionRequest{
		Department: "housekeeping",
		Items:      []dto.RequisitionItemRequest{lineaValida()},
		Priority:   "asap",
	}, "Marta")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la prioridad debe ser low, medium, high o urgent")
}

func TestRequisitionCreate_Validacion(t *testing.T) {
	uc := requisition.NewUseCase(newFakeRequisitionRepo())

	cases := []struct {
		name        string
		in          dto.CreateRequisitionRequest
		requestedBy string
	}{
		{"sin departamento", dto.CreateRequisitionRequest{Items: []dto.RequisitionItemRequest{lineaValida()}}, "Marta"},
		{"sin líneas", dto.CreateRequisitionRequest{Department: "cocina"}, "Marta"},
		{"sin actor", dto.CreateRequisitionRequest{Department: "cocina", Items: []dto.RequisitionItemRequest{lineaValida()}}, ""},
		{"cantidad cero", dto.CreateRequisitionRequest{Department: "cocina", Items: []dto.RequisitionItemRequest{{Name: "Cloro", Quantity: 0}}}, "Marta"},
		{"costo negativo", dto.CreateRequisitionRequest{Department: "cocina", Items: []dto.RequisitionItemRequest{{Name: "Cloro", Quantity: 1, EstimatedCost: decimal.NewFromInt(-1)}}}, "Marta"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(tc.in, tc.requestedBy)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Transition
// ──────────────────────────────────────────────────────────────────────────────

func crearRequisicion(t *testing.T, uc *requisition.UseCase) *entity.Requisition {
	t.Helper()
	req, err := uc.Create(dto.CreateRequisitionRequest{
		Department: "housekeeping",
		Items:      []dto.RequisitionItemRequest{lineaValida()},
	}, "Marta")
	require.NoError(t, err)
	return req
}

func TestRequisitionTransition_FulfillSoloDesdeApproved(t *testing.T) {
	uc := requisition.NewUseCase(newFakeRequisitionRepo())
	req := crearRequisicion(t, uc)

	_, err := uc.Transition(req.ID, workflow.RequisitionFulfill, "Pedro")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "fulfill desde pending es inválido")

	_, err = uc.Transition(req.ID, workflow.RequisitionApprove, "Ana")
	require.NoError(t, err)

	fulfilled, err := uc.Transition(req.ID, workflow.RequisitionFulfill, "Pedro")
	require.NoError(t, err)
	assert.Equal(t, entity.RequisitionFulfilled, fulfilled.Status)
}

func TestRequisitionTransition_RejectEstampaCamposDeRechazo(t *testing.T) {
	uc := requisition.NewUseCase(newFakeRequisitionRepo())
	req := crearRequisicion(t, uc)

	rejected, err := uc.Transition(req.ID, workflow.RequisitionReject, "Ana García")
	require.NoError(t, err)

	assert.Equal(t, entity.RequisitionRejected, rejected.Status)
	require.NotNil(t, rejected.RejectedBy)
	assert.Equal(t, "Ana García", *rejected.RejectedBy)
	assert.NotNil(t, rejected.RejectedDate)
	assert.Nil(t, rejected.ApprovedBy)

	// rejected es terminal
	_, err = uc.Transition(req.ID, workflow.RequisitionApprove, "Ana")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestRequisitionTransition_NoExiste(t *testing.T) {
	uc := requisition.NewUseCase(newFakeRequisitionRepo())
	_, err := uc.Transition("missing", workflow.RequisitionApprove, "Ana")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
