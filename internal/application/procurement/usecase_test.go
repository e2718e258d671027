package procurement_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veth14/hotel-backoffice-api/internal/application/dto"
	"github.com/veth14/hotel-backoffice-api/internal/application/procurement"
	"github.com/veth14/hotel-backoffice-api/internal/domain"
	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
	"github.com/veth14/hotel-backoffice-api/internal/domain/workflow"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders map[string]entity.PurchaseOrder
	seq    int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]entity.PurchaseOrder)}
}

func (r *fakeOrderRepo) Create(o *entity.PurchaseOrder) error {
	r.orders[o.ID] = *o
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *fakeOrderRepo) List(status entity.OrderStatus, limit, offset int) ([]entity.PurchaseOrder, error) {
	out := make([]entity.PurchaseOrder, 0)
	for _, o := range r.orders {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Update(o *entity.PurchaseOrder) error {
	r.orders[o.ID] = *o
	return nil
}

func (r *fakeOrderRepo) Delete(id string) error {
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) NextOrderNumber(year int) (string, error) {
	r.seq++
	return fmt.Sprintf("PO-%d-%04d", year, r.seq), nil
}

type fakeSupplierRepo struct {
	suppliers map[string]entity.Supplier
	registros int
	acumulado decimal.Decimal
}

func newFakeSupplierRepo(suppliers ...entity.Supplier) *fakeSupplierRepo {
	r := &fakeSupplierRepo{suppliers: make(map[string]entity.Supplier), acumulado: decimal.Zero}
	for _, s := range suppliers {
		r.suppliers[s.ID] = s
	}
	return r
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	r.suppliers[s.ID] = *s
	return nil
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *fakeSupplierRepo) GetByName(name string) (*entity.Supplier, error) {
	for _, s := range r.suppliers {
		if s.Name == name {
			s := s
			return &s, nil
		}
	}
	return nil, nil
}

func (r *fakeSupplierRepo) List(limit, offset int) ([]entity.Supplier, error) {
	out := make([]entity.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSupplierRepo) RegisterOrder(supplierID string, amount decimal.Decimal) error {
	r.registros++
	r.acumulado = r.acumulado.Add(amount)
	return nil
}

func activeSupplier() entity.Supplier {
	return entity.Supplier{ID: "s1", Name: "Distribuidora Norte", Status: entity.SupplierActive}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderCreate_CalculaTotalesYQuedaPending(t *testing.T) {
	orders := newFakeOrderRepo()
	suppliers := newFakeSupplierRepo(activeSupplier())
	uc := procurement.NewOrderUseCase(orders, suppliers)

	// 2 × 50 + 3 × 50 = 250
	order, err := uc.Create(dto.CreateOrderRequest{
		SupplierID: "s1",
		Items: []dto.OrderItemRequest{
			{Name: "Toalla de baño", Quantity: 2, UnitPrice: decimal.NewFromInt(50)},
			{Name: "Jabón", Quantity: 3, UnitPrice: decimal.NewFromInt(50)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderPending, order.Status, "toda orden nueva nace pending")
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(250)),
		"TotalAmount esperado 250, obtenido %s", order.TotalAmount)
	require.Len(t, order.Items, 2)
	assert.True(t, order.Items[0].Total.Equal(decimal.NewFromInt(100)))
	assert.True(t, order.Items[1].Total.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, "Distribuidora Norte", order.Supplier)
	assert.Contains(t, order.OrderNumber, "PO-")
	assert.Nil(t, order.ApprovedBy)

	// Los agregados del proveedor se acumulan con el total de la orden.
	assert.Equal(t, 1, suppliers.registros)
	assert.True(t, suppliers.acumulado.Equal(decimal.NewFromInt(250)))
}

func TestOrderCreate_Validacion(t *testing.T) {
	uc := procurement.NewOrderUseCase(newFakeOrderRepo(), newFakeSupplierRepo(activeSupplier()))

	linea := dto.OrderItemRequest{Name: "Toalla", Quantity: 1, UnitPrice: decimal.NewFromInt(50)}

	cases := []struct {
		name string
		in   dto.CreateOrderRequest
		want error
	}{
		{"sin proveedor", dto.CreateOrderRequest{Items: []dto.OrderItemRequest{linea}}, domain.ErrInvalidInput},
		{"sin líneas", dto.CreateOrderRequest{SupplierID: "s1"}, domain.ErrInvalidInput},
		{"proveedor inexistente", dto.CreateOrderRequest{SupplierID: "zzz", Items: []dto.OrderItemRequest{linea}}, domain.ErrNotFound},
		{"cantidad cero", dto.CreateOrderRequest{SupplierID: "s1", Items: []dto.OrderItemRequest{{Name: "Toalla", Quantity: 0, UnitPrice: decimal.NewFromInt(50)}}}, domain.ErrInvalidInput},
		{"precio cero", dto.CreateOrderRequest{SupplierID: "s1", Items: []dto.OrderItemRequest{{Name: "Toalla", Quantity: 1}}}, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOrderCreate_ProveedorInactivo(t *testing.T) {
	inactivo := entity.Supplier{ID: "s2", Name: "Cerrado SA", Status: entity.SupplierInactive}
	uc := procurement.NewOrderUseCase(newFakeOrderRepo(), newFakeSupplierRepo(inactivo))

	_, err := uc.Create(dto.CreateOrderRequest{
		SupplierID: "s2",
		Items:      []dto.OrderItemRequest{{Name: "Toalla", Quantity: 1, UnitPrice: decimal.NewFromInt(50)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transition
// ──────────────────────────────────────────────────────────────────────────────

func crearOrden(t *testing.T, uc *procurement.OrderUseCase) *entity.PurchaseOrder {
	t.Helper()
	order, err := uc.Create(dto.CreateOrderRequest{
		SupplierID: "s1",
		Items:      []dto.OrderItemRequest{{Name: "Toalla", Quantity: 2, UnitPrice: decimal.NewFromInt(125)}},
	})
	require.NoError(t, err)
	return order
}

func TestOrderTransition_ApproveEstampaYNoRecalcula(t *testing.T) {
	uc := procurement.NewOrderUseCase(newFakeOrderRepo(), newFakeSupplierRepo(activeSupplier()))
	order := crearOrden(t, uc)

	approved, err := uc.Transition(order.ID, workflow.OrderApprove, "Ana García")
	require.NoError(t, err)

	assert.Equal(t, entity.OrderApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "Ana García", *approved.ApprovedBy)
	assert.NotNil(t, approved.ApprovedDate)
	assert.True(t, approved.TotalAmount.Equal(order.TotalAmount), "la transición no recalcula el total")
}

func TestOrderTransition_ReceiveSoloDesdeApproved(t *testing.T) {
	uc := procurement.NewOrderUseCase(newFakeOrderRepo(), newFakeSupplierRepo(activeSupplier()))
	order := crearOrden(t, uc)

	_, err := uc.Transition(order.ID, workflow.OrderReceive, "Luis")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "receive desde pending es inválido")

	_, err = uc.Transition(order.ID, workflow.OrderApprove, "Ana")
	require.NoError(t, err)
	received, err := uc.Transition(order.ID, workflow.OrderReceive, "Luis")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderReceived, received.Status)
}

func TestOrderTransition_EstadoTerminalNoSale(t *testing.T) {
	uc := procurement.NewOrderUseCase(newFakeOrderRepo(), newFakeSupplierRepo(activeSupplier()))
	order := crearOrden(t, uc)

	_, err := uc.Transition(order.ID, workflow.OrderCancel, "Ana")
	require.NoError(t, err)

	_, err = uc.Transition(order.ID, workflow.OrderApprove, "Ana")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestOrderTransition_NoExiste(t *testing.T) {
	uc := procurement.NewOrderUseCase(newFakeOrderRepo(), newFakeSupplierRepo(activeSupplier()))
	_, err := uc.Transition("missing", workflow.OrderApprove, "Ana")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderList_FiltraPorEstado(t *testing.T) {
	uc := procurement.NewOrderUseCase(newFakeOrderRepo(), newFakeSupplierRepo(activeSupplier()))
	a := crearOrden(t, uc)
	crearOrden(t, uc)

	_, err := uc.Transition(a.ID, workflow.OrderApprove, "Ana")
	require.NoError(t, err)

	pendientes, err := uc.List(entity.OrderPending, 20, 0)
	require.NoError(t, err)
	assert.Len(t, pendientes, 1)

	todas, err := uc.List("", 20, 0)
	require.NoError(t, err)
	assert.Len(t, todas, 2)
}
