// Package procurement contiene los casos de uso de órdenes de compra:
// creación con totales calculados y transiciones del ciclo de vida.
package procurement

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

// OrderUseCase casos de uso de órdenes de compra.
type OrderUseCase struct {
	orderRepo    repository.OrderRepository
	supplierRepo repository.SupplierRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orderRepo repository.OrderRepository, supplierRepo repository.SupplierRepository) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, supplierRepo: supplierRepo}
}

// Create valida y crea una orden en estado pending. Cada total de línea es
// quantity × unit_price y TotalAmount es la suma de los totales de línea;
// ambos quedan fijados aquí y ninguna transición los recalcula. Actualiza
// los agregados del proveedor (cantidad y valor de órdenes).
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*entity.PurchaseOrder, error) {
	if in.SupplierID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if supplier.Status != entity.SupplierActive {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	items := make([]entity.OrderItem, 0, len(in.Items))
	total := decimal.Zero
	for _, line := range in.Items {
		if line.Name == "" || line.Quantity <= 0 || !line.UnitPrice.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		lineTotal := decimal.NewFromInt(int64(line.Quantity)).Mul(line.UnitPrice)
		items = append(items, entity.OrderItem{
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Total:     lineTotal,
		})
		total = total.Add(lineTotal)
	}

	orderNumber, err := uc.orderRepo.NextOrderNumber(now.Year())
	if err != nil {
		return nil, fmt.Errorf("número de orden: %w", err)
	}

	order := &entity.PurchaseOrder{
		ID:               uuid.New().String(),
		OrderNumber:      orderNumber,
		Supplier:         supplier.Name,
		Items:            items,
		TotalAmount:      total,
		Status:           entity.OrderPending,
		OrderDate:        now,
		ExpectedDelivery: in.ExpectedDelivery,
		Notes:            in.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}

	// Agregados del proveedor; si falla no invalida la orden ya creada.
	if err := uc.supplierRepo.RegisterOrder(supplier.ID, total); err != nil {
		return order, fmt.Errorf("acumular orden en proveedor: %w", err)
	}
	return order, nil
}

// GetByID obtiene una orden por ID.
func (uc *OrderUseCase) GetByID(id string) (*entity.PurchaseOrder, error) {
	return uc.orderRepo.GetByID(id)
}

// List lista órdenes, opcionalmente filtradas por estado del lado del servidor.
func (uc *OrderUseCase) List(status entity.OrderStatus, limit, offset int) ([]entity.PurchaseOrder, error) {
	return uc.orderRepo.List(status, limit, offset)
}

// Transition aplica una acción del ciclo de vida sobre la orden. La
// precondición de estado se valida en la tabla de transiciones antes de
// cualquier llamada remota; aprobar estampa actor y fecha.
func (uc *OrderUseCase) Transition(id string, action workflow.OrderAction, actor string) (*entity.PurchaseOrder, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	if err := workflow.ApplyOrderAction(order, action, actor, time.Now()); err != nil {
		return nil, err
	}
	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}
