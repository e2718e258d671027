package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/veth14/hotel-backoffice-api/internal/application/dto"
	"github.com/veth14/hotel-backoffice-api/internal/domain"
	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
	"github.com/veth14/hotel-backoffice-api/internal/domain/repository"
)

// SupplierUseCase casos de uso de proveedores: alta vía formulario y lecturas.
// Los agregados de órdenes los actualiza procurement, no este caso de uso.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create registra un proveedor activo. Rechaza nombres duplicados.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	supplier := &entity.Supplier{
		ID:               uuid.New().String(),
		Name:             in.Name,
		ContactPerson:    in.ContactPerson,
		Email:            in.Email,
		Phone:            in.Phone,
		Address:          in.Address,
		Category:         in.Category,
		PaymentTerms:     in.PaymentTerms,
		DeliveryTimeDays: in.DeliveryTimeDays,
		Status:           entity.SupplierActive,
		Rating:           in.Rating,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	out := dto.ToSupplierResponse(supplier)
	return &out, nil
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	out := dto.ToSupplierResponse(supplier)
	return &out, nil
}

// List lista proveedores con paginación.
func (uc *SupplierUseCase) List(limit, offset int) (*dto.SupplierListResponse, error) {
	suppliers, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		items = append(items, dto.ToSupplierResponse(&suppliers[i]))
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
