package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
)

// CreateSupplierRequest entrada para registrar un proveedor.
type CreateSupplierRequest struct {
	Name             string          `json:"name" validate:"required,min=1,max=200"`
	ContactPerson    string          `json:"contact_person"`
	Email            string          `json:"email" validate:"omitempty,email"`
	Phone            string          `json:"phone"`
	Address          string          `json:"address"`
	Category         string          `json:"category"`
	PaymentTerms     string          `json:"payment_terms"`
	DeliveryTimeDays int             `json:"delivery_time_days" validate:"min=0"`
	Rating           decimal.Decimal `json:"rating"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	ContactPerson    string          `json:"contact_person"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone"`
	Address          string          `json:"address"`
	Category         string          `json:"category"`
	PaymentTerms     string          `json:"payment_terms"`
	DeliveryTimeDays int             `json:"delivery_time_days"`
	Status           string          `json:"status"`
	Rating           decimal.Decimal `json:"rating"`
	TotalOrders      int             `json:"total_orders"`
	TotalValue       decimal.Decimal `json:"total_value"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ToSupplierResponse mapea la entidad a su DTO de salida.
func ToSupplierResponse(s *entity.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:               s.ID,
		Name:             s.Name,
		ContactPerson:    s.ContactPerson,
		Email:            s.Email,
		Phone:            s.Phone,
		Address:          s.Address,
		Category:         s.Category,
		PaymentTerms:     s.PaymentTerms,
		DeliveryTimeDays: s.DeliveryTimeDays,
		Status:           s.Status,
		Rating:           s.Rating,
		TotalOrders:      s.TotalOrders,
		TotalValue:       s.TotalValue,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
