package repository

import "github.com/veth14/hotel-backoffice-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para PurchaseOrder (DIP).
// List admite filtrado opcional por estado del lado del servidor (status
// vacío = todas).
type OrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	List(status entity.OrderStatus, limit, offset int) ([]entity.PurchaseOrder, error)
	Update(order *entity.PurchaseOrder) error
	Delete(id string) error
	NextOrderNumber(year int) (string, error)
}
