package repository

import (
	"github.com/shopspring/decimal"

	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
// RegisterOrder acumula los agregados (cantidad y valor de órdenes) al crear
// una orden de compra para el proveedor.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByName(name string) (*entity.Supplier, error)
	List(limit, offset int) ([]entity.Supplier, error)
	RegisterOrder(supplierID string, amount decimal.Decimal) error
}
