package repository

import "github.com/veth14/hotel-backoffice-api/internal/domain/entity"

// RequisitionRepository define el puerto de persistencia para Requisition (DIP).
type RequisitionRepository interface {
	Create(req *entity.Requisition) error
	GetByID(id string) (*entity.Requisition, error)
	List(status entity.RequisitionStatus, limit, offset int) ([]entity.Requisition, error)
	Update(req *entity.Requisition) error
	Delete(id string) error
	NextRequestNumber(year int) (string, error)
}
