package repository

import "github.com/veth14/hotel-backoffice-api/internal/domain/entity"

// StockTransactionRepository define el puerto de persistencia para el libro
// de ajustes de stock (DIP). Los asientos son inmutables: solo alta y lectura.
type StockTransactionRepository interface {
	Create(tx *entity.StockTransaction) error
	ListByItem(itemID string, limit, offset int) ([]entity.StockTransaction, error)
}
