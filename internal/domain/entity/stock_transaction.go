package entity

import "time"

// StockTransaction registra un ajuste de stock como asiento inmutable:
// delta con signo, motivo, actor y fecha. El stock actual del artículo se
// mantiene materializado en inventory_items; este libro hace la historia
// reconstruible y auditable.
type StockTransaction struct {
	ID            string
	ItemID        string
	Delta         int // positivo entrada, negativo salida
	PreviousStock int
	NewStock      int
	Reason        string
	CreatedBy     string
	CreatedAt     time.Time
}
