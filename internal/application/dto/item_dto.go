package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
)

// CreateItemRequest entrada para crear un artículo de inventario.
type CreateItemRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Category     string          `json:"category" validate:"required"`
	Description  string          `json:"description"`
	CurrentStock int             `json:"current_stock" validate:"min=0"`
	ReorderLevel int             `json:"reorder_level" validate:"min=0"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Supplier     string          `json:"supplier"`
	Unit         string          `json:"unit"`
	Location     string          `json:"location"`
}

// UpdateItemRequest entrada para actualizar campos simples de un artículo.
// El stock no se edita por aquí: pasa por el ajuste con libro de asientos.
type UpdateItemRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category     *string          `json:"category"`
	Description  *string          `json:"description"`
	ReorderLevel *int             `json:"reorder_level" validate:"omitempty,min=0"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	Supplier     *string          `json:"supplier"`
	Unit         *string          `json:"unit"`
	Location     *string          `json:"location"`
}

// AdjustStockRequest entrada para un ajuste de stock (valor absoluto nuevo).
type AdjustStockRequest struct {
	NewStock int    `json:"new_stock"`
	Reason   string `json:"reason" validate:"required"`
}

// ItemResponse salida de un artículo.
type ItemResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	CurrentStock  int             `json:"current_stock"`
	ReorderLevel  int             `json:"reorder_level"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Supplier      string          `json:"supplier"`
	Unit          string          `json:"unit"`
	Location      string          `json:"location"`
	StockStatus   string          `json:"stock_status"`
	LastRestocked time.Time       `json:"last_restocked"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ItemListResponse lista de artículos (vista ya filtrada/ordenada).
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}

// StockTransactionResponse asiento del libro de ajustes.
type StockTransactionResponse struct {
	ID            string    `json:"id"`
	ItemID        string    `json:"item_id"`
	Delta         int       `json:"delta"`
	PreviousStock int       `json:"previous_stock"`
	NewStock      int       `json:"new_stock"`
	Reason        string    `json:"reason"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

// StatsResponse agregados del inventario completo.
type StatsResponse struct {
	TotalItems      int             `json:"total_items"`
	TotalValue      decimal.Decimal `json:"total_value"`
	TotalValueLabel string          `json:"total_value_label"` // formateado p.ej. "₱1,250,000"
	LowStockItems   int             `json:"low_stock_items"`
	OutOfStockItems int             `json:"out_of_stock_items"`
	Categories      []string        `json:"categories"`
}

// FacetOptionResponse opción de filtro con su conteo.
type FacetOptionResponse struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FacetsResponse opciones de filtro derivadas de la colección sin filtrar.
type FacetsResponse struct {
	Categories    []FacetOptionResponse `json:"categories"`
	StockStatuses []FacetOptionResponse `json:"stock_statuses"`
}

// ToItemResponse mapea la entidad a su DTO de salida.
func ToItemResponse(item entity.InventoryItem, stockStatus string) ItemResponse {
	return ItemResponse{
		ID:            item.ID,
		Name:          item.Name,
		Category:      item.Category,
		Description:   item.Description,
		CurrentStock:  item.CurrentStock,
		ReorderLevel:  item.ReorderLevel,
		UnitPrice:     item.UnitPrice,
		Supplier:      item.Supplier,
		Unit:          item.Unit,
		Location:      item.Location,
		StockStatus:   stockStatus,
		LastRestocked: item.LastRestocked,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}
