package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/veth14/hotel-backoffice-api/internal/application/dto"
	"github.com/veth14/hotel-backoffice-api/internal/application/inventory"
	"github.com/veth14/hotel-backoffice-api/internal/domain"
	dominv "github.com/veth14/hotel-backoffice-api/internal/domain/inventory"
	"github.com/veth14/hotel-backoffice-api/pkg/money"
)

// ItemHandler maneja las peticiones HTTP de artículos de inventario:
// la vista filtrada, los agregados, las facetas y las mutaciones.
type ItemHandler struct {
	uc *inventory.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *inventory.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// List godoc
// @Summary      Listar artículos (vista filtrada y ordenada)
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        force         query  bool    false  "Ignorar caché y releer del remoto"
// @Param        search        query  string  false  "Término de búsqueda (substring)"
// @Param        category      query  string  false  "Categoría"           default(all)
// @Param        stock_status  query  string  false  "all | in-stock | low-stock | out-of-stock"  default(all)
// @Param        sort_by       query  string  false  "name | category | stock | value | lastRestocked"  default(name)
// @Param        sort_order    query  string  false  "asc | desc"          default(asc)
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.FetchItems(c.QueryBool("force", false))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	spec := inventory.FilterSpec{
		SearchTerm:  c.Query("search"),
		Category:    c.Query("category", inventory.FilterAll),
		StockStatus: c.Query("stock_status", inventory.FilterAll),
		SortBy:      c.Query("sort_by", inventory.SortByName),
		SortOrder:   c.Query("sort_order", "asc"),
	}
	view := inventory.FilterItems(items, spec)

	out := make([]dto.ItemResponse, 0, len(view))
	for _, item := range view {
		out = append(out, dto.ToItemResponse(item, string(dominv.ClassifyStock(item))))
	}
	return c.JSON(dto.ItemListResponse{Items: out, Total: len(out)})
}

// Stats godoc
// @Summary      Agregados del inventario completo
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/items/stats [get]
func (h *ItemHandler) Stats(c *fiber.Ctx) error {
	items, err := h.uc.FetchItems(false)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	stats := inventory.AggregateStats(items)
	return c.JSON(dto.StatsResponse{
		TotalItems:      stats.TotalItems,
		TotalValue:      stats.TotalValue,
		TotalValueLabel: money.Display(stats.TotalValue),
		LowStockItems:   stats.LowStockItems,
		OutOfStockItems: stats.OutOfStockItems,
		Categories:      stats.Categories,
	})
}

// Facets godoc
// @Summary      Opciones de filtro con conteos (pre-filtro)
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FacetsResponse
// @Router       /api/items/facets [get]
func (h *ItemHandler) Facets(c *fiber.Ctx) error {
	items, err := h.uc.FetchItems(false)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	facets := inventory.FacetCounts(items)
	return c.JSON(dto.FacetsResponse{
		Categories:    toFacetOptions(facets.Categories),
		StockStatuses: toFacetOptions(facets.StockStatuses),
	})
}

func toFacetOptions(opts []inventory.FacetOption) []dto.FacetOptionResponse {
	out := make([]dto.FacetOptionResponse, 0, len(opts))
	for _, o := range opts {
		out = append(out, dto.FacetOptionResponse{Value: o.Value, Count: o.Count})
	}
	return out
}

// GetByID godoc
// @Summary      Obtener artículo por ID
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	item, err := h.uc.GetItem(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	}
	return c.JSON(dto.ToItemResponse(*item, string(dominv.ClassifyStock(*item))))
}

// Create godoc
// @Summary      Crear artículo
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del artículo"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.AddItem(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, category y un precio unitario positivo son requeridos"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el artículo ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToItemResponse(*item, string(dominv.ClassifyStock(*item))))
}

// Update godoc
// @Summary      Actualizar artículo (sin stock)
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del artículo"
// @Param        body  body  dto.UpdateItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.UpdateItem(id, in)
	if err != nil {
		return itemError(c, err)
	}
	return c.JSON(dto.ToItemResponse(*item, string(dominv.ClassifyStock(*item))))
}

// AdjustStock godoc
// @Summary      Ajustar stock a un valor absoluto (con asiento en el libro)
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del artículo"
// @Param        body  body  dto.AdjustStockRequest  true  "Nuevo stock y razón del ajuste"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/stock [patch]
func (h *ItemHandler) AdjustStock(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.UpdateStock(c.Context(), id, in.NewStock, in.Reason, GetUserName(c))
	if err != nil {
		if errors.Is(err, domain.ErrNegativeStock) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NEGATIVE_STOCK", Message: "el stock no puede ser negativo"})
		}
		return itemError(c, err)
	}
	return c.JSON(dto.ToItemResponse(*item, string(dominv.ClassifyStock(*item))))
}

// Delete godoc
// @Summary      Eliminar artículo
// @Tags         items
// @Security     Bearer
// @Param        id  path  string  true  "ID del artículo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.DeleteItem(id); err != nil {
		return itemError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Transactions godoc
// @Summary      Historia de ajustes de stock de un artículo
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del artículo"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {array}  dto.StockTransactionResponse
// @Router       /api/items/{id}/transactions [get]
func (h *ItemHandler) Transactions(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()

	txs, err := h.uc.ListTransactions(id, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.StockTransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, dto.StockTransactionResponse{
			ID:            tx.ID,
			ItemID:        tx.ItemID,
			Delta:         tx.Delta,
			PreviousStock: tx.PreviousStock,
			NewStock:      tx.NewStock,
			Reason:        tx.Reason,
			CreatedBy:     tx.CreatedBy,
			CreatedAt:     tx.CreatedAt,
		})
	}
	return c.JSON(out)
}

// itemError mapea los errores de dominio comunes a estados HTTP.
func itemError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
