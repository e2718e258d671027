package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/veth14/hotel-backoffice-api/internal/domain"
	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
	"github.com/veth14/hotel-backoffice-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// Campos admitidos para el ordenamiento del lado del servidor. Cualquier otro
// valor cae a name: el orden por campo único es un contrato de ListAll.
var itemOrderColumns = map[string]string{
	"name":          "name",
	"category":      "category",
	"stock":         "current_stock",
	"lastRestocked": "last_restocked",
	"createdAt":     "created_at",
}

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable
// con pool o tx). Cada mutación emite pg_notify en el canal de cambios para
// alimentar la suscripción en tiempo real.
type ItemRepo struct {
	q       Querier
	channel string
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier, channel string) *ItemRepo {
	return &ItemRepo{q: q, channel: channel}
}

const itemColumns = `id, name, category, description, current_stock, reorder_level, unit_price, supplier, unit, location, last_restocked, created_at, updated_at`

// Create persiste un nuevo artículo.
func (r *ItemRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.Description,
		item.CurrentStock, item.ReorderLevel, item.UnitPrice,
		item.Supplier, item.Unit, item.Location,
		item.LastRestocked, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return r.notify(item.ID)
}

// GetByID obtiene un artículo por ID. Devuelve (nil, nil) si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`
	var it entity.InventoryItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.Name, &it.Category, &it.Description,
		&it.CurrentStock, &it.ReorderLevel, &it.UnitPrice,
		&it.Supplier, &it.Unit, &it.Location,
		&it.LastRestocked, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// ListAll devuelve la colección completa ordenada por el campo indicado.
func (r *ItemRepo) ListAll(orderBy string) ([]entity.InventoryItem, error) {
	column, ok := itemOrderColumns[orderBy]
	if !ok {
		column = "name"
	}
	query := `SELECT ` + itemColumns + ` FROM inventory_items ORDER BY ` + column
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(
			&it.ID, &it.Name, &it.Category, &it.Description,
			&it.CurrentStock, &it.ReorderLevel, &it.UnitPrice,
			&it.Supplier, &it.Unit, &it.Location,
			&it.LastRestocked, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables de un artículo (merge ya resuelto por
// el caso de uso). No toca current_stock: eso pasa por UpdateStock.
func (r *ItemRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $2, category = $3, description = $4, reorder_level = $5,
		    unit_price = $6, supplier = $7, unit = $8, location = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.Description, item.ReorderLevel,
		item.UnitPrice, item.Supplier, item.Unit, item.Location, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil
	}
	return r.notify(item.ID)
}

// UpdateStock fija el stock absoluto del artículo. El guard current_stock >= 0
// también vive en la tabla (CHECK), como segunda línea tras la validación del
// caso de uso.
func (r *ItemRepo) UpdateStock(itemID string, newStock int, lastRestocked *time.Time, updatedAt time.Time) error {
	query := `
		UPDATE inventory_items
		SET current_stock = $2, last_restocked = COALESCE($3, last_restocked), updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, itemID, newStock, lastRestocked, updatedAt)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return r.notify(itemID)
}

// Delete elimina un artículo por ID.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return r.notify(id)
}

// notify publica el cambio en el canal LISTEN/NOTIFY de artículos.
func (r *ItemRepo) notify(itemID string) error {
	if r.channel == "" {
		return nil
	}
	_, err := r.q.Exec(context.Background(), `SELECT pg_notify($1, $2)`, r.channel, itemID)
	if err != nil {
		return fmt.Errorf("notify item change: %w", err)
	}
	return nil
}
