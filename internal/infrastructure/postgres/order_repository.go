package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
	"github.com/veth14/hotel-backoffice-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL
// (usable con pool o tx). Las líneas de la orden se guardan como JSONB.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, order_number, supplier, items, total_amount, status, order_date, expected_delivery, approved_by, approved_date, notes, created_at, updated_at`

// Create persiste una nueva orden de compra.
func (r *OrderRepo) Create(order *entity.PurchaseOrder) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("serializar líneas de orden: %w", err)
	}
	query := `
		INSERT INTO purchase_orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.q.Exec(context.Background(), query,
		order.ID, order.OrderNumber, order.Supplier, items, order.TotalAmount,
		string(order.Status), order.OrderDate, order.ExpectedDelivery,
		order.ApprovedBy, order.ApprovedDate, order.Notes,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert purchase order: número duplicado")
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID. Devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM purchase_orders WHERE id = $1`
	order, err := scanOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return order, nil
}

// List lista órdenes de la más reciente a la más antigua; status vacío trae todas.
func (r *OrderRepo) List(status entity.OrderStatus, limit, offset int) ([]entity.PurchaseOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM purchase_orders`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1 ORDER BY order_date DESC LIMIT $2 OFFSET $3`
		args = append(args, string(status), limit, offset)
	} else {
		query += ` ORDER BY order_date DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	var list []entity.PurchaseOrder
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, *order)
	}
	return list, rows.Err()
}

// Update persiste estado y estampas de la orden. Las líneas y el total no
// cambian después de la creación, así que no se reescriben.
func (r *OrderRepo) Update(order *entity.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders
		SET status = $2, approved_by = $3, approved_date = $4, notes = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, string(order.Status), order.ApprovedBy, order.ApprovedDate,
		order.Notes, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase order: %w", err)
	}
	return nil
}

// Delete elimina una orden por ID.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase order: %w", err)
	}
	return nil
}

// NextOrderNumber genera el consecutivo PO-YYYY-NNNN del año indicado.
func (r *OrderRepo) NextOrderNumber(year int) (string, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM purchase_orders WHERE date_part('year', order_date) = $1`,
		year,
	).Scan(&count)
	if err != nil {
		return "", fmt.Errorf("contar órdenes del año: %w", err)
	}
	return fmt.Sprintf("PO-%d-%04d", year, count+1), nil
}

// scanOrder mapea una fila a la entidad, deserializando las líneas JSONB.
func scanOrder(row pgx.Row) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	var items []byte
	var status string
	if err := row.Scan(
		&o.ID, &o.OrderNumber, &o.Supplier, &items, &o.TotalAmount, &status,
		&o.OrderDate, &o.ExpectedDelivery, &o.ApprovedBy, &o.ApprovedDate,
		&o.Notes, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}
	o.Status = entity.OrderStatus(status)
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("deserializar líneas de orden: %w", err)
	}
	return &o, nil
}
