package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/veth14/hotel-backoffice-api/internal/domain"
	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
	"github.com/veth14/hotel-backoffice-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL
// (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `id, name, contact_person, email, phone, address, category, payment_terms, delivery_time_days, status, rating, total_orders, total_value, created_at, updated_at`

// Create persiste un nuevo proveedor. Nombre único.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.ContactPerson, supplier.Email,
		supplier.Phone, supplier.Address, supplier.Category, supplier.PaymentTerms,
		supplier.DeliveryTimeDays, supplier.Status, supplier.Rating,
		supplier.TotalOrders, supplier.TotalValue,
		supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID. Devuelve (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.getOne(`SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id)
}

// GetByName obtiene un proveedor por nombre exacto.
func (r *SupplierRepo) GetByName(name string) (*entity.Supplier, error) {
	return r.getOne(`SELECT `+supplierColumns+` FROM suppliers WHERE name = $1`, name)
}

func (r *SupplierRepo) getOne(query string, arg any) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone, &s.Address,
		&s.Category, &s.PaymentTerms, &s.DeliveryTimeDays, &s.Status,
		&s.Rating, &s.TotalOrders, &s.TotalValue, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// List lista proveedores por nombre con paginación.
func (r *SupplierRepo) List(limit, offset int) ([]entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var list []entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(
			&s.ID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone, &s.Address,
			&s.Category, &s.PaymentTerms, &s.DeliveryTimeDays, &s.Status,
			&s.Rating, &s.TotalOrders, &s.TotalValue, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// RegisterOrder acumula una orden creada en los agregados del proveedor.
func (r *SupplierRepo) RegisterOrder(supplierID string, amount decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE suppliers SET total_orders = total_orders + 1, total_value = total_value + $2, updated_at = now() WHERE id = $1`,
		supplierID, amount,
	)
	if err != nil {
		return fmt.Errorf("register supplier order: %w", err)
	}
	return nil
}
