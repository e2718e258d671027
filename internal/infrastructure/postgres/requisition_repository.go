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

var _ repository.RequisitionRepository = (*RequisitionRepo)(nil)

// RequisitionRepo implementación del puerto RequisitionRepository sobre
// PostgreSQL (usable con pool o tx). Las líneas se guardan como JSONB.
type RequisitionRepo struct {
	q Querier
}

// NewRequisitionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRequisitionRepository(q Querier) *RequisitionRepo {
	return &RequisitionRepo{q: q}
}

const requisitionColumns = `id, request_number, department, requested_by, items, total_estimated_cost, status, priority, request_date, required_date, justification, approved_by, approved_date, rejected_by, rejected_date, notes, created_at, updated_at`

// Create persiste una nueva requisición.
func (r *RequisitionRepo) Create(req *entity.Requisition) error {
	items, err := json.Marshal(req.Items)
	if err != nil {
		return fmt.Errorf("serializar líneas de requisición: %w", err)
	}
	query := `
		INSERT INTO requisitions (` + requisitionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err = r.q.Exec(context.Background(), query,
		req.ID, req.RequestNumber, req.Department, req.RequestedBy, items,
		req.TotalEstimatedCost, string(req.Status), req.Priority,
		req.RequestDate, req.RequiredDate, req.Justification,
		req.ApprovedBy, req.ApprovedDate, req.RejectedBy, req.RejectedDate,
		req.Notes, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert requisition: número duplicado")
		}
		return fmt.Errorf("insert requisition: %w", err)
	}
	return nil
}

// GetByID obtiene una requisición por ID. Devuelve (nil, nil) si no existe.
func (r *RequisitionRepo) GetByID(id string) (*entity.Requisition, error) {
	query := `SELECT ` + requisitionColumns + ` FROM requisitions WHERE id = $1`
	req, err := scanRequisition(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get requisition: %w", err)
	}
	return req, nil
}

// List lista requisiciones de la más reciente a la más antigua; status vacío
// trae todas.
func (r *RequisitionRepo) List(status entity.RequisitionStatus, limit, offset int) ([]entity.Requisition, error) {
	query := `SELECT ` + requisitionColumns + ` FROM requisitions`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1 ORDER BY request_date DESC LIMIT $2 OFFSET $3`
		args = append(args, string(status), limit, offset)
	} else {
		query += ` ORDER BY request_date DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requisitions: %w", err)
	}
	defer rows.Close()

	var list []entity.Requisition
	for rows.Next() {
		req, err := scanRequisition(rows)
		if err != nil {
			return nil, fmt.Errorf("scan requisition: %w", err)
		}
		list = append(list, *req)
	}
	return list, rows.Err()
}

// Update persiste estado, estampas y notas de la requisición.
func (r *RequisitionRepo) Update(req *entity.Requisition) error {
	query := `
		UPDATE requisitions
		SET status = $2, approved_by = $3, approved_date = $4,
		    rejected_by = $5, rejected_date = $6, notes = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		req.ID, string(req.Status), req.ApprovedBy, req.ApprovedDate,
		req.RejectedBy, req.RejectedDate, req.Notes, req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update requisition: %w", err)
	}
	return nil
}

// Delete elimina una requisición por ID.
func (r *RequisitionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM requisitions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete requisition: %w", err)
	}
	return nil
}

// NextRequestNumber genera el consecutivo REQ-YYYY-NNNN del año indicado.
func (r *RequisitionRepo) NextRequestNumber(year int) (string, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM requisitions WHERE date_part('year', request_date) = $1`,
		year,
	).Scan(&count)
	if err != nil {
		return "", fmt.Errorf("contar requisiciones del año: %w", err)
	}
	return fmt.Sprintf("REQ-%d-%04d", year, count+1), nil
}

// scanRequisition mapea una fila a la entidad, deserializando las líneas JSONB.
func scanRequisition(row pgx.Row) (*entity.Requisition, error) {
	var q entity.Requisition
	var items []byte
	var status string
	if err := row.Scan(
		&q.ID, &q.RequestNumber, &q.Department, &q.RequestedBy, &items,
		&q.TotalEstimatedCost, &status, &q.Priority,
		&q.RequestDate, &q.RequiredDate, &q.Justification,
		&q.ApprovedBy, &q.ApprovedDate, &q.RejectedBy, &q.RejectedDate,
		&q.Notes, &q.CreatedAt, &q.UpdatedAt,
	); err != nil {
		return nil, err
	}
	q.Status = entity.RequisitionStatus(status)
	if err := json.Unmarshal(items, &q.Items); err != nil {
		return nil, fmt.Errorf("deserializar líneas de requisición: %w", err)
	}
	return &q, nil
}
