package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Onboarding-api/internal/domain"
	"github.com/jhoicas/Onboarding-api/internal/domain/entity"
	"github.com/jhoicas/Onboarding-api/internal/domain/repository"
)

var _ repository.ConsultantRepository = (*ConsultantRepo)(nil)

const consultantColumns = `id, name, email, position, manager, start_date, end_date,
	employment_type, pay_rate, status, created_at, updated_at`

// ConsultantRepo implementación de ConsultantRepository sobre PostgreSQL (usable con pool o tx).
type ConsultantRepo struct {
	q Querier
}

// NewConsultantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewConsultantRepository(q Querier) *ConsultantRepo {
	return &ConsultantRepo{q: q}
}

// Create inserta el consultor.
func (r *ConsultantRepo) Create(ctx context.Context, c *entity.Consultant) error {
	query := `
		INSERT INTO consultants (` + consultantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Email, c.Position, c.Manager, c.StartDate, c.EndDate,
		c.EmploymentType, c.PayRate, string(c.Status), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert consultant: %w", err)
	}
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ConsultantRepo) GetByID(ctx context.Context, id string) (*entity.Consultant, error) {
	return r.get(ctx, id, "")
}

// LockByID toma la fila con FOR UPDATE; fuera de una tx el bloqueo dura solo la sentencia.
func (r *ConsultantRepo) LockByID(ctx context.Context, id string) (*entity.Consultant, error) {
	return r.get(ctx, id, " FOR UPDATE")
}

func (r *ConsultantRepo) get(ctx context.Context, id, lock string) (*entity.Consultant, error) {
	if !validID(id) {
		return nil, nil
	}
	query := `SELECT ` + consultantColumns + ` FROM consultants WHERE id = $1` + lock
	c, err := scanConsultant(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get consultant: %w", err)
	}
	return c, nil
}

// List devuelve todos los consultores en orden de inserción.
func (r *ConsultantRepo) List(ctx context.Context) ([]*entity.Consultant, error) {
	query := `SELECT ` + consultantColumns + ` FROM consultants ORDER BY seq`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list consultants: %w", err)
	}
	defer rows.Close()
	list := []*entity.Consultant{}
	for rows.Next() {
		c, err := scanConsultant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan consultant: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// UpdateStatus persiste Status y UpdatedAt.
func (r *ConsultantRepo) UpdateStatus(ctx context.Context, c *entity.Consultant) error {
	if !validID(c.ID) {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx,
		`UPDATE consultants SET status = $2, updated_at = $3 WHERE id = $1`,
		c.ID, string(c.Status), c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update consultant status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListWithDocumentStats agrega total/completados por consultor en una sola consulta.
// El porcentaje se calcula en SQL como NUMERIC y se escanea a decimal.Decimal.
func (r *ConsultantRepo) ListWithDocumentStats(ctx context.Context) ([]repository.ConsultantProgressRow, error) {
	query := `
		SELECT c.id, c.name, c.email, c.position, c.manager, c.start_date, c.end_date,
		       c.employment_type, c.pay_rate, c.status, c.created_at, c.updated_at,
		       COUNT(d.id)                                          AS doc_total,
		       COUNT(d.id) FILTER (WHERE d.status = 'Completed')    AS doc_completed,
		       CASE WHEN COUNT(d.id) = 0 THEN 0::numeric
		            ELSE ROUND(COUNT(d.id) FILTER (WHERE d.status = 'Completed')::numeric
		                       / COUNT(d.id)::numeric * 100, 2)
		       END                                                  AS doc_progress
		FROM consultants c
		LEFT JOIN documents d ON d.consultant_id = c.id
		GROUP BY c.id
		ORDER BY c.seq`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list consultants with progress: %w", err)
	}
	defer rows.Close()
	list := []repository.ConsultantProgressRow{}
	for rows.Next() {
		var (
			row    repository.ConsultantProgressRow
			status string
		)
		c := &row.Consultant
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.Position, &c.Manager, &c.StartDate, &c.EndDate,
			&c.EmploymentType, &c.PayRate, &status, &c.CreatedAt, &c.UpdatedAt,
			&row.TotalDocuments, &row.CompletedDocuments, &row.Progress,
		); err != nil {
			return nil, fmt.Errorf("scan consultant progress: %w", err)
		}
		c.Status = entity.ConsultantStatus(status)
		list = append(list, row)
	}
	return list, rows.Err()
}

func scanConsultant(row pgx.Row) (*entity.Consultant, error) {
	var (
		c      entity.Consultant
		status string
	)
	if err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Position, &c.Manager, &c.StartDate, &c.EndDate,
		&c.EmploymentType, &c.PayRate, &status, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	c.Status = entity.ConsultantStatus(status)
	return &c, nil
}
