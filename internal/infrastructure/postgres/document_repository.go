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

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

const documentColumns = `id, consultant_id, document_type, file_path, status,
	sent_date, received_date, notes, created_at, updated_at`

// DocumentRepo implementación de DocumentRepository sobre PostgreSQL.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Create inserta el documento. Un consultor inexistente viola la FK y se reporta como ErrNotFound.
func (r *DocumentRepo) Create(ctx context.Context, d *entity.Document) error {
	query := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.ConsultantID, d.DocumentType, d.FilePath, string(d.Status),
		d.SentDate, d.ReceivedDate, d.Notes, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *DocumentRepo) GetByID(ctx context.Context, id string) (*entity.Document, error) {
	return r.get(ctx, id, "")
}

// LockByID toma la fila con FOR UPDATE.
func (r *DocumentRepo) LockByID(ctx context.Context, id string) (*entity.Document, error) {
	return r.get(ctx, id, " FOR UPDATE")
}

func (r *DocumentRepo) get(ctx context.Context, id, lock string) (*entity.Document, error) {
	if !validID(id) {
		return nil, nil
	}
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1` + lock
	d, err := scanDocument(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return d, nil
}

// Update persiste Status, FilePath, SentDate, ReceivedDate y UpdatedAt.
func (r *DocumentRepo) Update(ctx context.Context, d *entity.Document) error {
	query := `
		UPDATE documents
		SET status = $2, file_path = $3, sent_date = $4, received_date = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		d.ID, string(d.Status), d.FilePath, d.SentDate, d.ReceivedDate, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByConsultant devuelve los documentos del consultor en orden de inserción.
func (r *DocumentRepo) ListByConsultant(ctx context.Context, consultantID string) ([]*entity.Document, error) {
	if !validID(consultantID) {
		return []*entity.Document{}, nil
	}
	query := `SELECT ` + documentColumns + ` FROM documents WHERE consultant_id = $1 ORDER BY seq`
	rows, err := r.q.Query(ctx, query, consultantID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	list := []*entity.Document{}
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func scanDocument(row pgx.Row) (*entity.Document, error) {
	var (
		d      entity.Document
		status string
	)
	if err := row.Scan(
		&d.ID, &d.ConsultantID, &d.DocumentType, &d.FilePath, &status,
		&d.SentDate, &d.ReceivedDate, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	d.Status = entity.DocumentStatus(status)
	return &d, nil
}
