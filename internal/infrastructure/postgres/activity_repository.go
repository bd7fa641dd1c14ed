package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Onboarding-api/internal/domain"
	"github.com/jhoicas/Onboarding-api/internal/domain/entity"
	"github.com/jhoicas/Onboarding-api/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo log de actividades sobre PostgreSQL. Solo INSERT y SELECT.
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

// Append inserta la actividad; seq lo asigna la secuencia de la tabla.
func (r *ActivityRepo) Append(ctx context.Context, a *entity.Activity) error {
	query := `
		INSERT INTO activities (id, consultant_id, activity_type, description, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING seq`
	err := r.q.QueryRow(ctx, query, a.ID, a.ConsultantID, a.ActivityType, a.Description, a.Timestamp).Scan(&a.Seq)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// ListRecent más recientes primero; seq desempata timestamps iguales.
func (r *ActivityRepo) ListRecent(ctx context.Context, consultantID string, limit int) ([]*entity.Activity, error) {
	if !validID(consultantID) {
		return []*entity.Activity{}, nil
	}
	query := `
		SELECT id, seq, consultant_id, activity_type, description, timestamp
		FROM activities
		WHERE consultant_id = $1
		ORDER BY timestamp DESC, seq DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, consultantID, limit)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()
	list := []*entity.Activity{}
	for rows.Next() {
		var a entity.Activity
		if err := rows.Scan(&a.ID, &a.Seq, &a.ConsultantID, &a.ActivityType, &a.Description, &a.Timestamp); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
