package repository

import (
	"context"

	"github.com/jhoicas/Onboarding-api/internal/domain/entity"
)

// ActivityRepository puerto del log de actividades. Solo permite agregar y leer.
type ActivityRepository interface {
	// Append persiste la actividad y asigna activity.Seq.
	Append(ctx context.Context, activity *entity.Activity) error
	// ListRecent devuelve hasta limit actividades ordenadas por Timestamp DESC, Seq DESC.
	ListRecent(ctx context.Context, consultantID string, limit int) ([]*entity.Activity, error)
}
