package onboarding

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Onboarding-api/internal/domain"
	"github.com/jhoicas/Onboarding-api/internal/domain/entity"
	"github.com/jhoicas/Onboarding-api/internal/domain/repository"
)

// DefaultRecentActivities límite por defecto de Recent.
const DefaultRecentActivities = 20

// ActivityUseCase log de actividades por consultor (solo agregar y leer).
type ActivityUseCase struct {
	consultantRepo repository.ConsultantRepository
	activityRepo   repository.ActivityRepository
	txRunner       TxRunner
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(
	consultantRepo repository.ConsultantRepository,
	activityRepo repository.ActivityRepository,
	txRunner TxRunner,
) *ActivityUseCase {
	return &ActivityUseCase{consultantRepo: consultantRepo, activityRepo: activityRepo, txRunner: txRunner}
}

// Append registra una actividad para un consultor existente. No valida tipo ni descripción.
func (uc *ActivityUseCase) Append(ctx context.Context, consultantID, activityType, description string) (*entity.Activity, error) {
	var created *entity.Activity
	err := uc.txRunner.Run(ctx, func(
		consultantRepo repository.ConsultantRepository,
		_ repository.DocumentRepository,
		activityRepo repository.ActivityRepository,
	) error {
		c, err := consultantRepo.GetByID(ctx, consultantID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		created, err = appendActivity(ctx, activityRepo, consultantID, activityType, description, time.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Recent devuelve las actividades más recientes (Timestamp DESC, inserción DESC como desempate).
// limit <= 0 usa DefaultRecentActivities.
func (uc *ActivityUseCase) Recent(ctx context.Context, consultantID string, limit int) ([]*entity.Activity, error) {
	if limit <= 0 {
		limit = DefaultRecentActivities
	}
	c, err := uc.consultantRepo.GetByID(ctx, consultantID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return uc.activityRepo.ListRecent(ctx, consultantID, limit)
}

// appendActivity crea la actividad con el repo de la transacción en curso.
func appendActivity(
	ctx context.Context,
	repo repository.ActivityRepository,
	consultantID, activityType, description string,
	now time.Time,
) (*entity.Activity, error) {
	a := &entity.Activity{
		ID:           uuid.New().String(),
		ConsultantID: consultantID,
		ActivityType: activityType,
		Description:  description,
		Timestamp:    now,
	}
	if err := repo.Append(ctx, a); err != nil {
		return nil, fmt.Errorf("registrar actividad %q: %w", activityType, err)
	}
	return a, nil
}
