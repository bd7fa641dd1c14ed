package onboarding

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Onboarding-api/internal/application/dto"
	"github.com/jhoicas/Onboarding-api/internal/domain"
	"github.com/jhoicas/Onboarding-api/internal/domain/entity"
	"github.com/jhoicas/Onboarding-api/internal/domain/repository"
	"github.com/jhoicas/Onboarding-api/pkg/logger"
)

// ConsultantUseCase registro de consultores.
type ConsultantUseCase struct {
	consultantRepo repository.ConsultantRepository
	txRunner       TxRunner
	log            *logger.Logger
}

// NewConsultantUseCase construye el caso de uso.
func NewConsultantUseCase(consultantRepo repository.ConsultantRepository, txRunner TxRunner, log *logger.Logger) *ConsultantUseCase {
	return &ConsultantUseCase{
		consultantRepo: consultantRepo,
		txRunner:       txRunner,
		log:            log.Component("registry"),
	}
}

// Add registra un consultor en estado Pending y su actividad "Consultant Added".
// Con AddStandardDocs (por defecto) agrega los cinco documentos estándar en la misma transacción.
func (uc *ConsultantUseCase) Add(ctx context.Context, in dto.CreateConsultantRequest) (*entity.Consultant, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	position := strings.TrimSpace(in.Position)
	if name == "" {
		return nil, domain.NewValidationError("name", "es requerido")
	}
	if email == "" {
		return nil, domain.NewValidationError("email", "es requerido")
	}
	if position == "" {
		return nil, domain.NewValidationError("position", "es requerido")
	}

	now := time.Now()
	c := &entity.Consultant{
		ID:             uuid.New().String(),
		Name:           name,
		Email:          email,
		Position:       position,
		Manager:        strings.TrimSpace(in.Manager),
		StartDate:      strings.TrimSpace(in.StartDate),
		EndDate:        strings.TrimSpace(in.EndDate),
		EmploymentType: strings.TrimSpace(in.EmploymentType),
		PayRate:        strings.TrimSpace(in.PayRate),
		Status:         entity.ConsultantPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var docs []*entity.Document
	err := uc.txRunner.Run(ctx, func(
		consultantRepo repository.ConsultantRepository,
		documentRepo repository.DocumentRepository,
		activityRepo repository.ActivityRepository,
	) error {
		if err := consultantRepo.Create(ctx, c); err != nil {
			return err
		}
		if _, err := appendActivity(ctx, activityRepo, c.ID, entity.ActivityConsultantAdded,
			fmt.Sprintf("Added %s to onboarding system", c.Name), now); err != nil {
			return err
		}
		if !in.WantsStandardDocs() {
			return nil
		}
		var err error
		docs, err = addStandardDocuments(ctx, documentRepo, activityRepo, c.ID, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("consultant_id", c.ID).
		Int("standard_documents", len(docs)).
		Msg("consultor registrado")
	return c, nil
}

// Get devuelve el consultor o domain.ErrNotFound.
func (uc *ConsultantUseCase) Get(ctx context.Context, id string) (*entity.Consultant, error) {
	c, err := uc.consultantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// List devuelve todos los consultores.
func (uc *ConsultantUseCase) List(ctx context.Context) ([]*entity.Consultant, error) {
	return uc.consultantRepo.List(ctx)
}

// UpdateStatus cambia el estado del consultor. Aunque el valor no cambie se registra la actividad.
func (uc *ConsultantUseCase) UpdateStatus(ctx context.Context, id string, status entity.ConsultantStatus) (*entity.Consultant, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("estado de consultor inválido: %q", status))
	}
	var c *entity.Consultant
	var old entity.ConsultantStatus
	err := uc.txRunner.Run(ctx, func(
		consultantRepo repository.ConsultantRepository,
		_ repository.DocumentRepository,
		activityRepo repository.ActivityRepository,
	) error {
		var err error
		c, err = consultantRepo.LockByID(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		now := time.Now()
		old = c.Status
		c.Status = status
		c.UpdatedAt = now
		if err := consultantRepo.UpdateStatus(ctx, c); err != nil {
			return err
		}
		_, err = appendActivity(ctx, activityRepo, c.ID, entity.ActivityStatusChanged,
			fmt.Sprintf("Status changed from %s to %s", old, status), now)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("consultant_id", c.ID).
		Str("from", string(old)).
		Str("to", string(status)).
		Msg("estado de consultor actualizado")
	return c, nil
}
