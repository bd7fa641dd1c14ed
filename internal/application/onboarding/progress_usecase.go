package onboarding

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Onboarding-api/internal/application/dto"
	"github.com/jhoicas/Onboarding-api/internal/domain"
	"github.com/jhoicas/Onboarding-api/internal/domain/entity"
	domainonboarding "github.com/jhoicas/Onboarding-api/internal/domain/onboarding"
	"github.com/jhoicas/Onboarding-api/internal/domain/repository"
)

// ProgressActivities cantidad de actividades incluidas en el detalle de progreso.
const ProgressActivities = 20

// ProgressUseCase derivaciones de solo lectura: detalle por consultor y resumen global.
type ProgressUseCase struct {
	consultantRepo repository.ConsultantRepository
	documentRepo   repository.DocumentRepository
	activityRepo   repository.ActivityRepository
}

// NewProgressUseCase construye el caso de uso.
func NewProgressUseCase(
	consultantRepo repository.ConsultantRepository,
	documentRepo repository.DocumentRepository,
	activityRepo repository.ActivityRepository,
) *ProgressUseCase {
	return &ProgressUseCase{
		consultantRepo: consultantRepo,
		documentRepo:   documentRepo,
		activityRepo:   activityRepo,
	}
}

// ConsultantProgress arma el detalle del consultor: documentos, actividades recientes y porcentaje.
// Documentos y actividades se leen en paralelo una vez confirmado que el consultor existe.
func (uc *ProgressUseCase) ConsultantProgress(ctx context.Context, consultantID string) (*dto.ConsultantProgressResponse, error) {
	c, err := uc.consultantRepo.GetByID(ctx, consultantID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	var (
		docs       []*entity.Document
		activities []*entity.Activity
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		docs, err = uc.documentRepo.ListByConsultant(gctx, consultantID)
		if err != nil {
			return fmt.Errorf("progreso: documentos: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		activities, err = uc.activityRepo.ListRecent(gctx, consultantID, ProgressActivities)
		if err != nil {
			return fmt.Errorf("progreso: actividades: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total, completed := domainonboarding.DocumentStats(docs)
	return &dto.ConsultantProgressResponse{
		Consultant:           *dto.NewConsultantResponse(c),
		Documents:            dto.NewDocumentList(docs),
		Activities:           dto.NewActivityList(activities),
		TotalDocuments:       total,
		CompletedDocuments:   completed,
		CompletionPercentage: dto.NewPercent(domainonboarding.CompletionPercentage(completed, total)),
	}, nil
}

// GlobalSummary cuenta consultores por estado (coincidencia exacta).
func (uc *ProgressUseCase) GlobalSummary(ctx context.Context) (*dto.SummaryResponse, error) {
	list, err := uc.consultantRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	b := domainonboarding.Summarize(list)
	return &dto.SummaryResponse{
		Total:      b.Total,
		Pending:    b.Pending,
		InProgress: b.InProgress,
		Complete:   b.Complete,
	}, nil
}

// ListWithProgress lista todos los consultores con su avance documental.
func (uc *ProgressUseCase) ListWithProgress(ctx context.Context) ([]dto.ConsultantListItem, error) {
	rows, err := uc.consultantRepo.ListWithDocumentStats(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ConsultantListItem, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		out = append(out, dto.ConsultantListItem{
			ConsultantResponse: *dto.NewConsultantResponse(&r.Consultant),
			DocTotal:           r.TotalDocuments,
			DocCompleted:       r.CompletedDocuments,
			DocProgress:        dto.NewPercent(r.Progress),
		})
	}
	return out, nil
}
