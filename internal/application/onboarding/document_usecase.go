package onboarding

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Onboarding-api/internal/domain"
	"github.com/jhoicas/Onboarding-api/internal/domain/entity"
	"github.com/jhoicas/Onboarding-api/internal/domain/repository"
	"github.com/jhoicas/Onboarding-api/pkg/logger"
)

// DocumentUseCase checklist de documentos por consultor.
// Cada alta o cambio de estado registra su actividad en la misma transacción.
type DocumentUseCase struct {
	consultantRepo repository.ConsultantRepository
	documentRepo   repository.DocumentRepository
	txRunner       TxRunner
	log            *logger.Logger
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(
	consultantRepo repository.ConsultantRepository,
	documentRepo repository.DocumentRepository,
	txRunner TxRunner,
	log *logger.Logger,
) *DocumentUseCase {
	return &DocumentUseCase{
		consultantRepo: consultantRepo,
		documentRepo:   documentRepo,
		txRunner:       txRunner,
		log:            log.Component("documents"),
	}
}

// Add agrega un documento al checklist del consultor. status vacío equivale a Pending.
//
// Retorna:
//   - *domain.ValidationError si documentType está vacío o status no es canónico.
//   - domain.ErrNotFound si el consultor no existe.
func (uc *DocumentUseCase) Add(
	ctx context.Context,
	consultantID, documentType string,
	filePath *string,
	status entity.DocumentStatus,
) (*entity.Document, error) {
	documentType = strings.TrimSpace(documentType)
	if documentType == "" {
		return nil, domain.NewValidationError("document_type", "es requerido")
	}
	if status == "" {
		status = entity.DocumentPending
	}
	if !status.Valid() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("estado de documento inválido: %q", status))
	}

	var created *entity.Document
	err := uc.txRunner.Run(ctx, func(
		consultantRepo repository.ConsultantRepository,
		documentRepo repository.DocumentRepository,
		activityRepo repository.ActivityRepository,
	) error {
		c, err := consultantRepo.LockByID(ctx, consultantID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		created, err = createDocument(ctx, documentRepo, activityRepo, consultantID, documentType, filePath, status, time.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("consultant_id", consultantID).
		Str("document_id", created.ID).
		Str("document_type", created.DocumentType).
		Msg("documento agregado")
	return created, nil
}

// AddStandard agrega los cinco documentos estándar omitiendo los tipos que el consultor ya tiene.
// Devuelve solo los documentos creados en esta llamada (puede ser vacío).
func (uc *DocumentUseCase) AddStandard(ctx context.Context, consultantID string) ([]*entity.Document, error) {
	var created []*entity.Document
	err := uc.txRunner.Run(ctx, func(
		consultantRepo repository.ConsultantRepository,
		documentRepo repository.DocumentRepository,
		activityRepo repository.ActivityRepository,
	) error {
		c, err := consultantRepo.LockByID(ctx, consultantID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		created, err = addStandardDocuments(ctx, documentRepo, activityRepo, consultantID, time.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("consultant_id", consultantID).Int("created", len(created)).Msg("documentos estándar agregados")
	return created, nil
}

// UpdateStatus cambia el estado de un documento y fija SentDate / ReceivedDate según corresponda.
func (uc *DocumentUseCase) UpdateStatus(ctx context.Context, documentID string, status entity.DocumentStatus) (*entity.Document, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("estado de documento inválido: %q", status))
	}
	var doc *entity.Document
	var old entity.DocumentStatus
	err := uc.txRunner.Run(ctx, func(
		_ repository.ConsultantRepository,
		documentRepo repository.DocumentRepository,
		activityRepo repository.ActivityRepository,
	) error {
		var err error
		doc, err = documentRepo.LockByID(ctx, documentID)
		if err != nil {
			return err
		}
		if doc == nil {
			return domain.ErrNotFound
		}
		old = doc.Status
		return applyDocumentStatus(ctx, documentRepo, activityRepo, doc, status, time.Now())
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("document_id", doc.ID).
		Str("from", string(old)).
		Str("to", string(status)).
		Msg("estado de documento actualizado")
	return doc, nil
}

// ListFor lista los documentos del consultor en orden de almacenamiento.
func (uc *DocumentUseCase) ListFor(ctx context.Context, consultantID string) ([]*entity.Document, error) {
	c, err := uc.consultantRepo.GetByID(ctx, consultantID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return uc.documentRepo.ListByConsultant(ctx, consultantID)
}

// ── Helpers transaccionales (usan los repos de la tx del caller) ─────────────

func createDocument(
	ctx context.Context,
	documentRepo repository.DocumentRepository,
	activityRepo repository.ActivityRepository,
	consultantID, documentType string,
	filePath *string,
	status entity.DocumentStatus,
	now time.Time,
) (*entity.Document, error) {
	doc := &entity.Document{
		ID:           uuid.New().String(),
		ConsultantID: consultantID,
		DocumentType: documentType,
		FilePath:     filePath,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := documentRepo.Create(ctx, doc); err != nil {
		return nil, err
	}
	if _, err := appendActivity(ctx, activityRepo, consultantID,
		entity.ActivityDocumentAdded, fmt.Sprintf("%s added", documentType), now); err != nil {
		return nil, err
	}
	return doc, nil
}

// addStandardDocuments es un upsert por (consultor, tipo): solo crea los tipos ausentes.
func addStandardDocuments(
	ctx context.Context,
	documentRepo repository.DocumentRepository,
	activityRepo repository.ActivityRepository,
	consultantID string,
	now time.Time,
) ([]*entity.Document, error) {
	existing, err := documentRepo.ListByConsultant(ctx, consultantID)
	if err != nil {
		return nil, err
	}
	present := make(map[string]bool, len(existing))
	for _, d := range existing {
		present[d.DocumentType] = true
	}
	var created []*entity.Document
	for _, docType := range entity.StandardDocumentTypes() {
		if present[docType] {
			continue
		}
		doc, err := createDocument(ctx, documentRepo, activityRepo, consultantID, docType, nil, entity.DocumentPending, now)
		if err != nil {
			return nil, err
		}
		created = append(created, doc)
	}
	return created, nil
}

// applyDocumentStatus muta doc, lo persiste y registra "Document Updated".
func applyDocumentStatus(
	ctx context.Context,
	documentRepo repository.DocumentRepository,
	activityRepo repository.ActivityRepository,
	doc *entity.Document,
	status entity.DocumentStatus,
	now time.Time,
) error {
	old := doc.Status
	doc.Status = status
	doc.UpdatedAt = now
	switch status {
	case entity.DocumentSent:
		doc.SentDate = &now
	case entity.DocumentReceived, entity.DocumentCompleted:
		doc.ReceivedDate = &now
	}
	if err := documentRepo.Update(ctx, doc); err != nil {
		return err
	}
	_, err := appendActivity(ctx, activityRepo, doc.ConsultantID, entity.ActivityDocumentUpdated,
		fmt.Sprintf("%s status: %s → %s", doc.DocumentType, old, status), now)
	return err
}
