package repository

import (
	"context"

	"github.com/jhoicas/Onboarding-api/internal/domain/entity"
)

// DocumentRepository define el puerto de persistencia para Document (DIP).
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Document, error)
	// LockByID como GetByID, bloqueando la fila hasta el fin de la transacción.
	LockByID(ctx context.Context, id string) (*entity.Document, error)
	// Update persiste Status, FilePath, SentDate, ReceivedDate y UpdatedAt.
	Update(ctx context.Context, doc *entity.Document) error
	// ListByConsultant devuelve los documentos del consultor en orden de inserción.
	ListByConsultant(ctx context.Context, consultantID string) ([]*entity.Document, error)
}
