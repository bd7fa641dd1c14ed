package repository

import (
	"context"

	"github.com/jhoicas/Onboarding-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ConsultantProgressRow consultor con sus contadores de documentos ya agregados.
// Lo produce el almacenamiento; el use case lo convierte en DTO.
type ConsultantProgressRow struct {
	Consultant         entity.Consultant
	TotalDocuments     int
	CompletedDocuments int
	Progress           decimal.Decimal // completados / total * 100, 0 si no hay documentos
}

// ConsultantRepository define el puerto de persistencia para Consultant (DIP).
// No existe Delete: los consultores no se eliminan.
type ConsultantRepository interface {
	Create(ctx context.Context, consultant *entity.Consultant) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Consultant, error)
	// LockByID como GetByID, pero dentro de una transacción bloquea la fila hasta el commit.
	// Las escrituras que leen y luego modifican al consultor lo usan para serializarse.
	LockByID(ctx context.Context, id string) (*entity.Consultant, error)
	// List devuelve todos los consultores en orden de inserción.
	List(ctx context.Context) ([]*entity.Consultant, error)
	// UpdateStatus persiste Status y UpdatedAt.
	UpdateStatus(ctx context.Context, consultant *entity.Consultant) error
	// ListWithDocumentStats devuelve cada consultor con total/completados de sus documentos.
	ListWithDocumentStats(ctx context.Context) ([]ConsultantProgressRow, error)
}
