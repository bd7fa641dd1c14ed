package dto

import (
	"time"

	"github.com/jhoicas/Onboarding-api/internal/domain/entity"
)

// CreateDocumentRequest body para POST /api/consultants/:id/documents.
type CreateDocumentRequest struct {
	DocumentType string  `json:"document_type" validate:"required"`
	FilePath     *string `json:"file_path,omitempty"`
	Status       string  `json:"status,omitempty"`
}

// DocumentResponse salida de un documento.
type DocumentResponse struct {
	ID           string     `json:"id"`
	ConsultantID string     `json:"consultant_id"`
	DocumentType string     `json:"document_type"`
	FilePath     *string    `json:"file_path"`
	Status       string     `json:"status"`
	SentDate     *time.Time `json:"sent_date"`
	ReceivedDate *time.Time `json:"received_date"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NewDocumentResponse convierte la entidad en DTO.
func NewDocumentResponse(d *entity.Document) *DocumentResponse {
	if d == nil {
		return nil
	}
	return &DocumentResponse{
		ID:           d.ID,
		ConsultantID: d.ConsultantID,
		DocumentType: d.DocumentType,
		FilePath:     d.FilePath,
		Status:       string(d.Status),
		SentDate:     d.SentDate,
		ReceivedDate: d.ReceivedDate,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// NewDocumentList convierte una lista de entidades (nunca devuelve nil).
func NewDocumentList(docs []*entity.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, *NewDocumentResponse(d))
	}
	return out
}
