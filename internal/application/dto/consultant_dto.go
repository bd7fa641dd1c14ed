package dto

import (
	"time"

	"github.com/jhoicas/Onboarding-api/internal/domain/entity"
)

// CreateConsultantRequest body para POST /api/consultants.
// AddStandardDocs nil equivale a true (se agregan los cinco documentos estándar).
// Las etiquetas yaml permiten cargar rosters con cmd/seed.
type CreateConsultantRequest struct {
	Name            string `json:"name" yaml:"name" validate:"required"`
	Email           string `json:"email" yaml:"email" validate:"required,email"`
	Position        string `json:"position" yaml:"position" validate:"required"`
	Manager         string `json:"manager" yaml:"manager"`
	StartDate       string `json:"start_date" yaml:"start_date"`
	EndDate         string `json:"end_date" yaml:"end_date"`
	EmploymentType  string `json:"employment_type" yaml:"employment_type"`
	PayRate         string `json:"pay_rate" yaml:"pay_rate"`
	AddStandardDocs *bool  `json:"add_standard_docs,omitempty" yaml:"add_standard_docs"`
}

// WantsStandardDocs indica si se deben agregar los documentos estándar al crear.
func (r CreateConsultantRequest) WantsStandardDocs() bool {
	return r.AddStandardDocs == nil || *r.AddStandardDocs
}

// UpdateStatusRequest body para PUT .../status (consultor o documento).
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ConsultantResponse salida de un consultor.
type ConsultantResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Position       string    `json:"position"`
	Manager        string    `json:"manager"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	EmploymentType string    `json:"employment_type"`
	PayRate        string    `json:"pay_rate"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ConsultantListItem consultor con su avance documental (listado del dashboard).
type ConsultantListItem struct {
	ConsultantResponse
	DocTotal     int     `json:"doc_total"`
	DocCompleted int     `json:"doc_completed"`
	DocProgress  Percent `json:"doc_progress" swaggertype:"number"`
}

// NewConsultantResponse convierte la entidad en DTO.
func NewConsultantResponse(c *entity.Consultant) *ConsultantResponse {
	if c == nil {
		return nil
	}
	return &ConsultantResponse{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		Position:       c.Position,
		Manager:        c.Manager,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		EmploymentType: c.EmploymentType,
		PayRate:        c.PayRate,
		Status:         string(c.Status),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
