package entity

import "time"

// DocumentStatus estado de un documento del checklist.
type DocumentStatus string

// Estados canónicos del documento. Solo Completed cuenta para el progreso.
const (
	DocumentPending   DocumentStatus = "Pending"
	DocumentGenerated DocumentStatus = "Generated"
	DocumentSent      DocumentStatus = "Sent"
	DocumentReceived  DocumentStatus = "Received"
	DocumentCompleted DocumentStatus = "Completed"
)

// Valid indica si el estado pertenece al conjunto canónico.
func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentPending, DocumentGenerated, DocumentSent, DocumentReceived, DocumentCompleted:
		return true
	}
	return false
}

// Tipos de documento convencionales (no es un enum cerrado).
const (
	DocTypeOfferLetter    = "Offer Letter"
	DocTypeJobDescription = "Job Description"
	DocTypeW4             = "W-4"
	DocTypeI9             = "I-9"
	DocTypeDirectDeposit  = "Direct Deposit Form"
)

// StandardDocumentTypes devuelve los cinco documentos estándar, en orden de alta.
func StandardDocumentTypes() []string {
	return []string{DocTypeOfferLetter, DocTypeJobDescription, DocTypeW4, DocTypeI9, DocTypeDirectDeposit}
}

// Document representa un artefacto de onboarding de un consultor.
type Document struct {
	ID           string
	ConsultantID string
	DocumentType string
	FilePath     *string    // nil hasta que se genera
	Status       DocumentStatus
	SentDate     *time.Time // se fija al pasar a Sent
	ReceivedDate *time.Time // se fija al pasar a Received o Completed
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
