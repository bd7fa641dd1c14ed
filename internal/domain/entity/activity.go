package entity

import "time"

// Tipos de actividad registrados por el sistema (texto libre en almacenamiento).
const (
	ActivityConsultantAdded    = "Consultant Added"
	ActivityStatusChanged      = "Status Changed"
	ActivityDocumentAdded      = "Document Added"
	ActivityDocumentUpdated    = "Document Updated"
	ActivityDocumentsGenerated = "Documents Generated"
	ActivityEmailSent          = "Email Sent"
	ActivityReminderSent       = "Reminder Sent"
)

// Activity es una entrada inmutable del log de auditoría de un consultor.
// Seq es la secuencia de inserción; desempata actividades con el mismo Timestamp.
type Activity struct {
	ID           string
	Seq          int64
	ConsultantID string
	ActivityType string
	Description  string
	Timestamp    time.Time
}
