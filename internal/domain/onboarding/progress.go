// Package onboarding contiene los cálculos puros de progreso y resumen (servicios de dominio).
package onboarding

import (
	"github.com/jhoicas/Onboarding-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CompletionPercentage = completados / total * 100, redondeado a 2 decimales.
// Cero cuando no hay documentos.
func CompletionPercentage(completed, total int) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(completed)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(hundred).
		Round(2)
}

// DocumentStats cuenta documentos totales y completados (coincidencia exacta con Completed).
func DocumentStats(docs []*entity.Document) (total, completed int) {
	for _, d := range docs {
		if d == nil {
			continue
		}
		total++
		if d.Status == entity.DocumentCompleted {
			completed++
		}
	}
	return total, completed
}

// PendingDocumentTypes devuelve los tipos de documento que aún no están en Completed ni Received.
func PendingDocumentTypes(docs []*entity.Document) []string {
	var out []string
	for _, d := range docs {
		if d == nil {
			continue
		}
		if d.Status == entity.DocumentCompleted || d.Status == entity.DocumentReceived {
			continue
		}
		out = append(out, d.DocumentType)
	}
	return out
}

// StatusBuckets conteo de consultores por estado canónico.
// Pending+InProgress+Complete puede ser menor que Total si hay estados fuera del conjunto.
type StatusBuckets struct {
	Total      int
	Pending    int
	InProgress int
	Complete   int
}

// Summarize agrupa consultores por estado con coincidencia exacta.
func Summarize(consultants []*entity.Consultant) StatusBuckets {
	var b StatusBuckets
	for _, c := range consultants {
		if c == nil {
			continue
		}
		b.Total++
		switch c.Status {
		case entity.ConsultantPending:
			b.Pending++
		case entity.ConsultantInProgress:
			b.InProgress++
		case entity.ConsultantComplete:
			b.Complete++
		}
	}
	return b
}
