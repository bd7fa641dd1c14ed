package dto

import "github.com/shopspring/decimal"

// Percent porcentaje de avance; se serializa como número JSON (20, 33.33), no como string.
type Percent struct {
	decimal.Decimal
}

// NewPercent envuelve el decimal calculado.
func NewPercent(d decimal.Decimal) Percent {
	return Percent{Decimal: d}
}

func (p Percent) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal.String()), nil
}

// UnmarshalJSON acepta número o string.
func (p *Percent) UnmarshalJSON(b []byte) error {
	return p.Decimal.UnmarshalJSON(b)
}

// ConsultantProgressResponse respuesta de GET /api/consultants/:id.
// Activities contiene como máximo las 20 más recientes (Timestamp descendente).
type ConsultantProgressResponse struct {
	Consultant           ConsultantResponse `json:"consultant"`
	Documents            []DocumentResponse `json:"documents"`
	Activities           []ActivityResponse `json:"activities"`
	TotalDocuments       int                `json:"total_documents"`
	CompletedDocuments   int                `json:"completed_documents"`
	CompletionPercentage Percent            `json:"completion_percentage" swaggertype:"number"` // 0 si no hay documentos
}

// SummaryResponse respuesta de GET /api/summary.
// Pending+InProgress+Complete puede no sumar Total si existen estados no canónicos.
type SummaryResponse struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Complete   int `json:"complete"`
}
