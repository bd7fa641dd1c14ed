package dto

import (
	"time"

	"github.com/jhoicas/Onboarding-api/internal/domain/entity"
)

// ActivityResponse salida de una entrada del log de actividades.
type ActivityResponse struct {
	ID           string    `json:"id"`
	ConsultantID string    `json:"consultant_id"`
	ActivityType string    `json:"activity_type"`
	Description  string    `json:"description"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewActivityList convierte una lista de entidades (nunca devuelve nil).
func NewActivityList(list []*entity.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(list))
	for _, a := range list {
		out = append(out, ActivityResponse{
			ID:           a.ID,
			ConsultantID: a.ConsultantID,
			ActivityType: a.ActivityType,
			Description:  a.Description,
			Timestamp:    a.Timestamp,
		})
	}
	return out
}
