package entity

import "time"

// ConsultantStatus estado de onboarding de un consultor.
type ConsultantStatus string

// Estados canónicos del consultor.
const (
	ConsultantPending    ConsultantStatus = "Pending"
	ConsultantInProgress ConsultantStatus = "In Progress"
	ConsultantComplete   ConsultantStatus = "Complete"
)

// Valid indica si el estado pertenece al conjunto canónico.
func (s ConsultantStatus) Valid() bool {
	switch s {
	case ConsultantPending, ConsultantInProgress, ConsultantComplete:
		return true
	}
	return false
}

// Consultant representa una persona en proceso de onboarding.
// StartDate, EndDate y PayRate se guardan tal como llegan (sin parsear).
type Consultant struct {
	ID             string
	Name           string
	Email          string
	Position       string
	Manager        string
	StartDate      string
	EndDate        string
	EmploymentType string
	PayRate        string
	Status         ConsultantStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
