package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleRecruiter = "recruiter"
)

// Estados de cuenta.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un miembro del equipo de RR.HH. que opera el tracker.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, recruiter
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
