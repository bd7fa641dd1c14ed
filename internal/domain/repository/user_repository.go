package repository

import (
	"context"

	"github.com/jhoicas/Onboarding-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para el personal que opera el sistema.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByEmail devuelve (nil, nil) si no existe.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
