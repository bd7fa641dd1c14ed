// Package memory implementa los repositorios en memoria (driver "memory" para desarrollo y tests).
//
// Un único mutex protege el estado. Run trabaja sobre una copia y solo la publica si fn
// no retorna error, así registro y actividad quedan igual de atómicos que en PostgreSQL.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Onboarding-api/internal/application/onboarding"
	"github.com/jhoicas/Onboarding-api/internal/domain/entity"
	"github.com/jhoicas/Onboarding-api/internal/domain/repository"
)

var _ onboarding.TxRunner = (*Store)(nil)

type state struct {
	consultants []entity.Consultant
	documents   []entity.Document
	activities  []entity.Activity
	users       []entity.User
	seq         int64
}

func (s *state) clone() *state {
	return &state{
		consultants: append([]entity.Consultant(nil), s.consultants...),
		documents:   append([]entity.Document(nil), s.documents...),
		activities:  append([]entity.Activity(nil), s.activities...),
		users:       append([]entity.User(nil), s.users...),
		seq:         s.seq,
	}
}

// access ejecuta fn con el estado visible para el repositorio.
type access func(fn func(st *state) error) error

// Store almacenamiento en memoria.
type Store struct {
	mu sync.Mutex
	st *state
}

// NewStore crea un almacenamiento vacío.
func NewStore() *Store {
	return &Store{st: &state{}}
}

func (s *Store) locked(fn func(st *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.st)
}

// Consultants repositorio de consultores fuera de transacción.
func (s *Store) Consultants() *ConsultantRepo { return &ConsultantRepo{do: s.locked} }

// Documents repositorio de documentos fuera de transacción.
func (s *Store) Documents() *DocumentRepo { return &DocumentRepo{do: s.locked} }

// Activities repositorio de actividades fuera de transacción.
func (s *Store) Activities() *ActivityRepo { return &ActivityRepo{do: s.locked} }

// Users repositorio de usuarios del personal.
func (s *Store) Users() *UserRepo { return &UserRepo{do: s.locked} }

// Run ejecuta fn con repos atados a una copia del estado; la copia reemplaza al estado solo si fn no falla.
// Los repos de fuera de la tx no deben usarse dentro de fn (el mutex está tomado).
func (s *Store) Run(ctx context.Context, fn func(
	consultantRepo repository.ConsultantRepository,
	documentRepo repository.DocumentRepository,
	activityRepo repository.ActivityRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.st.clone()
	inTx := func(f func(st *state) error) error { return f(tx) }
	if err := fn(&ConsultantRepo{do: inTx}, &DocumentRepo{do: inTx}, &ActivityRepo{do: inTx}); err != nil {
		return err
	}
	s.st = tx
	return nil
}
